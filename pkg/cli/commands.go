package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varseand/claves/internal/domain/enclave"
	"github.com/varseand/claves/internal/ports"
	enclaveuc "github.com/varseand/claves/internal/usecases/enclave"
	"github.com/varseand/claves/pkg/pattern"
)

func createCmd(app *App) *cobra.Command {
	var (
		req     enclave.CreateRequest
		regions regionFlags
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a code enclave for a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags inválidas falham antes de qualquer chamada à AWS
			if err := enclaveuc.ValidateRequest(&req); err != nil {
				return err
			}

			handle, err := app.resolve(cmd.Context(), regions)
			if err != nil {
				return err
			}

			enclaves, err := handle.Enclaves.Create(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return app.printer.YAML(enclaves)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&req.Name, "name", "n", "", "Name of the new enclave.")
	flags.StringVarP(&req.Repository, "repository", "r", "", "Name of the repository to be cloned in the enclave.")
	flags.StringVarP(&req.Git.Name, "git-username", "u", app.Settings.Git.Name, "Git username to be used by the enclave.")
	flags.StringVarP(&req.Git.Email, "git-email", "e", app.Settings.Git.Email, "Git email to be used by the enclave.")
	flags.StringVarP(&req.KeyName, "keypair", "k", app.Settings.KeyPair, "KeyPair to be used with the new enclave (env "+EnvKeyPair+").")
	flags.BoolVarP(&req.Force, "force", "f", false, "Create a new code enclave even if it already exists for given repository.")
	flags.StringVar(&req.InstanceFamily, "instance-family", "t3", "AWS EC2 instance family to use ("+strings.Join(enclave.SupportedFamilies, ", ")+").")
	flags.StringVar(&req.InstanceSize, "instance-size", "nano", "AWS EC2 instance size to use ("+strings.Join(enclave.SupportedSizes, ", ")+").")
	regions.bindRegion(flags, "Create code enclaves and search for repositories in this region.")
	flags.StringVar(&regions.instance, "instance-region", "", "Create code enclaves in this region (overrides --region).")
	flags.StringVar(&regions.repository, "repository-region", "", "Search for repositories in this region (overrides --region).")

	return cmd
}

func deleteCmd(app *App) *cobra.Command {
	var (
		name, repository string
		yes, verbose     bool
		regions          regionFlags
	)
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete code enclaves matching wildcard filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter := ports.DeleteFilter{
				Name:       pattern.Ptr(name),
				Repository: pattern.Ptr(repository),
				Verbose:    verbose,
			}
			if err := enclaveuc.CheckDeleteFilter(filter); err != nil {
				return err
			}

			handle, err := app.resolve(ctx, regions)
			if err != nil {
				return err
			}

			enclaves, err := handle.Enclaves.FindForDeletion(ctx, filter)
			if err != nil {
				return err
			}

			count := len(enclaves)
			app.printer.Text(plural(count, "The following code enclave will be deleted:", "The following code enclaves will be deleted:"), false)
			if err := app.printer.YAML(enclaves); err != nil {
				return err
			}

			if yes {
				app.printer.Text("Not asking for confirmation as --yes were used.", false)
			} else {
				confirmed, err := app.prompter.Confirm(plural(count,
					"Do you want delete this code enclave?",
					fmt.Sprintf("Do you want delete these %d code enclaves?", count)))
				if err != nil {
					return err
				}
				if !confirmed {
					app.printer.Text("No code enclaves deleted.", false)
					return nil
				}
			}

			deleted, err := handle.Enclaves.Delete(ctx, enclaves)
			if err != nil {
				return err
			}
			app.printer.Text(plural(deleted,
				"Deletion of code enclave was initiated.",
				fmt.Sprintf("Deletion of %d code enclaves was initiated.", deleted)), false)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&name, "name", "n", "", "Delete code enclaves matching a wildcard name.")
	flags.StringVarP(&repository, "repository", "r", "", "Delete code enclaves matching a wildcard repository.")
	flags.BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show more details.")
	regions.bindRegion(flags, "Delete code enclaves in this region.")

	return cmd
}

func listCmd(app *App) *cobra.Command {
	var (
		name, repository string
		verbose          bool
		regions          regionFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List code enclaves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := app.resolve(cmd.Context(), regions)
			if err != nil {
				return err
			}

			enclaves, err := handle.Enclaves.List(cmd.Context(), enclave.Query{
				Name:       pattern.Wildcard(pattern.Ptr(name)),
				Repository: pattern.Wildcard(pattern.Ptr(repository)),
				Verbose:    verbose,
			})
			if err != nil {
				return err
			}
			return app.printer.YAML(enclaves)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&name, "name", "n", "", "List code enclaves matching a wildcard name.")
	flags.StringVarP(&repository, "repository", "r", "", "List code enclaves matching a wildcard repository.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show more details.")
	regions.bindRegion(flags, "List code enclaves in this region.")

	return cmd
}

func repositoriesCmd(app *App) *cobra.Command {
	var (
		name    string
		regions regionFlags
	)
	cmd := &cobra.Command{
		Use:   "repositories",
		Short: "List CodeCommit repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := app.resolve(cmd.Context(), regions)
			if err != nil {
				return err
			}

			repositories, err := handle.Repositories.ListRepositories(cmd.Context(), pattern.Wildcard(pattern.Ptr(name)))
			if err != nil {
				return err
			}
			return app.printer.YAML(repositories)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&name, "name", "n", "", "List repositories matching a wildcard name.")
	regions.bindRegion(flags, "Search for repositories in this region.")

	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
