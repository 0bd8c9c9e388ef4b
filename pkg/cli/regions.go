package cli

import (
	"context"
	"slices"

	"github.com/spf13/pflag"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/varseand/claves/internal/domain/apperror"
	"github.com/varseand/claves/pkg/clients"
)

// regionFlags são as flags de região de um subcomando
type regionFlags struct {
	region     string
	instance   string
	repository string
}

// bindRegion registra --region com o texto de ajuda do subcomando
func (r *regionFlags) bindRegion(flags *pflag.FlagSet, usage string) {
	flags.StringVar(&r.region, "region", "", usage)
}

// split aplica --region às regiões que não foram definidas explicitamente
func (r regionFlags) split() (instance, repository string) {
	instance, repository = r.instance, r.repository
	if r.region != "" {
		if instance == "" {
			instance = r.region
		}
		if repository == "" {
			repository = r.region
		}
	}
	return instance, repository
}

// resolve valida as regiões informadas contra o catálogo e só então
// constrói os clientes. Regiões vazias ficam com o padrão do SDK.
func (app *App) resolve(ctx context.Context, flags regionFlags) (*clients.Handle, error) {
	instance, repository := flags.split()

	if instance != "" || repository != "" {
		catalog, err := app.Factory.Regions(ctx)
		if err != nil {
			return nil, err
		}

		allowed, err := catalog.ListRegions(ctx)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeMissingRegion, missingRegionMessage)
		}
		log.FromContext(ctx).V(1).Info("regions fetched", "count", len(allowed))

		for _, region := range []string{instance, repository} {
			if region != "" && !slices.Contains(allowed, region) {
				return nil, apperror.New(apperror.CodeInvalidRegion, "Invalid region: %q.", region)
			}
		}
	}

	return app.Factory.ForRegion(ctx, instance, repository)
}
