// Package cli implementa a interface de linha de comando do claves.
//
// Cada subcomando valida suas flags, resolve as regiões, obtém os casos de
// uso da região por meio de um clients.Factory e imprime o resultado. Erros
// de aplicação são convertidos em código de saída apenas em Run.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/varseand/claves/internal/domain/apperror"
	"github.com/varseand/claves/pkg/clients"
	"github.com/varseand/claves/pkg/metrics"
)

const missingRegionMessage = `You must specify a region. You can also configure your region by running "aws configure".`

// App contém as dependências de uma execução do CLI
type App struct {
	Factory  clients.Factory
	Settings Settings

	In  io.Reader
	Out io.Writer
	Err io.Writer

	printer  *Printer
	prompter *Prompter
	logger   logr.Logger

	debug       bool
	metricsFile string
}

// Main monta o App real e executa o CLI com os argumentos do processo
func Main(ctx context.Context, args []string) int {
	settings, err := LoadSettings(ctx)
	if err != nil {
		NewPrinter(os.Stdout).Text("failed to load .env: "+err.Error(), true)
		return 1
	}

	app := &App{
		Factory:  clients.NewAWSClientFactory(settings.AWS.GetAWSConfig),
		Settings: settings,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
	return Run(ctx, app, args)
}

// Run executa o CLI e devolve o código de saída do processo
func Run(ctx context.Context, app *App, args []string) int {
	app.printer = NewPrinter(app.Out)
	app.prompter = NewPrompter(app.In, app.printer)
	app.logger = newLogger(app.Err, false)
	app.metricsFile = app.Settings.MetricsFile

	// cobra lê os.Args quando recebe nil
	if args == nil {
		args = []string{}
	}

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	cmd, err := root.ExecuteContextC(log.IntoContext(ctx, app.logger))
	code := app.report(err)

	if cmd != nil && cmd != root {
		metrics.RecordCommand(cmd.Name(), code)
	}
	if werr := metrics.WriteTextfile(app.metricsFile); werr != nil {
		app.logger.Error(werr, "unable to write metrics", "path", app.metricsFile)
	}

	return code
}

// NewRootCommand cria o comando raiz com os quatro subcomandos
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "claves",
		Short:         "Manage ephemeral code enclaves bound to CodeCommit repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Comando ausente ou desconhecido imprime a ajuda e sai com 0
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.logger = newLogger(app.Err, app.debug)
			cmd.SetContext(log.IntoContext(cmd.Context(), app.logger))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "Write diagnostic logs to stderr.")
	cmd.PersistentFlags().StringVar(&app.metricsFile, "metrics-file", app.Settings.MetricsFile,
		"Write Prometheus metrics to this file at exit (env "+EnvMetricsFile+").")

	cmd.AddCommand(
		createCmd(app),
		deleteCmd(app),
		listCmd(app),
		repositoriesCmd(app),
	)

	return cmd
}

// report imprime err e devolve o código de saída correspondente
func (app *App) report(err error) int {
	if err == nil {
		return 0
	}

	if appErr, ok := apperror.As(err); ok {
		if appErr.Err != nil {
			app.logger.V(1).Info("application error", "code", appErr.Code, "cause", appErr.Err.Error())
		}
		app.printer.Text(appErr.Message, appErr.Failed())
		return appErr.Code
	}

	var missingRegion *aws.MissingRegionError
	if errors.As(err, &missingRegion) {
		app.printer.Text(missingRegionMessage, true)
		return apperror.CodeMissingRegion
	}

	app.logger.Error(err, "command failed")
	app.printer.Text(err.Error(), true)
	return 1
}

func newLogger(out io.Writer, debug bool) logr.Logger {
	level := zapcore.ErrorLevel
	if debug {
		level = zapcore.DebugLevel
	}
	return zap.New(
		zap.UseDevMode(debug),
		zap.WriteTo(out),
		zap.Level(level),
	)
}
