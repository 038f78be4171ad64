package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/trade-journal/internal/adapter"
	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/models"
)

// globalFlags are the persistent flags layered over env and JSON config.
type globalFlags struct {
	server     string
	timeout    time.Duration
	presets    string
	logLevel   string
	configPath string
}

type App struct {
	root  *cobra.Command
	flags globalFlags

	out    io.Writer
	errOut io.Writer

	buildInfo   models.AppBuildInfo
	copyToClip  func(string) error
	now         func() time.Time
	traceIDs    *utils.UUIDGenerator
	adapterFunc func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error)

	// set by the root PersistentPreRunE
	cfg     *config.ClientConfig
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// Option adjusts an App built by NewApp.
type Option func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithServerAdapter replaces the HTTP adapter built from the config.
func WithServerAdapter(s adapter.ServerAdapter) Option {
	return func(a *App) {
		a.adapterFunc = func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error) {
			return s, nil
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) {
		a.copyToClip = write
	}
}

// WithClock fixes the time used to resolve the "today" date.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		out:         os.Stdout,
		errOut:      os.Stderr,
		buildInfo:   buildInfo,
		copyToClip:  clipboard.WriteAll,
		now:         time.Now,
		traceIDs:    utils.NewUUIDGenerator(),
		adapterFunc: adapter.NewHTTPServerAdapter,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "journal",
		Short:             "Trade journal client",
		Long:              "journal reads and edits the bar-by-bar trade journal kept by journal-server.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.server, "server", "s", "", "journal-server address (env ADAPTER_ADDRESS)")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")
	pf.StringVar(&a.flags.presets, "presets", "", "presets file for local resolution (env TRADE_JOURNAL_PRESETS_PATH)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (env APP_LOG_LEVEL)")
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "JSON config file (env CONFIG)")

	root.AddCommand(
		a.newPresetsCommand(),
		a.newLayoutCommand(),
		a.newDaysCommand(),
		a.newShowCommand(),
		a.newSetCommand(),
		a.newAddCommand(),
		a.newRemoveCommand(),
		a.newClearCommand(),
		a.newDeleteDayCommand(),
		a.newVersionCommand(),
	)

	return root
}

// setup loads the config, builds the logger and adapter and tags the command
// context with a fresh trace ID.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	overrides := &config.StructuredConfig{
		App:          config.App{LogLevel: a.flags.logLevel},
		Presets:      config.Presets{Path: a.flags.presets},
		Adapter:      config.Adapter{HTTPAddress: a.flags.server, RequestTimeout: a.flags.timeout},
		JSONFilePath: a.flags.configPath,
	}

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.NewConsoleLogger("journal", a.errOut)

	a.adapter, err = a.adapterFunc(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}

	traceID := a.traceIDs.Generate()
	cmd.SetContext(utils.WithTraceID(cmd.Context(), traceID))
	a.logger.Debug().Str("trace_id", traceID).Str("server", cfg.Adapter.HTTPAddress).Msg("client configured")

	return nil
}
