// Package commands wires the artisan console commands.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/jrazmi/artisan/app/generators/scaffold"
	"github.com/jrazmi/artisan/app/generators/stubs"
	"github.com/jrazmi/artisan/sdk/console"
	"github.com/jrazmi/artisan/sdk/logger"
	"github.com/jrazmi/artisan/sdk/telemetry"
)

// AppName prefixes every environment variable the CLI reads.
const AppName = "ARTISAN"

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "artisan.toml"

type globals struct {
	configPath string
	basePath   string
	verbose    bool
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	log     *logger.Logger
	console *console.Console
	flags   globals
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(log *logger.Logger) *cobra.Command {
	a := &app{log: log}

	cmd := &cobra.Command{
		Use:   "artisan",
		Short: "Scaffold services and repositories",
		Long: `artisan generates service and repository source files from stubs
and migrates the registered models.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.flags.configPath, "config", DefaultConfigFile, "path to the TOML config file")
	cmd.PersistentFlags().StringVar(&a.flags.basePath, "base-path", "", "project root generated files are written under")
	cmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newMakeServiceCmd(a))
	cmd.AddCommand(newMakeRepositoryCmd(a))
	cmd.AddCommand(newMigrateCmd(a))

	return cmd
}

func (a *app) initialize(cmd *cobra.Command) error {
	a.console = console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if a.flags.verbose {
		a.log = logger.NewDefault(
			logger.WithLevel("DEBUG"),
			logger.WithFormat("text"),
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithTraceID(telemetry.NewTelemetry().GetTraceID),
		)
	}
	return nil
}

// scaffolder builds a Scaffolder over the configured project root. Published
// stubs in the stubs directory take precedence over the embedded ones.
func (a *app) scaffolder() (*scaffold.Scaffolder, error) {
	cfg, err := scaffold.LoadConfig(AppName, a.flags.configPath, a.flags.basePath)
	if err != nil {
		return nil, err
	}

	stubDir := cfg.StubsPath
	if !filepath.IsAbs(stubDir) {
		stubDir = filepath.Join(cfg.BasePath, stubDir)
	}

	if cfg.BasePath == "" {
		return nil, fmt.Errorf("%w: empty base path", scaffold.ErrIO)
	}

	a.log.Debug("scaffold: configured",
		"base_path", cfg.BasePath,
		"stubs_path", stubDir,
		"module", cfg.ModulePath,
	)

	if cfg.ModulePath == "" {
		a.console.Warn("No go.mod found above %s; $MODULE$ is left unresolved. Set module_path in %s.", cfg.BasePath, DefaultConfigFile)
	}

	store := stubs.NewStore(osfs.New(stubDir))
	return scaffold.New(a.log, osfs.New(cfg.BasePath), store, cfg), nil
}
