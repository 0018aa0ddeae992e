// Package cli provides the gridkit command-line interface.
//
// Configuration System:
//
//	Settings come from several sources with clear precedence:
//	1. Command-line flags (--mode, --output, --log-level, ...) - highest priority
//	2. Individual environment variables (GRIDKIT_SEARCH_MODE, ...)
//	3. The config file: --config, else GRIDKIT_CONFIG_FILE, else .gridkit.yml
//	4. Built-in defaults - lowest priority
//
// Commands:
//
//	gridkit regions FILE   price every connected region of a map
//	gridkit paths FILE     search routes from the start to the finish marker
//	gridkit show FILE      echo a map with a short summary
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridkit/internal/config"
	"github.com/katalvlaran/gridkit/internal/logging"
)

// ErrMarkerNotFound is returned when a map lacks the start or finish marker.
var ErrMarkerNotFound = errors.New("cli: marker not found")

// app carries the state shared by all commands of one root.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCommand builds the gridkit command tree with its own configuration
// instance, so several roots can coexist in one process.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "gridkit",
		Short: "Grid puzzle toolkit: region pricing and turn-weighted path search",
		Long: `gridkit reads character maps and answers two kinds of questions about them.

  regions   flood-fills every connected region and reports area, perimeter,
            number of sides and the resulting prices
  paths     runs a branching search from the start marker to the finish
            marker, ranking routes by length or by turn-weighted cost
  show      prints a map with its size and markers

Examples:
  gridkit regions garden.txt -o json
  gridkit paths maze.txt --mode bounded --max-cost 7036 --draw
  GRIDKIT_SEARCH_MODE=length gridkit paths maze.txt`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .gridkit.yml, can also use "+config.EnvConfigFile+" env var)")
	pf.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	pf.Var(newChoice("text", "text", "json"), "log-format", "log format (text|json)")
	pf.VarP(newChoice("text", config.OutputFormats...), "output", "o", "output format (text|json|yaml)")
	bindFlags(a.v, pf, map[string]string{
		"log.level":     "log-level",
		"log.format":    "log-format",
		"output.format": "output",
	})

	root.AddCommand(a.regionsCommand(), a.pathsCommand(), a.showCommand())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup reads the config file, loads and validates the configuration and
// builds the logger writing to the command's error stream.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	used, err := config.ReadFile(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Output:    cmd.ErrOrStderr(),
		Component: cmd.Name(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger

	if used != "" {
		logger.Debug("using config file", "path", used)
	}
	return nil
}

// bindFlags binds every flag of fs named in keys to its configuration key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// the flags are defined right before binding; Lookup cannot miss
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}
