package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdrpinto/bestfirst/internal/config"
)

var version = "0.1.0-dev"

// configKeyAnnotation marks a flag with the configuration key it overrides.
const configKeyAnnotation = "bestfirst/config-key"

// app carries what the subcommands share once the configuration is loaded.
type app struct {
	viper  *viper.Viper
	cfg    config.Config
	logger *logrus.Entry
	out    io.Writer
	errOut io.Writer
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it against args.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	rootCmd := newRootCmd(&app{viper: viper.New(), out: out, errOut: errOut})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "bestfirst",
		Short: "Best-first search over the classic toy problems",
		Long: `bestfirst solves a maze, a dot-collecting maze walk and the 3x3 sliding
puzzle with breadth-first search, uniform-cost search and A*, and reports
path length and search effort for each.

Settings come from $HOME/.bestfirst.yaml (or --config), BESTFIRST_*
environment variables and flags, in increasing order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var bindErr error
			cmd.Flags().VisitAll(func(flag *pflag.Flag) {
				if keys, ok := flag.Annotations[configKeyAnnotation]; ok && bindErr == nil {
					bindErr = a.viper.BindPFlag(keys[0], flag)
				}
			})
			if bindErr != nil {
				return bindErr
			}

			cfg, err := config.Load(a.viper, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger, err := newLogger(cfg.Log, a.errOut)
			if err != nil {
				return err
			}
			a.logger = logger.WithField("run", uuid.NewString())
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	bindFlags(rootCmd.PersistentFlags(), map[string]string{"log.level": "log-level", "log.format": "log-format"})

	rootCmd.AddCommand(
		newVersionCmd(),
		newSolveCmd(a),
		newTraceCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// bindFlags maps flags to configuration keys. The keys are bound when the
// command runs, so subcommands may reuse flag names for the same key. It
// panics on a flag that was never defined.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := flags.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
			panic(errors.Wrapf(err, "binding %s", key))
		}
	}
}

func newLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log.level")
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logger, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skip configuration loading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bestfirst version %s\n", version)
		},
	}
}
