// Package cli implements the yangcheck command line tool: subcommands
// for compiling a module and reporting its diagnostics, and for printing
// a parsed tree back out in either surface form.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	yangerrors "github.com/jacoelho/yang/errors"
)

const envPrefix = "YANGCHECK"

// version is overridden at build time via -ldflags.
var version = "dev"

// Execute parses args and runs the matching subcommand, writing normal
// output to stdout and diagnostics/logging to stderr. It returns the
// process exit code; main is expected to pass it straight to os.Exit.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return exitCodeForError(err)
	}
	return 0
}

type rootOptions struct {
	ConfigFile string
	LogLevel   string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := rootOptions{}
	cmd := &cobra.Command{
		Use:     "yangcheck",
		Short:   "Parse, compile, and format YANG modules",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(opts.ConfigFile); err != nil {
				return err
			}
			setupLogging(stderr, viper.GetString("log_level"))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newFormatCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		return viper.ReadInConfig()
	}

	viper.SetConfigName("yangcheck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/yangcheck")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
	}
	return nil
}

func setupLogging(w io.Writer, level string) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
	switch level {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn":
		logger = logger.Level(zerolog.WarnLevel)
	case "error":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	log = logger
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})

func exitCodeForError(err error) int {
	switch {
	case hasKind(err, yangerrors.Syntax):
		return 2
	case hasKind(err, yangerrors.Validation), hasKind(err, yangerrors.Unresolved), hasKind(err, yangerrors.Denied):
		return 3
	case hasKind(err, yangerrors.Internal), hasKind(err, yangerrors.Memory):
		return 4
	default:
		return 1
	}
}

// hasKind reports whether err (a *yangerrors.Error, a yangerrors.List, or
// any wrapper around either) carries a diagnostic of the given kind.
func hasKind(err error, kind yangerrors.Kind) bool {
	var single *yangerrors.Error
	if errors.As(err, &single) {
		return single.Kind == kind
	}
	var list yangerrors.List
	if errors.As(err, &list) {
		return list.HasKind(kind)
	}
	return false
}
