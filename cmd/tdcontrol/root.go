package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Register every domain and agent so that their configurations can
	// be read from JSON
	_ "github.com/samuelfneumann/tdcontrol/agent/control/actorcritic"
	_ "github.com/samuelfneumann/tdcontrol/agent/control/esarsa"
	_ "github.com/samuelfneumann/tdcontrol/agent/control/qlearning"
	_ "github.com/samuelfneumann/tdcontrol/agent/control/qsigma"
	_ "github.com/samuelfneumann/tdcontrol/domain/gridworld"
	_ "github.com/samuelfneumann/tdcontrol/domain/mountaincar"
)

// newRootCmd returns the tdcontrol command with all subcommands. Every
// flag can also be set through an environment variable prefixed with
// TDCONTROL_, e.g. TDCONTROL_LOG_LEVEL=debug.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "tdcontrol",
		Short: "Temporal-difference control experiments",
		Long: `tdcontrol trains reinforcement learning agents with linear function
approximation on episodic domains and evaluates their greedy policies.

Experiments are described by JSON configuration files naming a domain,
an agent and the number of training and evaluation episodes. Run
"tdcontrol example" to print a configuration to start from.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info",
		"Log level (debug, info, warn, error)")
	v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	v.SetEnvPrefix("TDCONTROL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newRunCmd(v),
		newPlotCmd(v),
		newListCmd(),
		newExampleCmd(),
	)
	return root
}

// newLogger returns a console logger writing to w at the named level
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("newLogger: %v", err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
