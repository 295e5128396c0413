package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the domain and agent types usable in configurations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Domains:")
			for _, d := range domain.Registered() {
				fmt.Fprintf(w, "  %s\n", d)
			}
			fmt.Fprintln(w, "Agents:")
			for _, a := range agent.Registered() {
				fmt.Fprintf(w, "  %s\n", a)
			}
		},
	}
}
