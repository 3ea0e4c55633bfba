package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a single command",
		Long: `Run one command line and print the response.

Examples:
  taskbot exec list
  taskbot exec todo buy milk !low
  taskbot exec done 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExec,
	}
}

func runExec(cmd *cobra.Command, args []string) error {
	s, store, _, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	resp, err := s.Handle(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
	return nil
}
