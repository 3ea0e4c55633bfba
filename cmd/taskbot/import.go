package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jayphen/taskbot/internal/storage"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import todos from a markdown todolist",
		Long: `Import "[ ] text" and "[x] text" lines from a markdown todolist as todos.

Item text accepts the same #tag and !priority markers as the todo command.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	items, err := storage.ReadTodolist(args[0])
	if err != nil {
		return fmt.Errorf("failed to read todolist: %w", err)
	}

	s, store, _, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	resp, err := s.Import(cmd.Context(), items)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
	return nil
}
