package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Jayphen/taskbot/internal/session"
)

const divider = "____________________________________________________________"

var (
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	greetingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func runConsole(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, store, cfg, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()
	if cfg.RemindOnStart {
		// Reminders here are best effort; a failure is logged by the session.
		_, _ = s.Remind(now)
	}

	return runREPL(ctx, s, os.Stdin, os.Stdout, now)
}

// runREPL greets the user, then reads and executes one line at a time until
// an exit command runs or in is exhausted.
func runREPL(ctx context.Context, s *session.Session, in io.Reader, out io.Writer, now time.Time) error {
	printBlock(out, greetingStyle.Render(s.Greeting(now)))

	scanner := bufio.NewScanner(in)
	for !s.Done() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		resp, err := s.Handle(ctx, line)
		if err != nil {
			printBlock(out, errorStyle.Render(err.Error()))
			continue
		}
		printBlock(out, resp.Text)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// printBlock writes text between two dividers.
func printBlock(out io.Writer, text string) {
	fmt.Fprintln(out, dividerStyle.Render(divider))
	fmt.Fprintln(out, text)
	fmt.Fprintln(out, dividerStyle.Render(divider))
	fmt.Fprintln(out)
}
