package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jayphen/taskbot/internal/notify"
	"github.com/Jayphen/taskbot/internal/session"
)

// remindNotifier shows the notification. The process exits right after the
// command, so it must not return before the notifier has run.
var remindNotifier = notify.SendWait

func newRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Notify about tasks due today",
		Long: `Send a desktop notification listing unfinished deadlines and events due today.

Suitable for running from cron or a login hook.`,
		Args: cobra.NoArgs,
		RunE: runRemind,
	}
}

func runRemind(cmd *cobra.Command, args []string) error {
	s, store, _, err := openSession(cmd.Context(), session.WithNotifier(remindNotifier))
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := s.Remind(time.Now())
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing due today.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sent reminder for %d task(s).\n", n)
	return nil
}
