// Package notify sends OS-native desktop notifications, used to remind the
// user of tasks due today when a session starts.
package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// maxReminderLines caps how many tasks a single reminder lists.
const maxReminderLines = 5

// ErrUnsupported is returned by SendWait on platforms without a notifier.
var ErrUnsupported = errors.New("desktop notifications are not supported on " + runtime.GOOS)

// Send shows a notification with the given title and message:
// - macOS: osascript (native AppleScript)
// - Linux: notify-send (libnotify)
//
// It returns immediately and fails silently when the platform or the
// notification command is unavailable. A process that exits right after
// Send may never show the notification; use SendWait there.
func Send(title, message string) {
	go func() {
		_ = SendWait(title, message)
	}()
}

// SendWait shows a notification and waits for the notifier to finish.
func SendWait(title, message string) error {
	cmd := notifyCommand(title, message)
	if cmd == nil {
		return ErrUnsupported
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", cmd.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func notifyCommand(title, message string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(message), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script)
	case "linux":
		return exec.Command("notify-send", title, message)
	default:
		return nil
	}
}

// Reminder builds the title and body of a due-today notification from the
// rendered tasks. Lists longer than maxReminderLines are summarised.
func Reminder(tasks []string) (title, message string) {
	noun := "tasks"
	if len(tasks) == 1 {
		noun = "task"
	}
	title = fmt.Sprintf("taskbot: %d %s due today", len(tasks), noun)

	shown := tasks
	if len(shown) > maxReminderLines {
		shown = shown[:maxReminderLines]
	}
	message = strings.Join(shown, "\n")
	if extra := len(tasks) - len(shown); extra > 0 {
		message += fmt.Sprintf("\n...and %d more", extra)
	}
	return title, message
}

var appleScriptEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeAppleScript escapes s for use inside an AppleScript string literal.
func escapeAppleScript(s string) string {
	return appleScriptEscaper.Replace(s)
}
