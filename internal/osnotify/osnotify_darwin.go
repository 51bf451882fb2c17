//go:build darwin

package osnotify

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	gosxnotifier "github.com/deckarep/gosx-notifier"

	"github.com/zboyco/toast-mcp/internal/toast"
)

// Supported reports whether a terminal-notifier binary can be found.
func (h *Host) Supported() bool {
	_, err := ensureTerminalNotifierPath()
	return err == nil
}

// CreateNotifier returns a notifier backed by terminal-notifier.
func (h *Host) CreateNotifier() (toast.Notifier, error) {
	if _, err := ensureTerminalNotifierPath(); err != nil {
		return nil, err
	}
	return sxNotifier{}, nil
}

type sxNotifier struct{}

func (sxNotifier) Show(_ context.Context, n *toast.Notification) error {
	// terminal-notifier requires a message; a one-slot toast carries its
	// text as the message with the app as title.
	title, message := n.Title, n.Body
	if message == "" {
		title, message = n.AppID, n.Title
	}

	notification := gosxnotifier.NewNotification(message)
	notification.Title = title
	notification.AppIcon = n.Icon
	notification.Group = n.AppID

	return notification.Push()
}

func ensureTerminalNotifierPath() (string, error) {
	// gosx-notifier unpacks its bundled binary into a temp dir at init, which
	// the OS may clean up under us.
	if path := gosxnotifier.FinalPath; path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if sysPath, err := exec.LookPath("terminal-notifier"); err == nil {
		gosxnotifier.FinalPath = sysPath
		return sysPath, nil
	}

	return "", fmt.Errorf("terminal-notifier missing (last known path %q)", gosxnotifier.FinalPath)
}
