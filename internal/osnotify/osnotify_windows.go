//go:build windows

package osnotify

import (
	"context"

	gotoast "git.sr.ht/~jackmordaunt/go-toast"

	"github.com/zboyco/toast-mcp/internal/toast"
)

// Supported is always true: every Windows release we build for has a toast
// notification center.
func (h *Host) Supported() bool {
	return true
}

// CreateNotifier returns the toast notifier for the configured app.
func (h *Host) CreateNotifier() (toast.Notifier, error) {
	return toastNotifier{}, nil
}

type toastNotifier struct{}

func (toastNotifier) Show(_ context.Context, n *toast.Notification) error {
	notification := gotoast.Notification{
		AppID: n.AppID,
		Title: n.Title,
		Body:  n.Body,
		Icon:  n.Icon,
	}

	return notification.Push()
}
