//go:build !windows && !darwin && !linux

package osnotify

import "github.com/zboyco/toast-mcp/internal/toast"

// Supported is false: there is no notification backend for this OS.
func (h *Host) Supported() bool {
	return false
}

// CreateNotifier always fails with toast.ErrUnsupportedHost.
func (h *Host) CreateNotifier() (toast.Notifier, error) {
	return nil, toast.ErrUnsupportedHost
}
