//go:build linux

package osnotify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/zboyco/toast-mcp/internal/toast"
)

const (
	notificationsName   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsNotify = notificationsName + ".Notify"
)

// Supported reports whether the session bus has a notification server.
func (h *Host) Supported() bool {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return false
	}
	defer conn.Close()

	var owned bool
	err = conn.BusObject().
		Call("org.freedesktop.DBus.NameHasOwner", 0, notificationsName).
		Store(&owned)
	return err == nil && owned
}

// CreateNotifier opens a private session bus connection. The returned
// notifier closes it after one Show.
func (h *Host) CreateNotifier() (toast.Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return &dbusNotifier{conn: conn}, nil
}

type dbusNotifier struct {
	conn *dbus.Conn
}

func (d *dbusNotifier) Show(ctx context.Context, n *toast.Notification) error {
	defer d.conn.Close()

	obj := d.conn.Object(notificationsName, notificationsPath)
	call := obj.CallWithContext(ctx, notificationsNotify, 0,
		n.AppID,                   // app_name
		uint32(0),                 // replaces_id
		n.Icon,                    // app_icon
		n.Title,                   // summary
		n.Body,                    // body
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		int32(-1),                 // expire_timeout (-1 = default)
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notify reply: %w", err)
	}
	return nil
}
