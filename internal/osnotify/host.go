// Package osnotify submits toast notifications through the notification
// service of the host OS. Each supported OS contributes the Supported and
// CreateNotifier methods of Host; everything else is shared.
package osnotify

import (
	"fmt"

	"github.com/zboyco/toast-mcp/internal/toast"
)

// DefaultAppID is used when Options leaves AppID empty.
const DefaultAppID = "toast-mcp"

// Options configure a Host.
type Options struct {
	// AppID is the application the notification is attributed to. Packaged
	// apps should pass their Application User Model ID.
	AppID string
	// IconPath overrides the embedded icon.
	IconPath string
}

// Host is the toast.Host of the running OS.
type Host struct {
	opts Options
}

var _ toast.Host = (*Host)(nil)

// New returns a Host for the running OS.
func New(opts Options) *Host {
	if opts.AppID == "" {
		opts.AppID = DefaultAppID
	}
	return &Host{opts: opts}
}

// TemplateContent returns a fresh document for t.
func (h *Host) TemplateContent(t toast.Template) (*toast.Document, error) {
	if !h.Supported() {
		return nil, toast.ErrUnsupportedHost
	}
	return toast.NewDocument(t)
}

// CreateNotification turns a bound document into a notification attributed
// to the configured app.
func (h *Host) CreateNotification(doc *toast.Document) (*toast.Notification, error) {
	n, err := toast.NewNotification(doc)
	if err != nil {
		return nil, err
	}

	icon, err := h.iconPath()
	if err != nil {
		return nil, fmt.Errorf("prepare icon: %w", err)
	}

	n.AppID = h.opts.AppID
	n.Icon = icon
	return n, nil
}

func (h *Host) iconPath() (string, error) {
	if h.opts.IconPath != "" {
		return h.opts.IconPath, nil
	}
	return ensurePNGPath()
}
