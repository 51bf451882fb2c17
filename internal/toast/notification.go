package toast

import (
	"context"
	"errors"
	"fmt"
)

// Notification is a displayable notification built from a bound Document.
type Notification struct {
	Template Template
	AppID    string
	Icon     string
	Title    string
	Body     string
	// Payload is the serialized document XML. Notifiers display Title and
	// Body; the payload is kept for diagnostics and logged at debug level.
	Payload string
}

// NewNotification reads the bound slots of doc. Slot 0 becomes the title and
// slot 1, when the template has one, the body.
func NewNotification(doc *Document) (*Notification, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}

	title, err := doc.Slot(0)
	if err != nil {
		return nil, err
	}

	var body string
	if doc.SlotCount() > 1 {
		if body, err = doc.Slot(1); err != nil {
			return nil, err
		}
	}

	payload, err := doc.XML()
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return &Notification{
		Template: doc.Template(),
		Title:    title,
		Body:     body,
		Payload:  payload,
	}, nil
}

// Host is the OS notification service a Builder talks to.
type Host interface {
	// Supported reports whether the host can display notifications at all.
	Supported() bool
	TemplateContent(t Template) (*Document, error)
	CreateNotification(doc *Document) (*Notification, error)
	CreateNotifier() (Notifier, error)
}

// Notifier displays notifications. A nil error means the OS accepted the
// notification, not that anyone saw it.
type Notifier interface {
	Show(ctx context.Context, n *Notification) error
}
