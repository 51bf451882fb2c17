package toast

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Builder turns caller text into a notification and submits it to a Host.
// Calls are serialized; every call builds and discards its own Document.
type Builder struct {
	host   Host
	logger zerolog.Logger

	mu sync.Mutex
}

// NewBuilder returns a Builder submitting to host.
func NewBuilder(host Host, logger zerolog.Logger) *Builder {
	return &Builder{
		host:   host,
		logger: logger,
	}
}

// BuildAndShow shows one notification holding fields: a single field uses
// ToastText01, a title and body use ToastText02. Calling it twice shows two
// notifications.
func (b *Builder) BuildAndShow(ctx context.Context, fields ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, err := b.buildAndShow(ctx, fields)
	if err != nil {
		b.logger.Warn().
			Err(err).
			Stringer("state", state).
			Int("fields", len(fields)).
			Msg("notification not shown")
		return err
	}

	b.logger.Debug().
		Stringer("state", state).
		Int("fields", len(fields)).
		Msg("notification submitted")
	return nil
}

func (b *Builder) buildAndShow(ctx context.Context, fields []string) (State, error) {
	state := Unbuilt

	tmpl, err := TemplateFor(len(fields))
	if err != nil {
		return state, err
	}

	if !b.host.Supported() {
		return state, fmt.Errorf("%w: %w", ErrTemplateUnavailable, ErrUnsupportedHost)
	}
	doc, err := b.host.TemplateContent(tmpl)
	if err != nil {
		return state, fmt.Errorf("%w: %s: %w", ErrTemplateUnavailable, tmpl, err)
	}
	state = TemplateLoaded

	for i, field := range fields {
		if err := doc.Bind(i, field); err != nil {
			return state, err
		}
	}
	state = SlotsBound

	notification, err := b.host.CreateNotification(doc)
	if err != nil {
		return state, fmt.Errorf("%w: %w", ErrNotificationConstructionFailed, err)
	}
	state = Constructed
	b.logger.Debug().
		Stringer("template", notification.Template).
		Str("payload", notification.Payload).
		Msg("notification constructed")

	notifier, err := b.host.CreateNotifier()
	if err != nil {
		return state, fmt.Errorf("%w: acquire notifier: %w", ErrSubmissionFailed, err)
	}
	if err := notifier.Show(ctx, notification); err != nil {
		return state, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	return Submitted, nil
}
