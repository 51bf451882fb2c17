package toast

import "errors"

var (
	// ErrInvalidFields reports a field count no template can hold. It is
	// returned before the host is touched.
	ErrInvalidFields = errors.New("toast: field count does not match any template")

	// ErrTemplateUnavailable reports that the host could not supply template
	// content, including hosts without notification support.
	ErrTemplateUnavailable = errors.New("toast: template unavailable")

	// ErrSlotIndexOutOfRange reports a bind past the last text slot.
	ErrSlotIndexOutOfRange = errors.New("toast: slot index out of range")

	ErrNotificationConstructionFailed = errors.New("toast: notification construction failed")

	// ErrSubmissionFailed covers both notifier acquisition and display
	// rejection.
	ErrSubmissionFailed = errors.New("toast: submission failed")

	// ErrUnsupportedHost is returned by hosts without notification support;
	// the Builder reports it wrapped in ErrTemplateUnavailable.
	ErrUnsupportedHost = errors.New("notifications are not supported on this host")
)
