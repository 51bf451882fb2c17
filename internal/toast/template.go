// Package toast builds template-based toast notifications and hands them to a
// host notifier.
package toast

import "fmt"

// Template identifies a fixed notification layout with an ordered list of
// text slots.
type Template int

const (
	// ToastText01 has a single text slot that may wrap over several lines.
	ToastText01 Template = iota + 1
	// ToastText02 has a bold title slot followed by a body slot.
	ToastText02
)

func (t Template) String() string {
	switch t {
	case ToastText01:
		return "ToastText01"
	case ToastText02:
		return "ToastText02"
	default:
		return fmt.Sprintf("Template(%d)", int(t))
	}
}

// Slots returns the number of text slots in the template schema, or zero for
// an unknown template.
func (t Template) Slots() int {
	switch t {
	case ToastText01:
		return 1
	case ToastText02:
		return 2
	default:
		return 0
	}
}

// TemplateFor picks the template with exactly n text slots.
func TemplateFor(n int) (Template, error) {
	switch n {
	case 1:
		return ToastText01, nil
	case 2:
		return ToastText02, nil
	default:
		return 0, fmt.Errorf("%w: got %d fields, want 1 or 2", ErrInvalidFields, n)
	}
}
