package toast

// State is the progress of a single BuildAndShow call.
type State int

const (
	Unbuilt State = iota
	TemplateLoaded
	SlotsBound
	Constructed
	Submitted
)

func (s State) String() string {
	switch s {
	case Unbuilt:
		return "unbuilt"
	case TemplateLoaded:
		return "template_loaded"
	case SlotsBound:
		return "slots_bound"
	case Constructed:
		return "constructed"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}
