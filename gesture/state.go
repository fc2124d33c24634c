package gesture

// State is the lifecycle phase of a gesture instance
type State uint8

const (
	StatePossible State = iota // No touch recognized yet
	StateBegan                 // Single touch down
	StateChanged               // Accepted linear movement
	StateEnded                 // Touch lifted, gesture complete
	StateCancelled             // Host withdrew the touch
	StateFailed                // Multi-touch or off-line movement, fields reset
)

func (s State) String() string {
	switch s {
	case StatePossible:
		return "possible"
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsActive reports whether the gesture accepts move/end/cancel events
func (s State) IsActive() bool {
	return s == StateBegan || s == StateChanged
}

// IsTerminal reports whether the gesture instance is finished
func (s State) IsTerminal() bool {
	return s == StateEnded || s == StateCancelled || s == StateFailed
}
