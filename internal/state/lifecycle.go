package state

// Phase enumerates the request lifecycle of a collection.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// defaultFailureMessage is used when a failure carries no message.
const defaultFailureMessage = "unknown error"

// Lifecycle is the tagged request state of a collection. Fields are
// unexported so a value can only be built through Idle, Loading, Succeeded
// and Failed; a message exists only in the failed phase.
type Lifecycle struct {
	phase   Phase
	message string
}

// Idle is the initial lifecycle.
func Idle() Lifecycle { return Lifecycle{phase: PhaseIdle} }

// Loading marks an outstanding fetch.
func Loading() Lifecycle { return Lifecycle{phase: PhaseLoading} }

// Succeeded marks a confirmed fetch.
func Succeeded() Lifecycle { return Lifecycle{phase: PhaseSucceeded} }

// Failed marks a failed operation with a human-readable message.
func Failed(message string) Lifecycle {
	if message == "" {
		message = defaultFailureMessage
	}
	return Lifecycle{phase: PhaseFailed, message: message}
}

// Phase returns the lifecycle tag.
func (l Lifecycle) Phase() Phase { return l.phase }

// Loading reports whether a fetch is outstanding.
func (l Lifecycle) Loading() bool { return l.phase == PhaseLoading }

// Error returns the failure message and true in the failed phase.
func (l Lifecycle) Error() (string, bool) {
	if l.phase != PhaseFailed {
		return "", false
	}
	return l.message, true
}

// String implements fmt.Stringer.
func (l Lifecycle) String() string {
	if l.phase == PhaseFailed {
		return "failed: " + l.message
	}
	return l.phase.String()
}
