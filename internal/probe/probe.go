package probe

import "context"

// State classifies the outcome of a single readiness check.
type State int

const (
	// Ready means the backend answered with a success status code.
	Ready State = iota
	// NotReady means the backend answered but is not serving yet
	// (e.g. migrations still running).
	NotReady
	// TransportError means no HTTP response could be obtained at all
	// (connection refused, DNS failure). Callers treat it like NotReady
	// for control flow; the detail exists for logging.
	TransportError
)

// String returns a short label for logs and status lines.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case NotReady:
		return "not ready"
	case TransportError:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result is the outcome of one readiness check. It is produced once per
// attempt and never persisted.
type Result struct {
	State      State
	StatusCode int    // HTTP status when a response was received, else 0
	Detail     string // transport error text when State is TransportError
}

// Ok reports whether the backend is fully ready.
func (r Result) Ok() bool {
	return r.State == Ready
}

// Prober performs a single readiness check. Implementations hold no
// per-attempt state and are safe to invoke repeatedly; retrying is the
// caller's responsibility.
type Prober interface {
	Check(ctx context.Context) Result
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context) Result

// Check implements Prober.
func (f ProberFunc) Check(ctx context.Context) Result {
	return f(ctx)
}
