package apiclient

// Status tells a caller how much to trust a gateway outcome.
type Status int

const (
	// Ok means the server confirmed the operation.
	Ok Status = iota
	// Degraded means the network call failed and the value was synthesized
	// locally (fallback dataset or optimistic local mutation).
	Degraded
	// Failed means the operation failed and no usable value exists.
	Failed
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Degraded:
		return "degraded"
	default:
		return "failed"
	}
}

// Result carries an outcome plus its provenance, so tests and callers can
// distinguish genuine server confirmation from client-side simulation.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

func okResult[T any](v T) Result[T] { return Result[T]{Status: Ok, Value: v} }

func degraded[T any](v T, err error) Result[T] {
	return Result[T]{Status: Degraded, Value: v, Err: err}
}

func failed[T any](err error) Result[T] { return Result[T]{Status: Failed, Err: err} }
