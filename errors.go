package sigui

import "errors"

// Construction errors. Constructors return a nil value together with one of
// these (possibly wrapped); callers treat it as "nothing was built" and skip.
var (
	// ErrInvalidArgument reports a missing required input: an empty name,
	// a nil render callback, a nil snapshot, or a closed context.
	ErrInvalidArgument = errors.New("sigui: invalid argument")

	// ErrInvalidEventKind reports an event kind the factory cannot build.
	ErrInvalidEventKind = errors.New("sigui: invalid event kind")
)
