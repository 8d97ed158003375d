package synthesis

import "errors"

// Error types for the synthesis package. Precondition failures and
// invariant rejections are distinct so a caller can decide whether
// retrying with different parameters makes sense.
var (
	// ErrUnknownRule is returned for a rule name outside AllRules.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrTargetNotFound is returned when the target id does not exist.
	ErrTargetNotFound = errors.New("target node not found")

	// ErrWrongTargetKind is returned when the target is a place for a
	// transition rule or vice versa.
	ErrWrongTargetKind = errors.New("wrong target kind for rule")

	// ErrEndNodeNotFound is returned when the end node id does not exist.
	ErrEndNodeNotFound = errors.New("end node not found")

	// ErrWrongEndNodeKind is returned when the end node has the wrong kind
	// for the rule, or the rule takes no end node at all.
	ErrWrongEndNodeKind = errors.New("wrong end node kind for rule")

	// ErrNoQualifyingArcs is returned when the target has no arcs the rule
	// can rewire (no output places for abstraction, no input places for
	// dual abstraction).
	ErrNoQualifyingArcs = errors.New("target has no qualifying arcs")

	// ErrTooFewTransitions is returned when linear place needs a second
	// transition and none exists.
	ErrTooFewTransitions = errors.New("rule requires at least two transitions")

	// ErrTooFewPlaces is returned when the dependency variant needs a
	// second place and none exists.
	ErrTooFewPlaces = errors.New("rule requires at least two places")

	// ErrInvariantViolated is returned when a structurally valid rewrite
	// produces a graph that fails the structural invariants. The rewrite
	// is discarded and the input graph is returned unchanged.
	ErrInvariantViolated = errors.New("rewrite violates structural invariants")
)
