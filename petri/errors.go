package petri

import "errors"

// Error types for the petri package.
var (
	// ErrEmptyID is returned when a node is added with an empty id.
	ErrEmptyID = errors.New("node id must not be empty")

	// ErrDuplicateID is returned when a node id is already taken.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrNodeNotFound is returned when an arc endpoint does not exist.
	ErrNodeNotFound = errors.New("node not found")

	// ErrSameKindArc is returned when an arc would connect two places or
	// two transitions.
	ErrSameKindArc = errors.New("cannot connect two nodes of the same kind")

	// ErrDuplicateArc is returned when the arc already exists.
	ErrDuplicateArc = errors.New("arc already exists")

	// ErrArcNotFound is returned when removing an arc that does not exist.
	ErrArcNotFound = errors.New("arc not found")

	// ErrNegativeTokens is returned when a place is created with a
	// negative token count.
	ErrNegativeTokens = errors.New("token count must be non-negative")
)
