package server

import (
	"github.com/pkg/errors"
)

// Builder errors. Structural-invariant violations are fatal to the build
// attempt and surface immediately; graph-traversal absences are never
// errors and are reported through ok-booleans instead.
var (
	// ErrMissingField reports a required builder field that was never set.
	ErrMissingField = errors.New("required field not set")

	// ErrReferenceCardinality reports a required reference count violation,
	// e.g. an Object node without exactly one forward HasTypeDefinition
	// reference.
	ErrReferenceCardinality = errors.New("required reference cardinality violated")

	// ErrNodeIDNotSet reports a builder convenience method invoked before
	// the node id it depends on was set.
	ErrNodeIDNotSet = errors.New("node id must be set first")
)
