package interview

import "github.com/pkg/errors"

// Domain error taxonomy. Handlers map these onto HTTP status codes,
// services wrap them with context via errors.Wrap and callers test with
// errors.Is.
var (
	// ErrValidation marks missing or invalid caller input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState marks a lifecycle transition attempted from a state
	// that does not allow it.
	ErrInvalidState = errors.New("invalid session state")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation that would violate a uniqueness or
	// versioning constraint.
	ErrConflict = errors.New("conflict")

	// ErrProvider marks a failed question-provider call. It is recovered
	// locally via the fallback catalog and never surfaces to API callers.
	ErrProvider = errors.New("question provider failed")

	// ErrProviderTimeout marks a question-provider call that exceeded its
	// budget. Treated exactly like ErrProvider by the orchestrator.
	ErrProviderTimeout = errors.New("question provider timed out")
)
