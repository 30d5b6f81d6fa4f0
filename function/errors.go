package function

import (
	"fmt"
)

// ErrInvalidConfiguration occurs when a function config violates a semantic
// rule: a missing field, mutually exclusive fields both set, an out-of-range
// value, or a capability the runtime doesn't support. It is never retryable.
type ErrInvalidConfiguration struct {
	Message string
}

func (e ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("Function doesn't validate. Validation error: %q", e.Message)
}

// ErrArtifact occurs when the function's packaged artifact is missing,
// corrupt, or its declared types cannot be resolved.
type ErrArtifact struct {
	Message  string
	Original error
}

func (e ErrArtifact) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("Function artifact is unusable: %s. Error: %q", e.Message, e.Original)
	}
	return fmt.Sprintf("Function artifact is unusable: %s.", e.Message)
}
