package extension

import (
	"errors"
	"fmt"
)

// ErrInvalidOverride is matched by every error returned from Override when
// the candidate is not compatible with the base.
var ErrInvalidOverride = errors.New("invalid override")

// InvalidOverrideError carries the renderings of both operands of a
// rejected override.
type InvalidOverrideError struct {
	Base      string
	Candidate string
}

func newInvalidOverride(base, candidate Extension) *InvalidOverrideError {
	c := "<nil>"
	if !isNil(candidate) {
		c = candidate.String()
	}
	return &InvalidOverrideError{Base: base.String(), Candidate: c}
}

func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("%s cannot be overridden by %s", e.Base, e.Candidate)
}

// Is makes errors.Is(err, ErrInvalidOverride) succeed.
func (e *InvalidOverrideError) Is(target error) bool {
	return target == ErrInvalidOverride
}
