package body

import "fmt"

var (
	// ErrUnsupportedModel is matched by every UnsupportedModelError via errors.Is.
	ErrUnsupportedModel = fmt.Errorf("unsupported model id")
)

// UnsupportedModelError is returned when a model id matches none of the
// known family prefixes.
type UnsupportedModelError struct {
	ModelID string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedModel, e.ModelID)
}

// Is reports whether target is ErrUnsupportedModel.
func (e *UnsupportedModelError) Is(target error) bool {
	return target == ErrUnsupportedModel
}
