package strokes

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed stroke")

type NormalizationError struct {
	Text   string
	Reason string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformed, e.Text, e.Reason)
}

func (e *NormalizationError) Is(target error) bool {
	return target == ErrMalformed
}
