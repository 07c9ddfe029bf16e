package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat reports a malformed hex colour string. Validation failures
// surface immediately with no partial result.
var ErrInvalidFormat = errors.New("invalid colour format")

// ErrUnknownScheme reports a colour scheme name outside the supported set.
// Scheme names are validated before any computation happens.
var ErrUnknownScheme = errors.New("unknown colour scheme")

// ExtractionError wraps a clustering failure that happened after the image
// itself decoded successfully. Callers decide whether to fall back to manual
// tagging; the extractor does not retry.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("colour extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
