package mercator

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrRange reports a coordinate, zoom or array length outside its legal domain.
	ErrRange = errors.New("out of range")
	// ErrRequired reports a field that was never supplied.
	ErrRequired = errors.New("required")
	// ErrInvalidQuadKey reports a QuadKey containing a digit outside 0-3.
	ErrInvalidQuadKey = errors.New("invalid QuadKey digit sequence")
)

// ValidationError describes the first rule a value failed.
type ValidationError struct {
	Type  string // record name, e.g. "Tile" (may be empty)
	Field string // offending field, e.g. "zoom" (may be empty)
	Msg   string
	Err   error // one of the sentinel errors above
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// fail builds a ValidationError and logs it on the debug channel.
func fail(sentinel error, typ, field, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	slog.Default().Debug(msg, "component", "mercator", "type", typ, "field", field)
	return &ValidationError{Type: typ, Field: field, Msg: msg, Err: sentinel}
}

// prefix renders the optional record name in front of a field label.
func prefix(name string) string {
	if name == "" {
		return ""
	}
	return name + " "
}
