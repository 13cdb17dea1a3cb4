package meshlab

import "fmt"

// ParseError reports a malformed or truncated mesh file. Line is 1-based and
// zero when the problem is not tied to a line (e.g. a short file).
type ParseError struct {
	Format Format
	Line   int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	s := e.Format.String()
	if e.Line > 0 {
		s += fmt.Sprintf(": line %d", e.Line)
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned by the format selector for anything
// other than OBJ or OFF.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported mesh format %q", e.Name)
}
