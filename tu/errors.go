package tu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoGraphIndicator is returned when a dataset has no graph indicator file.
// It is the only file required to split a dataset into graphs.
var ErrNoGraphIndicator = errors.New("missing graph indicator")

// FormatError reports malformed content in one of a dataset's files. Line is
// 1-based and is 0 when the error concerns the file as a whole (e.g. a row
// count that does not match another file).
type FormatError struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	sb := strings.Builder{}
	sb.WriteString("format error")
	if e.File != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.File)
	}
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(" at line %d", e.Line))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
