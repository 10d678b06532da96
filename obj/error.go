package obj

import (
	"fmt"
)

// Error defines a parse error with source context.
type Error struct {
	File string
	Line int
	Msg  string
}

// NewError creates a new, formatted error message with the given source context.
func NewError(file string, line int, f string, argv ...interface{}) *Error {
	return &Error{
		File: file,
		Line: line,
		Msg:  fmt.Sprintf(f, argv...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d %s", e.File, e.Line, e.Msg)
}
