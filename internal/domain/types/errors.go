package types

import "fmt"

// ValidationError reports bad or missing input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// UserNotFoundError is returned when no record carries the requested name.
type UserNotFoundError struct {
	Name Name
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user '%s' not found", e.Name)
}

// DatabaseNotFoundError is returned when the backing file is absent at load time.
type DatabaseNotFoundError struct {
	Path string
}

func (e *DatabaseNotFoundError) Error() string {
	return fmt.Sprintf("database file %q not found", e.Path)
}

// ParseError reports a malformed line in the backing file. Line is 1-based.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
