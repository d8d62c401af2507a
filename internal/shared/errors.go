package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrConfigExists  = fmt.Errorf("configuration already exists")

	// Task list errors
	ErrEmptyTask       = fmt.Errorf("task cannot be empty")
	ErrIndexOutOfRange = fmt.Errorf("task index out of range")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
