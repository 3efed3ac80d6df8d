package scaffold

import "errors"

// Set of error variables for scaffold operations.
var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrPrerequisiteMissing = errors.New("prerequisite missing")
	ErrInvalidName         = errors.New("invalid name")
	ErrIO                  = errors.New("scaffold io")
)
