package server

import "fmt"

// Error reports that the vault server failed to start or stopped abnormally.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("vault server: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
