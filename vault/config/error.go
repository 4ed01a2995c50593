package config

import "fmt"

// Error reports why a configuration file could not be used.
type Error struct {
	Op   string // read, parse or validate
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s config file %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
