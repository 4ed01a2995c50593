// Package server is the builder-vault server entry point. Run takes ownership
// of a resolved configuration and blocks until the server stops.
package server
