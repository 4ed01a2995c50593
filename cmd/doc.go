// Package cmd implements the builder-vault command-line interface. options.go
// declares the command surface, cli.go parses it and launcher.go sequences
// configuration resolution and the server run, mapping the result to a
// process exit code.
package cmd
