// Package config defines the builder-vault configuration model together with
// the loader and the tiered resolver used at process start. An explicitly
// requested file must load; the well-known default file may be absent, in
// which case the built-in defaults are used.
package config
