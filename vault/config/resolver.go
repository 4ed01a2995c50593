package config

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/viant/afs"
)

// Resolver turns an optional, explicitly requested location into a Config.
type Resolver struct {
	defaultPath string
	fs          afs.Service
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithDefaultPath overrides the well-known default location.
func WithDefaultPath(location string) ResolverOption {
	return func(r *Resolver) {
		r.defaultPath = location
	}
}

// WithFS sets the storage service used to read configuration files.
func WithFS(fs afs.Service) ResolverOption {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// NewResolver creates a resolver reading DefaultPath through afs unless
// options say otherwise.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{defaultPath: DefaultPath}
	for _, opt := range opts {
		opt(r)
	}
	if r.fs == nil {
		r.fs = afs.New()
	}
	return r
}

// Resolve returns the configuration to start with.
//
// A non-nil explicit location must load, even when it is empty; its failure
// is returned as *Error. Without one, the default location is tried and any
// failure there, including a missing file, silently selects Default().
func (r *Resolver) Resolve(ctx context.Context, explicit *string) (Config, error) {
	if explicit != nil {
		return load(ctx, r.fs, *explicit)
	}
	cfg, err := load(ctx, r.fs, r.defaultPath)
	if err != nil {
		log.WithError(err).Debug("using built-in configuration")
		return Default(), nil
	}
	log.WithField("path", r.defaultPath).Debug("loaded default configuration file")
	return cfg, nil
}
