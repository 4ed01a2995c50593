package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

var errEmptyLocation = errors.New("empty location")

// Load reads, decodes and validates the configuration at location. The
// location is either a local path or any URL understood by afs. Keys the
// model does not know about are rejected.
func Load(ctx context.Context, location string) (Config, error) {
	return load(ctx, afs.New(), location)
}

func load(ctx context.Context, fs afs.Service, location string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(location) == "" {
		return cfg, &Error{Op: "read", Path: location, Err: errEmptyLocation}
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return cfg, &Error{Op: "read", Path: location, Err: err}
	}
	if err := decode(location, data, &cfg); err != nil {
		return Config{}, &Error{Op: "parse", Path: location, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &Error{Op: "validate", Path: location, Err: err}
	}
	return cfg, nil
}

func decode(location string, data []byte, cfg *Config) error {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml", ".json":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		return decoder.Decode(cfg)
	default:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil
	}
}
