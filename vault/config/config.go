package config

import (
	"fmt"
	"net"
	"runtime"
	"strconv"

	mcp "github.com/viant/mcp"
)

// DefaultPath is the well-known location of the vault configuration file.
const DefaultPath = "/hab/svc/hab-builder-vault/config.toml"

const (
	defaultListen        = "127.0.0.1:9636"
	defaultRouterHost    = "127.0.0.1"
	defaultRouterPort    = 5562
	defaultDatastoreAddr = "127.0.0.1:6379"
)

// Config holds everything the vault server needs to start.
type Config struct {
	Listen        string       `toml:"listen" yaml:"listen" json:"listen"`
	Routers       []RouterAddr `toml:"routers" yaml:"routers" json:"routers"`
	Datastore     Datastore    `toml:"datastore" yaml:"datastore" json:"datastore"`
	WorkerThreads int          `toml:"worker_threads" yaml:"worker_threads" json:"worker_threads"`
	// Server carries MCP transport options; only YAML/JSON files can set it.
	// The server always binds Listen, so a port set here is ignored.
	Server *mcp.ServerOptions `toml:"-" yaml:"server,omitempty" json:"server,omitempty"`
}

// RouterAddr is the address of a router the vault registers with.
type RouterAddr struct {
	Host string `toml:"host" yaml:"host" json:"host"`
	Port int    `toml:"port" yaml:"port" json:"port"`
}

func (r RouterAddr) String() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// Datastore points at the backing key/value store.
type Datastore struct {
	Addr string `toml:"addr" yaml:"addr" json:"addr"`
}

// Default returns the built-in configuration. It is always valid.
func Default() Config {
	return Config{
		Listen:        defaultListen,
		Routers:       []RouterAddr{{Host: defaultRouterHost, Port: defaultRouterPort}},
		Datastore:     Datastore{Addr: defaultDatastoreAddr},
		WorkerThreads: runtime.NumCPU(),
	}
}

// Validate reports the first missing or out-of-range setting. Incomplete
// configurations are rejected rather than completed with defaults.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Listen, err)
	}
	if len(c.Routers) == 0 {
		return fmt.Errorf("at least one router is required")
	}
	for i, r := range c.Routers {
		if r.Host == "" {
			return fmt.Errorf("router %d: host is required", i)
		}
		if r.Port <= 0 || r.Port > 65535 {
			return fmt.Errorf("router %d: invalid port %d", i, r.Port)
		}
	}
	if c.Datastore.Addr == "" {
		return fmt.Errorf("datastore address is required")
	}
	if c.WorkerThreads <= 0 {
		return fmt.Errorf("worker_threads must be positive, got %d", c.WorkerThreads)
	}
	return nil
}
