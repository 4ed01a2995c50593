package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags. Root options are global: they are accepted
// before or after the sub-command.
type Options struct {
	Config  string `short:"c" long:"config" value-name:"PATH" description:"Filepath to configuration file. [default: /hab/svc/hab-builder-vault/config.toml]"`
	Version bool   `short:"V" long:"version" description:"Print version information"`

	Start StartCmd `command:"start" description:"Run a builder-vault server"`
}

// StartCmd selects the server run mode. It takes no options of its own.
type StartCmd struct{}
