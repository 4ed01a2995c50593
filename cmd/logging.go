package cmd

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// LogLevelEnv names the environment variable holding the log level.
const LogLevelEnv = "VAULT_LOG"

// InitLogging configures the process-wide logger. It is called once, before
// Run. Unknown levels fall back to info.
func InitLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
