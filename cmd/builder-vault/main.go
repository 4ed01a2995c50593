package main

import (
	"os"

	"github.com/viant/builder-vault/cmd"
)

func main() {
	cmd.InitLogging(os.Getenv(cmd.LogLevelEnv))
	cmd.Run(os.Args[1:])
}
