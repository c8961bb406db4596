package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// Заполняются через -ldflags при сборке
var (
	version        = "0.0.0"
	commit         = "hash"
	buildTimestamp = ""
)

func init() {
	if commit == "hash" || commit == "" {
		commit = "000000000000"
	}
	if buildTimestamp == "" {
		buildTimestamp = time.Now().UTC().Format("20060102150405")
	}
}

func fullVersion() string {
	return fmt.Sprintf("%s-%s-%s", version, buildTimestamp, commit)
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build version & exit",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, fullVersion())
			return nil
		},
	}
}
