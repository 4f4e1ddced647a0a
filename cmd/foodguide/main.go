// Command foodguide manages a food guide from the terminal: run one command,
// open an interactive shell, or serve the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/charleslimjh/tp/cmd/foodguide/cli"
)

var (
	version = "0.1.0-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
