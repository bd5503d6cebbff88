// notify - run a command (or show a message) and raise a desktop notification

package main

import (
	"os"

	"github.com/ariel-frischer/notify/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
