package main

import (
	"os"

	"github.com/devmetrics/four-keys/cli"
)

func main() {
	os.Exit(cli.Execute())
}
