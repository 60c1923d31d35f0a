package main

import (
	"os"

	"github.com/linctl-dev/linctl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
