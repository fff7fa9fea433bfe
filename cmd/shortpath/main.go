package main

import (
	"os"

	"github.com/katalvlaran/shortpath/internal/cli"
)

func main() {
	if err := cli.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
