package main

import (
	"os"

	"github.com/imrishuroy/go-dhl-labelflow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
