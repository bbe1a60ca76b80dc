package main

import (
	"os"

	"github.com/openbook-core/openbook/cmd/openbookctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
