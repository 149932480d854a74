package main

import (
	"os"

	"github.com/theapemachine/ink-rpc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
