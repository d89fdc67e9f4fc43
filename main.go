package main

import (
	"os"

	"github.com/grandnode/grandnode2-sub005/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
