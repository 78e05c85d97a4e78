package main

import (
	"os"

	"github.com/abelldev/huntlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
