package main

import (
	"os"

	"github.com/codeprep-ai/codeprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
