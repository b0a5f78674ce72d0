package main

import (
	"os"

	"github.com/Rupesh023/Question-gen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
