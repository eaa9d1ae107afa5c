package main

import (
	"os"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
