package main

import (
	"os"

	"github.com/AlexK-Notable/hyprbind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
