package main

import (
	"os"

	"github.com/ib-77/sieve/internal/cmd"
)

func main() {
	if err := cmd.Execute(os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
