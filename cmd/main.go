package main

import (
	"errors"
	"os"

	"learnhub-content/internal/app"
	"learnhub-content/internal/cli"
)

func main() {
	err := cli.Execute()
	switch {
	case err == nil:
	case errors.Is(err, app.ErrSeedFailed), errors.Is(err, app.ErrValidationFailed):
		os.Exit(1)
	default:
		// Configuration or connection problems.
		os.Exit(2)
	}
}
