package main

import (
	"fmt"
	"os"

	app "github.com/breml/tfhooks/internal/hooks/terraformfmt"
	"github.com/breml/tfhooks/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, os.Getenv(logging.LevelEnvVar))
	logger.Debug("starting terraform-fmt", "version", app.Version)

	exitCode, err := app.Run(logger, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(exitCode)
}
