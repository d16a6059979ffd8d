package main

import (
	"os"

	"github.com/yigit/uniregistry/internal/pkg/logger"
	"github.com/yigit/uniregistry/internal/server"
)

// @title University Registry API
// @version 1.0
// @description Students, courses and universities with the references between them

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	// NewServer loads config, connects to the document store and builds the router.
	// An unreachable store ends the process here.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
