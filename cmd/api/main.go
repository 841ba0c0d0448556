package main

import (
	"log"

	"prism-backend/internal/bootstrap"
	"prism-backend/internal/shared/config"
	"prism-backend/internal/shared/server"
)

// api runs only the HTTP server, for container images without the CLI.
func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting Prism API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
