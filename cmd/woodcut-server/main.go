// woodcut-server — HTTP API for the wood cutting optimizer.
//
// Exposes cut-list upload endpoints that return the optimized layout as
// JSON or as a rendered PDF report.
//
// Build:
//
//	go build -o woodcut-server ./cmd/woodcut-server
package main

import (
	"flag"
	"log"

	"woodcut/internal/project"
	"woodcut/internal/server"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("woodcut-server: ")

	var (
		addr       = flag.String("addr", "", "listen address (overrides config)")
		configPath = flag.String("config", project.DefaultConfigPath(), "config file path")
	)
	flag.Parse()

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	log.Printf("listening on %s (board %.0f x %.0f cm)", cfg.ListenAddr, cfg.BoardLength, cfg.BoardWidth)
	if err := server.New(cfg).Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
