package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zerobloat/shell/internal/infrastructure/config"
	"github.com/zerobloat/shell/internal/server"
)

func main() {
	port := flag.String("port", "", "Server port (overrides PORT)")
	guestAddr := flag.String("guest", "", "Guest backend address (overrides GUEST_ADDR)")
	seedPath := flag.String("shortcuts", "", "Shortcut seed file (overrides SHELL_SEED_PATH)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *guestAddr != "" {
		cfg.Guest.Address = *guestAddr
	}
	if *seedPath != "" {
		cfg.Shell.SeedPath = *seedPath
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
