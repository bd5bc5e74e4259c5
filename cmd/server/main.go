package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/snaplevel/snaplevel/internal/core/observability/log"
	"github.com/snaplevel/snaplevel/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	config, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := log.New(log.ParseLevel(config.LogLevel))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(config, logger)
	if err = srv.Run(ctx); err != nil {
		logger.Fatal("Server exited with error", log.Error(err))
	}
}
