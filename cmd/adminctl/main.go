package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/earnhub/adminctl/internal/client/cli"
	"github.com/earnhub/adminctl/internal/client/config"
	"github.com/earnhub/adminctl/internal/logging"
)

func main() {
	// a missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
