package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"clickshr/internal/app/server"
	"clickshr/internal/platform/config"
	"clickshr/internal/platform/logging"
)

func main() {
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	addr := flag.String("addr", "", "listen address, overrides ADDR and PORT")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("load env file failed", "path", *envFile, "err", err)
		os.Exit(1)
	}

	cfg := config.Load()
	if *addr != "" {
		cfg.Addr = *addr
	}
	slog.SetDefault(logging.New(cfg.Environment))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if err := server.Run(cfg); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
