package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/linkpay/webclient/internal/app"
	"github.com/linkpay/webclient/internal/config"
	"github.com/linkpay/webclient/pgk/logger"
)

func main() {
	// a missing .env is fine, env vars and flags still apply
	_ = godotenv.Load()

	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
