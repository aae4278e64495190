package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	Seed    bool
}

func Load() Config {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stockroom.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	seed := os.Getenv("SEED") != "false"

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, Seed: seed}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SEED=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.Seed)
	return cfg
}
