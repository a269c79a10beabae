package config

import (
	"log"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	// Missing .env is fine: vars can come from the environment itself.
	_ = godotenv.Load()
	log.Println("Environment variables loaded (if .env present)")
}
