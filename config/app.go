package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName         string
	Port            string
	Env             string
	Debug           bool
	DefaultPageSize int
	MaxPageSize     int
	// ReceivingLocID is the dock location credited by approved receipts.
	ReceivingLocID uint
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:         os.Getenv("APP_NAME"),
			Port:            os.Getenv("PORT"),
			Env:             os.Getenv("APP_ENV"),
			Debug:           os.Getenv("DEBUG") == "true",
			DefaultPageSize: envInt("WH_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     envInt("WH_MAX_PAGE_SIZE", 200),
			ReceivingLocID:  uint(envInt("WH_RECEIVING_LOC_ID", 1)),
		}
	})
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
