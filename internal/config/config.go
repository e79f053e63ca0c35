package config

import (
	"flag"
	"os"
)

// Config holds runtime settings. Flags are overridden by the related
// environment variables.
type Config struct {
	ServerAddress string
	LogLevel      string
}

func NewConfig() *Config {
	cfg := &Config{
		ServerAddress: "127.0.0.1:3000",
		LogLevel:      "info",
	}

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. 127.0.0.1:3000)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	if envServerAddress := os.Getenv("SERVER_ADDRESS"); envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	return cfg
}
