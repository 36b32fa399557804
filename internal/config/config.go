package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	ServerPort      string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	FileStoragePath string        `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string        `env:"DATABASE_DSN"`
	IDProvider      string        `env:"ID_PROVIDER" envDefault:"random"`
	ShortIDLength   int           `env:"SHORT_ID_LENGTH" envDefault:"6"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads the environment and then the command line, so flags win.
func LoadConfig() (*Config, error) {
	return Parse(flag.CommandLine, os.Args[1:])
}

func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	fs.StringVar(&cfg.ServerPort, "a", cfg.ServerPort, "address and port to run server")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "base address of the resulting short url")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to the file storage")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	fs.StringVar(&cfg.IDProvider, "i", cfg.IDProvider, "short id generator: random, nanoid, uuid or sqids")
	fs.IntVar(&cfg.ShortIDLength, "l", cfg.ShortIDLength, "short id length")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	return &cfg, nil
}
