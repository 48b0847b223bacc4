// Пакет config - пакет хранящий в себе информацию для конфигурации сервера.
package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
)

// Значения по умолчанию.
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second
)

// AppConfig - структура для хранения конфигурации сервиса.
// Значения из переменных окружения имеют приоритет над флагами.
type AppConfig struct {
	ServerAddress   NetAddress    `env:"SERVER_ADDRESS" json:"server_address"`
	LogLevel        string        `env:"LOG_LEVEL" json:"log_level"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

// Parse - функция сбора конфигурации из аргументов командной строки и переменных окружения.
func Parse(args []string) (*AppConfig, error) {
	cfg := &AppConfig{
		ServerAddress: NetAddress{Host: DefaultHost, Port: DefaultPort},
	}

	fs := flag.NewFlagSet("redirector", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address and port to run server")
	fs.StringVar(&cfg.LogLevel, "l", DefaultLogLevel, "log level")
	fs.DurationVar(&cfg.ShutdownTimeout, "t", DefaultShutdownTimeout, "graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
