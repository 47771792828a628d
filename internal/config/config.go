package config

import (
	"fmt"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger  LoggerConfig  `yaml:"logger"  validate:"required"`
	Storage StorageConfig `yaml:"storage" validate:"required"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"    validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"    validate:"required,oneof=debug info warn error"`
	Mode   string `yaml:"mode"   env:"LOG_MODE"   env-default:"release" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	// Path is relative to the working directory by default, which keeps
	// the backing file next to where the program is run.
	Path string `yaml:"path" env:"RESERVATIONS_FILE" env-default:"reservations.txt" validate:"required"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "info":
		return logger.InfoLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.WarnLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

func MustLoad() *Config {
	// a local .env is optional; absence is not an error
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
