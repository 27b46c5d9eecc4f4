// Package config содержит логику чтения конфигурации генератора отчёта.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

const (
	defaultUsersPath     = "users.json"
	defaultCompaniesPath = "companies.json"
	defaultOutputPath    = "output.txt"
	defaultLogLevel      = "info"
)

// Config содержит параметры запуска генератора отчёта.
type Config struct {
	UsersPath     string `env:"USERS_FILE"`
	CompaniesPath string `env:"COMPANIES_FILE"`
	OutputPath    string `env:"OUTPUT_FILE"`
	LogLevel      string `env:"LOG_LEVEL"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envUsers := cfg.UsersPath
	envCompanies := cfg.CompaniesPath
	envOutput := cfg.OutputPath
	envLogLevel := cfg.LogLevel

	flag.StringVar(&cfg.UsersPath, "u", defaultUsersPath, "path to users JSON file")
	flag.StringVar(&cfg.CompaniesPath, "c", defaultCompaniesPath, "path to companies JSON file")
	flag.StringVar(&cfg.OutputPath, "o", defaultOutputPath, "path to the report file")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

	flag.Parse()

	if envUsers != "" {
		cfg.UsersPath = envUsers
	}
	if envCompanies != "" {
		cfg.CompaniesPath = envCompanies
	}
	if envOutput != "" {
		cfg.OutputPath = envOutput
	}
	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет, что все пути заданы, а уровень логирования известен zap.
func (c *Config) Validate() error {
	if c.UsersPath == "" {
		return errors.New("users file path is empty")
	}
	if c.CompaniesPath == "" {
		return errors.New("companies file path is empty")
	}
	if c.OutputPath == "" {
		return errors.New("output file path is empty")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
