package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rpgo/savings-projector/internal/calculation"
)

// ServerSettings configures the HTTP projection service
type ServerSettings struct {
	Addr        string        `env:"PROJECTOR_ADDR" envDefault:":8080"`
	MaxYears    int           `env:"PROJECTOR_MAX_YEARS" envDefault:"100"`
	LogLevel    string        `env:"PROJECTOR_LOG_LEVEL" envDefault:"info"`
	ReadTimeout time.Duration `env:"PROJECTOR_READ_TIMEOUT" envDefault:"10s"`
}

// LoadServerSettings reads server settings from the environment
func LoadServerSettings() (*ServerSettings, error) {
	var s ServerSettings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if s.MaxYears <= 0 || s.MaxYears > calculation.MaxProjectionYears {
		return nil, fmt.Errorf("PROJECTOR_MAX_YEARS must be between 1 and %d, got %d", calculation.MaxProjectionYears, s.MaxYears)
	}
	if s.ReadTimeout <= 0 {
		return nil, fmt.Errorf("PROJECTOR_READ_TIMEOUT must be positive, got %s", s.ReadTimeout)
	}
	return &s, nil
}
