package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment   DeploymentConfig   `validate:"required"`
	Server       ServerConfig       `validate:"required"`
	Logging      LoggingConfig      `validate:"required"`
	Postgres     PostgresConfig     `validate:"required"`
	Auth         AuthConfig         `validate:"required"`
	Sales        SalesConfig        `validate:"required"`
	ExchangeRate ExchangeRateConfig `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// Secret is the HS256 key Supabase signs access tokens with
	Secret   string
	Supabase SupabaseConfig
}

type SupabaseConfig struct {
	BaseURL    string
	ServiceKey string
}

type SalesConfig struct {
	// DefaultTaxRatePercent is the IVA applied when the register does not
	// override it, e.g. 16 for 16%.
	DefaultTaxRatePercent decimal.Decimal
}

type ExchangeRateConfig struct {
	// URL of the quote endpoint, ve.dolarapi.com response shape
	URL string
	// FallbackAverage is used when the quote source is unreachable
	FallbackAverage decimal.Decimal
	CacheTTLHours   int
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/puntoventa")

	v.SetEnvPrefix("PUNTOVENTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(c *Configuration) {
	if c.Sales.DefaultTaxRatePercent.IsZero() {
		c.Sales.DefaultTaxRatePercent = decimal.NewFromInt(16)
	}
	if c.ExchangeRate.FallbackAverage.IsZero() {
		c.ExchangeRate.FallbackAverage = decimal.NewFromFloat(35.85)
	}
	if c.ExchangeRate.CacheTTLHours == 0 {
		c.ExchangeRate.CacheTTLHours = 24
	}
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests.
func GetDefaultConfig() *Configuration {
	cfg := &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Postgres:   PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "puntoventa", SSLMode: "disable"},
		Auth:       AuthConfig{Secret: "local-dev-secret"},
	}
	applyDefaults(cfg)
	return cfg
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
