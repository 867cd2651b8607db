package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment     DeploymentConfig     `validate:"required"`
	Server         ServerConfig         `validate:"required"`
	Postgres       PostgresConfig       `validate:"required"`
	Logging        LoggingConfig        `validate:"required"`
	Auth           AuthConfig           `validate:"required"`
	Sms            SmsConfig            ``
	Reconciliation ReconciliationConfig ``
	Reminders      RemindersConfig      ``
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type PostgresConfig struct {
	Host                   string
	Port                   int
	User                   string
	Password               string
	DBName                 string
	SSLMode                string
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeMinutes int
	AutoMigrate            bool
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type AuthConfig struct {
	// Secret used to sign and verify admin JWTs
	Secret string
	APIKey APIKeyConfig
}

type APIKeyConfig struct {
	// Header carrying the API key, defaults to x-api-key
	Header string
	// Keys maps the SHA-256 digest of an API key to its owner details
	Keys map[string]APIKeyDetails
}

type APIKeyDetails struct {
	AccountID string
	UserID    string
}

type SmsConfig struct {
	// When disabled, deliveries go through the logging stub
	Enabled  bool
	BaseURL  string
	APIKey   string
	SenderID string
}

type ReconciliationConfig struct {
	// StrictMatching rejects payment events that match more than one
	// outstanding invoice instead of picking the most recent
	StrictMatching bool
}

type RemindersConfig struct {
	// DueSoonDays is how many days before the due date the due-soon
	// reminder fires
	DueSoonDays int
}

func NewConfig() (*Configuration, error) {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/rentdesk")

	v.SetEnvPrefix("RENTDESK")
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

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Auth.APIKey.Header == "" {
		c.Auth.APIKey.Header = "x-api-key"
	}
	if c.Reminders.DueSoonDays == 0 {
		c.Reminders.DueSoonDays = 3
	}
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or tests.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Reminders:  RemindersConfig{DueSoonDays: 3},
	}
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
