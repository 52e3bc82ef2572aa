package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Mongo      MongoConfig      `validate:"required"`
	Stripe     StripeConfig
	Billing    BillingConfig
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

type MongoConfig struct {
	URI      string
	Database string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// PlanPrices maps a plan id to the provider's price id for that tier
	PlanPrices map[string]string
}

type BillingConfig struct {
	// DefaultHistoryLimit caps billing history responses when the caller
	// does not supply a limit
	DefaultHistoryLimit int
}

func NewConfig() (*Configuration, error) {
	// a missing .env is fine; env vars may come from the environment
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bvester")

	v.SetEnvPrefix("BVESTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Billing.DefaultHistoryLimit <= 0 {
		config.Billing.DefaultHistoryLimit = 20
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and scripts
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Billing:    BillingConfig{DefaultHistoryLimit: 20},
	}
}
