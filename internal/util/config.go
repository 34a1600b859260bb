package util

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/katatrina/eapi-connector/internal/signature"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	GatewayURL                 string   `mapstructure:"GATEWAY_URL"`
	MerchantID                 string   `mapstructure:"MERCHANT_ID"`
	MerchantPrivateKeyPath     string   `mapstructure:"MERCHANT_PRIVATE_KEY_PATH"`
	MerchantPrivateKeyPassword string   `mapstructure:"MERCHANT_PRIVATE_KEY_PASSWORD"`
	GatewayPublicKeyPath       string   `mapstructure:"GATEWAY_PUBLIC_KEY_PATH"`
	SignatureAlgorithm         string   `mapstructure:"SIGNATURE_ALGORITHM"`
	ReturnURL                  string   `mapstructure:"RETURN_URL"`
	ReturnMethod               string   `mapstructure:"RETURN_METHOD"`
	Currency                   string   `mapstructure:"CURRENCY"`
	Language                   string   `mapstructure:"LANGUAGE"`
	HTTPServerAddress          string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins             []string `mapstructure:"ALLOWED_ORIGINS"`
	LogLevel                   string   `mapstructure:"LOG_LEVEL"`
}

const DefaultGatewayURL = "https://iapi.iplatebnibrana.csob.cz/api/v1.6"

var defaults = map[string]any{
	"GATEWAY_URL":                   DefaultGatewayURL,
	"MERCHANT_ID":                   "",
	"MERCHANT_PRIVATE_KEY_PATH":     "",
	"MERCHANT_PRIVATE_KEY_PASSWORD": "",
	"GATEWAY_PUBLIC_KEY_PATH":       "",
	"SIGNATURE_ALGORITHM":           string(signature.SHA256),
	"RETURN_URL":                    "http://localhost:8080/v1/gateway/return",
	"RETURN_METHOD":                 "POST",
	"CURRENCY":                      "CZK",
	"LANGUAGE":                      "CZ",
	"HTTP_SERVER_ADDRESS":           "0.0.0.0:8080",
	"ALLOWED_ORIGINS":               []string{"http://localhost:3000"},
	"LOG_LEVEL":                     "info",
}

// LoadConfig reads configuration from file or environment variables.
// A missing file is not an error: the environment alone is used then.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Every key has a default so that AutomaticEnv can override it
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Prefer environment variables over config file
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return
		}
		err = nil
	}

	err = v.UnmarshalExact(&config)
	if err != nil {
		return
	}

	config.ReturnMethod = strings.ToUpper(config.ReturnMethod)
	config.SignatureAlgorithm = strings.ToUpper(config.SignatureAlgorithm)

	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.GatewayURL == "" {
		return fmt.Errorf("GATEWAY_URL is required")
	}
	if config.MerchantID == "" {
		return fmt.Errorf("MERCHANT_ID is required")
	}
	if config.MerchantPrivateKeyPath == "" {
		return fmt.Errorf("MERCHANT_PRIVATE_KEY_PATH is required")
	}
	if config.GatewayPublicKeyPath == "" {
		return fmt.Errorf("GATEWAY_PUBLIC_KEY_PATH is required")
	}
	if _, err := signature.ParseAlgorithm(config.SignatureAlgorithm); err != nil {
		return fmt.Errorf("SIGNATURE_ALGORITHM: %w", err)
	}
	if config.ReturnMethod != "POST" && config.ReturnMethod != "GET" {
		return fmt.Errorf("RETURN_METHOD must be POST or GET")
	}

	return nil
}
