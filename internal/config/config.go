package config

import (
	"os"
	"strconv"
	"strings"

	"checkout/internal/buildinfo"
)

// Config is the resolved configuration shared by both example binaries
type Config struct {
	LogLevel string        `yaml:"log_level"`
	ListAPI  ListAPIConfig `yaml:"list_api"`
	Session  SessionConfig `yaml:"session"`
	Shop     ShopConfig    `yaml:"shop"`
	Datadog  DatadogConfig `yaml:"datadog"`
}

// ListAPIConfig configures the HTTP client talking to the Payment API
type ListAPIConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// SessionConfig holds the defaults used when creating a new payment session
type SessionConfig struct {
	ListURL       string  `yaml:"list_url"`
	MerchantCode  string  `yaml:"-"`
	PaymentToken  string  `yaml:"-"`
	OperationType string  `yaml:"operation_type"`
	Country       string  `yaml:"country"`
	Currency      string  `yaml:"currency"`
	Language      string  `yaml:"language"`
	Amount        float64 `yaml:"amount"`
	Division      string  `yaml:"division"`
}

// ShopConfig describes the single product shown on the shop checkout screen
type ShopConfig struct {
	ProductName  string  `yaml:"product_name"`
	ProductPrice float64 `yaml:"product_price"`
	Currency     string  `yaml:"currency"`
}

// DatadogConfig enables outcome reporting when both keys are present
type DatadogConfig struct {
	BaseURL string `yaml:"base_url"`
	Service string `yaml:"service"`
	Source  string `yaml:"source"`
	APIKey  string `yaml:"-"`
	AppKey  string `yaml:"-"`
}

// Enabled reports whether outcome reporting has credentials
func (d DatadogConfig) Enabled() bool {
	return d.APIKey != "" && d.AppKey != ""
}

// Get returns a build-time constant for key if one was set, then the
// environment value, then defaultValue.
func Get(key, defaultValue string) string {
	switch key {
	case "MERCHANT_CODE":
		if buildinfo.MerchantCode != "" {
			return buildinfo.MerchantCode
		}
	case "MERCHANT_PAYMENT_TOKEN":
		if buildinfo.MerchantPaymentToken != "" {
			return buildinfo.MerchantPaymentToken
		}
	case "PAYMENT_API_LIST_URL":
		if buildinfo.PaymentAPIListURL != "" {
			return buildinfo.PaymentAPIListURL
		}
	case "DD_API_KEY":
		if buildinfo.DatadogAPIKey != "" {
			return buildinfo.DatadogAPIKey
		}
	case "DD_APPLICATION_KEY":
		if buildinfo.DatadogAppKey != "" {
			return buildinfo.DatadogAppKey
		}
	}
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// applyOverrides layers environment and build-time values over the
// embedded defaults.
func (c *Config) applyOverrides() {
	c.LogLevel = Get("CHECKOUT_LOG_LEVEL", c.LogLevel)

	if v := Get("LIST_API_TIMEOUT_SECONDS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.ListAPI.TimeoutSeconds = n
		}
	}

	c.Session.ListURL = Get("PAYMENT_API_LIST_URL", c.Session.ListURL)
	c.Session.MerchantCode = Get("MERCHANT_CODE", c.Session.MerchantCode)
	c.Session.PaymentToken = Get("MERCHANT_PAYMENT_TOKEN", c.Session.PaymentToken)
	c.Session.Division = Get("MERCHANT_DIVISION", c.Session.Division)

	c.Datadog.BaseURL = Get("DATADOG_BASE_URL", c.Datadog.BaseURL)
	c.Datadog.APIKey = Get("DD_API_KEY", c.Datadog.APIKey)
	c.Datadog.AppKey = Get("DD_APPLICATION_KEY", c.Datadog.AppKey)
}
