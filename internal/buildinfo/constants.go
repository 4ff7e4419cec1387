package buildinfo

import (
	"fmt"
)

// These variables will be set at build time using ldflags, e.g.
//
//	go build -ldflags "-X checkout/internal/buildinfo.MerchantCode=..." ./cmd/exampleshop
var (
	// Payment API merchant credentials used by "session create"
	MerchantCode         string
	MerchantPaymentToken string
	PaymentAPIListURL    string

	// Datadog outcome reporting
	DatadogAPIKey string
	DatadogAppKey string

	// Build information
	Version = "1.0.0"
)

// ValidateMerchantConstants ensures the credentials needed to create
// payment sessions are present.
func ValidateMerchantConstants(listURL, merchantCode, paymentToken string) error {
	if listURL == "" {
		return fmt.Errorf("PAYMENT_API_LIST_URL not set")
	}
	if merchantCode == "" {
		return fmt.Errorf("MERCHANT_CODE not set")
	}
	if paymentToken == "" {
		return fmt.Errorf("MERCHANT_PAYMENT_TOKEN not set")
	}
	return nil
}
