// Package session creates payment sessions (lists) against the Payment API
// so the example clients have a List URL to work with.
package session

import (
	_ "embed"
	"encoding/json"
	"strings"

	"checkout/internal/errors"
	"checkout/internal/payment"

	"github.com/google/uuid"
)

//go:embed list_template.json
var listTemplate []byte

// Settings customise the list request built from the embedded template.
// Empty fields keep the template value.
type Settings struct {
	OperationType             string
	Amount                    *float64
	Currency                  string
	Country                   string
	Language                  string
	AppID                     string
	Division                  string
	CheckoutConfigurationName string
	RegistrationID            string
}

// Builder renders list request bodies
type Builder struct {
	template []byte
	newID    func() string
}

// NewBuilder creates a builder over the embedded list template
func NewBuilder() *Builder {
	return &Builder{
		template: listTemplate,
		newID:    func() string { return uuid.New().String() },
	}
}

// Build returns the JSON body for a new list with a fresh transaction id
func (b *Builder) Build(settings Settings) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(b.template, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "failed to parse list template")
	}

	doc["transactionId"] = b.newID()

	if op := strings.ToUpper(strings.TrimSpace(settings.OperationType)); op != "" {
		if op != payment.OperationCharge && op != payment.OperationPreset {
			return nil, errors.Validation("operation type must be CHARGE or PRESET, got " + settings.OperationType)
		}
		doc["operationType"] = op
	}
	putString(doc, "country", settings.Country)
	putString(doc, "division", settings.Division)
	putString(doc, "checkoutConfigurationName", settings.CheckoutConfigurationName)

	if err := putIntoChild(doc, "style", "language", settings.Language); err != nil {
		return nil, err
	}
	if err := putIntoChild(doc, "callback", "appId", settings.AppID); err != nil {
		return nil, err
	}
	if err := putIntoChild(doc, "payment", "currency", settings.Currency); err != nil {
		return nil, err
	}

	if settings.Amount != nil {
		if *settings.Amount <= 0 {
			return nil, errors.Validation("amount must be positive")
		}
		child, err := childObject(doc, "payment")
		if err != nil {
			return nil, err
		}
		child["amount"] = *settings.Amount
	}

	if settings.RegistrationID != "" {
		child, err := childObject(doc, "customer")
		if err != nil {
			return nil, err
		}
		child["registration"] = map[string]any{"id": settings.RegistrationID}
	}

	return json.Marshal(doc)
}

func putString(doc map[string]any, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

func putIntoChild(doc map[string]any, childKey, key, value string) error {
	if value == "" {
		return nil
	}
	child, err := childObject(doc, childKey)
	if err != nil {
		return err
	}
	child[key] = value
	return nil
}

func childObject(doc map[string]any, key string) (map[string]any, error) {
	child, ok := doc[key].(map[string]any)
	if !ok {
		return nil, errors.Internal("list template has no object " + key)
	}
	return child, nil
}
