package listapi

import (
	"context"

	"checkout/internal/payment"
)

// Interface is the subset of the Payment API the example clients use
type Interface interface {
	// GetListResult loads the list session behind listURL
	GetListResult(ctx context.Context, listURL string) (*payment.ListResult, error)

	// PostOperation submits an operation (charge, preset, update) to an
	// operation link taken from a list or preset account.
	PostOperation(ctx context.Context, operationURL string, body any) (*payment.OperationResult, error)

	// CreatePaymentSession creates a new list. Merchants normally do this
	// server side; the session command does it to obtain a fresh List URL.
	CreatePaymentSession(ctx context.Context, listURL, authorization string, body []byte) (*payment.ListResult, error)
}
