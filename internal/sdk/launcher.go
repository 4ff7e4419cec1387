package sdk

import (
	"context"

	"checkout/internal/payment"
)

// Launcher starts a payment flow and returns the result the host screen
// receives for requestCode. Failures of the flow itself are reported inside
// the ActivityResult; the error is reserved for the host's own problems
// (a broken terminal, a canceled context).
type Launcher interface {
	ShowPaymentList(ctx context.Context, requestCode int) (payment.ActivityResult, error)
	ChargePresetAccount(ctx context.Context, requestCode int) (payment.ActivityResult, error)
}

// Prompter is the interactive surface the terminal Checkout needs
type Prompter interface {
	Select(label string, items []string) (int, string, error)
	Prompt(label string, masked bool, validate func(string) error) (string, error)
	Confirm(label string) (bool, error)
	OpenURL(url string) error
}
