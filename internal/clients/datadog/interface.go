package datadog

import (
	"context"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	"checkout/internal/payment"
)

// LogSubmitter is the part of the Datadog Logs API the reporter needs
type LogSubmitter interface {
	SubmitLogs(ctx context.Context, items []datadogV2.HTTPLogItem) error
}

// OutcomeReporter records how a payment result was interpreted
type OutcomeReporter interface {
	Report(ctx context.Context, result payment.ActivityResult, outcome payment.Outcome)
}

// NopReporter drops every report
type NopReporter struct{}

func (NopReporter) Report(context.Context, payment.ActivityResult, payment.Outcome) {}
