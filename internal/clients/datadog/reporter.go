package datadog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	"checkout/internal/config"
	"checkout/internal/logging"
	"checkout/internal/payment"
)

// outcomeRecord is the JSON message of one reported outcome
type outcomeRecord struct {
	Binary            string `json:"binary"`
	RequestCode       int    `json:"request_code"`
	ResultCode        string `json:"result_code"`
	InteractionCode   string `json:"interaction_code,omitempty"`
	InteractionReason string `json:"interaction_reason,omitempty"`
	ResultInfo        string `json:"result_info,omitempty"`
	RedirectType      string `json:"redirect_type,omitempty"`
	Error             string `json:"error,omitempty"`
	Outcome           string `json:"outcome"`
	Message           string `json:"message,omitempty"`
}

// Reporter submits one log item per interpreted payment result. Delivery
// failures are logged and never reach the payment flow.
type Reporter struct {
	submitter LogSubmitter
	binary    string
	service   string
	source    string
	hostname  string
	logger    *logging.Logger
}

// NewReporter creates a reporter for binary
func NewReporter(submitter LogSubmitter, cfg config.DatadogConfig, binary string) *Reporter {
	hostname, _ := os.Hostname()
	return &Reporter{
		submitter: submitter,
		binary:    binary,
		service:   cfg.Service,
		source:    cfg.Source,
		hostname:  hostname,
		logger:    logging.NewDefaultLogger("reporter"),
	}
}

// Report implements OutcomeReporter
func (r *Reporter) Report(ctx context.Context, result payment.ActivityResult, outcome payment.Outcome) {
	item, err := r.buildItem(result, outcome)
	if err != nil {
		r.logger.Warn("Could not encode outcome: %v", err)
		return
	}
	if err := r.submitter.SubmitLogs(ctx, []datadogV2.HTTPLogItem{*item}); err != nil {
		r.logger.Warn("Could not report outcome: %v", err)
	}
}

func (r *Reporter) buildItem(result payment.ActivityResult, outcome payment.Outcome) (*datadogV2.HTTPLogItem, error) {
	rec := outcomeRecord{
		Binary:      r.binary,
		RequestCode: result.RequestCode,
		ResultCode:  result.Status.String(),
		ResultInfo:  result.Result.ResultInfo(),
		Outcome:     outcome.Kind.String(),
		Message:     outcome.Message,
	}
	if ia, ok := result.Result.Interaction(); ok {
		rec.InteractionCode = string(ia.Code)
		rec.InteractionReason = ia.Reason
	}
	if payload, ok := result.Result.Payload(); ok && payload.Redirect != nil {
		rec.RedirectType = payload.Redirect.Type
	}
	if cause := result.Result.Cause(); cause != nil {
		rec.Error = cause.Error()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	item := datadogV2.NewHTTPLogItem(string(data))
	if r.service != "" {
		item.SetService(r.service)
	}
	if r.source != "" {
		item.SetDdsource(r.source)
	}
	if r.hostname != "" {
		item.SetHostname(r.hostname)
	}
	item.SetDdtags(tags(rec))
	return item, nil
}

func tags(rec outcomeRecord) string {
	parts := []string{
		"binary:" + rec.Binary,
		"outcome:" + strings.ToLower(rec.Outcome),
		"result_code:" + strings.ToLower(rec.ResultCode),
	}
	if rec.InteractionCode != "" {
		parts = append(parts, fmt.Sprintf("interaction:%s", strings.ToLower(rec.InteractionCode)))
	}
	return strings.Join(parts, ",")
}
