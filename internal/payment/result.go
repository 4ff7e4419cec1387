package payment

import (
	"fmt"
)

// StatusCode is the result code the SDK hands back with a PaymentResult
type StatusCode int

const (
	StatusUnknown StatusCode = iota
	StatusProceed
	StatusError
	StatusCanceled
)

// String mirrors the result code names printed by the example apps
func (s StatusCode) String() string {
	switch s {
	case StatusProceed:
		return "RESULT_CODE_PROCEED"
	case StatusError:
		return "RESULT_CODE_ERROR"
	case StatusCanceled:
		return "RESULT_CANCELED"
	default:
		return "Unknown"
	}
}

// InteractionCode tells the host app how to continue after a payment attempt
type InteractionCode string

const (
	CodeProceed         InteractionCode = "PROCEED"
	CodeAbort           InteractionCode = "ABORT"
	CodeVerify          InteractionCode = "VERIFY"
	CodeRetry           InteractionCode = "RETRY"
	CodeReload          InteractionCode = "RELOAD"
	CodeTryOtherAccount InteractionCode = "TRY_OTHER_ACCOUNT"
	CodeTryOtherNetwork InteractionCode = "TRY_OTHER_NETWORK"
)

// Interaction reasons the clients act on
const (
	ReasonOK                   = "OK"
	ReasonPending              = "PENDING"
	ReasonCommunicationFailure = "COMMUNICATION_FAILURE"
	ReasonClientsideError      = "CLIENTSIDE_ERROR"
	ReasonCustomerAbort        = "CUSTOMER_ABORT"
)

// PaymentResult is the immutable outcome of one SDK invocation
type PaymentResult struct {
	status      StatusCode
	interaction *Interaction
	cause       error
	payload     *OperationResult
}

// NewResult builds a result from an operation response. The interaction is
// taken from the payload when present.
func NewResult(status StatusCode, payload *OperationResult) PaymentResult {
	r := PaymentResult{status: status}
	if payload != nil {
		cp := *payload
		if payload.Interaction != nil {
			ia := *payload.Interaction
			r.interaction = &ia
			cp.Interaction = &Interaction{Code: ia.Code, Reason: ia.Reason}
		}
		if payload.Redirect != nil {
			rd := *payload.Redirect
			cp.Redirect = &rd
		}
		r.payload = &cp
	}
	return r
}

// NewErrorResult builds a result without a payload, as the SDK does for
// failures that happen before or while talking to the Payment API.
func NewErrorResult(status StatusCode, code InteractionCode, reason string, cause error) PaymentResult {
	return PaymentResult{
		status:      status,
		interaction: &Interaction{Code: code, Reason: reason},
		cause:       cause,
	}
}

// Status returns the result code
func (r PaymentResult) Status() StatusCode {
	return r.status
}

// Interaction returns the interaction and whether one is present
func (r PaymentResult) Interaction() (Interaction, bool) {
	if r.interaction == nil {
		return Interaction{}, false
	}
	return *r.interaction, true
}

// Cause returns the error that produced this result, if any
func (r PaymentResult) Cause() error {
	return r.cause
}

// Payload returns a copy of the operation result, if any
func (r PaymentResult) Payload() (OperationResult, bool) {
	if r.payload == nil {
		return OperationResult{}, false
	}
	return *r.payload, true
}

// ResultInfo returns the human readable result info of the payload
func (r PaymentResult) ResultInfo() string {
	if r.payload == nil {
		return ""
	}
	return r.payload.ResultInfo
}

// IsNetworkFailure reports whether the SDK classified the failure as a
// communication problem with the Payment API.
func (r PaymentResult) IsNetworkFailure() bool {
	return r.interaction != nil && r.interaction.Reason == ReasonCommunicationFailure
}

// ContainsRedirectType reports whether the payload redirects with the given type
func (r PaymentResult) ContainsRedirectType(redirectType string) bool {
	if r.payload == nil || r.payload.Redirect == nil {
		return false
	}
	return r.payload.Redirect.Type == redirectType
}

func (r PaymentResult) String() string {
	s := fmt.Sprintf("PaymentResult[status=%s", r.status)
	if r.interaction != nil {
		s += fmt.Sprintf(", interaction=%s/%s", r.interaction.Code, r.interaction.Reason)
	}
	if r.cause != nil {
		s += fmt.Sprintf(", cause=%v", r.cause)
	}
	return s + "]"
}

// ActivityResult is what the SDK delivers back to the screen that launched it
type ActivityResult struct {
	RequestCode int
	Status      StatusCode
	Result      PaymentResult
}

// NewActivityResult pairs a result with the request code it answers
func NewActivityResult(requestCode int, result PaymentResult) ActivityResult {
	return ActivityResult{
		RequestCode: requestCode,
		Status:      result.Status(),
		Result:      result,
	}
}
