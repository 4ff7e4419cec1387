package payment

// OutcomeKind is the next UI action derived from a PaymentResult
type OutcomeKind int

const (
	Ignore OutcomeKind = iota
	ShowSummary
	ShowConfirmation
	ShowPaymentList
	ShowError
	ReloadDetails
)

// String returns the string representation of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case Ignore:
		return "IGNORE"
	case ShowSummary:
		return "SHOW_SUMMARY"
	case ShowConfirmation:
		return "SHOW_CONFIRMATION"
	case ShowPaymentList:
		return "SHOW_PAYMENT_LIST"
	case ShowError:
		return "SHOW_ERROR"
	case ReloadDetails:
		return "RELOAD_DETAILS"
	default:
		return "UNKNOWN"
	}
}

// Messages carried by ShowError outcomes
const (
	MessagePaymentAborted = "payment aborted"
	MessageVerifyFailed   = "could not verify payment"
)

// Outcome is derived per result and never stored
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

func (o Outcome) String() string {
	if o.Message == "" {
		return o.Kind.String()
	}
	return o.Kind.String() + "(" + o.Message + ")"
}

// Interpret classifies a payment result into the next UI action
func Interpret(r PaymentResult) Outcome {
	switch r.Status() {
	case StatusProceed:
		return interpretProceed(r)
	case StatusError:
		return interpretError(r)
	default:
		return Outcome{Kind: Ignore}
	}
}

// InterpretEdit classifies the result of an "edit payment method" request.
// Errors follow Interpret; a completed or canceled edit means the preset
// account may have changed and must be reloaded.
func InterpretEdit(r PaymentResult) Outcome {
	switch r.Status() {
	case StatusError:
		return interpretError(r)
	case StatusProceed, StatusCanceled:
		return Outcome{Kind: ReloadDetails}
	default:
		return Outcome{Kind: Ignore}
	}
}

func interpretProceed(r PaymentResult) Outcome {
	if _, ok := r.Interaction(); !ok {
		return Outcome{Kind: Ignore}
	}
	if r.ContainsRedirectType(RedirectSummary) {
		return Outcome{Kind: ShowSummary}
	}
	return Outcome{Kind: ShowConfirmation}
}

func interpretError(r PaymentResult) Outcome {
	interaction, ok := r.Interaction()
	if !ok {
		return Outcome{Kind: Ignore}
	}

	switch interaction.Code {
	case CodeAbort:
		// A network failure while aborting is left to the SDK's own
		// connection dialog; the host shows nothing.
		if r.IsNetworkFailure() {
			return Outcome{Kind: Ignore}
		}
		return Outcome{Kind: ShowError, Message: MessagePaymentAborted}
	case CodeVerify:
		// The charge was made but its status could not be verified.
		return Outcome{Kind: ShowError, Message: MessageVerifyFailed}
	case CodeRetry, CodeReload, CodeTryOtherAccount, CodeTryOtherNetwork:
		return Outcome{Kind: ShowPaymentList}
	default:
		return Outcome{Kind: Ignore}
	}
}

// IsSuppressedAbort reports whether r is the ABORT + network failure case
// that Interpret deliberately ignores. Callers log it so the silent path
// stays visible.
func IsSuppressedAbort(r PaymentResult) bool {
	interaction, ok := r.Interaction()
	return ok && r.Status() == StatusError && interaction.Code == CodeAbort && r.IsNetworkFailure()
}
