package shop

import (
	"checkout/internal/event"
	"checkout/internal/logging"
	"checkout/internal/payment"
)

// CheckoutViewModel turns results of the checkout screen's payment flow
// into navigation events.
type CheckoutViewModel struct {
	ShowPaymentSummary          *event.Signal
	ShowPaymentConfirmation     *event.Signal
	ShowPaymentList             *event.Signal
	StopPaymentWithErrorMessage *event.Relay[string]

	logger *logging.Logger
}

// NewCheckoutViewModel creates a checkout view-model
func NewCheckoutViewModel() *CheckoutViewModel {
	return &CheckoutViewModel{
		ShowPaymentSummary:          event.NewSignal(),
		ShowPaymentConfirmation:     event.NewSignal(),
		ShowPaymentList:             event.NewSignal(),
		StopPaymentWithErrorMessage: event.NewRelay[string](),
		logger:                      logging.NewDefaultLogger("checkout"),
	}
}

// HandlePaymentActivityResult interprets the result and publishes at most
// one event. It returns the outcome for the caller's bookkeeping.
func (vm *CheckoutViewModel) HandlePaymentActivityResult(result payment.ActivityResult) payment.Outcome {
	outcome := payment.Interpret(result.Result)
	logOutcome(vm.logger, result, outcome)

	switch outcome.Kind {
	case payment.ShowSummary:
		event.Fire(vm.ShowPaymentSummary)
	case payment.ShowConfirmation:
		event.Fire(vm.ShowPaymentConfirmation)
	case payment.ShowPaymentList:
		event.Fire(vm.ShowPaymentList)
	case payment.ShowError:
		vm.StopPaymentWithErrorMessage.Publish(outcome.Message)
	}
	return outcome
}

// Close detaches all observers
func (vm *CheckoutViewModel) Close() {
	vm.ShowPaymentSummary.Detach()
	vm.ShowPaymentConfirmation.Detach()
	vm.ShowPaymentList.Detach()
	vm.StopPaymentWithErrorMessage.Detach()
}

func logOutcome(logger *logging.Logger, result payment.ActivityResult, outcome payment.Outcome) {
	if payment.IsSuppressedAbort(result.Result) {
		logger.Warn("Ignoring aborted payment after network failure: %s", result.Result)
		return
	}
	logger.Debug("Request %d: %s -> %s", result.RequestCode, result.Result, outcome)
}
