package shop

import (
	"context"

	"checkout/internal/clients/listapi"
	"checkout/internal/errors"
	"checkout/internal/event"
	"checkout/internal/future"
	"checkout/internal/logging"
	"checkout/internal/payment"
)

// SummaryViewModel drives the summary screen: it loads the preset account
// and interprets the results of the pay and edit flows.
type SummaryViewModel struct {
	ShowPaymentConfirmation     *event.Signal
	ShowPaymentList             *event.Signal
	StopPaymentWithErrorMessage *event.Relay[string]
	ReloadPaymentDetails        *event.Relay[bool]
	PresetAccount               *event.State[Resource[*payment.PresetAccount]]

	client listapi.Interface
	logger *logging.Logger
}

// NewSummaryViewModel creates a summary view-model reading lists with client
func NewSummaryViewModel(client listapi.Interface) *SummaryViewModel {
	return &SummaryViewModel{
		ShowPaymentConfirmation:     event.NewSignal(),
		ShowPaymentList:             event.NewSignal(),
		StopPaymentWithErrorMessage: event.NewRelay[string](),
		ReloadPaymentDetails:        event.NewRelay[bool](),
		PresetAccount:               event.NewState[Resource[*payment.PresetAccount]](),
		client:                      client,
		logger:                      logging.NewDefaultLogger("summary"),
	}
}

// HandlePaymentActivityResult dispatches on the request code: payment
// results are interpreted as such, edit results may ask for a reload.
// Unknown request codes are ignored.
func (vm *SummaryViewModel) HandlePaymentActivityResult(result payment.ActivityResult) payment.Outcome {
	var outcome payment.Outcome
	switch result.RequestCode {
	case RequestCodePayment:
		outcome = payment.Interpret(result.Result)
		// A summary redirect seen from the summary screen means confirm.
		if outcome.Kind == payment.ShowSummary {
			outcome = payment.Outcome{Kind: payment.ShowConfirmation}
		}
	case RequestCodeEdit:
		outcome = payment.InterpretEdit(result.Result)
	default:
		vm.logger.Debug("Ignoring result for unknown request code %d", result.RequestCode)
		return payment.Outcome{Kind: payment.Ignore}
	}
	logOutcome(vm.logger, result, outcome)

	switch outcome.Kind {
	case payment.ShowConfirmation:
		event.Fire(vm.ShowPaymentConfirmation)
	case payment.ShowPaymentList:
		event.Fire(vm.ShowPaymentList)
	case payment.ShowError:
		vm.StopPaymentWithErrorMessage.Publish(outcome.Message)
	case payment.ReloadDetails:
		vm.ReloadPaymentDetails.Publish(true)
	}
	return outcome
}

// LoadPaymentDetails fetches the preset account of listURL. PresetAccount
// moves to LOADING immediately and to SUCCESS or ERROR exactly once. The
// fetch runs on its own goroutine but both states are published on the
// caller's, after the fetch resolved or ctx was done.
func (vm *SummaryViewModel) LoadPaymentDetails(ctx context.Context, listURL string) (*payment.PresetAccount, error) {
	vm.PresetAccount.Set(Loading[*payment.PresetAccount]())

	account, err := future.Go(ctx, func(ctx context.Context) (*payment.PresetAccount, error) {
		list, err := vm.client.GetListResult(ctx, listURL)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, errors.Internal("empty list response")
		}
		return list.PresetAccount, nil
	}).Await(ctx)

	if err != nil {
		vm.logger.Warn("Loading payment details failed: %v", err)
		vm.PresetAccount.Set(Failure[*payment.PresetAccount](MessageSomethingWentWrong))
		return nil, errors.Wrap(err, errors.ErrorTypeExternal, MessageSomethingWentWrong)
	}

	vm.PresetAccount.Set(Success(account))
	return account, nil
}

// Close detaches all observers
func (vm *SummaryViewModel) Close() {
	vm.ShowPaymentConfirmation.Detach()
	vm.ShowPaymentList.Detach()
	vm.StopPaymentWithErrorMessage.Detach()
	vm.ReloadPaymentDetails.Detach()
	vm.PresetAccount.Detach()
}
