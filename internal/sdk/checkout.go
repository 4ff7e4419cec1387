package sdk

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"checkout/internal/clients/listapi"
	"checkout/internal/errors"
	"checkout/internal/logging"
	"checkout/internal/payment"
	"checkout/internal/ui"
)

const (
	itemCancel = "Cancel"

	labelChooseNetwork = "Choose a payment method"
	labelRetry         = "Unable to connect to the Payment API. Retry"
	labelProviderDone  = "Finished the payment in the browser"
)

// Input elements whose values are not echoed
var maskedInputs = map[string]bool{
	"number":           true,
	"verificationCode": true,
	"iban":             true,
	"password":         true,
}

// Checkout runs the payment flows in the terminal against the Payment API
type Checkout struct {
	config   *Configuration
	client   listapi.Interface
	prompter Prompter
	out      io.Writer
	logger   *logging.Logger
}

// New creates a terminal Checkout for one List URL
func New(config *Configuration, client listapi.Interface, prompter Prompter) *Checkout {
	c := &Checkout{
		config:   config,
		client:   client,
		prompter: prompter,
		out:      os.Stdout,
		logger:   logging.NewDefaultLogger("sdk"),
	}
	c.logger.Debug("Checkout for %s with %s theme", config.ListURL(), config.Theme().Name())
	return c
}

// WithOutput redirects screen output
func (c *Checkout) WithOutput(w io.Writer) *Checkout {
	c.out = w
	return c
}

// ShowPaymentList lets the customer pick a network, enter account data and
// submit the operation.
func (c *Checkout) ShowPaymentList(ctx context.Context, requestCode int) (payment.ActivityResult, error) {
	result, err := c.showPaymentList(ctx)
	if err != nil {
		return payment.ActivityResult{}, err
	}
	c.logger.Debug("Payment list finished: %s", result)
	return payment.NewActivityResult(requestCode, result), nil
}

// ChargePresetAccount charges the account preset on the list
func (c *Checkout) ChargePresetAccount(ctx context.Context, requestCode int) (payment.ActivityResult, error) {
	result, err := c.chargePresetAccount(ctx)
	if err != nil {
		return payment.ActivityResult{}, err
	}
	c.logger.Debug("Charge preset account finished: %s", result)
	return payment.NewActivityResult(requestCode, result), nil
}

func (c *Checkout) showPaymentList(ctx context.Context) (payment.PaymentResult, error) {
	list, failed, err := c.loadList(ctx)
	if failed != nil || err != nil {
		return derefResult(failed), err
	}

	networks := list.ApplicableNetworks()
	if len(networks) == 0 {
		return payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError,
			errors.Validation("list has no applicable networks")), nil
	}

	c.printHeader("Payment methods", list)

	items := make([]string, 0, len(networks)+1)
	for _, n := range networks {
		label := n.Label
		if label == "" {
			label = n.Code
		}
		items = append(items, ui.TruncateText(label, 60))
	}
	items = append(items, itemCancel)

	index, _, err := c.prompter.Select(labelChooseNetwork, items)
	if err != nil {
		return c.promptFailed(err)
	}
	if index < 0 || index >= len(networks) {
		return customerAbort(), nil
	}
	network := networks[index]

	account := make(map[string]string, len(network.InputElements))
	for _, element := range network.InputElements {
		value, err := c.prompter.Prompt(element.Name, maskedInputs[element.Name], required(element.Name))
		if err != nil {
			return c.promptFailed(err)
		}
		account[element.Name] = value
	}

	operationURL := network.Links[payment.LinkOperation]
	if operationURL == "" {
		return payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError,
			errors.Validation("network "+network.Code+" has no operation link")), nil
	}

	body := map[string]any{"account": account}
	return c.submit(ctx, list, operationURL, body), nil
}

func (c *Checkout) chargePresetAccount(ctx context.Context) (payment.PaymentResult, error) {
	list, failed, err := c.loadList(ctx)
	if failed != nil || err != nil {
		return derefResult(failed), err
	}

	preset := list.PresetAccount
	if preset == nil {
		return payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError,
			errors.Validation("missing PresetAccount in ListResult")), nil
	}

	operationURL := preset.Links[payment.LinkOperation]
	if operationURL == "" {
		return payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError,
			errors.Validation("preset account has no operation link")), nil
	}

	view := ui.FormatPresetAccount(preset)
	c.printHeader("Charging preset account", list)
	fmt.Fprintf(c.out, "%s\n", c.config.Theme().Content(strings.TrimSpace(view.Title+" "+view.Subtitle)))

	return c.submit(ctx, list, operationURL, map[string]any{}), nil
}

// loadList fetches the list, offering a retry on network failures. A
// non-nil result means the flow ended before a list was available.
func (c *Checkout) loadList(ctx context.Context) (*payment.ListResult, *payment.PaymentResult, error) {
	for {
		list, err := c.client.GetListResult(ctx, c.config.ListURL())
		if err == nil {
			if ia := list.Interaction; ia != nil && ia.Code != payment.CodeProceed {
				r := payment.NewResult(payment.StatusError, &payment.OperationResult{
					ResultInfo:  list.ResultInfo,
					Interaction: ia,
				})
				return nil, &r, nil
			}
			return list, nil, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, errors.Wrap(ctxErr, errors.ErrorTypeCanceled, "loading list canceled")
		}

		if !listapi.IsNetworkFailure(err) {
			c.logger.Warn("Loading list failed: %v", err)
			r := errorResultFrom(err, payment.CodeAbort, payment.ReasonClientsideError)
			return nil, &r, nil
		}

		c.logger.Warn("Network failure loading list: %v", err)
		retry, promptErr := c.prompter.Confirm(labelRetry)
		if promptErr != nil && !errors.IsType(promptErr, errors.ErrorTypeCanceled) {
			return nil, nil, promptErr
		}
		if !retry {
			r := payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonCommunicationFailure, err)
			return nil, &r, nil
		}
	}
}

// submit posts an operation and converts the response into a result.
// Once the operation was sent its outcome is unknown on network failure,
// hence VERIFY.
func (c *Checkout) submit(ctx context.Context, list *payment.ListResult, operationURL string, body any) payment.PaymentResult {
	opResult, err := c.client.PostOperation(ctx, operationURL, body)
	if err != nil {
		if listapi.IsNetworkFailure(err) {
			c.logger.Warn("Network failure posting operation: %v", err)
			return payment.NewErrorResult(payment.StatusError, payment.CodeVerify, payment.ReasonCommunicationFailure, err)
		}
		return errorResultFrom(err, payment.CodeAbort, payment.ReasonClientsideError)
	}

	if opResult.Redirect != nil && opResult.Redirect.Type == payment.RedirectProvider && opResult.Redirect.URL != "" {
		return c.followProviderRedirect(ctx, list, opResult)
	}
	return resultFromOperation(opResult)
}

// followProviderRedirect opens the provider page and reads the outcome from
// the list once the customer is back.
func (c *Checkout) followProviderRedirect(ctx context.Context, list *payment.ListResult, opResult *payment.OperationResult) payment.PaymentResult {
	link := opResult.Redirect.URL
	fmt.Fprintf(c.out, "Continue the payment at %s\n", ui.FormatLink("the provider", link, ui.ShouldEnableHyperlinks()))
	if err := c.prompter.OpenURL(link); err != nil {
		c.logger.Warn("Could not open browser: %v", err)
	}

	done, err := c.prompter.Confirm(labelProviderDone)
	if err != nil || !done {
		return customerAbort()
	}

	selfURL := list.SelfURL()
	if selfURL == "" {
		selfURL = c.config.ListURL()
	}
	updated, err := c.client.GetListResult(ctx, selfURL)
	if err != nil {
		if listapi.IsNetworkFailure(err) {
			return payment.NewErrorResult(payment.StatusError, payment.CodeVerify, payment.ReasonCommunicationFailure, err)
		}
		return errorResultFrom(err, payment.CodeVerify, payment.ReasonClientsideError)
	}
	return resultFromOperation(&payment.OperationResult{
		Links:       updated.Links,
		ResultInfo:  updated.ResultInfo,
		Interaction: updated.Interaction,
	})
}

func (c *Checkout) printHeader(title string, list *payment.ListResult) {
	theme := c.config.Theme()
	fmt.Fprintf(c.out, "\n%s\n", theme.Toolbar(title))
	if list.Payment != nil {
		fmt.Fprintf(c.out, "%s\n", theme.Content(fmt.Sprintf("%s: %s", list.Payment.Reference,
			ui.FormatAmount(list.Payment.Amount, list.Payment.Currency))))
	}
}

// promptFailed maps a prompt error: Ctrl-C is a customer abort, anything
// else is the host's problem.
func (c *Checkout) promptFailed(err error) (payment.PaymentResult, error) {
	if errors.IsType(err, errors.ErrorTypeCanceled) {
		return customerAbort(), nil
	}
	return payment.PaymentResult{}, err
}

func resultFromOperation(opResult *payment.OperationResult) payment.PaymentResult {
	if opResult.Interaction == nil {
		return payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError,
			errors.Internal("operation result without interaction"))
	}
	if opResult.Interaction.Code == payment.CodeProceed {
		return payment.NewResult(payment.StatusProceed, opResult)
	}
	return payment.NewResult(payment.StatusError, opResult)
}

// errorResultFrom prefers the interaction the Payment API sent with the
// error over the given fallback.
func errorResultFrom(err error, code payment.InteractionCode, reason string) payment.PaymentResult {
	if ia, ok := listapi.Interaction(err); ok {
		return payment.NewErrorResult(payment.StatusError, ia.Code, ia.Reason, err)
	}
	return payment.NewErrorResult(payment.StatusError, code, reason, err)
}

func customerAbort() payment.PaymentResult {
	return payment.NewErrorResult(payment.StatusCanceled, payment.CodeAbort, payment.ReasonCustomerAbort, nil)
}

func derefResult(r *payment.PaymentResult) payment.PaymentResult {
	if r == nil {
		return payment.PaymentResult{}
	}
	return *r
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.Validation(name + " is required")
		}
		return nil
	}
}
