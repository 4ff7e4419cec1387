package exampleshop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"checkout/internal/apps/common"
	basecmd "checkout/internal/apps/common/commands"
	"checkout/internal/clients/datadog"
	"checkout/internal/config"
	"checkout/internal/di"
	checkouterrors "checkout/internal/errors"
	"checkout/internal/payment"
	"checkout/internal/sdk"
	"checkout/internal/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testListURL = "https://api.sandbox.example.com/pci/v1/lists/abc"

type launch struct {
	method      string
	requestCode int
}

type fakeLauncher struct {
	results []payment.PaymentResult
	calls   []launch
}

func (f *fakeLauncher) next(method string, requestCode int) (payment.ActivityResult, error) {
	f.calls = append(f.calls, launch{method, requestCode})
	if len(f.results) == 0 {
		return payment.ActivityResult{}, errors.New("unexpected launch")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return payment.NewActivityResult(requestCode, r), nil
}

func (f *fakeLauncher) ShowPaymentList(_ context.Context, requestCode int) (payment.ActivityResult, error) {
	return f.next("list", requestCode)
}

func (f *fakeLauncher) ChargePresetAccount(_ context.Context, requestCode int) (payment.ActivityResult, error) {
	return f.next("charge", requestCode)
}

type fakePrompter struct {
	actions []string
	labels  []string
	offered [][]string
	urls    []string
	prompts int
}

func (f *fakePrompter) Select(label string, items []string) (int, string, error) {
	f.labels = append(f.labels, label)
	f.offered = append(f.offered, items)
	if len(f.actions) == 0 {
		return -1, "", errors.New("no more actions")
	}
	a := f.actions[0]
	f.actions = f.actions[1:]
	for i, item := range items {
		if item == a {
			return i, a, nil
		}
	}
	return -1, "", errors.New("action " + a + " not offered")
}

func (f *fakePrompter) Prompt(label string, _ bool, validate func(string) error) (string, error) {
	f.prompts++
	if len(f.urls) == 0 {
		return "", checkouterrors.Canceled(label)
	}
	u := f.urls[0]
	f.urls = f.urls[1:]
	if validate != nil {
		if err := validate(u); err != nil {
			return "", err
		}
	}
	return u, nil
}

func (f *fakePrompter) Confirm(string) (bool, error) { return false, nil }

func (f *fakePrompter) OpenURL(string) error { return nil }

type fakeListAPI struct {
	list  *payment.ListResult
	err   error
	urls  []string
	calls int
}

func (f *fakeListAPI) GetListResult(_ context.Context, listURL string) (*payment.ListResult, error) {
	f.calls++
	f.urls = append(f.urls, listURL)
	return f.list, f.err
}

func (f *fakeListAPI) PostOperation(context.Context, string, any) (*payment.OperationResult, error) {
	return nil, errors.New("not used")
}

func (f *fakeListAPI) CreatePaymentSession(context.Context, string, string, []byte) (*payment.ListResult, error) {
	return nil, errors.New("not used")
}

func intPtr(v int) *int { return &v }

func presetList() *payment.ListResult {
	return &payment.ListResult{PresetAccount: &payment.PresetAccount{
		Code:   "VISA",
		Method: payment.MethodCreditCard,
		MaskedAccount: &payment.AccountMask{
			Number:      "41 *** 1111",
			ExpiryMonth: intPtr(7),
			ExpiryYear:  intPtr(2027),
		},
	}}
}

type harness struct {
	launcher *fakeLauncher
	prompter *fakePrompter
	api      *fakeListAPI
	outcomes []payment.Outcome
	exits    []int
	created  int
}

func (h *harness) Report(_ context.Context, _ payment.ActivityResult, outcome payment.Outcome) {
	h.outcomes = append(h.outcomes, outcome)
}

var _ datadog.OutcomeReporter = (*harness)(nil)

func newHarness(t *testing.T, actions []string, results ...payment.PaymentResult) *harness {
	t.Helper()
	h := &harness{
		launcher: &fakeLauncher{results: results},
		prompter: &fakePrompter{actions: actions},
		api:      &fakeListAPI{list: presetList()},
	}
	prev := basecmd.ExitFunc
	basecmd.ExitFunc = func(code int) { h.exits = append(h.exits, code) }
	t.Cleanup(func() { basecmd.ExitFunc = prev })
	return h
}

func (h *harness) execute(args ...string) (string, error) {
	cfg := &config.Config{Shop: config.ShopConfig{ProductName: "Sunglasses", ProductPrice: 19.99, Currency: "EUR"}}
	appCtx := &common.Context{BinaryName: "exampleshop", Config: cfg}
	clients := &di.ClientSet{
		Config:   cfg,
		ListAPI:  h.api,
		Reporter: h,
		Prompter: h.prompter,
		NewLauncher: func(*sdk.Configuration) sdk.Launcher {
			h.created++
			return h.launcher
		},
	}

	cmd := NewRunCmd(appCtx, clients)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func proceed(redirectType string) payment.PaymentResult {
	op := &payment.OperationResult{Interaction: &payment.Interaction{Code: payment.CodeProceed, Reason: payment.ReasonOK}}
	if redirectType != "" {
		op.Redirect = &payment.Redirect{URL: "https://shop/summary", Type: redirectType}
	}
	return payment.NewResult(payment.StatusProceed, op)
}

func TestRunInvalidListURL(t *testing.T) {
	for _, listURL := range []string{"", "somelistUrl"} {
		t.Run("url="+listURL, func(t *testing.T) {
			h := newHarness(t, nil)
			out, err := h.execute("--list-url", listURL)
			require.Error(t, err)
			assert.Contains(t, out, sdk.MessageInvalidListURL)
			assert.Equal(t, []int{1}, h.exits)
			assert.Zero(t, h.created)
		})
	}
}

func TestRunCheckoutSummaryConfirm(t *testing.T) {
	h := newHarness(t, []string{actionPay, actionPay},
		proceed(payment.RedirectSummary),
		proceed(""),
	)

	out, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Empty(t, h.exits)

	assert.Equal(t, []launch{{"list", 1}, {"charge", 1}}, h.launcher.calls)
	assert.Equal(t, []string{"Checkout", "Summary"}, h.prompter.labels)
	assert.Equal(t, 1, h.api.calls)
	assert.Contains(t, out, "payment method: 41 *** 1111")
	assert.Contains(t, out, "expires: 07 / 27")
	assert.Contains(t, out, "Thank you for your order of Sunglasses")
	assert.Equal(t, []payment.Outcome{{Kind: payment.ShowSummary}, {Kind: payment.ShowConfirmation}}, h.outcomes)
}

func TestRunCheckoutErrorReturnsToSettings(t *testing.T) {
	const nextListURL = "https://api.sandbox.example.com/pci/v1/lists/def"
	h := newHarness(t, []string{actionPay, actionPay},
		payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError, nil),
		proceed(""),
	)
	h.prompter.urls = []string{nextListURL}

	out, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Contains(t, out, payment.MessagePaymentAborted)
	assert.Contains(t, out, "[settings]")
	assert.Equal(t, 1, h.prompter.prompts)
	assert.Equal(t, 2, h.created)
	assert.Equal(t, []string{"Checkout", "Checkout"}, h.prompter.labels)
	assert.Contains(t, out, "Thank you for your order")
}

func TestRunSettingsCanceledLeavesShop(t *testing.T) {
	h := newHarness(t, []string{actionPay},
		payment.NewErrorResult(payment.StatusError, payment.CodeVerify, payment.ReasonCommunicationFailure, nil),
	)

	out, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Empty(t, h.exits)
	assert.Contains(t, out, payment.MessageVerifyFailed)
	assert.Equal(t, 1, h.prompter.prompts)
	assert.Equal(t, []string{"Checkout"}, h.prompter.labels)
}

func TestRunEditReloadsDetails(t *testing.T) {
	h := newHarness(t, []string{actionPay, actionEdit, actionQuit},
		proceed(payment.RedirectSummary),
		payment.NewErrorResult(payment.StatusCanceled, payment.CodeAbort, payment.ReasonCustomerAbort, nil),
	)

	out, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Equal(t, []launch{{"list", 1}, {"list", 2}}, h.launcher.calls)
	assert.Equal(t, 2, h.api.calls)
	assert.Equal(t, []string{testListURL, testListURL}, h.api.urls)
	assert.NotContains(t, out, "Thank you")
	assert.Equal(t, payment.ReloadDetails, h.outcomes[1].Kind)
}

func TestRunSummaryRetryReopensPaymentList(t *testing.T) {
	h := newHarness(t, []string{actionPay, actionPay, actionQuit},
		proceed(payment.RedirectSummary),
		payment.NewErrorResult(payment.StatusError, payment.CodeTryOtherAccount, "DECLINED", nil),
		payment.NewErrorResult(payment.StatusCanceled, payment.CodeAbort, payment.ReasonCustomerAbort, nil),
	)

	_, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Equal(t, []launch{{"list", 1}, {"charge", 1}, {"list", 2}}, h.launcher.calls)
	assert.Equal(t, []string{"Checkout", "Summary", "Summary"}, h.prompter.labels)
	assert.Equal(t, payment.ShowPaymentList, h.outcomes[1].Kind)
	assert.Equal(t, 2, h.api.calls)
}

func TestRunSummaryWithoutPresetHidesPay(t *testing.T) {
	h := newHarness(t, []string{actionPay, actionQuit}, proceed(payment.RedirectSummary))
	h.api.list = &payment.ListResult{}

	out, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Contains(t, out, "payment method: -")
	assert.Equal(t, []string{actionEdit, actionQuit}, h.prompter.offered[1])
	assert.Equal(t, []launch{{"list", 1}}, h.launcher.calls)
}

func TestRunSummaryLoadErrorReturnsToSettings(t *testing.T) {
	h := newHarness(t, []string{actionPay}, proceed(payment.RedirectSummary))
	h.api.err = errors.New("connection reset")

	out, err := h.execute("--list-url", testListURL)
	require.NoError(t, err)
	assert.Contains(t, out, shop.MessageSomethingWentWrong)
	assert.Contains(t, out, "[settings]")
	assert.Equal(t, []string{"Checkout"}, h.prompter.labels)
	assert.Equal(t, []launch{{"list", 1}}, h.launcher.calls)
}
