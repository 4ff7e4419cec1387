package examplecheckout

import (
	"bytes"
	"context"
	"io"
	"testing"

	"checkout/internal/apps/common"
	basecmd "checkout/internal/apps/common/commands"
	"checkout/internal/clients/datadog"
	"checkout/internal/config"
	"checkout/internal/di"
	"checkout/internal/payment"
	"checkout/internal/sdk"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	cfg        *sdk.Configuration
	result     payment.PaymentResult
	listCalls  int
	chargeCall int
}

func (f *fakeLauncher) ShowPaymentList(_ context.Context, requestCode int) (payment.ActivityResult, error) {
	f.listCalls++
	return payment.NewActivityResult(requestCode, f.result), nil
}

func (f *fakeLauncher) ChargePresetAccount(_ context.Context, requestCode int) (payment.ActivityResult, error) {
	f.chargeCall++
	return payment.NewActivityResult(requestCode, f.result), nil
}

type fakeReporter struct {
	outcomes []payment.Outcome
}

func (f *fakeReporter) Report(_ context.Context, _ payment.ActivityResult, outcome payment.Outcome) {
	f.outcomes = append(f.outcomes, outcome)
}

var _ datadog.OutcomeReporter = (*fakeReporter)(nil)

func setup(t *testing.T, launcher *fakeLauncher) (*common.Context, *di.ClientSet, *fakeReporter, *[]int) {
	t.Helper()
	var exits []int
	prev := basecmd.ExitFunc
	basecmd.ExitFunc = func(code int) { exits = append(exits, code) }
	t.Cleanup(func() { basecmd.ExitFunc = prev })

	reporter := &fakeReporter{}
	appCtx := &common.Context{BinaryName: "examplecheckout", Config: &config.Config{}}
	clients := &di.ClientSet{
		Config:   appCtx.Config,
		Reporter: reporter,
		NewLauncher: func(cfg *sdk.Configuration) sdk.Launcher {
			launcher.cfg = cfg
			return launcher
		},
	}
	return appCtx, clients, reporter, &exits
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInvalidListURLShowsErrorDialog(t *testing.T) {
	for _, listURL := range []string{"", "somelistUrl"} {
		t.Run("url="+listURL, func(t *testing.T) {
			launcher := &fakeLauncher{}
			appCtx, clients, reporter, exits := setup(t, launcher)

			out, err := execute(NewShowListCmd(appCtx, clients), "--list-url", listURL)
			require.Error(t, err)
			assert.Contains(t, out, "[error]")
			assert.Contains(t, out, sdk.MessageInvalidListURL)
			assert.Equal(t, []int{1}, *exits)

			assert.Zero(t, launcher.listCalls)
			assert.Empty(t, reporter.outcomes)
		})
	}
}

func TestChargePresetInvalidURL(t *testing.T) {
	launcher := &fakeLauncher{}
	appCtx, clients, _, _ := setup(t, launcher)

	out, err := execute(NewChargePresetCmd(appCtx, clients), "--list-url", "somelistUrl")
	require.Error(t, err)
	assert.Contains(t, out, sdk.MessageInvalidListURL)
	assert.Zero(t, launcher.chargeCall)
}

func TestShowListPrintsResult(t *testing.T) {
	launcher := &fakeLauncher{
		result: payment.NewResult(payment.StatusProceed, &payment.OperationResult{
			ResultInfo:  "Approved",
			Interaction: &payment.Interaction{Code: payment.CodeProceed, Reason: payment.ReasonOK},
		}),
	}
	appCtx, clients, reporter, exits := setup(t, launcher)

	out, err := execute(NewShowListCmd(appCtx, clients),
		"--list-url", "https://api.sandbox.example.com/pci/v1/lists/abc", "--custom-theme")
	require.NoError(t, err)
	assert.Empty(t, *exits)

	assert.Equal(t, 1, launcher.listCalls)
	assert.Equal(t, "custom", launcher.cfg.Theme().Name())
	assert.Contains(t, out, "resultCode: RESULT_CODE_PROCEED")
	assert.Contains(t, out, "resultInfo: Approved")
	assert.Contains(t, out, "interactionCode: PROCEED")
	assert.Contains(t, out, "paymentError: -")
	assert.Equal(t, []payment.Outcome{{Kind: payment.ShowConfirmation}}, reporter.outcomes)
}

func TestChargePresetPrintsError(t *testing.T) {
	launcher := &fakeLauncher{
		result: payment.NewErrorResult(payment.StatusError, payment.CodeAbort, payment.ReasonClientsideError,
			assert.AnError),
	}
	appCtx, clients, _, _ := setup(t, launcher)

	out, err := execute(NewChargePresetCmd(appCtx, clients), "--list-url", "https://api.sandbox.example.com/pci/v1/lists/abc")
	require.NoError(t, err)
	assert.Equal(t, 1, launcher.chargeCall)
	assert.Contains(t, out, "resultCode: RESULT_CODE_ERROR")
	assert.Contains(t, out, "interactionReason: CLIENTSIDE_ERROR")
	assert.Contains(t, out, "paymentError: "+assert.AnError.Error())
}

func TestGetCommands(t *testing.T) {
	appCtx, clients, _, _ := setup(t, &fakeLauncher{})
	var names []string
	for _, c := range GetCommands(appCtx, clients) {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"show-list", "charge-preset", "session"}, names)
}
