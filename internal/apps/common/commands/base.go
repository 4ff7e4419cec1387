package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"checkout/internal/apps/common"
	"checkout/internal/di"
	"checkout/internal/errors"
	"checkout/internal/logging"
	"checkout/internal/payment"
	"checkout/internal/ui"

	"github.com/spf13/cobra"
)

// ExitFunc terminates the process after HandleError
var ExitFunc = os.Exit

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	AppCtx  *common.Context
	Clients *di.ClientSet
	Logger  *logging.Logger
	Out     io.Writer
}

// NewBaseCommand creates a new base command
func NewBaseCommand(appCtx *common.Context, clients *di.ClientSet) *BaseCommand {
	return &BaseCommand{
		AppCtx:  appCtx,
		Clients: clients,
		Logger:  logging.NewDefaultLogger(appCtx.BinaryName + "-cmd"),
		Out:     os.Stdout,
	}
}

// WithOutputFrom writes command output to cmd's output stream
func (bc *BaseCommand) WithOutputFrom(cmd *cobra.Command) *BaseCommand {
	bc.Out = cmd.OutOrStdout()
	return bc
}

// ShowError presents err in an error dialog. Validation errors are shown
// with their message only; everything else is logged with its context.
func (bc *BaseCommand) ShowError(err error) {
	if err == nil {
		return
	}

	var checkoutErr *errors.CheckoutError
	if errors.As(err, &checkoutErr) {
		if checkoutErr.Type != errors.ErrorTypeValidation {
			bc.Logger.Error("%s: %s", checkoutErr.Type, checkoutErr.Message)
		}
		if len(checkoutErr.Context) > 0 {
			bc.Logger.Debug("Error context: %+v", checkoutErr.Context)
		}
		if checkoutErr.Cause != nil {
			bc.Logger.Debug("Caused by: %v", checkoutErr.Cause)
		}
	} else {
		bc.Logger.Error("Unexpected error: %v", err)
	}

	ui.ShowErrorDialog(bc.Out, "Error", errors.UserMessage(err))
}

// HandleError shows err and exits with status 1. A canceled operation
// exits quietly.
func (bc *BaseCommand) HandleError(err error) {
	if err == nil {
		return
	}
	if errors.IsType(err, errors.ErrorTypeCanceled) {
		bc.Logger.Info("%s", errors.UserMessage(err))
		ExitFunc(1)
		return
	}
	bc.ShowError(err)
	ExitFunc(1)
}

// ExecuteWithContext provides a wrapper for command execution with context
func (bc *BaseCommand) ExecuteWithContext(cmd *cobra.Command, fn func(context.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := fn(ctx); err != nil {
		bc.HandleError(err)
		return err
	}

	return nil
}

// Report sends an interpreted result to the outcome reporter
func (bc *BaseCommand) Report(ctx context.Context, result payment.ActivityResult, outcome payment.Outcome) {
	if bc.Clients == nil || bc.Clients.Reporter == nil {
		return
	}
	bc.Clients.Reporter.Report(ctx, result, outcome)
}

// PrintActivityResult prints the fields of a result the way the example
// app lists them; empty fields print as "-".
func (bc *BaseCommand) PrintActivityResult(result payment.ActivityResult) {
	interaction, _ := result.Result.Interaction()
	var cause string
	if err := result.Result.Cause(); err != nil {
		cause = err.Error()
	}

	fmt.Fprintf(bc.Out, "\n[result]\n")
	fmt.Fprintf(bc.Out, "resultCode: %s\n", result.Status)
	fmt.Fprintf(bc.Out, "resultInfo: %s\n", orDash(result.Result.ResultInfo()))
	fmt.Fprintf(bc.Out, "interactionCode: %s\n", orDash(string(interaction.Code)))
	fmt.Fprintf(bc.Out, "interactionReason: %s\n", orDash(interaction.Reason))
	fmt.Fprintf(bc.Out, "paymentError: %s\n", orDash(cause))
}

// GetStringFlag safely gets a string flag value
func (bc *BaseCommand) GetStringFlag(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeValidation, fmt.Sprintf("failed to get flag %s", name))
	}
	return value, nil
}

// GetBoolFlag safely gets a bool flag value
func (bc *BaseCommand) GetBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrorTypeValidation, fmt.Sprintf("failed to get flag %s", name))
	}
	return value, nil
}

// PrintSuccess prints a success message with consistent formatting
func (bc *BaseCommand) PrintSuccess(message string, args ...any) {
	fmt.Fprintf(bc.Out, "%s%s\n", bc.AppCtx.GetPrefix(), fmt.Sprintf(message, args...))
}

// PrintInfo prints an info message with consistent formatting
func (bc *BaseCommand) PrintInfo(message string, args ...any) {
	fmt.Fprintf(bc.Out, "%s%s\n", bc.AppCtx.GetPrefix(), fmt.Sprintf(message, args...))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
