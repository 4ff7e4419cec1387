package commands

import (
	"context"
	"strings"

	"checkout/internal/apps/common"
	"checkout/internal/di"
	"checkout/internal/errors"
	"checkout/internal/ui"

	"github.com/spf13/cobra"
)

// NewSessionCmd groups the payment session commands
func NewSessionCmd(appCtx *common.Context, clients *di.ClientSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage payment sessions",
	}
	cmd.AddCommand(newSessionCreateCmd(appCtx, clients))
	return cmd
}

func newSessionCreateCmd(appCtx *common.Context, clients *di.ClientSet) *cobra.Command {
	var (
		operation string
		amount    float64
		country   string
		currency  string
		open      bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment session and print its List URL",
		Long: `Create a new LIST session at the Payment API using the merchant credentials
from the environment (MERCHANT_CODE, MERCHANT_PAYMENT_TOKEN, PAYMENT_API_LIST_URL)
and print its self URL, ready to paste into the example apps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := NewBaseCommand(appCtx, clients).WithOutputFrom(cmd)
			return bc.ExecuteWithContext(cmd, func(ctx context.Context) error {
				return createSession(ctx, bc, cmd, operation, amount, country, currency, open)
			})
		},
	}

	cmd.Flags().StringVar(&operation, "operation", "", "Operation type: CHARGE or PRESET (default from config)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount (default from config)")
	cmd.Flags().StringVar(&country, "country", "", "Country code (default from config)")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (default from config)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the new list in the browser")

	return cmd
}

func createSession(ctx context.Context, bc *BaseCommand, cmd *cobra.Command, operation string, amount float64, country, currency string, open bool) error {
	svc := bc.Clients.Session
	if svc == nil {
		return errors.Internal("session service not initialized")
	}

	settings := svc.DefaultSettings()
	if operation != "" {
		settings.OperationType = strings.ToUpper(operation)
	}
	if cmd.Flags().Changed("amount") {
		settings.Amount = &amount
	}
	if country != "" {
		settings.Country = strings.ToUpper(country)
	}
	if currency != "" {
		settings.Currency = strings.ToUpper(currency)
	}

	listURL, err := svc.NewListSelfURL(ctx, settings)
	if err != nil {
		return err
	}

	bc.PrintSuccess("Created %s session", settings.OperationType)
	bc.PrintInfo("List URL: %s", ui.FormatLink(listURL, listURL, ui.ShouldEnableHyperlinks()))

	if open && bc.Clients.Prompter != nil {
		if err := bc.Clients.Prompter.OpenURL(listURL); err != nil {
			bc.Logger.Warn("%v", err)
		}
	}
	return nil
}
