package examplecheckout

import (
	"context"

	"checkout/internal/apps/common"
	basecmd "checkout/internal/apps/common/commands"
	"checkout/internal/di"
	"checkout/internal/payment"
	"checkout/internal/sdk"
	"checkout/internal/ui"

	"github.com/spf13/cobra"
)

// launchFunc starts one SDK flow
type launchFunc func(ctx context.Context, launcher sdk.Launcher) (payment.ActivityResult, error)

func NewShowListCmd(appCtx *common.Context, clients *di.ClientSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-list",
		Short: "Show the payment list of a List URL",
		Long: `Open the payment list for the given List URL, let the customer choose a
payment method and print the result returned by the SDK.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, appCtx, clients, func(ctx context.Context, l sdk.Launcher) (payment.ActivityResult, error) {
				return l.ShowPaymentList(ctx, PaymentRequestCode)
			})
		},
	}
	addCheckoutFlags(cmd)
	return cmd
}

func NewChargePresetCmd(appCtx *common.Context, clients *di.ClientSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charge-preset",
		Short: "Charge the preset account of a List URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, appCtx, clients, func(ctx context.Context, l sdk.Launcher) (payment.ActivityResult, error) {
				return l.ChargePresetAccount(ctx, ChargePresetAccountCode)
			})
		},
	}
	addCheckoutFlags(cmd)
	return cmd
}

func addCheckoutFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagListURL, "", "List URL of the payment session (prompted when omitted)")
	cmd.Flags().Bool(flagCustomTheme, false, "Use the custom theme for the payment screens")
}

func runCheckout(cmd *cobra.Command, appCtx *common.Context, clients *di.ClientSet, launch launchFunc) error {
	bc := basecmd.NewBaseCommand(appCtx, clients).WithOutputFrom(cmd)
	return bc.ExecuteWithContext(cmd, func(ctx context.Context) error {
		cfg, err := checkoutConfiguration(bc, cmd)
		if err != nil {
			return err
		}

		result, err := launch(ctx, clients.NewLauncher(cfg))
		if err != nil {
			return err
		}

		bc.Report(ctx, result, payment.Interpret(result.Result))
		bc.PrintActivityResult(result)
		return nil
	})
}

// checkoutConfiguration reads the List URL and theme. The URL is only
// validated here, so an empty or malformed one ends in the error dialog
// before any SDK flow starts.
func checkoutConfiguration(bc *basecmd.BaseCommand, cmd *cobra.Command) (*sdk.Configuration, error) {
	listURL, err := bc.GetStringFlag(cmd, flagListURL)
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed(flagListURL) && ui.IsInteractive() && bc.Clients.Prompter != nil {
		if listURL, err = ui.PromptListURL(bc.Clients.Prompter, nil); err != nil {
			return nil, err
		}
	}

	customTheme, err := bc.GetBoolFlag(cmd, flagCustomTheme)
	if err != nil {
		return nil, err
	}
	theme := sdk.DefaultTheme()
	if customTheme {
		theme = sdk.CustomTheme()
	}

	return sdk.NewConfiguration(listURL, sdk.WithTheme(theme))
}
