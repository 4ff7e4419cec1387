package exampleshop

import (
	"context"
	"fmt"

	"checkout/internal/apps/common"
	basecmd "checkout/internal/apps/common/commands"
	"checkout/internal/di"
	"checkout/internal/errors"
	"checkout/internal/payment"
	"checkout/internal/sdk"
	"checkout/internal/shop"
	"checkout/internal/ui"

	"github.com/spf13/cobra"
)

const flagListURL = "list-url"

// screen is one step of the shop
type screen int

const (
	screenSettings screen = iota
	screenCheckout
	screenSummary
	screenConfirm
	screenDone
)

const (
	actionPay  = "Pay"
	actionEdit = "Edit payment method"
	actionQuit = "Quit"
)

func NewRunCmd(appCtx *common.Context, clients *di.ClientSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the example shop",
		Long: `Run the example shop: enter a List URL, pay for the product, review the
selected payment method on the summary and confirm the order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := basecmd.NewBaseCommand(appCtx, clients).WithOutputFrom(cmd)
			return bc.ExecuteWithContext(cmd, func(ctx context.Context) error {
				listURL, err := settings(bc, cmd)
				if err != nil {
					return err
				}
				cfg, err := sdk.NewConfiguration(listURL)
				if err != nil {
					return err
				}
				if clients.Prompter == nil {
					return errNoPrompter
				}
				flow := &shopFlow{
					bc:       bc,
					prompter: clients.Prompter,
				}
				flow.use(cfg)
				return flow.run(ctx)
			})
		},
	}
	cmd.Flags().String(flagListURL, "", "List URL of the payment session (prompted when omitted)")
	return cmd
}

// settings is the first screen: it provides the List URL
func settings(bc *basecmd.BaseCommand, cmd *cobra.Command) (string, error) {
	listURL, err := bc.GetStringFlag(cmd, flagListURL)
	if err != nil {
		return "", err
	}
	if !cmd.Flags().Changed(flagListURL) && bc.Clients.Prompter != nil {
		return ui.PromptListURL(bc.Clients.Prompter, nil)
	}
	return listURL, nil
}

// shopFlow moves between the shop screens. Each screen creates its
// view-model, observes it while shown and closes it when left. A closed
// error dialog leads back to settings, since the payment session it
// belonged to is finished.
type shopFlow struct {
	bc       *basecmd.BaseCommand
	cfg      *sdk.Configuration
	launcher sdk.Launcher
	prompter sdk.Prompter
}

func (f *shopFlow) use(cfg *sdk.Configuration) {
	f.cfg = cfg
	f.launcher = f.bc.Clients.NewLauncher(cfg)
}

func (f *shopFlow) run(ctx context.Context) error {
	current := screenCheckout
	for current != screenDone {
		var err error
		switch current {
		case screenSettings:
			current, err = f.settings()
		case screenCheckout:
			current, err = f.checkout(ctx)
		case screenSummary:
			current, err = f.summary(ctx)
		case screenConfirm:
			current = f.confirm()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// settings asks for the List URL of a new payment session. Backing out of
// the prompt leaves the shop.
func (f *shopFlow) settings() (screen, error) {
	fmt.Fprintf(f.bc.Out, "\n[settings]\n")
	listURL, err := ui.PromptListURL(f.prompter, sdk.ValidateListURL)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeCanceled) {
			return screenDone, nil
		}
		return screenDone, err
	}
	cfg, err := sdk.NewConfiguration(listURL)
	if err != nil {
		return screenDone, err
	}
	f.use(cfg)
	return screenCheckout, nil
}

// showError presents message and sends the customer back to settings
func (f *shopFlow) showError(next *screen, message string) {
	ui.ShowErrorDialog(f.bc.Out, "Error", message)
	*next = screenSettings
}

func (f *shopFlow) checkout(ctx context.Context) (screen, error) {
	shopCfg := f.bc.AppCtx.Config.Shop
	vm := shop.NewCheckoutViewModel()
	defer vm.Close()

	next := screenCheckout
	vm.ShowPaymentSummary.Observe(func(struct{}) { next = screenSummary })
	vm.ShowPaymentConfirmation.Observe(func(struct{}) { next = screenConfirm })
	vm.StopPaymentWithErrorMessage.Observe(func(message string) { f.showError(&next, message) })

	for {
		fmt.Fprintf(f.bc.Out, "\n[checkout]\n%s  %s\n", shopCfg.ProductName, ui.FormatAmount(shopCfg.ProductPrice, shopCfg.Currency))

		_, action, err := f.prompter.Select("Checkout", []string{actionPay, actionQuit})
		if err != nil {
			return screenDone, err
		}
		if action == actionQuit {
			return screenDone, nil
		}

		// Retry outcomes leave next unchanged and the customer pays again.
		result, err := f.launcher.ShowPaymentList(ctx, shop.RequestCodePayment)
		if err != nil {
			return screenDone, err
		}
		f.bc.Report(ctx, result, vm.HandlePaymentActivityResult(result))

		if next != screenCheckout {
			return next, nil
		}
	}
}

func (f *shopFlow) summary(ctx context.Context) (screen, error) {
	vm := shop.NewSummaryViewModel(f.bc.Clients.ListAPI)
	defer vm.Close()

	next := screenSummary
	reload := true
	showList := false
	var preset *payment.PresetAccount

	vm.ShowPaymentConfirmation.Observe(func(struct{}) { next = screenConfirm })
	vm.ShowPaymentList.Observe(func(struct{}) { showList = true })
	vm.StopPaymentWithErrorMessage.Observe(func(message string) { f.showError(&next, message) })
	vm.ReloadPaymentDetails.Observe(func(bool) { reload = true })
	vm.PresetAccount.Observe(func(r shop.Resource[*payment.PresetAccount]) {
		switch r.Status {
		case shop.StatusLoading:
			fmt.Fprintln(f.bc.Out, "Loading payment details...")
		case shop.StatusSuccess:
			preset = r.Data
		case shop.StatusError:
			f.showError(&next, r.Message)
		}
	})

	for {
		if reload {
			reload = false
			if _, err := vm.LoadPaymentDetails(ctx, f.cfg.ListURL()); err != nil {
				f.bc.Logger.Debug("Payment details unavailable: %v", err)
			}
		}
		if next != screenSummary {
			return next, nil
		}

		var (
			result payment.ActivityResult
			err    error
		)
		if showList {
			// The payment page is reopened for editing without asking.
			showList = false
			result, err = f.launcher.ShowPaymentList(ctx, shop.RequestCodeEdit)
		} else {
			f.printSummary(preset)

			actions := []string{actionEdit, actionQuit}
			if preset != nil {
				actions = append([]string{actionPay}, actions...)
			}
			var action string
			if _, action, err = f.prompter.Select("Summary", actions); err != nil {
				return screenDone, err
			}

			switch action {
			case actionPay:
				result, err = f.launcher.ChargePresetAccount(ctx, shop.RequestCodePayment)
			case actionEdit:
				result, err = f.launcher.ShowPaymentList(ctx, shop.RequestCodeEdit)
			default:
				return screenDone, nil
			}
		}
		if err != nil {
			return screenDone, err
		}
		f.bc.Report(ctx, result, vm.HandlePaymentActivityResult(result))

		if next != screenSummary {
			return next, nil
		}
	}
}

func (f *shopFlow) printSummary(preset *payment.PresetAccount) {
	shopCfg := f.bc.AppCtx.Config.Shop
	fmt.Fprintf(f.bc.Out, "\n[summary]\n%s  %s\n", shopCfg.ProductName, ui.FormatAmount(shopCfg.ProductPrice, shopCfg.Currency))
	if preset == nil {
		fmt.Fprintln(f.bc.Out, "payment method: -")
		return
	}
	view := ui.FormatPresetAccount(preset)
	fmt.Fprintf(f.bc.Out, "payment method: %s\n", view.Title)
	if view.Subtitle != "" {
		fmt.Fprintf(f.bc.Out, "expires: %s\n", view.Subtitle)
	}
}

func (f *shopFlow) confirm() screen {
	fmt.Fprintf(f.bc.Out, "\n[confirmation]\n")
	f.bc.PrintSuccess("Thank you for your order of %s", f.bc.AppCtx.Config.Shop.ProductName)
	return screenDone
}

// errNoPrompter is returned when the shop runs without a terminal
var errNoPrompter = errors.Configuration("the shop needs an interactive terminal")
