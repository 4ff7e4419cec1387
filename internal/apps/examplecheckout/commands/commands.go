package examplecheckout

import (
	"checkout/internal/apps/common"
	basecmd "checkout/internal/apps/common/commands"
	"checkout/internal/di"

	"github.com/spf13/cobra"
)

// Request codes the example checkout launches the SDK with
const (
	PaymentRequestCode      = 1
	ChargePresetAccountCode = 2
)

const (
	flagListURL     = "list-url"
	flagCustomTheme = "custom-theme"
)

func GetCommands(appCtx *common.Context, clients *di.ClientSet) []*cobra.Command {
	return []*cobra.Command{
		NewShowListCmd(appCtx, clients),
		NewChargePresetCmd(appCtx, clients),
		basecmd.NewSessionCmd(appCtx, clients),
	}
}
