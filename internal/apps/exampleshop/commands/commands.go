package exampleshop

import (
	"checkout/internal/apps/common"
	basecmd "checkout/internal/apps/common/commands"
	"checkout/internal/di"

	"github.com/spf13/cobra"
)

func GetCommands(appCtx *common.Context, clients *di.ClientSet) []*cobra.Command {
	return []*cobra.Command{
		NewRunCmd(appCtx, clients),
		basecmd.NewSessionCmd(appCtx, clients),
	}
}
