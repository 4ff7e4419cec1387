package main

import (
	"os"

	"checkout/internal/apps/common"
	cobraPkg "checkout/internal/apps/common/cobra"
	checkoutCmd "checkout/internal/apps/examplecheckout/commands"
	"checkout/internal/di"
	"checkout/internal/logging"
)

func main() {
	logger := logging.NewDefaultLogger("examplecheckout")

	appCtx, err := common.NewContext("examplecheckout")
	if err != nil {
		logger.Error("Failed to create app context: %v", err)
		os.Exit(1)
	}

	container := di.NewContainer()
	if err := container.Initialize(appCtx.Config, appCtx.BinaryName); err != nil {
		logger.Error("Failed to initialize services: %v", err)
		os.Exit(1)
	}

	rootCmd := cobraPkg.NewRootCommand(appCtx,
		"Example checkout using the payment SDK",
		`examplecheckout opens the payment list or charges the preset account of a
List URL and prints the PaymentResult returned by the SDK.`)

	rootCmd.AddCommand(checkoutCmd.GetCommands(appCtx, container.GetClientSet())...)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
