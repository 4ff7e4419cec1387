package main

import (
	"os"

	"checkout/internal/apps/common"
	cobraPkg "checkout/internal/apps/common/cobra"
	shopCmd "checkout/internal/apps/exampleshop/commands"
	"checkout/internal/di"
	"checkout/internal/logging"
)

func main() {
	logger := logging.NewDefaultLogger("exampleshop")

	// Create app context for the shop
	appCtx, err := common.NewContext("exampleshop")
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
		"Example shop using the payment SDK",
		`exampleshop sells a single product: pay with the payment list, review the
preset account on the summary screen and confirm the order.`)

	rootCmd.AddCommand(shopCmd.GetCommands(appCtx, container.GetClientSet())...)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
