package cobra

import (
	"fmt"

	"checkout/internal/apps/common"
	"checkout/internal/buildinfo"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command shared by both example binaries
func NewRootCommand(appCtx *common.Context, short, long string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               appCtx.BinaryName,
		Short:             short,
		Long:              long,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Version:           buildinfo.Version,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display the version of " + appCtx.BinaryName,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appCtx.BinaryName, buildinfo.Version)
		},
	})

	return rootCmd
}
