package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orderlens",
		Short:         "Aggregate sales orders",
		Long:          "orderlens replays order batches through the order aggregate and reports counts, revenue and products sold.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log", "", "Log mode: development, production or off (defaults to .orderlens.yaml)")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newOrdersCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
