package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/orderlens/internal/adapters/outbound/tui"
)

func newOrdersCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "orders <batch>",
		Short: "List the orders of a batch with their lines and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			log, err := newLogger(cmd, absPath)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			summaries, err := newOrderService(log).Summaries(absPath)
			if err != nil {
				return fmt.Errorf("listing orders failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, summaries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(summaries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output orders as JSON")

	return cmd
}
