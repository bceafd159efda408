package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/orderlens/internal/adapters/outbound/tui"
	"github.com/abdidvp/orderlens/internal/domain"
)

func newReportCmd() *cobra.Command {
	var (
		jsonOutput bool
		status     string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "report <batch>",
		Short: "Report counts, revenue and products for an order batch",
		Long:  "Replay an order batch file and run every sales query over the distinct orders it contains.",
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

			svc := newReportService(log)

			if status != "" {
				st, err := domain.ParseOrderStatus(status)
				if err != nil {
					return err
				}
				n, err := svc.CountByStatus(absPath, st)
				if err != nil {
					return fmt.Errorf("report failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", st, n)
				return nil
			}

			report, err := svc.BuildReport(absPath)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if strict && report.RevenueByStatusError != "" {
				return fmt.Errorf("revenue by status failed: %s", report.RevenueByStatusError)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&status, "status", "", "Only print the number of distinct orders in this status")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit 1 when revenue by status cannot be computed")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
