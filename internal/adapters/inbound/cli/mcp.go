package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/orderlens/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the orderlens MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var batchPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start orderlens MCP server (stdio)",
		Long:  "Start the orderlens MCP server using stdio transport. Tools answer sales queries over the given order batch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(batchPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			log, err := newLogger(cmd, absPath)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			s := mcpadapter.NewOrderLensMCPServer(absPath, newReportService(log))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&batchPath, "batch", "", "Order batch file to serve")
	_ = cmd.MarkFlagRequired("batch")

	return cmd
}
