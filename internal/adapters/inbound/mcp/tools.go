package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/orderlens/internal/application"
	"github.com/abdidvp/orderlens/internal/domain"
	"github.com/abdidvp/orderlens/internal/domain/sales"
)

// registerTools registers all orderlens MCP tools on the given server.
func registerTools(s *server.MCPServer, batchPath string, reports ReportSource) {
	s.AddTool(
		mcplib.NewTool("orderlens_report",
			mcplib.WithDescription("Returns the full sales report for the order batch as JSON"),
		),
		handleReport(batchPath, reports),
	)

	s.AddTool(
		mcplib.NewTool("orderlens_count_by_status",
			mcplib.WithDescription("Counts the distinct orders in one status"),
			mcplib.WithString("status",
				mcplib.Required(),
				mcplib.Description("Order status: NEW, PAID, SHIPPED or RECEIVED"),
			),
		),
		handleCountByStatus(batchPath, reports),
	)

	s.AddTool(
		mcplib.NewTool("orderlens_total_revenue",
			mcplib.WithDescription("Sums the gross totals of all distinct non-empty orders"),
		),
		handleTotalRevenue(batchPath, reports),
	)

	s.AddTool(
		mcplib.NewTool("orderlens_distinct_products",
			mcplib.WithDescription("Lists the distinct product snapshots sold, in first-seen order"),
		),
		handleDistinctProducts(batchPath, reports),
	)

	s.AddTool(
		mcplib.NewTool("orderlens_group_by_status",
			mcplib.WithDescription("Groups distinct order ids by status; statuses without orders are omitted"),
		),
		handleGroupByStatus(batchPath, reports),
	)

	s.AddTool(
		mcplib.NewTool("orderlens_revenue_by_status",
			mcplib.WithDescription("Sums gross totals per status; fails when any distinct order has no lines"),
		),
		handleRevenueByStatus(batchPath, reports),
	)
}

func handleReport(batchPath string, reports ReportSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := reports.BuildReport(batchPath)
		if err != nil {
			return errorResult(fmt.Sprintf("report failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleCountByStatus(batchPath string, reports ReportSource) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("status")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		n, err := reports.CountByStatus(batchPath, status)
		if err != nil {
			return errorResult(fmt.Sprintf("count failed: %v", err)), nil
		}
		return jsonResult(map[string]any{"status": status, "count": n})
	}
}

func handleTotalRevenue(batchPath string, reports ReportSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orders, _, err := reports.LoadOrders(batchPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading orders failed: %v", err)), nil
		}
		total, err := sales.CalculateTotalRevenue(orders)
		if err != nil {
			return errorResult(fmt.Sprintf("total revenue failed: %v", err)), nil
		}
		code, format := application.AmountFormat(orders)
		return jsonResult(map[string]string{"total_revenue": format(total), "currency": code})
	}
}

func handleDistinctProducts(batchPath string, reports ReportSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orders, _, err := reports.LoadOrders(batchPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading orders failed: %v", err)), nil
		}
		rows := []domain.ProductRow{}
		for _, p := range sales.DistinctProductsSold(orders) {
			rows = append(rows, domain.ProductRow{
				SKU:       p.Sku().String(),
				UnitPrice: p.UnitPrice().Text(),
				Currency:  p.UnitPrice().Currency().Code(),
			})
		}
		return jsonResult(rows)
	}
}

func handleGroupByStatus(batchPath string, reports ReportSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orders, _, err := reports.LoadOrders(batchPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading orders failed: %v", err)), nil
		}
		groups := make(map[string][]string)
		for status, ids := range sales.GroupOrderIDsByStatus(orders) {
			for _, id := range ids {
				groups[status.String()] = append(groups[status.String()], id.String())
			}
		}
		return jsonResult(groups)
	}
}

func handleRevenueByStatus(batchPath string, reports ReportSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orders, _, err := reports.LoadOrders(batchPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading orders failed: %v", err)), nil
		}
		revenue, err := sales.CalculateRevenueByStatus(orders)
		if err != nil {
			return errorResult(fmt.Sprintf("revenue by status failed: %v", err)), nil
		}
		_, format := application.AmountFormat(orders)
		out := make(map[string]string, len(revenue))
		for status, amount := range revenue {
			out[status.String()] = format(amount)
		}
		return jsonResult(out)
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
