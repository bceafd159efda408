package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/orderlens/internal/application"
	"github.com/abdidvp/orderlens/internal/domain"
)

const reportURI = "orderlens://report"

// registerResources registers all orderlens MCP resources on the given server.
func registerResources(s *server.MCPServer, batchPath string, reports ReportSource) {
	s.AddResource(
		mcplib.NewResource(
			reportURI,
			"Sales Report",
			mcplib.WithResourceDescription("Sales report for the served order batch"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(batchPath, reports),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"orderlens://orders/{id}",
			"Order",
			mcplib.WithTemplateDescription("Lines, status and total of one order in the batch"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleOrderResource(batchPath, reports),
	)
}

func handleReportResource(batchPath string, reports ReportSource) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := reports.BuildReport(batchPath)
		if err != nil {
			return nil, fmt.Errorf("report failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      reportURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleOrderResource(batchPath string, reports ReportSource) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		raw := templateArg(request, "id")
		if raw == "" {
			return nil, fmt.Errorf("order id is required")
		}
		id, err := domain.ParseOrderID(raw)
		if err != nil {
			return nil, err
		}

		orders, _, err := reports.LoadOrders(batchPath)
		if err != nil {
			return nil, fmt.Errorf("loading orders failed: %w", err)
		}

		// the last revision in the batch wins
		var (
			found domain.Order
			seen  bool
		)
		for _, o := range orders {
			if o.ID() == id {
				found, seen = o, true
			}
		}
		if !seen {
			return nil, fmt.Errorf("order %s not found in batch", id)
		}

		summary, err := application.Summarize(found)
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling order: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// templateArg reads a variable filled in by URI template matching. mcp-go
// stores matched values as []string; a plain string is accepted too.
func templateArg(request mcplib.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
