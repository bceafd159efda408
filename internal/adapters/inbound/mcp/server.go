package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/orderlens/internal/domain"
)

// ReportSource is the slice of application.ReportService the MCP tools use.
type ReportSource interface {
	BuildReport(batchPath string) (*domain.Report, error)
	CountByStatus(batchPath string, status domain.OrderStatus) (int, error)
	LoadOrders(batchPath string) ([]domain.Order, domain.ProjectConfig, error)
}

// NewOrderLensMCPServer creates an MCP server with every orderlens tool and
// resource registered. All of them read the batch at batchPath.
func NewOrderLensMCPServer(batchPath string, reports ReportSource) *server.MCPServer {
	s := server.NewMCPServer(
		"orderlens",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, batchPath, reports)
	registerResources(s, batchPath, reports)

	return s
}
