package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/orderlens/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusColors = map[domain.OrderStatus]lipgloss.Color{
		domain.StatusNew:      info,
		domain.StatusPaid:     warning,
		domain.StatusShipped:  lipgloss.Color("#A3E635"), // lime
		domain.StatusReceived: success,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a sales report for terminal output.
func RenderReport(r *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("orderlens")
	subtitle := dimStyle.Render("Sales Report")
	total := totalStyle.Render(strings.TrimSpace(r.TotalRevenue + " " + r.Currency))
	counts := dimStyle.Render(fmt.Sprintf("%d orders · %d distinct", r.Orders, r.DistinctOrders))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total + "\n" + counts))
	b.WriteString("\n\n")

	// ── Statuses ──
	b.WriteString("  " + titleStyle.Render("Orders by status") + "\n\n")
	maxCount := 0
	for _, s := range r.Statuses {
		maxCount = max(maxCount, s.Count)
	}
	for _, s := range r.Statuses {
		renderStatus(&b, s, maxCount)
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Revenue by status ──
	b.WriteString("  " + titleStyle.Render("Revenue by status") + "\n\n")
	switch {
	case r.RevenueByStatusError != "":
		fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("error"), dimStyle.Render(r.RevenueByStatusError))
	case len(r.RevenueByStatus) == 0:
		b.WriteString("    " + dimStyle.Render("No revenue.") + "\n")
	default:
		for _, rv := range r.RevenueByStatus {
			name := lipgloss.NewStyle().Foreground(statusColor(rv.Status)).Render(padRight(rv.Status.String(), 12))
			fmt.Fprintf(&b, "    %s %s\n", name, strings.TrimSpace(rv.Revenue+" "+r.Currency))
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Products ──
	b.WriteString("  " + titleStyle.Render("Products sold") + "  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d distinct", len(r.Products))) + "\n\n")
	if len(r.Products) == 0 {
		b.WriteString("    " + dimStyle.Render("No products sold.") + "\n")
	}
	for _, p := range r.Products {
		fmt.Fprintf(&b, "    %s %s\n", nameStyle.Render(padRight(p.SKU, 24)), dimStyle.Render(p.UnitPrice+" "+p.Currency))
	}

	b.WriteString("\n")
	return b.String()
}

func renderStatus(b *strings.Builder, s domain.StatusSummary, maxCount int) {
	color := statusColor(s.Status)
	name := lipgloss.NewStyle().Bold(true).Foreground(color).Render(padRight(s.Status.String(), 12))
	bar := coloredBar(s.Count, maxCount, 20, color)
	fmt.Fprintf(b, "    %s %s  %s\n", name, bar, nameStyle.Render(fmt.Sprintf("%d", s.Count)))
	for _, id := range s.OrderIDs {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(id))
	}
}

// RenderOrders formats per-order summaries for terminal output.
func RenderOrders(orders []domain.OrderSummary) string {
	if len(orders) == 0 {
		return "  " + dimStyle.Render("No orders in batch.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, o := range orders {
		status := lipgloss.NewStyle().Bold(true).
			Foreground(statusColor(domain.OrderStatus(o.Status))).
			Render(o.Status)
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			titleStyle.Render(o.ID),
			status,
			dimStyle.Render(fmt.Sprintf("v%d · %s", o.Version, o.CreatedAt.Format("2006-01-02 15:04:05"))),
		)

		for _, l := range o.Lines {
			sku := l.SKU
			if l.Discount != "" {
				sku += " *"
			}
			fmt.Fprintf(&b, "    %s %s × %d = %s\n",
				nameStyle.Render(padRight(sku, 24)),
				dimStyle.Render(l.UnitPrice+" "+l.Currency),
				l.Quantity,
				l.Total,
			)
		}

		if o.Empty {
			b.WriteString("    " + dimStyle.Render("no lines") + "\n")
		} else {
			fmt.Fprintf(&b, "    %s %s\n", padRight("total", 24), passStyle.Render(o.Total))
		}

		if i < len(orders)-1 {
			b.WriteString("  " + separatorLine + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func coloredBar(value, maxValue, width int, color lipgloss.Color) string {
	filled := 0
	if maxValue > 0 {
		filled = max(0, min(value*width/maxValue, width))
	}
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func statusColor(s domain.OrderStatus) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
