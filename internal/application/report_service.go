package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/abdidvp/orderlens/internal/domain"
	"github.com/abdidvp/orderlens/internal/domain/sales"
)

// ReportService orchestrates the report pipeline:
// load config → replay batch → run sales queries → assemble report.
type ReportService struct {
	configLoader domain.ConfigLoader
	batches      domain.BatchLoader
	log          *zap.Logger
}

func NewReportService(
	configLoader domain.ConfigLoader,
	batches domain.BatchLoader,
	log *zap.Logger,
) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{
		configLoader: configLoader,
		batches:      batches,
		log:          log,
	}
}

// BuildReport reads the batch at batchPath, using the .orderlens.yaml found
// next to it.
func (s *ReportService) BuildReport(batchPath string) (*domain.Report, error) {
	orders, cfg, err := s.LoadOrders(batchPath)
	if err != nil {
		return nil, err
	}
	return s.Summarize(batchPath, orders, cfg)
}

// CountByStatus counts the distinct orders of the batch in status.
func (s *ReportService) CountByStatus(batchPath string, status domain.OrderStatus) (int, error) {
	orders, _, err := s.LoadOrders(batchPath)
	if err != nil {
		return 0, err
	}
	return sales.CountOrdersByStatus(orders, status), nil
}

// LoadOrders loads the config next to batchPath and replays the batch.
func (s *ReportService) LoadOrders(batchPath string) ([]domain.Order, domain.ProjectConfig, error) {
	cfg, err := s.configLoader.Load(filepath.Dir(batchPath))
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	s.log.Debug("config loaded", zap.String("currency", cfg.Currency), zap.Int("statuses", len(cfg.ReportStatuses())))

	orders, err := s.batches.Load(batchPath, cfg)
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("loading batch: %w", err)
	}
	s.log.Debug("batch loaded", zap.String("path", batchPath), zap.Int("orders", len(orders)))
	return orders, cfg, nil
}

// Summarize runs every sales query over orders.
func (s *ReportService) Summarize(source string, orders []domain.Order, cfg domain.ProjectConfig) (*domain.Report, error) {
	distinct := sales.Distinct(orders)
	report := &domain.Report{
		Source:         source,
		GeneratedAt:    time.Now().UTC(),
		Orders:         len(orders),
		DistinctOrders: len(distinct),
	}

	var format func(decimal.Decimal) string
	report.Currency, format = AmountFormat(distinct)

	// 1. Counts and ids per status
	groups := sales.GroupOrderIDsByStatus(orders)
	for _, st := range cfg.ReportStatuses() {
		summary := domain.StatusSummary{
			Status: st,
			Count:  sales.CountOrdersByStatus(orders, st),
		}
		for _, id := range groups[st] {
			summary.OrderIDs = append(summary.OrderIDs, id.String())
		}
		report.Statuses = append(report.Statuses, summary)
	}

	// 2. Total revenue
	total, err := sales.CalculateTotalRevenue(orders)
	if err != nil {
		return nil, fmt.Errorf("calculating total revenue: %w", err)
	}
	report.TotalRevenue = format(total)

	// 3. Revenue per status; an empty order fails this query only
	byStatus, err := sales.CalculateRevenueByStatus(orders)
	if err != nil {
		s.log.Warn("revenue by status unavailable", zap.String("source", source), zap.Error(err))
		report.RevenueByStatusError = err.Error()
	} else {
		for _, st := range cfg.ReportStatuses() {
			if rev, ok := byStatus[st]; ok {
				report.RevenueByStatus = append(report.RevenueByStatus, domain.StatusRevenue{
					Status:  st,
					Revenue: format(rev),
				})
			}
		}
	}

	// 4. Products
	for _, p := range sales.DistinctProductsSold(orders) {
		report.Products = append(report.Products, domain.ProductRow{
			SKU:       p.Sku().String(),
			UnitPrice: p.UnitPrice().Text(),
			Currency:  p.UnitPrice().Currency().Code(),
		})
	}

	s.log.Info("report built",
		zap.String("source", source),
		zap.Int("orders", report.Orders),
		zap.Int("distinct_orders", report.DistinctOrders),
		zap.String("total_revenue", report.TotalRevenue),
	)
	return report, nil
}

// AmountFormat returns the currency code shared by every line of orders and a
// formatter fixing amounts at its scale. Mixed currencies yield an empty code
// and the decimal's own string.
func AmountFormat(orders []domain.Order) (string, func(decimal.Decimal) string) {
	cur, single := sharedCurrency(orders)
	if !single {
		return "", func(d decimal.Decimal) string { return d.String() }
	}
	return cur.Code(), func(d decimal.Decimal) string { return d.StringFixed(cur.Digits()) }
}

// sharedCurrency reports the single currency used by every line, if any.
func sharedCurrency(orders []domain.Order) (domain.Currency, bool) {
	var cur domain.Currency
	for _, o := range orders {
		for _, l := range o.Lines() {
			c := l.Key().Product().UnitPrice().Currency()
			if cur.IsZero() {
				cur = c
				continue
			}
			if c != cur {
				return domain.Currency{}, false
			}
		}
	}
	return cur, !cur.IsZero()
}
