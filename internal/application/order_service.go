package application

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abdidvp/orderlens/internal/domain"
)

// OrderService flattens the orders of a batch for display.
type OrderService struct {
	configLoader domain.ConfigLoader
	batches      domain.BatchLoader
	log          *zap.Logger
}

func NewOrderService(configLoader domain.ConfigLoader, batches domain.BatchLoader, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{configLoader: configLoader, batches: batches, log: log}
}

// Summaries loads the batch and describes every order in input order.
func (s *OrderService) Summaries(batchPath string) ([]domain.OrderSummary, error) {
	cfg, err := s.configLoader.Load(filepath.Dir(batchPath))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	orders, err := s.batches.Load(batchPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading batch: %w", err)
	}

	out := make([]domain.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summary, err := Summarize(o)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	s.log.Debug("orders summarized", zap.String("path", batchPath), zap.Int("orders", len(out)))
	return out, nil
}

// Summarize describes a single order.
func Summarize(o domain.Order) (domain.OrderSummary, error) {
	summary := domain.OrderSummary{
		ID:        o.ID().String(),
		CreatedAt: o.CreationInstant(),
		Status:    o.Status().String(),
		Version:   o.Version(),
		Lines:     make([]domain.LineRow, 0, o.LineCount()),
		Empty:     o.IsEmpty(),
	}

	for _, l := range o.Lines() {
		lineTotal, err := l.TotalBeforeDiscount()
		if err != nil {
			return domain.OrderSummary{}, fmt.Errorf("order %s: %w", o.ID(), err)
		}
		price := l.Key().Product().UnitPrice()
		summary.Lines = append(summary.Lines, domain.LineRow{
			ID:        l.ID().String(),
			SKU:       l.Key().Product().Sku().String(),
			UnitPrice: price.Text(),
			Currency:  price.Currency().Code(),
			Discount:  l.Key().Discount().String(),
			Quantity:  l.Quantity(),
			Total:     lineTotal.Text(),
		})
	}

	if !o.IsEmpty() {
		total, err := o.TotalBeforeDiscount()
		if err != nil {
			return domain.OrderSummary{}, err
		}
		summary.Total = total.Text()
	}
	return summary, nil
}
