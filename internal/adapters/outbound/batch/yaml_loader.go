// Package batch replays order batch files into domain orders.
//
// A batch lists orders with their lines. Lines are applied one by one through
// Order.Add, so a product listed twice on the same order merges into one line;
// optional "set" entries are applied afterwards through Order.SetQuantity.
// The status is applied last, which is why a SHIPPED order without lines is
// rejected while loading.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/orderlens/internal/adapters/outbound/idgen"
	"github.com/abdidvp/orderlens/internal/domain"
)

// File is the on-disk layout of a batch. JSON is accepted as well.
type File struct {
	Currency string       `yaml:"currency"`
	Orders   []OrderEntry `yaml:"orders"`
}

type OrderEntry struct {
	Key      string      `yaml:"key"`
	ID       string      `yaml:"id"`
	Created  string      `yaml:"created"`
	Status   string      `yaml:"status"`
	Version  int64       `yaml:"version"`
	Currency string      `yaml:"currency"`
	Lines    []LineEntry `yaml:"lines"`
	Set      []LineEntry `yaml:"set"`
}

type LineEntry struct {
	Sku      string `yaml:"sku"`
	Price    string `yaml:"price"`
	Currency string `yaml:"currency"`
	Quantity int    `yaml:"quantity"`
	Discount string `yaml:"discount"`
}

// YAMLLoader implements domain.BatchLoader.
type YAMLLoader struct {
	currencies domain.CurrencyRegistry
}

// New creates a loader resolving currency codes through currencies.
func New(currencies domain.CurrencyRegistry) *YAMLLoader {
	return &YAMLLoader{currencies: currencies}
}

// Load reads the batch at path. cfg supplies the fallback currency.
func (l *YAMLLoader) Load(path string, cfg domain.ProjectConfig) ([]domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return l.Build(f, cfg)
}

// Build replays an already decoded batch.
func (l *YAMLLoader) Build(f File, cfg domain.ProjectConfig) ([]domain.Order, error) {
	fallback := firstNonEmpty(f.Currency, cfg.Currency, domain.DefaultCurrencyCode)

	orders := make([]domain.Order, 0, len(f.Orders))
	for i, entry := range f.Orders {
		label := firstNonEmpty(entry.Key, entry.ID, fmt.Sprintf("#%d", i+1))
		o, err := l.buildOrder(entry, firstNonEmpty(entry.Currency, fallback))
		if err != nil {
			return nil, fmt.Errorf("order %q: %w", label, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (l *YAMLLoader) buildOrder(entry OrderEntry, currencyCode string) (domain.Order, error) {
	created, err := parseCreated(entry.Created)
	if err != nil {
		return domain.Order{}, err
	}

	id, err := orderID(entry, created)
	if err != nil {
		return domain.Order{}, err
	}

	status := domain.StatusNew
	if entry.Status != "" {
		if status, err = domain.ParseOrderStatus(entry.Status); err != nil {
			return domain.Order{}, err
		}
	}

	lineIDs := domain.WithLineIDSource(idgen.NewSequence(id.String(), created))
	o, err := domain.New(id, domain.StatusNew, lineIDs)
	if err != nil {
		return domain.Order{}, err
	}

	for i, ls := range entry.Lines {
		product, discount, err := l.snapshot(ls, currencyCode)
		if err != nil {
			return domain.Order{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if o, err = o.Add(product, ls.Quantity, discount); err != nil {
			return domain.Order{}, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	for i, ls := range entry.Set {
		product, discount, err := l.snapshot(ls, currencyCode)
		if err != nil {
			return domain.Order{}, fmt.Errorf("set %d: %w", i+1, err)
		}
		if o, err = o.SetQuantity(product, ls.Quantity, discount); err != nil {
			return domain.Order{}, fmt.Errorf("set %d: %w", i+1, err)
		}
	}

	return domain.Restore(o.ID(), status, entry.Version, o.Lines(), lineIDs)
}

func (l *YAMLLoader) snapshot(ls LineEntry, currencyCode string) (domain.ProductSnapshot, domain.DiscountID, error) {
	cur, err := l.currencies.Lookup(firstNonEmpty(ls.Currency, currencyCode))
	if err != nil {
		return domain.ProductSnapshot{}, domain.DiscountID{}, err
	}
	sku, err := domain.NewSku(ls.Sku)
	if err != nil {
		return domain.ProductSnapshot{}, domain.DiscountID{}, err
	}
	price, err := domain.ParseMoney(ls.Price, cur)
	if err != nil {
		return domain.ProductSnapshot{}, domain.DiscountID{}, err
	}
	product, err := domain.NewProductSnapshot(sku, price)
	if err != nil {
		return domain.ProductSnapshot{}, domain.DiscountID{}, err
	}
	discount, err := domain.ParseDiscountID(ls.Discount)
	if err != nil {
		return domain.ProductSnapshot{}, domain.DiscountID{}, err
	}
	return product, discount, nil
}

func orderID(entry OrderEntry, created time.Time) (domain.OrderID, error) {
	if entry.ID != "" {
		return domain.ParseOrderID(entry.ID)
	}
	if entry.Key == "" {
		return domain.OrderID{}, fmt.Errorf("%w: order needs a key or an id", domain.ErrInvalidArgument)
	}
	return idgen.OrderID(entry.Key, created)
}

func parseCreated(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: created is required", domain.ErrInvalidArgument)
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: created %q is neither a date nor RFC3339", domain.ErrInvalidArgument, s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
