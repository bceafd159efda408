package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/orderlens/internal/domain"
)

func TestDefaultConfig_ReportsEveryStatus(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, domain.LogOff, cfg.Log)
	assert.Equal(t, domain.ValidStatuses, cfg.ReportStatuses())
	assert.NoError(t, cfg.Validate())
}

func TestReportStatuses_KeepsLifecycleOrder(t *testing.T) {
	cfg := domain.ProjectConfig{Statuses: []domain.OrderStatus{domain.StatusShipped, domain.StatusNew}}
	assert.Equal(t, []domain.OrderStatus{domain.StatusNew, domain.StatusShipped}, cfg.ReportStatuses())
	assert.True(t, cfg.IncludesStatus(domain.StatusNew))
	assert.False(t, cfg.IncludesStatus(domain.StatusPaid))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.ProjectConfig
		want string
	}{
		{"lowercase currency", domain.ProjectConfig{Currency: "usd"}, "ISO 4217"},
		{"unknown status", domain.ProjectConfig{Statuses: []domain.OrderStatus{"LOST"}}, "unknown status"},
		{"duplicate status", domain.ProjectConfig{Statuses: []domain.OrderStatus{"NEW", "NEW"}}, "listed twice"},
		{"unknown log mode", domain.ProjectConfig{Log: "verbose"}, "unknown log mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestReport_Count(t *testing.T) {
	r := domain.Report{Statuses: []domain.StatusSummary{{Status: domain.StatusNew, Count: 3}}}
	assert.Equal(t, 3, r.Count(domain.StatusNew))
	assert.Equal(t, 0, r.Count(domain.StatusPaid))
}
