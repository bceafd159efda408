package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/orderlens/internal/adapters/outbound/batch"
	"github.com/abdidvp/orderlens/internal/adapters/outbound/config"
	"github.com/abdidvp/orderlens/internal/adapters/outbound/currency"
	"github.com/abdidvp/orderlens/internal/application"
)

func TestSummaries_Merge(t *testing.T) {
	svc := application.NewOrderService(config.New(), batch.New(currency.New()), nil)
	summaries, err := svc.Summaries(batchDir + "/merge.yaml")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "PAID", s.Status)
	assert.Equal(t, int64(3), s.Version)
	assert.Equal(t, "930.03", s.Total)
	assert.False(t, s.Empty)
	assert.Equal(t, 2026, s.CreatedAt.Year())

	require.Len(t, s.Lines, 2)
	assert.Equal(t, "BOOK-1", s.Lines[0].SKU)
	assert.Equal(t, "30.03", s.Lines[0].Total)
	assert.Empty(t, s.Lines[0].Discount)
	assert.Equal(t, "6f1c2a8e-3b4d-4c5e-9f60-718293a4b5c6", s.Lines[1].Discount)
}

func TestSummaries_EmptyOrderHasNoTotal(t *testing.T) {
	svc := application.NewOrderService(config.New(), batch.New(currency.New()), nil)
	summaries, err := svc.Summaries(batchDir + "/empty-order.yaml")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "20.00", summaries[0].Total)
	assert.True(t, summaries[1].Empty)
	assert.Empty(t, summaries[1].Total)
	assert.Empty(t, summaries[1].Lines)
}

func TestSummaries_MissingBatch(t *testing.T) {
	svc := application.NewOrderService(config.New(), batch.New(currency.New()), nil)
	_, err := svc.Summaries(batchDir + "/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading batch")
}
