package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/orderlens/internal/adapters/outbound/batch"
	"github.com/abdidvp/orderlens/internal/adapters/outbound/config"
	"github.com/abdidvp/orderlens/internal/adapters/outbound/currency"
	"github.com/abdidvp/orderlens/internal/adapters/outbound/logger"
	"github.com/abdidvp/orderlens/internal/application"
)

// newLogger uses the --log flag, falling back to the config next to the batch.
func newLogger(cmd *cobra.Command, batchPath string) (*zap.Logger, error) {
	mode, _ := cmd.Flags().GetString("log")
	if mode == "" {
		cfg, err := config.New().Load(filepath.Dir(batchPath))
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		mode = cfg.Log
	}
	return logger.New(mode)
}

func newReportService(log *zap.Logger) *application.ReportService {
	return application.NewReportService(config.New(), batch.New(currency.New()), log)
}

func newOrderService(log *zap.Logger) *application.OrderService {
	return application.NewOrderService(config.New(), batch.New(currency.New()), log)
}
