// Package logger builds the zap loggers used by the application layer.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abdidvp/orderlens/internal/domain"
)

// New returns a logger for mode: development, production or off.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "", domain.LogOff:
		return zap.NewNop(), nil
	case domain.LogProduction:
		cfg = zap.NewProductionConfig()
	case domain.LogDevelopment:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
	// stdout belongs to reports
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
