package adapters

import (
	"log/slog"

	"github.com/inventory-tracker/backend/internal/application/usecase/stats"
)

// anomalyLogger reports skipped stats records through slog.
type anomalyLogger struct {
	logger *slog.Logger
}

// NewAnomalyLogger creates an anomaly observer that logs at warn level.
// A nil logger uses slog.Default().
func NewAnomalyLogger(logger *slog.Logger) stats.AnomalyObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &anomalyLogger{
		logger: logger,
	}
}

// ObserveAnomaly logs the skipped record.
func (l *anomalyLogger) ObserveAnomaly(anomaly stats.Anomaly) {
	l.logger.Warn("Skipping malformed item in stats computation",
		"anomaly_id", anomaly.ID.String(),
		"item_id", anomaly.ItemID,
		"field", anomaly.Field,
		"value", anomaly.Value,
		"error", anomaly.Err,
	)
}
