package stats

import (
	"time"

	"github.com/google/uuid"
)

// Anomaly describes an input record the engine skipped.
type Anomaly struct {
	ID         uuid.UUID
	ItemID     int64
	Field      string
	Value      string
	Err        error
	ObservedAt time.Time
}

// AnomalyObserver receives records excluded from a computation.
// Implementations must not block; the engine never inspects the outcome.
// Cached period results are not recomputed, so anomalies are reported once
// per cache miss and only counted (SkippedRecords) on a hit.
type AnomalyObserver interface {
	ObserveAnomaly(anomaly Anomaly)
}

// AnomalyObserverFunc adapts a function to AnomalyObserver.
type AnomalyObserverFunc func(anomaly Anomaly)

// ObserveAnomaly calls f(anomaly).
func (f AnomalyObserverFunc) ObserveAnomaly(anomaly Anomaly) {
	f(anomaly)
}

type nopObserver struct{}

func (nopObserver) ObserveAnomaly(Anomaly) {}

// NopObserver discards anomalies.
var NopObserver AnomalyObserver = nopObserver{}

func newAnomaly(itemID int64, field, value string, err error) Anomaly {
	return Anomaly{
		ID:         uuid.New(),
		ItemID:     itemID,
		Field:      field,
		Value:      value,
		Err:        err,
		ObservedAt: time.Now().UTC(),
	}
}
