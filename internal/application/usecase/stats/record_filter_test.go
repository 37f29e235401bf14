package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

func TestFilterSoldRecords(t *testing.T) {
	period := ResolvePeriod(PeriodWeek, date(2024, 5, 15, 12, 0, 0))

	missing := soldItem(6, "1", "2", "")
	missing.SoldAt = nil

	items := []entity.Item{
		soldItem(1, "10", "30", "2024-05-16T09:00:00Z"),
		soldItem(2, "5", "8", "2024-05-14T18:30:00Z"),
		availableItem(3, "4", "9"),
		soldItem(4, "1", "2", "2024-05-12T23:59:59Z"), // day before the week
		soldItem(5, "1", "2", "not-a-date"),
		missing,
		soldItem(7, "3", "4", "2024-05-13T00:00:00Z"), // exactly at start
		soldItem(8, "3", "4", "2024-05-19T23:59:59Z"), // last second of the week
		soldItem(9, "3", "4", "2024-05-20T00:00:00Z"), // next week
	}

	recorder := &anomalyRecorder{}
	records := FilterSoldRecords(items, period.Start, period.End, recorder)

	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ItemID
	}
	assert.Equal(t, []int64{7, 2, 1, 8}, ids, "records are in range and sorted by sale instant")
	assert.Equal(t, []int64{5, 6}, recorder.itemIDs())

	for _, a := range recorder.anomalies {
		assert.Equal(t, "sold_at", a.Field)
		assert.Error(t, a.Err)
		assert.NotEqual(t, uuid.Nil, a.ID)
	}
}

func TestFilterSoldRecords_CarriesPrices(t *testing.T) {
	period := ResolvePeriod(PeriodWeek, date(2024, 5, 15, 12, 0, 0))
	items := []entity.Item{soldItem(1, "12.50", "20.25", "2024-05-15T08:00:00Z")}

	records := FilterSoldRecords(items, period.Start, period.End, nil)

	require.Len(t, records, 1)
	assert.Equal(t, "20.25", records[0].Revenue.String())
	assert.Equal(t, "12.5", records[0].Cost.String())
	assert.Equal(t, "7.75", records[0].Profit().String())
}

func TestFilterSoldRecords_StableOnEqualTimestamps(t *testing.T) {
	period := ResolvePeriod(PeriodMonth, date(2024, 5, 15, 12, 0, 0))
	items := []entity.Item{
		soldItem(3, "1", "2", "2024-05-02T10:00:00Z"),
		soldItem(1, "1", "2", "2024-05-02T10:00:00Z"),
		soldItem(2, "1", "2", "2024-05-01T10:00:00Z"),
	}

	records := FilterSoldRecords(items, period.Start, period.End, nil)

	require.Len(t, records, 3)
	assert.Equal(t, int64(2), records[0].ItemID)
	assert.Equal(t, int64(3), records[1].ItemID)
	assert.Equal(t, int64(1), records[2].ItemID)
}

func TestFilterSoldRecords_DoesNotMutateInput(t *testing.T) {
	period := ResolvePeriod(PeriodMonth, date(2024, 5, 15, 12, 0, 0))
	items := []entity.Item{
		soldItem(2, "1", "2", "2024-05-09T10:00:00Z"),
		soldItem(1, "1", "2", "2024-05-02T10:00:00Z"),
	}

	_ = FilterSoldRecords(items, period.Start, period.End, nil)

	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)
}

func TestParseSoldAt(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name     string
		raw      string
		expected time.Time
		wantErr  bool
	}{
		{name: "RFC3339 UTC", raw: "2024-05-14T10:00:00Z", expected: date(2024, 5, 14, 10, 0, 0)},
		{name: "RFC3339 with offset", raw: "2024-05-14T10:00:00-03:00", expected: date(2024, 5, 14, 13, 0, 0)},
		{name: "fractional seconds", raw: "2024-05-14T10:00:00.123Z", expected: date(2024, 5, 14, 10, 0, 0).Add(123 * time.Millisecond)},
		{name: "no offset uses location", raw: "2024-05-14T10:00:00", expected: time.Date(2024, 5, 14, 10, 0, 0, 0, loc)},
		{name: "space separated", raw: "2024-05-14 10:00:00", expected: time.Date(2024, 5, 14, 10, 0, 0, 0, loc)},
		{name: "date only", raw: "2024-05-14", expected: time.Date(2024, 5, 14, 0, 0, 0, 0, loc)},
		{name: "garbage", raw: "yesterday", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "impossible date", raw: "2024-02-30T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSoldAt(tt.raw, loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}
