package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod_Week(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
	}{
		{name: "wednesday", reference: date(2024, 5, 15, 12, 0, 0)},
		{name: "monday midnight", reference: date(2024, 5, 13, 0, 0, 0)},
		{name: "sunday evening", reference: date(2024, 5, 19, 22, 30, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePeriod(PeriodWeek, tt.reference)

			assert.Equal(t, PeriodWeek, p.Kind)
			assert.Equal(t, GranularityDaily, p.Granularity)
			assert.Equal(t, date(2024, 5, 13, 0, 0, 0), p.Start)
			assert.Equal(t, date(2024, 5, 20, 0, 0, 0).Add(-time.Nanosecond), p.End)
			require.Len(t, p.Buckets, 7)
			for i, b := range p.Buckets {
				assert.Equal(t, date(2024, 5, 13+i, 0, 0, 0), b)
			}
		})
	}
}

func TestResolvePeriod_WeekAcrossMonthBoundary(t *testing.T) {
	p := ResolvePeriod(PeriodWeek, date(2024, 3, 1, 9, 0, 0)) // Friday

	assert.Equal(t, date(2024, 2, 26, 0, 0, 0), p.Start)
	require.Len(t, p.Buckets, 7)
	assert.Equal(t, date(2024, 2, 29, 0, 0, 0), p.Buckets[3])
	assert.Equal(t, date(2024, 3, 3, 0, 0, 0), p.Buckets[6])
}

func TestResolvePeriod_Month(t *testing.T) {
	p := ResolvePeriod(PeriodMonth, date(2024, 2, 10, 15, 0, 0))

	assert.Equal(t, GranularityDaily, p.Granularity)
	assert.Equal(t, date(2024, 2, 1, 0, 0, 0), p.Start)
	assert.Equal(t, date(2024, 3, 1, 0, 0, 0).Add(-time.Nanosecond), p.End)
	require.Len(t, p.Buckets, 10, "buckets stop at the reference day")
	assert.Equal(t, date(2024, 2, 1, 0, 0, 0), p.Buckets[0])
	assert.Equal(t, date(2024, 2, 10, 0, 0, 0), p.Buckets[9])
}

func TestResolvePeriod_MonthOnFirstDay(t *testing.T) {
	p := ResolvePeriod(PeriodMonth, date(2024, 7, 1, 0, 0, 0))

	require.Len(t, p.Buckets, 1)
	assert.Equal(t, date(2024, 7, 1, 0, 0, 0), p.Buckets[0])
}

func TestResolvePeriod_Year(t *testing.T) {
	reference := date(2024, 5, 15, 10, 30, 0)
	p := ResolvePeriod(PeriodYear, reference)

	assert.Equal(t, GranularityMonthly, p.Granularity)
	assert.Equal(t, date(2024, 1, 1, 0, 0, 0), p.Start)
	assert.Equal(t, reference, p.End)
	require.Len(t, p.Buckets, 5)
	for i, b := range p.Buckets {
		assert.Equal(t, time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC), b)
	}
}

func TestResolvePeriod_UnknownKindFallsBackToMonth(t *testing.T) {
	reference := date(2024, 5, 15, 10, 0, 0)

	fallback := ResolvePeriod(PeriodKind("decade"), reference)
	month := ResolvePeriod(PeriodMonth, reference)

	assert.Equal(t, PeriodMonth, fallback.Kind)
	assert.Equal(t, month, fallback)
	assert.False(t, PeriodKind("decade").IsKnown())
	assert.True(t, PeriodYear.IsKnown())
}

func TestResolvePeriod_KeepsReferenceLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on Monday is still Sunday in BRT.
	reference := time.Date(2024, 5, 12, 22, 0, 0, 0, loc)

	p := ResolvePeriod(PeriodWeek, reference)

	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, loc), p.Start)
	assert.Equal(t, loc, p.Start.Location())
}

func TestResolvedPeriod_BucketThreshold(t *testing.T) {
	t.Run("daily buckets end at end of day", func(t *testing.T) {
		p := ResolvePeriod(PeriodWeek, date(2024, 5, 15, 12, 0, 0))
		assert.Equal(t, date(2024, 5, 14, 0, 0, 0).Add(-time.Nanosecond), p.BucketThreshold(0))
	})

	t.Run("monthly buckets end at end of month except the last", func(t *testing.T) {
		reference := date(2024, 3, 10, 12, 0, 0)
		p := ResolvePeriod(PeriodYear, reference)

		assert.Equal(t, date(2024, 2, 1, 0, 0, 0).Add(-time.Nanosecond), p.BucketThreshold(0))
		assert.Equal(t, date(2024, 3, 1, 0, 0, 0).Add(-time.Nanosecond), p.BucketThreshold(1))
		assert.Equal(t, reference, p.BucketThreshold(2))
	})
}

func TestResolvedPeriod_BucketLabel(t *testing.T) {
	week := ResolvePeriod(PeriodWeek, date(2024, 5, 15, 0, 0, 0))
	year := ResolvePeriod(PeriodYear, date(2024, 5, 15, 0, 0, 0))

	assert.Equal(t, "Tue 14", week.BucketLabel(date(2024, 5, 14, 0, 0, 0)))
	assert.Equal(t, "Mar 2024", year.BucketLabel(date(2024, 3, 1, 0, 0, 0)))
}
