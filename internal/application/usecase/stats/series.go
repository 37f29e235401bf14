package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeSeriesPoint is one bucket's value in a chart series.
type TimeSeriesPoint struct {
	Instant time.Time       `json:"instant"`
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
}

// BucketedSeries holds the four chart series of a period, one point per bucket.
type BucketedSeries struct {
	CumulativeRevenue []TimeSeriesPoint
	CumulativeProfit  []TimeSeriesPoint
	PeriodicRevenue   []TimeSeriesPoint
	PeriodicProfit    []TimeSeriesPoint
	TotalRevenue      decimal.Decimal
	TotalProfit       decimal.Decimal
	// Consumed is the number of records that landed in a bucket.
	Consumed int
}

// BucketSeries walks the period's buckets and the records once.
// records must be sorted ascending by SoldAt and lie at or after period.Start
// (FilterSoldRecords guarantees both). A record belongs to the first bucket whose
// threshold it does not exceed, which is the bucket of its calendar day or month.
// Records past the last threshold are not counted.
func BucketSeries(records []SaleRecord, period ResolvedPeriod) BucketedSeries {
	n := len(period.Buckets)
	out := BucketedSeries{
		CumulativeRevenue: make([]TimeSeriesPoint, 0, n),
		CumulativeProfit:  make([]TimeSeriesPoint, 0, n),
		PeriodicRevenue:   make([]TimeSeriesPoint, 0, n),
		PeriodicProfit:    make([]TimeSeriesPoint, 0, n),
		TotalRevenue:      decimal.Zero,
		TotalProfit:       decimal.Zero,
	}

	cursor := 0
	for i, bucket := range period.Buckets {
		threshold := period.BucketThreshold(i)
		bucketRevenue := decimal.Zero
		bucketProfit := decimal.Zero

		for cursor < len(records) && !records[cursor].SoldAt.After(threshold) {
			record := records[cursor]
			bucketRevenue = bucketRevenue.Add(record.Revenue)
			bucketProfit = bucketProfit.Add(record.Profit())
			cursor++
		}

		out.TotalRevenue = out.TotalRevenue.Add(bucketRevenue)
		out.TotalProfit = out.TotalProfit.Add(bucketProfit)

		label := period.BucketLabel(bucket)
		out.CumulativeRevenue = append(out.CumulativeRevenue, TimeSeriesPoint{Instant: bucket, Label: label, Value: out.TotalRevenue})
		out.CumulativeProfit = append(out.CumulativeProfit, TimeSeriesPoint{Instant: bucket, Label: label, Value: out.TotalProfit})
		out.PeriodicRevenue = append(out.PeriodicRevenue, TimeSeriesPoint{Instant: bucket, Label: label, Value: bucketRevenue})
		out.PeriodicProfit = append(out.PeriodicProfit, TimeSeriesPoint{Instant: bucket, Label: label, Value: bucketProfit})
	}
	out.Consumed = cursor

	return out
}
