// Package stats contains the inventory statistics engine and the use cases built on it.
package stats

import (
	"fmt"
	"time"
)

// PeriodKind is the span a period report covers.
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// Granularity is the width of a single bucket.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// IsKnown reports whether the kind is one of week, month or year.
func (k PeriodKind) IsKnown() bool {
	return k == PeriodWeek || k == PeriodMonth || k == PeriodYear
}

// Normalize maps unknown kinds to month. Callers that need to reject unknown
// kinds must check IsKnown first.
func (k PeriodKind) Normalize() PeriodKind {
	if k.IsKnown() {
		return k
	}
	return PeriodMonth
}

// ResolvedPeriod holds the boundaries and bucket instants of a period.
type ResolvedPeriod struct {
	Kind        PeriodKind
	Granularity Granularity
	Reference   time.Time
	Start       time.Time
	End         time.Time
	Buckets     []time.Time
}

// monthAbbreviations maps months to short English labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// ResolvePeriod computes the boundaries and buckets of the period containing reference.
// Calendar arithmetic happens in reference's location.
//   - week: Monday 00:00 to Sunday end of day, one bucket per day.
//   - month: first to last day of the month, one bucket per day up to the reference day.
//   - year: Jan 1 to the reference instant, one bucket per month up to the reference month.
//
// Unknown kinds resolve as month.
func ResolvePeriod(kind PeriodKind, reference time.Time) ResolvedPeriod {
	kind = kind.Normalize()
	loc := reference.Location()

	switch kind {
	case PeriodWeek:
		start := getWeekStartDate(reference)
		end := endOfDay(start.AddDate(0, 0, 6))
		return ResolvedPeriod{
			Kind:        kind,
			Granularity: GranularityDaily,
			Reference:   reference,
			Start:       start,
			End:         end,
			Buckets:     dailyBuckets(start, start.AddDate(0, 0, 6)),
		}

	case PeriodYear:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return ResolvedPeriod{
			Kind:        kind,
			Granularity: GranularityMonthly,
			Reference:   reference,
			Start:       start,
			End:         reference,
			Buckets:     monthlyBuckets(start, startOfMonth(reference)),
		}

	default:
		start := startOfMonth(reference)
		end := endOfDay(start.AddDate(0, 1, -1))
		return ResolvedPeriod{
			Kind:        kind,
			Granularity: GranularityDaily,
			Reference:   reference,
			Start:       start,
			End:         end,
			Buckets:     dailyBuckets(start, startOfDay(reference)),
		}
	}
}

// BucketThreshold returns the last instant counted in bucket i.
// The final year bucket stops at the reference instant so sales dated later in
// the current month are not counted.
func (p ResolvedPeriod) BucketThreshold(i int) time.Time {
	bucket := p.Buckets[i]
	if p.Granularity == GranularityMonthly {
		if i == len(p.Buckets)-1 {
			return p.Reference
		}
		return endOfDay(bucket.AddDate(0, 1, -1))
	}
	return endOfDay(bucket)
}

// BucketLabel generates a human-readable label for a bucket.
// Formats:
// - Daily: "{weekday_abbr} {day}" (e.g., "Tue 14")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2025")
func (p ResolvedPeriod) BucketLabel(bucket time.Time) string {
	if p.Granularity == GranularityMonthly {
		return fmt.Sprintf("%s %d", monthAbbreviations[bucket.Month()], bucket.Year())
	}
	return fmt.Sprintf("%s %d", bucket.Weekday().String()[:3], bucket.Day())
}

func dailyBuckets(first, last time.Time) []time.Time {
	var buckets []time.Time
	for current := first; !current.After(last); current = current.AddDate(0, 0, 1) {
		buckets = append(buckets, current)
	}
	return buckets
}

func monthlyBuckets(first, last time.Time) []time.Time {
	var buckets []time.Time
	for current := first; !current.After(last); current = current.AddDate(0, 1, 0) {
		buckets = append(buckets, current)
	}
	return buckets
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last nanosecond of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
