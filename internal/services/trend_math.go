package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spending-warehouse/internal/models"
)

// Percent change within this band (inclusive) counts as STABLE.
var stableBandPercent = decimal.NewFromInt(5)

// avgWeeksPerMonth converts a monthly total into a weekly average.
var avgWeeksPerMonth = decimal.NewFromFloat(4.33)

var oneHundred = decimal.NewFromInt(100)

// Period identifies one calendar month.
type Period struct {
	Year  int
	Month int
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Index returns a monotonically increasing ordinal for chronological sorting.
func (p Period) Index() int {
	return p.Year*12 + (p.Month - 1)
}

// Prev returns the preceding calendar month.
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// PrevYear returns the same month one year earlier.
func (p Period) PrevYear() Period {
	return Period{Year: p.Year - 1, Month: p.Month}
}

// Quarter returns the calendar quarter of the period.
func (p Period) Quarter() int {
	return (p.Month-1)/3 + 1
}

// MonthStart returns midnight UTC on the first day of the month.
func (p Period) MonthStart() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight UTC on the last day of the month.
func (p Period) MonthEnd() time.Time {
	return p.MonthStart().AddDate(0, 1, -1)
}

// DaysInMonth returns the number of calendar days in the period.
func (p Period) DaysInMonth() int {
	return p.MonthEnd().Day()
}

// sortPeriods returns the periods in chronological order. Aggregation always
// walks months oldest first so in-run lookback sees every earlier month.
func sortPeriods(set map[Period]bool) []Period {
	periods := make([]Period, 0, len(set))
	for p := range set {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Index() < periods[j].Index()
	})
	return periods
}

// percentChange computes ((current - prev) / prev) * 100 rounded to two
// decimal places. It returns nil when prev is absent or not positive, so an
// undefined ratio surfaces as a null instead of a division failure.
func percentChange(current decimal.Decimal, prev *decimal.Decimal) *decimal.Decimal {
	if prev == nil || !prev.IsPositive() {
		return nil
	}
	pct := current.Sub(*prev).Div(*prev).Mul(oneHundred).Round(2)
	return &pct
}

// absoluteChange computes current minus prev, treating an absent prev as zero.
func absoluteChange(current decimal.Decimal, prev *decimal.Decimal) decimal.Decimal {
	if prev == nil {
		return current
	}
	return current.Sub(*prev)
}

// trendDirection buckets a percent change. A nil change means there was no
// comparable prior period.
func trendDirection(pct *decimal.Decimal) string {
	switch {
	case pct == nil:
		return models.TrendNoData
	case pct.GreaterThan(stableBandPercent):
		return models.TrendIncreasing
	case pct.LessThan(stableBandPercent.Neg()):
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// ratioPercent computes (part / whole) * 100 rounded to two decimal places,
// nil when the whole is not positive.
func ratioPercent(part, whole decimal.Decimal) *decimal.Decimal {
	if !whole.IsPositive() {
		return nil
	}
	pct := part.Div(whole).Mul(oneHundred).Round(2)
	return &pct
}

// safeRatio computes part / whole rounded to two decimal places, nil when the
// whole is not positive.
func safeRatio(part, whole decimal.Decimal) *decimal.Decimal {
	if !whole.IsPositive() {
		return nil
	}
	ratio := part.Div(whole).Round(2)
	return &ratio
}

// averageDecimal returns the mean of values rounded to two decimal places,
// zero for an empty slice.
func averageDecimal(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).Round(2)
}

// medianDecimal returns the median of values rounded to two decimal places,
// zero for an empty slice. The input slice is not modified.
func medianDecimal(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid].Round(2)
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2)).Round(2)
}

// denseRanks assigns dense ranks to totals sorted descending, names ascending
// on ties. Equal totals share a rank and the next distinct total gets the
// following rank. The returned map is keyed by name.
func denseRanks(totals map[string]decimal.Decimal) map[string]int {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ti, tj := totals[names[i]], totals[names[j]]
		if !ti.Equal(tj) {
			return ti.GreaterThan(tj)
		}
		return names[i] < names[j]
	})

	ranks := make(map[string]int, len(names))
	rank := 0
	var prevTotal decimal.Decimal
	for i, name := range names {
		if i == 0 || !totals[name].Equal(prevTotal) {
			rank++
			prevTotal = totals[name]
		}
		ranks[name] = rank
	}
	return ranks
}
