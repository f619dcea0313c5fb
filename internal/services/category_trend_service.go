package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories"
)

type trendKey struct {
	period       Period
	categoryName string
}

type trendBucket struct {
	amounts       []decimal.Decimal
	persons       map[string]bool
	categoryGroup string
}

type categoryTrendService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	trendRepo    repositories.CategoryTrendRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewCategoryTrendService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	trendRepo repositories.CategoryTrendRepositoryInterface,
	metrics MetricsRecorderInterface,
) CategoryTrendServiceInterface {
	return &categoryTrendService{
		snapshotRepo: snapshotRepo,
		trendRepo:    trendRepo,
		metrics:      metrics,
	}
}

// Aggregate rebuilds the category trend table from the latest snapshot.
// Months run oldest first so rolling averages, prior-month spending and
// prior-month ranks are answered from this run before hitting committed rows.
func (s *categoryTrendService) Aggregate() (*AggregationResult, error) {
	start := time.Now()

	snapshots, err := s.snapshotRepo.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshotAvailable
	}
	version := snapshots[0].SnapshotVersion

	buckets := make(map[trendKey]*trendBucket)
	periodSet := make(map[Period]bool)
	for i := range snapshots {
		row := &snapshots[i]
		key := trendKey{
			period:       Period{Year: row.SpendingYear, Month: row.SpendingMonth},
			categoryName: row.CategoryName,
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &trendBucket{
				persons:       make(map[string]bool),
				categoryGroup: row.CategoryGroup,
			}
			buckets[key] = bucket
		}
		bucket.amounts = append(bucket.amounts, row.AmountCleaned)
		bucket.persons[row.PersonName] = true
		periodSet[key.period] = true
	}

	// Per-period category totals drive both ranking and percent-of-total.
	totalsByPeriod := make(map[Period]map[string]decimal.Decimal)
	for key, bucket := range buckets {
		if totalsByPeriod[key.period] == nil {
			totalsByPeriod[key.period] = make(map[string]decimal.Decimal)
		}
		total := decimal.Zero
		for _, amount := range bucket.amounts {
			total = total.Add(amount)
		}
		totalsByPeriod[key.period][key.categoryName] = total
	}

	computedTotals := make(map[trendKey]decimal.Decimal)
	computedRanks := make(map[trendKey]int)
	rows := make([]models.CategoryTrend, 0, len(buckets))
	now := time.Now().UTC()

	for _, period := range sortPeriods(periodSet) {
		categoryTotals := totalsByPeriod[period]
		ranks := denseRanks(categoryTotals)

		monthTotal := decimal.Zero
		for _, total := range categoryTotals {
			monthTotal = monthTotal.Add(total)
		}

		for _, categoryName := range sortedNames(categoryTotals) {
			key := trendKey{period: period, categoryName: categoryName}
			bucket := buckets[key]
			total := categoryTotals[categoryName]
			count := int64(len(bucket.amounts))

			prevMonth, err := s.lookupTotal(key, period.Prev(), computedTotals)
			if err != nil {
				return nil, err
			}
			prevYear, err := s.lookupTotal(key, period.PrevYear(), computedTotals)
			if err != nil {
				return nil, err
			}
			prevRank, err := s.lookupRank(key, period.Prev(), computedRanks)
			if err != nil {
				return nil, err
			}

			rolling3, err := s.rollingAverage(key, period, 3, total, computedTotals)
			if err != nil {
				return nil, err
			}
			rolling6, err := s.rollingAverage(key, period, 6, total, computedTotals)
			if err != nil {
				return nil, err
			}

			momPct := percentChange(total, prevMonth)
			yoyPct := percentChange(total, prevYear)
			currentRank := ranks[categoryName]

			rankChange := 0
			if prevRank != nil {
				rankChange = *prevRank - currentRank
			}

			rows = append(rows, models.CategoryTrend{
				Year:                   period.Year,
				Month:                  period.Month,
				Quarter:                period.Quarter(),
				MonthStartDate:         period.MonthStart(),
				CategoryName:           categoryName,
				CategoryGroup:          bucket.categoryGroup,
				TotalSpending:          total.Round(2),
				TransactionCount:       count,
				UniquePersons:          int64(len(bucket.persons)),
				AvgTransactionAmount:   total.Div(decimal.NewFromInt(count)).Round(2),
				PrevMonthSpending:      prevMonth,
				MomAbsoluteChange:      absoluteChange(total, prevMonth).Round(2),
				MomPercentChange:       momPct,
				MomTrendDirection:      trendDirection(momPct),
				PrevYearSpending:       prevYear,
				YoyAbsoluteChange:      absoluteChange(total, prevYear).Round(2),
				YoyPercentChange:       yoyPct,
				YoyTrendDirection:      trendDirection(yoyPct),
				Rolling3MonthAvg:       rolling3,
				Rolling6MonthAvg:       rolling6,
				CategoryRankCurrent:    currentRank,
				CategoryRankPrevMonth:  prevRank,
				RankChange:             rankChange,
				PercentOfTotalSpending: ratioPercent(total, monthTotal),
				SnapshotVersionSource:  version,
				CreatedAt:              now,
				UpdatedAt:              now,
			})
			computedTotals[key] = total
			computedRanks[key] = currentRank
		}
	}

	if err := s.trendRepo.UpsertBatch(rows); err != nil {
		s.metrics.IncrementCounter("aggregation.runs", map[string]string{
			"stage": models.StageCategoryTrends, "status": "failed"})
		return nil, fmt.Errorf("failed to write category trends: %w", err)
	}

	slog.Info("category trends aggregated",
		"snapshot_version", version,
		"row_count", len(rows),
		"duration_ms", time.Since(start).Milliseconds())

	s.metrics.IncrementCounter("aggregation.runs", map[string]string{
		"stage": models.StageCategoryTrends, "status": "success"})
	s.metrics.RecordProcessingTime("aggregation.category_trends", time.Since(start))

	return &AggregationResult{
		Stage:           models.StageCategoryTrends,
		RowCount:        int64(len(rows)),
		SnapshotVersion: version,
	}, nil
}

// GetByPeriod returns the committed trend rows for one calendar month.
func (s *categoryTrendService) GetByPeriod(year, month int) ([]models.CategoryTrend, error) {
	return s.trendRepo.GetByPeriod(year, month)
}

// lookupTotal resolves a category's total for another period, preferring rows
// computed earlier in this run.
func (s *categoryTrendService) lookupTotal(key trendKey, period Period, computed map[trendKey]decimal.Decimal) (*decimal.Decimal, error) {
	lookupKey := trendKey{period: period, categoryName: key.categoryName}
	if total, ok := computed[lookupKey]; ok {
		return &total, nil
	}

	row, err := s.trendRepo.GetByKey(period.Year, period.Month, key.categoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrTrendNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up prior trend: %w", err)
	}
	total := row.TotalSpending
	return &total, nil
}

// lookupRank resolves a category's rank for another period, preferring ranks
// computed earlier in this run.
func (s *categoryTrendService) lookupRank(key trendKey, period Period, computed map[trendKey]int) (*int, error) {
	lookupKey := trendKey{period: period, categoryName: key.categoryName}
	if rank, ok := computed[lookupKey]; ok {
		return &rank, nil
	}

	row, err := s.trendRepo.GetByKey(period.Year, period.Month, key.categoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrTrendNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up prior rank: %w", err)
	}
	rank := row.CategoryRankCurrent
	return &rank, nil
}

// rollingAverage averages the category's spending over the trailing window of
// calendar months ending at period. Months without data are skipped, so a
// shorter history averages over what exists.
func (s *categoryTrendService) rollingAverage(key trendKey, period Period, window int, current decimal.Decimal, computed map[trendKey]decimal.Decimal) (decimal.Decimal, error) {
	values := []decimal.Decimal{current}
	p := period
	for i := 1; i < window; i++ {
		p = p.Prev()
		total, err := s.lookupTotal(key, p, computed)
		if err != nil {
			return decimal.Zero, err
		}
		if total != nil {
			values = append(values, *total)
		}
	}
	return averageDecimal(values), nil
}

// sortedNames returns map keys in ascending order for deterministic output.
func sortedNames(totals map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
