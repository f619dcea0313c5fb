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

type monthlyKey struct {
	period       Period
	personName   string
	categoryName string
	locationName string
}

type monthlyBucket struct {
	amounts       []decimal.Decimal
	qualityScores []int
	categoryGroup string
	locationType  string
}

type monthlySummaryService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	summaryRepo  repositories.MonthlySummaryRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewMonthlySummaryService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	summaryRepo repositories.MonthlySummaryRepositoryInterface,
	metrics MetricsRecorderInterface,
) MonthlySummaryServiceInterface {
	return &monthlySummaryService{
		snapshotRepo: snapshotRepo,
		summaryRepo:  summaryRepo,
		metrics:      metrics,
	}
}

// Aggregate rebuilds the monthly spending summary from the latest snapshot.
// Months are processed oldest first so prior-period lookups can be answered
// from rows computed earlier in the same run before falling back to
// previously committed rows.
func (s *monthlySummaryService) Aggregate() (*AggregationResult, error) {
	start := time.Now()

	snapshots, err := s.snapshotRepo.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshotAvailable
	}
	version := snapshots[0].SnapshotVersion

	buckets := make(map[monthlyKey]*monthlyBucket)
	periodSet := make(map[Period]bool)
	for i := range snapshots {
		row := &snapshots[i]
		key := monthlyKey{
			period:       Period{Year: row.SpendingYear, Month: row.SpendingMonth},
			personName:   row.PersonName,
			categoryName: row.CategoryName,
			locationName: row.LocationName,
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &monthlyBucket{
				categoryGroup: row.CategoryGroup,
				locationType:  row.LocationType,
			}
			buckets[key] = bucket
		}
		bucket.amounts = append(bucket.amounts, row.AmountCleaned)
		bucket.qualityScores = append(bucket.qualityScores, row.DataQualityScore)
		periodSet[key.period] = true
	}

	keysByPeriod := make(map[Period][]monthlyKey)
	for key := range buckets {
		keysByPeriod[key.period] = append(keysByPeriod[key.period], key)
	}
	for _, keys := range keysByPeriod {
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].personName != keys[j].personName {
				return keys[i].personName < keys[j].personName
			}
			if keys[i].categoryName != keys[j].categoryName {
				return keys[i].categoryName < keys[j].categoryName
			}
			return keys[i].locationName < keys[j].locationName
		})
	}

	computedTotals := make(map[monthlyKey]decimal.Decimal)
	rows := make([]models.MonthlySpendingSummary, 0, len(buckets))
	now := time.Now().UTC()

	for _, period := range sortPeriods(periodSet) {
		for _, key := range keysByPeriod[period] {
			bucket := buckets[key]
			total := decimal.Zero
			min := bucket.amounts[0]
			max := bucket.amounts[0]
			for _, amount := range bucket.amounts {
				total = total.Add(amount)
				if amount.LessThan(min) {
					min = amount
				}
				if amount.GreaterThan(max) {
					max = amount
				}
			}
			count := int64(len(bucket.amounts))

			prevMonth, err := s.lookupTotal(key, period.Prev(), computedTotals)
			if err != nil {
				return nil, err
			}
			prevYear, err := s.lookupTotal(key, period.PrevYear(), computedTotals)
			if err != nil {
				return nil, err
			}

			rows = append(rows, models.MonthlySpendingSummary{
				Year:                  period.Year,
				Month:                 period.Month,
				Quarter:               period.Quarter(),
				MonthStartDate:        period.MonthStart(),
				MonthEndDate:          period.MonthEnd(),
				PersonName:            key.personName,
				CategoryName:          key.categoryName,
				CategoryGroup:         bucket.categoryGroup,
				LocationName:          key.locationName,
				LocationType:          bucket.locationType,
				TotalSpending:         total.Round(2),
				TransactionCount:      count,
				AvgTransactionAmount:  total.Div(decimal.NewFromInt(count)).Round(2),
				MinTransactionAmount:  min,
				MaxTransactionAmount:  max,
				PrevMonthSpending:     prevMonth,
				MomAbsoluteChange:     absoluteChange(total, prevMonth).Round(2),
				MomPercentChange:      percentChange(total, prevMonth),
				PrevYearSpending:      prevYear,
				YoyAbsoluteChange:     absoluteChange(total, prevYear).Round(2),
				YoyPercentChange:      percentChange(total, prevYear),
				AvgQualityScore:       averageQuality(bucket.qualityScores),
				SnapshotVersionSource: version,
				CreatedAt:             now,
				UpdatedAt:             now,
			})
			computedTotals[key] = total
		}
	}

	if err := s.summaryRepo.UpsertBatch(rows); err != nil {
		s.metrics.IncrementCounter("aggregation.runs", map[string]string{
			"stage": models.StageMonthlySummary, "status": "failed"})
		return nil, fmt.Errorf("failed to write monthly summaries: %w", err)
	}

	slog.Info("monthly summary aggregated",
		"snapshot_version", version,
		"row_count", len(rows),
		"duration_ms", time.Since(start).Milliseconds())

	s.metrics.IncrementCounter("aggregation.runs", map[string]string{
		"stage": models.StageMonthlySummary, "status": "success"})
	s.metrics.RecordProcessingTime("aggregation.monthly_summary", time.Since(start))

	return &AggregationResult{
		Stage:           models.StageMonthlySummary,
		RowCount:        int64(len(rows)),
		SnapshotVersion: version,
	}, nil
}

// GetByPeriod returns the committed summary rows for one calendar month.
func (s *monthlySummaryService) GetByPeriod(year, month int) ([]models.MonthlySpendingSummary, error) {
	return s.summaryRepo.GetByPeriod(year, month)
}

// lookupTotal resolves the total spending for a key in another period,
// preferring rows computed earlier in this run over committed rows.
func (s *monthlySummaryService) lookupTotal(key monthlyKey, period Period, computed map[monthlyKey]decimal.Decimal) (*decimal.Decimal, error) {
	lookupKey := key
	lookupKey.period = period
	if total, ok := computed[lookupKey]; ok {
		return &total, nil
	}

	row, err := s.summaryRepo.GetByKey(period.Year, period.Month, key.personName, key.categoryName, key.locationName)
	if err != nil {
		if errors.Is(err, repositories.ErrSummaryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up prior summary: %w", err)
	}
	total := row.TotalSpending
	return &total, nil
}

// averageQuality returns the mean data quality score rounded to two decimals.
func averageQuality(scores []int) decimal.Decimal {
	if len(scores) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(scores)))).Round(2)
}
