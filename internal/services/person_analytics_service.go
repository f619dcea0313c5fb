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

type personKey struct {
	period     Period
	personName string
}

type personBucket struct {
	amounts        []decimal.Decimal
	qualityScores  []int
	categoryTotals map[string]decimal.Decimal
	groupTotals    map[string]decimal.Decimal
	locations      map[string]bool
	paymentMethods map[string]bool
	spendingDays   map[string]bool
	weekdayTotal   decimal.Decimal
	weekendTotal   decimal.Decimal
	smallCount     int64
	mediumCount    int64
	largeCount     int64
	xlargeCount    int64
}

type personAnalyticsService struct {
	snapshotRepo  repositories.SnapshotRepositoryInterface
	analyticsRepo repositories.PersonAnalyticsRepositoryInterface
	groupRules    *GroupRules
	metrics       MetricsRecorderInterface
}

func NewPersonAnalyticsService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	analyticsRepo repositories.PersonAnalyticsRepositoryInterface,
	groupRules *GroupRules,
	metrics MetricsRecorderInterface,
) PersonAnalyticsServiceInterface {
	if groupRules == nil {
		groupRules = DefaultGroupRules()
	}
	return &personAnalyticsService{
		snapshotRepo:  snapshotRepo,
		analyticsRepo: analyticsRepo,
		groupRules:    groupRules,
		metrics:       metrics,
	}
}

// Aggregate rebuilds the person analytics table from the latest snapshot.
func (s *personAnalyticsService) Aggregate() (*AggregationResult, error) {
	start := time.Now()

	snapshots, err := s.snapshotRepo.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshotAvailable
	}
	version := snapshots[0].SnapshotVersion

	buckets := make(map[personKey]*personBucket)
	periodSet := make(map[Period]bool)
	for i := range snapshots {
		row := &snapshots[i]
		key := personKey{
			period:     Period{Year: row.SpendingYear, Month: row.SpendingMonth},
			personName: row.PersonName,
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &personBucket{
				categoryTotals: make(map[string]decimal.Decimal),
				groupTotals:    make(map[string]decimal.Decimal),
				locations:      make(map[string]bool),
				paymentMethods: make(map[string]bool),
				spendingDays:   make(map[string]bool),
			}
			buckets[key] = bucket
		}

		amount := row.AmountCleaned
		bucket.amounts = append(bucket.amounts, amount)
		bucket.qualityScores = append(bucket.qualityScores, row.DataQualityScore)
		bucket.categoryTotals[row.CategoryName] = bucket.categoryTotals[row.CategoryName].Add(amount)

		group := s.groupRules.Classify(row.CategoryName, row.CategoryGroup)
		bucket.groupTotals[group] = bucket.groupTotals[group].Add(amount)

		bucket.locations[row.LocationName] = true
		bucket.paymentMethods[row.PaymentMethodName] = true
		bucket.spendingDays[row.SpendingDate.Format("2006-01-02")] = true

		if row.IsWeekend() {
			bucket.weekendTotal = bucket.weekendTotal.Add(amount)
		} else {
			bucket.weekdayTotal = bucket.weekdayTotal.Add(amount)
		}

		switch {
		case amount.LessThan(models.SmallTransactionLimit):
			bucket.smallCount++
		case amount.LessThan(models.MediumTransactionLimit):
			bucket.mediumCount++
		case amount.LessThan(models.LargeTransactionLimit):
			bucket.largeCount++
		default:
			bucket.xlargeCount++
		}
		periodSet[key.period] = true
	}

	keysByPeriod := make(map[Period][]personKey)
	for key := range buckets {
		keysByPeriod[key.period] = append(keysByPeriod[key.period], key)
	}
	for _, keys := range keysByPeriod {
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].personName < keys[j].personName
		})
	}

	computedTotals := make(map[personKey]decimal.Decimal)
	rows := make([]models.PersonAnalytics, 0, len(buckets))
	now := time.Now().UTC()

	for _, period := range sortPeriods(periodSet) {
		daysInMonth := period.DaysInMonth()
		for _, key := range keysByPeriod[period] {
			bucket := buckets[key]

			total := decimal.Zero
			for _, amount := range bucket.amounts {
				total = total.Add(amount)
			}
			count := int64(len(bucket.amounts))

			topCategory, topSpending := topEntry(bucket.categoryTotals)

			prevMonth, err := s.lookupTotal(key, period.Prev(), computedTotals)
			if err != nil {
				return nil, err
			}
			prevYear, err := s.lookupTotal(key, period.PrevYear(), computedTotals)
			if err != nil {
				return nil, err
			}

			essential := bucket.groupTotals[GroupEssential]
			discretionary := bucket.groupTotals[GroupDiscretionary]
			daysWithSpending := int64(len(bucket.spendingDays))

			rows = append(rows, models.PersonAnalytics{
				Year:                          period.Year,
				Month:                         period.Month,
				Quarter:                       period.Quarter(),
				MonthStartDate:                period.MonthStart(),
				PersonName:                    key.personName,
				TotalSpending:                 total.Round(2),
				TransactionCount:              count,
				AvgTransactionAmount:          total.Div(decimal.NewFromInt(count)).Round(2),
				MedianTransactionAmount:       medianDecimal(bucket.amounts),
				TopCategory:                   topCategory,
				TopCategorySpending:           topSpending.Round(2),
				TopCategoryPercent:            ratioPercent(topSpending, total),
				EssentialSpending:             essential.Round(2),
				DiscretionarySpending:         discretionary.Round(2),
				TransportSpending:             bucket.groupTotals[GroupTransport].Round(2),
				HealthcareSpending:            bucket.groupTotals[GroupHealthcare].Round(2),
				EducationSpending:             bucket.groupTotals[GroupEducation].Round(2),
				OtherSpending:                 bucket.groupTotals[GroupOther].Round(2),
				EssentialPercent:              ratioPercent(essential, total),
				DiscretionaryPercent:          ratioPercent(discretionary, total),
				EssentialToDiscretionaryRatio: safeRatio(essential, discretionary),
				UniqueCategoriesCount:         int64(len(bucket.categoryTotals)),
				UniqueLocationsCount:          int64(len(bucket.locations)),
				UniquePaymentMethodsCount:     int64(len(bucket.paymentMethods)),
				WeekdaySpending:               bucket.weekdayTotal.Round(2),
				WeekendSpending:               bucket.weekendTotal.Round(2),
				WeekendSpendingPercent:        ratioPercent(bucket.weekendTotal, total),
				SmallTransactionsCount:        bucket.smallCount,
				MediumTransactionsCount:       bucket.mediumCount,
				LargeTransactionsCount:        bucket.largeCount,
				XlargeTransactionsCount:       bucket.xlargeCount,
				AvgDailySpending:              total.Div(decimal.NewFromInt(int64(daysInMonth))).Round(2),
				AvgWeeklySpending:             total.Div(avgWeeksPerMonth).Round(2),
				DaysWithSpending:              daysWithSpending,
				SpendingFrequencyPercent:      decimal.NewFromInt(daysWithSpending).Div(decimal.NewFromInt(int64(daysInMonth))).Mul(oneHundred).Round(2),
				PrevMonthTotal:                prevMonth,
				MomAbsoluteChange:             absoluteChange(total, prevMonth).Round(2),
				MomPercentChange:              percentChange(total, prevMonth),
				PrevYearTotal:                 prevYear,
				YoyAbsoluteChange:             absoluteChange(total, prevYear).Round(2),
				YoyPercentChange:              percentChange(total, prevYear),
				AvgQualityScore:               averageQuality(bucket.qualityScores),
				SnapshotVersionSource:         version,
				CreatedAt:                     now,
				UpdatedAt:                     now,
			})
			computedTotals[key] = total
		}
	}

	if err := s.analyticsRepo.UpsertBatch(rows); err != nil {
		s.metrics.IncrementCounter("aggregation.runs", map[string]string{
			"stage": models.StagePersonAnalytics, "status": "failed"})
		return nil, fmt.Errorf("failed to write person analytics: %w", err)
	}

	slog.Info("person analytics aggregated",
		"snapshot_version", version,
		"row_count", len(rows),
		"duration_ms", time.Since(start).Milliseconds())

	s.metrics.IncrementCounter("aggregation.runs", map[string]string{
		"stage": models.StagePersonAnalytics, "status": "success"})
	s.metrics.RecordProcessingTime("aggregation.person_analytics", time.Since(start))

	return &AggregationResult{
		Stage:           models.StagePersonAnalytics,
		RowCount:        int64(len(rows)),
		SnapshotVersion: version,
	}, nil
}

// GetByPeriod returns the committed analytics rows for one calendar month.
func (s *personAnalyticsService) GetByPeriod(year, month int) ([]models.PersonAnalytics, error) {
	return s.analyticsRepo.GetByPeriod(year, month)
}

// lookupTotal resolves a person's total for another period, preferring rows
// computed earlier in this run.
func (s *personAnalyticsService) lookupTotal(key personKey, period Period, computed map[personKey]decimal.Decimal) (*decimal.Decimal, error) {
	lookupKey := personKey{period: period, personName: key.personName}
	if total, ok := computed[lookupKey]; ok {
		return &total, nil
	}

	row, err := s.analyticsRepo.GetByKey(period.Year, period.Month, key.personName)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalyticsNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up prior analytics: %w", err)
	}
	total := row.TotalSpending
	return &total, nil
}

// topEntry returns the name with the highest total, name ascending on ties.
func topEntry(totals map[string]decimal.Decimal) (string, decimal.Decimal) {
	var topName string
	var topTotal decimal.Decimal
	for name, total := range totals {
		if topName == "" ||
			total.GreaterThan(topTotal) ||
			(total.Equal(topTotal) && name < topName) {
			topName = name
			topTotal = total
		}
	}
	return topName, topTotal
}
