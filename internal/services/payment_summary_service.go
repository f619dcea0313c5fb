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

type paymentKey struct {
	period     Period
	methodName string
}

type paymentBucket struct {
	amounts        []decimal.Decimal
	persons        map[string]bool
	categoryTotals map[string]decimal.Decimal
	paymentType    string
}

// priorPaymentUsage is the MoM lookback unit for payment methods: both the
// transaction count and the spent amount trend month over month.
type priorPaymentUsage struct {
	transactionCount int64
	totalAmount      decimal.Decimal
}

type paymentSummaryService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	summaryRepo  repositories.PaymentSummaryRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewPaymentSummaryService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	summaryRepo repositories.PaymentSummaryRepositoryInterface,
	metrics MetricsRecorderInterface,
) PaymentSummaryServiceInterface {
	return &paymentSummaryService{
		snapshotRepo: snapshotRepo,
		summaryRepo:  summaryRepo,
		metrics:      metrics,
	}
}

// Aggregate rebuilds the payment method summary from the latest snapshot.
func (s *paymentSummaryService) Aggregate() (*AggregationResult, error) {
	start := time.Now()

	snapshots, err := s.snapshotRepo.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshotAvailable
	}
	version := snapshots[0].SnapshotVersion

	buckets := make(map[paymentKey]*paymentBucket)
	periodSet := make(map[Period]bool)
	for i := range snapshots {
		row := &snapshots[i]
		key := paymentKey{
			period:     Period{Year: row.SpendingYear, Month: row.SpendingMonth},
			methodName: row.PaymentMethodName,
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &paymentBucket{
				persons:        make(map[string]bool),
				categoryTotals: make(map[string]decimal.Decimal),
				paymentType:    row.PaymentType,
			}
			buckets[key] = bucket
		}
		bucket.amounts = append(bucket.amounts, row.AmountCleaned)
		bucket.persons[row.PersonName] = true
		bucket.categoryTotals[row.CategoryName] = bucket.categoryTotals[row.CategoryName].Add(row.AmountCleaned)
		periodSet[key.period] = true
	}

	totalsByPeriod := make(map[Period]map[string]decimal.Decimal)
	for key, bucket := range buckets {
		if totalsByPeriod[key.period] == nil {
			totalsByPeriod[key.period] = make(map[string]decimal.Decimal)
		}
		total := decimal.Zero
		for _, amount := range bucket.amounts {
			total = total.Add(amount)
		}
		totalsByPeriod[key.period][key.methodName] = total
	}

	computed := make(map[paymentKey]priorPaymentUsage)
	rows := make([]models.PaymentMethodSummary, 0, len(buckets))
	now := time.Now().UTC()

	for _, period := range sortPeriods(periodSet) {
		methodTotals := totalsByPeriod[period]
		ranks := denseRanks(methodTotals)

		monthAmount := decimal.Zero
		var monthCount int64
		for methodName, total := range methodTotals {
			monthAmount = monthAmount.Add(total)
			monthCount += int64(len(buckets[paymentKey{period: period, methodName: methodName}].amounts))
		}

		for _, methodName := range sortedNames(methodTotals) {
			key := paymentKey{period: period, methodName: methodName}
			bucket := buckets[key]
			total := methodTotals[methodName]
			count := int64(len(bucket.amounts))

			min := bucket.amounts[0]
			max := bucket.amounts[0]
			for _, amount := range bucket.amounts {
				if amount.LessThan(min) {
					min = amount
				}
				if amount.GreaterThan(max) {
					max = amount
				}
			}

			prev, err := s.lookupUsage(key, period.Prev(), computed)
			if err != nil {
				return nil, err
			}

			row := models.PaymentMethodSummary{
				Year:                  period.Year,
				Month:                 period.Month,
				Quarter:               period.Quarter(),
				MonthStartDate:        period.MonthStart(),
				PaymentMethodName:     methodName,
				PaymentType:           bucket.paymentType,
				TransactionCount:      count,
				UniquePersonsCount:    int64(len(bucket.persons)),
				TotalAmount:           total.Round(2),
				AvgTransactionAmount:  total.Div(decimal.NewFromInt(count)).Round(2),
				MinTransactionAmount:  min,
				MaxTransactionAmount:  max,
				PercentOfTransactions: ratioPercent(decimal.NewFromInt(count), decimal.NewFromInt(monthCount)),
				PercentOfSpending:     ratioPercent(total, monthAmount),
				PaymentMethodRank:     ranks[methodName],
				SnapshotVersionSource: version,
				CreatedAt:             now,
				UpdatedAt:             now,
			}

			setTopCategories(&row, bucket.categoryTotals)

			if prev != nil {
				prevCount := prev.transactionCount
				prevAmount := prev.totalAmount
				row.PrevMonthTransactionCount = &prevCount
				row.PrevMonthAmount = &prevAmount
				row.MomTransactionChangePercent = percentChange(decimal.NewFromInt(count), decimalPtr(decimal.NewFromInt(prevCount)))
				row.MomAmountChangePercent = percentChange(total, &prevAmount)
			}

			rows = append(rows, row)
			computed[key] = priorPaymentUsage{transactionCount: count, totalAmount: total}
		}
	}

	if err := s.summaryRepo.UpsertBatch(rows); err != nil {
		s.metrics.IncrementCounter("aggregation.runs", map[string]string{
			"stage": models.StagePaymentSummary, "status": "failed"})
		return nil, fmt.Errorf("failed to write payment method summaries: %w", err)
	}

	slog.Info("payment method summary aggregated",
		"snapshot_version", version,
		"row_count", len(rows),
		"duration_ms", time.Since(start).Milliseconds())

	s.metrics.IncrementCounter("aggregation.runs", map[string]string{
		"stage": models.StagePaymentSummary, "status": "success"})
	s.metrics.RecordProcessingTime("aggregation.payment_summary", time.Since(start))

	return &AggregationResult{
		Stage:           models.StagePaymentSummary,
		RowCount:        int64(len(rows)),
		SnapshotVersion: version,
	}, nil
}

// GetByPeriod returns the committed summary rows for one calendar month.
func (s *paymentSummaryService) GetByPeriod(year, month int) ([]models.PaymentMethodSummary, error) {
	return s.summaryRepo.GetByPeriod(year, month)
}

// lookupUsage resolves a payment method's prior-month usage, preferring rows
// computed earlier in this run.
func (s *paymentSummaryService) lookupUsage(key paymentKey, period Period, computed map[paymentKey]priorPaymentUsage) (*priorPaymentUsage, error) {
	lookupKey := paymentKey{period: period, methodName: key.methodName}
	if usage, ok := computed[lookupKey]; ok {
		return &usage, nil
	}

	row, err := s.summaryRepo.GetByKey(period.Year, period.Month, key.methodName)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentSummaryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up prior payment summary: %w", err)
	}
	return &priorPaymentUsage{
		transactionCount: row.TransactionCount,
		totalAmount:      row.TotalAmount,
	}, nil
}

// setTopCategories fills the top three categories by amount, name ascending
// on ties.
func setTopCategories(row *models.PaymentMethodSummary, totals map[string]decimal.Decimal) {
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

	for i := 0; i < len(names) && i < 3; i++ {
		name := names[i]
		amount := totals[name].Round(2)
		switch i {
		case 0:
			row.TopCategory1 = &name
			row.TopCategory1Amount = &amount
		case 1:
			row.TopCategory2 = &name
			row.TopCategory2Amount = &amount
		case 2:
			row.TopCategory3 = &name
			row.TopCategory3Amount = &amount
		}
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
