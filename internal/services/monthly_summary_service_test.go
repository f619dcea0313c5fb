package services

import (
	"testing"
	"time"

	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories"
	"spending-warehouse/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MonthlySummaryServiceTestSuite defines the test suite for MonthlySummaryService
type MonthlySummaryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSnapshotRepo *repository_mocks.MockSnapshotRepositoryInterface
	mockSummaryRepo  *repository_mocks.MockMonthlySummaryRepositoryInterface
	service          MonthlySummaryServiceInterface
}

// SetupTest runs before each test
func (s *MonthlySummaryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSnapshotRepo = repository_mocks.NewMockSnapshotRepositoryInterface(s.ctrl)
	s.mockSummaryRepo = repository_mocks.NewMockMonthlySummaryRepositoryInterface(s.ctrl)
	s.service = NewMonthlySummaryService(s.mockSnapshotRepo, s.mockSummaryRepo, noopMetrics{})
}

// TearDownTest runs after each test
func (s *MonthlySummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestMonthlySummaryServiceSuite runs the test suite
func TestMonthlySummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(MonthlySummaryServiceTestSuite))
}

func monthlySnapshotRow(version int64, person string, year, month, day int, amount float64) models.SpendingSnapshot {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return models.SpendingSnapshot{
		SnapshotVersion:   version,
		IsLatest:          true,
		PersonName:        person,
		CategoryName:      "Groceries",
		CategoryGroup:     "Essential",
		LocationName:      "Downtown Market",
		LocationType:      "In-store",
		SpendingDate:      date,
		SpendingYear:      year,
		SpendingMonth:     month,
		SpendingQuarter:   (month-1)/3 + 1,
		SpendingDayOfWeek: models.WeekdayNumber(date.Weekday().String()),
		AmountCleaned:     decimal.NewFromFloat(amount),
		CurrencyCode:      "USD",
		DataQualityScore:  90,
	}
}

func (s *MonthlySummaryServiceTestSuite) TestAggregate_NoSnapshot() {
	s.mockSnapshotRepo.EXPECT().GetLatest().Return(nil, nil)

	result, err := s.service.Aggregate()
	s.ErrorIs(err, ErrNoSnapshotAvailable)
	s.Nil(result)
}

func (s *MonthlySummaryServiceTestSuite) TestAggregate_MonthOverMonthChange() {
	// Alice spends 400 in January across two transactions, then 600 in February
	snapshots := []models.SpendingSnapshot{
		monthlySnapshotRow(3, "Alice", 2025, 1, 10, 150.00),
		monthlySnapshotRow(3, "Alice", 2025, 1, 20, 250.00),
		monthlySnapshotRow(3, "Alice", 2025, 2, 5, 600.00),
	}

	s.mockSnapshotRepo.EXPECT().GetLatest().Return(snapshots, nil)
	// No history is committed yet, every prior-period lookup misses
	s.mockSummaryRepo.EXPECT().
		GetByKey(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrSummaryNotFound).
		AnyTimes()

	var written []models.MonthlySpendingSummary
	s.mockSummaryRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(rows []models.MonthlySpendingSummary) error {
			written = rows
			return nil
		})

	result, err := s.service.Aggregate()
	s.NoError(err)
	s.Equal(int64(2), result.RowCount)
	s.Equal(int64(3), result.SnapshotVersion)
	s.Equal(models.StageMonthlySummary, result.Stage)

	s.Len(written, 2)
	january := written[0]
	february := written[1]

	s.Equal(1, january.Month)
	s.True(january.TotalSpending.Equal(decimal.NewFromFloat(400.00)))
	s.Equal(int64(2), january.TransactionCount)
	s.True(january.AvgTransactionAmount.Equal(decimal.NewFromFloat(200.00)))
	s.True(january.MinTransactionAmount.Equal(decimal.NewFromFloat(150.00)))
	s.True(january.MaxTransactionAmount.Equal(decimal.NewFromFloat(250.00)))
	// First observed month has no prior period
	s.Nil(january.PrevMonthSpending)
	s.Nil(january.MomPercentChange)
	s.True(january.MomAbsoluteChange.Equal(decimal.NewFromFloat(400.00)))

	s.Equal(2, february.Month)
	s.True(february.TotalSpending.Equal(decimal.NewFromFloat(600.00)))
	// February sees January from the same run
	s.NotNil(february.PrevMonthSpending)
	s.True(february.PrevMonthSpending.Equal(decimal.NewFromFloat(400.00)))
	s.True(february.MomAbsoluteChange.Equal(decimal.NewFromFloat(200.00)))
	s.NotNil(february.MomPercentChange)
	s.True(february.MomPercentChange.Equal(decimal.NewFromFloat(50.00)))
}

func (s *MonthlySummaryServiceTestSuite) TestAggregate_YearOverYearFromCommittedRows() {
	snapshots := []models.SpendingSnapshot{
		monthlySnapshotRow(5, "Alice", 2025, 3, 10, 300.00),
	}

	s.mockSnapshotRepo.EXPECT().GetLatest().Return(snapshots, nil)

	// The previous month misses, the same month last year was committed earlier
	s.mockSummaryRepo.EXPECT().
		GetByKey(2025, 2, "Alice", "Groceries", "Downtown Market").
		Return(nil, repositories.ErrSummaryNotFound)
	s.mockSummaryRepo.EXPECT().
		GetByKey(2024, 3, "Alice", "Groceries", "Downtown Market").
		Return(&models.MonthlySpendingSummary{
			TotalSpending: decimal.NewFromFloat(200.00),
		}, nil)

	var written []models.MonthlySpendingSummary
	s.mockSummaryRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(rows []models.MonthlySpendingSummary) error {
			written = rows
			return nil
		})

	_, err := s.service.Aggregate()
	s.NoError(err)
	s.Len(written, 1)

	row := written[0]
	s.NotNil(row.PrevYearSpending)
	s.True(row.PrevYearSpending.Equal(decimal.NewFromFloat(200.00)))
	s.True(row.YoyAbsoluteChange.Equal(decimal.NewFromFloat(100.00)))
	s.NotNil(row.YoyPercentChange)
	s.True(row.YoyPercentChange.Equal(decimal.NewFromFloat(50.00)))
}

func (s *MonthlySummaryServiceTestSuite) TestAggregate_ZeroPriorTotalYieldsNullPercent() {
	snapshots := []models.SpendingSnapshot{
		monthlySnapshotRow(5, "Alice", 2025, 2, 1, 0.00),
		monthlySnapshotRow(5, "Alice", 2025, 3, 1, 150.00),
	}

	s.mockSnapshotRepo.EXPECT().GetLatest().Return(snapshots, nil)
	s.mockSummaryRepo.EXPECT().
		GetByKey(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrSummaryNotFound).
		AnyTimes()

	var written []models.MonthlySpendingSummary
	s.mockSummaryRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(rows []models.MonthlySpendingSummary) error {
			written = rows
			return nil
		})

	_, err := s.service.Aggregate()
	s.NoError(err)
	s.Len(written, 2)

	march := written[1]
	s.NotNil(march.PrevMonthSpending)
	s.True(march.PrevMonthSpending.IsZero())
	// Division by a zero prior total is undefined and must stay null
	s.Nil(march.MomPercentChange)
	s.True(march.MomAbsoluteChange.Equal(decimal.NewFromFloat(150.00)))
}

func (s *MonthlySummaryServiceTestSuite) TestGetByPeriod_Delegates() {
	expected := []models.MonthlySpendingSummary{{Year: 2025, Month: 3}}
	s.mockSummaryRepo.EXPECT().GetByPeriod(2025, 3).Return(expected, nil)

	rows, err := s.service.GetByPeriod(2025, 3)
	s.NoError(err)
	s.Len(rows, 1)
}
