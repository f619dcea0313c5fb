package repositories

import (
	"fmt"
	"testing"
	"time"

	"spending-warehouse/internal/database"
	"spending-warehouse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SnapshotRepositorySuite defines the test suite for SnapshotRepository
type SnapshotRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    SnapshotRepositoryInterface
	staging StagingRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *SnapshotRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSnapshotRepository(s.db.DB)
	s.staging = NewStagingRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *SnapshotRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestSnapshotRepositorySuite runs the test suite
func TestSnapshotRepositorySuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositorySuite))
}

func (s *SnapshotRepositorySuite) seedFact(srcID int64, amount float64, date time.Time) {
	person, err := s.staging.EnsurePerson(fmt.Sprintf("Person %d", srcID%3))
	s.NoError(err)
	category, err := s.staging.EnsureCategory("Groceries", "Essential")
	s.NoError(err)
	location, err := s.staging.EnsureLocation("Downtown Market", "In-store")
	s.NoError(err)
	method, err := s.staging.EnsurePaymentMethod("Debit Card", "Card")
	s.NoError(err)

	fact := &models.StgFactSpending{
		SrcID:             srcID,
		PersonID:          person.PersonID,
		CategoryID:        category.CategoryID,
		LocationID:        location.LocationID,
		PaymentMethodID:   method.PaymentMethodID,
		SpendingDate:      date,
		SpendingYear:      date.Year(),
		SpendingMonth:     int(date.Month()),
		SpendingQuarter:   (int(date.Month())-1)/3 + 1,
		SpendingDayOfWeek: date.Weekday().String(),
		AmountCleaned:     decimal.NewFromFloat(amount),
		CurrencyCode:      "USD",
		DataQualityScore:  90,
	}
	s.NoError(s.staging.CreateFact(fact))
}

func (s *SnapshotRepositorySuite) TestMaxVersion_EmptyTable() {
	max, err := s.repo.MaxVersion()
	s.NoError(err)
	s.Equal(int64(0), max)
}

func (s *SnapshotRepositorySuite) TestCaptureVersion_FirstVersion() {
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	s.seedFact(1, 25.00, date)
	s.seedFact(2, 75.00, date)
	s.seedFact(3, 100.00, date)

	snapshotDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	version, count, err := s.repo.CaptureVersion(snapshotDate, "BATCH_001")
	s.NoError(err)
	s.Equal(int64(1), version)
	s.Equal(int64(3), count)

	rows, err := s.repo.GetLatest()
	s.NoError(err)
	s.Len(rows, 3)
	for _, row := range rows {
		s.Equal(int64(1), row.SnapshotVersion)
		s.True(row.IsLatest)
		s.Equal("BATCH_001", row.SnapshotBatchID)
		s.Equal("Groceries", row.CategoryName)
		s.Equal(5, row.SpendingDayOfWeek) // Friday
	}
}

func (s *SnapshotRepositorySuite) TestCaptureVersion_RetiresPreviousVersion() {
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	s.seedFact(1, 25.00, date)
	s.seedFact(2, 75.00, date)
	s.seedFact(3, 100.00, date)

	snapshotDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	version, count, err := s.repo.CaptureVersion(snapshotDate, "BATCH_001")
	s.NoError(err)
	s.Equal(int64(1), version)
	s.Equal(int64(3), count)

	// Two more staging rows arrive, then a second capture
	s.seedFact(4, 5.00, date)
	s.seedFact(5, 15.00, date)

	version, count, err = s.repo.CaptureVersion(snapshotDate.AddDate(0, 0, 1), "BATCH_002")
	s.NoError(err)
	s.Equal(int64(2), version)
	s.Equal(int64(5), count)

	// Version 1 is intact but no longer latest
	v1Rows, err := s.repo.GetByVersion(1)
	s.NoError(err)
	s.Len(v1Rows, 3)
	for _, row := range v1Rows {
		s.False(row.IsLatest)
	}

	latest, err := s.repo.GetLatest()
	s.NoError(err)
	s.Len(latest, 5)
	for _, row := range latest {
		s.Equal(int64(2), row.SnapshotVersion)
	}

	latestVersion, err := s.repo.LatestVersion()
	s.NoError(err)
	s.Equal(int64(2), latestVersion)
}

func (s *SnapshotRepositorySuite) TestCaptureVersion_ExactlyOneLatest() {
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	s.seedFact(1, 25.00, date)

	snapshotDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, _, err := s.repo.CaptureVersion(snapshotDate, fmt.Sprintf("BATCH_%03d", i+1))
		s.NoError(err)
	}

	count, err := s.repo.CountLatestVersions()
	s.NoError(err)
	s.Equal(int64(1), count)

	max, err := s.repo.MaxVersion()
	s.NoError(err)
	s.Equal(int64(3), max)
}

func (s *SnapshotRepositorySuite) TestCaptureVersion_SnapshotIsFrozenCopy() {
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	s.seedFact(1, 25.00, date)

	snapshotDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := s.repo.CaptureVersion(snapshotDate, "BATCH_001")
	s.NoError(err)

	// Renaming the dimension after capture must not change the snapshot
	s.NoError(s.db.Model(&models.StgDimCategory{}).
		Where("category_name = ?", "Groceries").
		Update("category_name", "Food").Error)

	rows, err := s.repo.GetLatest()
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("Groceries", rows[0].CategoryName)
}

func (s *SnapshotRepositorySuite) TestVersionSummaries() {
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	s.seedFact(1, 25.00, date)
	s.seedFact(2, 75.00, date.AddDate(0, 0, 3))

	snapshotDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := s.repo.CaptureVersion(snapshotDate, "BATCH_001")
	s.NoError(err)

	s.seedFact(3, 100.00, date)
	_, _, err = s.repo.CaptureVersion(snapshotDate.AddDate(0, 0, 1), "BATCH_002")
	s.NoError(err)

	summaries, err := s.repo.VersionSummaries(10)
	s.NoError(err)
	s.Len(summaries, 2)

	// Newest first
	s.Equal(int64(2), summaries[0].SnapshotVersion)
	s.True(summaries[0].IsLatest)
	s.Equal(int64(3), summaries[0].RecordCount)
	s.True(summaries[0].TotalAmount.Equal(decimal.NewFromFloat(200.00)))
	s.True(summaries[0].SnapshotDate.Equal(snapshotDate.AddDate(0, 0, 1)))
	s.True(summaries[0].EarliestTransaction.Equal(date))
	s.True(summaries[0].LatestTransaction.Equal(date.AddDate(0, 0, 3)))

	s.Equal(int64(1), summaries[1].SnapshotVersion)
	s.False(summaries[1].IsLatest)
	s.Equal(int64(2), summaries[1].RecordCount)
	s.True(summaries[1].SnapshotDate.Equal(snapshotDate))

	// Limit applies
	summaries, err = s.repo.VersionSummaries(1)
	s.NoError(err)
	s.Len(summaries, 1)
	s.Equal(int64(2), summaries[0].SnapshotVersion)
}
