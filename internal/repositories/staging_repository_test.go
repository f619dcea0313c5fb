package repositories

import (
	"testing"
	"time"

	"spending-warehouse/internal/database"
	"spending-warehouse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StagingRepositorySuite defines the test suite for StagingRepository
type StagingRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo StagingRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *StagingRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewStagingRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *StagingRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestStagingRepositorySuite runs the test suite
func TestStagingRepositorySuite(t *testing.T) {
	suite.Run(t, new(StagingRepositorySuite))
}

func (s *StagingRepositorySuite) createFact(srcID int64, amount float64, date time.Time) *models.StgFactSpending {
	person, err := s.repo.EnsurePerson("Alice")
	s.NoError(err)
	category, err := s.repo.EnsureCategory("Groceries", "Essential")
	s.NoError(err)
	location, err := s.repo.EnsureLocation("Downtown Market", "In-store")
	s.NoError(err)
	method, err := s.repo.EnsurePaymentMethod("Credit Card", "Card")
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
		Description:       "weekly shop",
		DataQualityScore:  95,
	}
	s.NoError(s.repo.CreateFact(fact))
	return fact
}

func (s *StagingRepositorySuite) TestCountFacts() {
	count, err := s.repo.CountFacts()
	s.NoError(err)
	s.Equal(int64(0), count)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.createFact(1, 42.50, date)
	s.createFact(2, 10.00, date)

	count, err = s.repo.CountFacts()
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *StagingRepositorySuite) TestCreateFact_RejectsNegativeAmount() {
	fact := &models.StgFactSpending{
		SrcID:         1,
		SpendingDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AmountCleaned: decimal.NewFromFloat(-5.00),
	}

	err := s.repo.CreateFact(fact)
	s.ErrorIs(err, models.ErrNegativeAmount)
}

func (s *StagingRepositorySuite) TestCreateFact_RejectsInvalidQualityScore() {
	fact := &models.StgFactSpending{
		SrcID:            1,
		SpendingDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AmountCleaned:    decimal.NewFromFloat(5.00),
		DataQualityScore: 150,
	}

	err := s.repo.CreateFact(fact)
	s.ErrorIs(err, models.ErrInvalidQualityScore)
}

func (s *StagingRepositorySuite) TestGetCompleteRows() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.createFact(7, 42.50, date)

	rows, err := s.repo.GetCompleteRows()
	s.NoError(err)
	s.Len(rows, 1)

	row := rows[0]
	s.Equal(int64(7), row.SrcID)
	s.Equal("Alice", row.PersonName)
	s.Equal("Groceries", row.CategoryName)
	s.Equal("Essential", row.CategoryGroup)
	s.Equal("Downtown Market", row.LocationName)
	s.Equal("Credit Card", row.PaymentMethodName)
	s.Equal("Monday", row.SpendingDayOfWeek)
	s.True(row.AmountCleaned.Equal(decimal.NewFromFloat(42.50)))
}

func (s *StagingRepositorySuite) TestGetCompleteRows_OrderedBySpendingID() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.createFact(30, 1.00, date)
	s.createFact(10, 2.00, date)
	s.createFact(20, 3.00, date)

	rows, err := s.repo.GetCompleteRows()
	s.NoError(err)
	s.Len(rows, 3)
	// Insertion order, not src order
	s.Equal(int64(30), rows[0].SrcID)
	s.Equal(int64(10), rows[1].SrcID)
	s.Equal(int64(20), rows[2].SrcID)
}

func (s *StagingRepositorySuite) TestEnsurePerson_Idempotent() {
	first, err := s.repo.EnsurePerson("Bob")
	s.NoError(err)
	s.NotZero(first.PersonID)

	second, err := s.repo.EnsurePerson("Bob")
	s.NoError(err)
	s.Equal(first.PersonID, second.PersonID)

	var count int64
	s.NoError(s.db.Model(&models.StgDimPerson{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *StagingRepositorySuite) TestEnsureCategory_KeepsExistingGroup() {
	first, err := s.repo.EnsureCategory("Dining", "Discretionary")
	s.NoError(err)

	// A second call with a different group must not rewrite the dimension
	second, err := s.repo.EnsureCategory("Dining", "Essential")
	s.NoError(err)
	s.Equal(first.CategoryID, second.CategoryID)
	s.Equal("Discretionary", second.CategoryGroup)
}
