package repositories

import (
	"time"

	"spending-warehouse/internal/models"
)

// StagingRepositoryInterface defines read access to the normalized STG store
// plus the write helpers the staging seeder uses.
type StagingRepositoryInterface interface {
	CountFacts() (int64, error)
	GetCompleteRows() ([]models.CompleteSpendingRow, error)
	CreateFact(fact *models.StgFactSpending) error
	EnsurePerson(name string) (*models.StgDimPerson, error)
	EnsureCategory(name, group string) (*models.StgDimCategory, error)
	EnsureLocation(name, locationType string) (*models.StgDimLocation, error)
	EnsurePaymentMethod(name, paymentType string) (*models.StgDimPaymentMethod, error)
}

// SnapshotRepositoryInterface defines the contract for the versioned
// snapshot store. CaptureVersion is the single atomic unit that retires the
// current latest version and freezes a new complete copy of the STG data.
type SnapshotRepositoryInterface interface {
	MaxVersion() (int64, error)
	CaptureVersion(snapshotDate time.Time, batchID string) (version int64, recordCount int64, err error)
	GetLatest() ([]models.SpendingSnapshot, error)
	GetByVersion(version int64) ([]models.SpendingSnapshot, error)
	LatestVersion() (int64, error)
	CountLatestVersions() (int64, error)
	VersionSummaries(limit int) ([]models.SnapshotVersionSummary, error)
}

// MonthlySummaryRepositoryInterface defines the contract for the
// person/category/location monthly aggregate table.
type MonthlySummaryRepositoryInterface interface {
	UpsertBatch(rows []models.MonthlySpendingSummary) error
	Insert(row *models.MonthlySpendingSummary) error
	GetByKey(year, month int, personName, categoryName, locationName string) (*models.MonthlySpendingSummary, error)
	GetByPeriod(year, month int) ([]models.MonthlySpendingSummary, error)
	CountForVersion(version int64) (int64, error)
}

// CategoryTrendRepositoryInterface defines the contract for the category
// trend aggregate table.
type CategoryTrendRepositoryInterface interface {
	UpsertBatch(rows []models.CategoryTrend) error
	Insert(row *models.CategoryTrend) error
	GetByKey(year, month int, categoryName string) (*models.CategoryTrend, error)
	GetByPeriod(year, month int) ([]models.CategoryTrend, error)
	CountForVersion(version int64) (int64, error)
}

// PersonAnalyticsRepositoryInterface defines the contract for the per-person
// behavioral aggregate table.
type PersonAnalyticsRepositoryInterface interface {
	UpsertBatch(rows []models.PersonAnalytics) error
	Insert(row *models.PersonAnalytics) error
	GetByKey(year, month int, personName string) (*models.PersonAnalytics, error)
	GetByPeriod(year, month int) ([]models.PersonAnalytics, error)
	CountForVersion(version int64) (int64, error)
}

// PaymentSummaryRepositoryInterface defines the contract for the payment
// method aggregate table.
type PaymentSummaryRepositoryInterface interface {
	UpsertBatch(rows []models.PaymentMethodSummary) error
	Insert(row *models.PaymentMethodSummary) error
	GetByKey(year, month int, paymentMethodName string) (*models.PaymentMethodSummary, error)
	GetByPeriod(year, month int) ([]models.PaymentMethodSummary, error)
	CountForVersion(version int64) (int64, error)
}

// EtlRunRepositoryInterface defines the contract for the warehouse run log.
type EtlRunRepositoryInterface interface {
	Create(run *models.EtlRun) error
	Update(run *models.EtlRun) error
	GetRecent(limit int) ([]models.EtlRun, error)
	GetByStage(stage string, limit int) ([]models.EtlRun, error)
}
