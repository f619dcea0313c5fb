package repositories

import (
	"errors"
	"fmt"

	"spending-warehouse/internal/models"

	"gorm.io/gorm"
)

// completeRowsSQL joins the STG fact to all four dimensions. The snapshot
// stage copies exactly this shape, so dimension values are resolved once at
// capture time and frozen into the snapshot rows.
const completeRowsSQL = `
	SELECT
		f.spending_id,
		f.src_id,
		f.person_id,
		f.category_id,
		f.location_id,
		f.payment_method_id,
		p.person_name,
		c.category_name,
		c.category_group,
		l.location_name,
		l.location_type,
		pm.payment_method_name,
		pm.payment_type,
		f.spending_date,
		f.spending_year,
		f.spending_month,
		f.spending_quarter,
		f.spending_day_of_week,
		f.amount_cleaned,
		f.currency_code,
		f.description,
		f.data_quality_score
	FROM stg_fact_spending f
	JOIN stg_dim_person p ON p.person_id = f.person_id
	JOIN stg_dim_category c ON c.category_id = f.category_id
	JOIN stg_dim_location l ON l.location_id = f.location_id
	JOIN stg_dim_payment_method pm ON pm.payment_method_id = f.payment_method_id
	ORDER BY f.spending_id ASC
`

// stagingRepository implements StagingRepositoryInterface
type stagingRepository struct {
	db *gorm.DB
}

// NewStagingRepository creates a new staging repository
func NewStagingRepository(db *gorm.DB) StagingRepositoryInterface {
	return &stagingRepository{
		db: db,
	}
}

// CountFacts returns the number of rows in the STG fact table.
func (r *stagingRepository) CountFacts() (int64, error) {
	var count int64
	if err := r.db.Model(&models.StgFactSpending{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count staging facts: %w", err)
	}
	return count, nil
}

// GetCompleteRows retrieves every fact row joined to its dimensions.
func (r *stagingRepository) GetCompleteRows() ([]models.CompleteSpendingRow, error) {
	var rows []models.CompleteSpendingRow
	if err := r.db.Raw(completeRowsSQL).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get complete staging rows: %w", err)
	}
	return rows, nil
}

// CreateFact inserts a cleaned fact row into the STG store.
func (r *stagingRepository) CreateFact(fact *models.StgFactSpending) error {
	if err := fact.Validate(); err != nil {
		return err
	}
	if err := r.db.Create(fact).Error; err != nil {
		return fmt.Errorf("failed to create staging fact: %w", err)
	}
	return nil
}

// EnsurePerson returns the person dimension row for the name, creating it if missing.
func (r *stagingRepository) EnsurePerson(name string) (*models.StgDimPerson, error) {
	var person models.StgDimPerson
	err := r.db.Where("person_name = ?", name).First(&person).Error
	if err == nil {
		return &person, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up person dimension: %w", err)
	}

	person = models.StgDimPerson{PersonName: name}
	if err := r.db.Create(&person).Error; err != nil {
		return nil, fmt.Errorf("failed to create person dimension: %w", err)
	}
	return &person, nil
}

// EnsureCategory returns the category dimension row for the name, creating it if missing.
func (r *stagingRepository) EnsureCategory(name, group string) (*models.StgDimCategory, error) {
	var category models.StgDimCategory
	err := r.db.Where("category_name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up category dimension: %w", err)
	}

	category = models.StgDimCategory{CategoryName: name, CategoryGroup: group}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category dimension: %w", err)
	}
	return &category, nil
}

// EnsureLocation returns the location dimension row for the name, creating it if missing.
func (r *stagingRepository) EnsureLocation(name, locationType string) (*models.StgDimLocation, error) {
	var location models.StgDimLocation
	err := r.db.Where("location_name = ?", name).First(&location).Error
	if err == nil {
		return &location, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up location dimension: %w", err)
	}

	location = models.StgDimLocation{LocationName: name, LocationType: locationType}
	if err := r.db.Create(&location).Error; err != nil {
		return nil, fmt.Errorf("failed to create location dimension: %w", err)
	}
	return &location, nil
}

// EnsurePaymentMethod returns the payment method dimension row for the name,
// creating it if missing.
func (r *stagingRepository) EnsurePaymentMethod(name, paymentType string) (*models.StgDimPaymentMethod, error) {
	var method models.StgDimPaymentMethod
	err := r.db.Where("payment_method_name = ?", name).First(&method).Error
	if err == nil {
		return &method, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up payment method dimension: %w", err)
	}

	method = models.StgDimPaymentMethod{PaymentMethodName: name, PaymentType: paymentType}
	if err := r.db.Create(&method).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment method dimension: %w", err)
	}
	return &method, nil
}
