package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"spending-warehouse/internal/config"
	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories"
)

// seedCategories is the fixed category catalog for synthetic data. Groups
// match the default classification so seeded data exercises every group
// column.
var seedCategories = []struct {
	name  string
	group string
}{
	{"Groceries", GroupEssential},
	{"Rent", GroupEssential},
	{"Utilities", GroupEssential},
	{"Dining", GroupDiscretionary},
	{"Entertainment", GroupDiscretionary},
	{"Shopping", GroupDiscretionary},
	{"Travel", GroupDiscretionary},
	{"Fuel", GroupTransport},
	{"Parking", GroupTransport},
	{"Pharmacy", GroupHealthcare},
	{"Fitness", GroupHealthcare},
	{"Books", GroupEducation},
	{"Miscellaneous", GroupOther},
}

var seedLocations = []struct {
	name         string
	locationType string
}{
	{"Downtown Market", "Store"},
	{"Riverside Mall", "Mall"},
	{"Central Station Kiosk", "Kiosk"},
	{"Online Store", "Online"},
	{"Airport Terminal", "Travel"},
	{"Neighborhood Pharmacy", "Store"},
}

var seedPaymentMethods = []struct {
	name        string
	paymentType string
}{
	{"Visa Credit", "Credit Card"},
	{"Mastercard Debit", "Debit Card"},
	{"Bank Transfer", "Transfer"},
	{"Cash", "Cash"},
	{"Mobile Wallet", "Digital"},
}

type stagingSeeder struct {
	stagingRepo repositories.StagingRepositoryInterface
	cfg         config.EtlConfig
	faker       *gofakeit.Faker
}

func NewStagingSeeder(stagingRepo repositories.StagingRepositoryInterface, cfg config.EtlConfig) StagingSeederInterface {
	return &stagingSeeder{
		stagingRepo: stagingRepo,
		cfg:         cfg,
		faker:       gofakeit.New(0),
	}
}

// SeedIfEmpty fills the STG store with synthetic spending data when it is
// empty. It returns the number of fact rows created, zero when the store
// already holds data.
func (s *stagingSeeder) SeedIfEmpty() (int64, error) {
	count, err := s.stagingRepo.CountFacts()
	if err != nil {
		return 0, fmt.Errorf("failed to check staging store: %w", err)
	}
	if count > 0 {
		slog.Info("staging store already populated, skipping seed", "fact_count", count)
		return 0, nil
	}

	personCount := s.cfg.SeedPersonCount
	if personCount <= 0 {
		personCount = 8
	}
	recordCount := s.cfg.SeedRecordCount
	if recordCount <= 0 {
		recordCount = 500
	}
	months := s.cfg.SeedMonthsOfData
	if months <= 0 {
		months = 6
	}

	persons := make([]*models.StgDimPerson, 0, personCount)
	for i := 0; i < personCount; i++ {
		person, err := s.stagingRepo.EnsurePerson(s.faker.Name())
		if err != nil {
			return 0, err
		}
		persons = append(persons, person)
	}

	categories := make([]*models.StgDimCategory, 0, len(seedCategories))
	for _, c := range seedCategories {
		category, err := s.stagingRepo.EnsureCategory(c.name, c.group)
		if err != nil {
			return 0, err
		}
		categories = append(categories, category)
	}

	locations := make([]*models.StgDimLocation, 0, len(seedLocations))
	for _, l := range seedLocations {
		location, err := s.stagingRepo.EnsureLocation(l.name, l.locationType)
		if err != nil {
			return 0, err
		}
		locations = append(locations, location)
	}

	methods := make([]*models.StgDimPaymentMethod, 0, len(seedPaymentMethods))
	for _, m := range seedPaymentMethods {
		method, err := s.stagingRepo.EnsurePaymentMethod(m.name, m.paymentType)
		if err != nil {
			return 0, err
		}
		methods = append(methods, method)
	}

	end := time.Now().UTC()
	start := end.AddDate(0, -months, 0)
	rangeDays := int(end.Sub(start).Hours() / 24)

	var created int64
	for i := 0; i < recordCount; i++ {
		spendingDate := start.AddDate(0, 0, s.faker.Number(0, rangeDays)).Truncate(24 * time.Hour)
		amount := decimal.NewFromFloat(s.faker.Float64Range(1, 800)).Round(2)

		fact := &models.StgFactSpending{
			SrcID:             int64(i + 1),
			PersonID:          persons[s.faker.Number(0, len(persons)-1)].PersonID,
			CategoryID:        categories[s.faker.Number(0, len(categories)-1)].CategoryID,
			LocationID:        locations[s.faker.Number(0, len(locations)-1)].LocationID,
			PaymentMethodID:   methods[s.faker.Number(0, len(methods)-1)].PaymentMethodID,
			SpendingDate:      spendingDate,
			SpendingYear:      spendingDate.Year(),
			SpendingMonth:     int(spendingDate.Month()),
			SpendingQuarter:   (int(spendingDate.Month())-1)/3 + 1,
			SpendingDayOfWeek: spendingDate.Weekday().String(),
			AmountCleaned:     amount,
			CurrencyCode:      "USD",
			Description:       s.faker.ProductName(),
			DataQualityScore:  s.faker.Number(70, 100),
		}
		if err := s.stagingRepo.CreateFact(fact); err != nil {
			return created, fmt.Errorf("failed to seed fact row %d: %w", i+1, err)
		}
		created++
	}

	slog.Info("staging store seeded",
		"fact_count", created,
		"person_count", len(persons),
		"months", months)

	return created, nil
}
