package database

import (
	"fmt"
	"log"
	"time"

	"spending-warehouse/internal/config"
	"spending-warehouse/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Duplicate key violations surface as gorm.ErrDuplicatedKey so the
		// aggregate repositories can report key conflicts.
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.StgDimPerson{},
		&models.StgDimCategory{},
		&models.StgDimLocation{},
		&models.StgDimPaymentMethod{},
		&models.StgFactSpending{},
		&models.SpendingSnapshot{},
		&models.MonthlySpendingSummary{},
		&models.CategoryTrend{},
		&models.PersonAnalytics{},
		&models.PaymentMethodSummary{},
		&models.EtlRun{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Staging indexes
		"CREATE INDEX IF NOT EXISTS idx_stg_fact_spending_date ON stg_fact_spending(spending_date)",
		"CREATE INDEX IF NOT EXISTS idx_stg_fact_person_id ON stg_fact_spending(person_id)",
		"CREATE INDEX IF NOT EXISTS idx_stg_fact_category_id ON stg_fact_spending(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_stg_fact_year_month ON stg_fact_spending(spending_year, spending_month)",
		// Snapshot indexes
		"CREATE INDEX IF NOT EXISTS idx_snapshots_version ON curated_spending_snapshots(snapshot_version)",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_is_latest ON curated_spending_snapshots(is_latest) WHERE is_latest",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_person_name ON curated_spending_snapshots(person_name)",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_category_name ON curated_spending_snapshots(category_name)",
		"CREATE INDEX IF NOT EXISTS idx_snapshots_year_month ON curated_spending_snapshots(spending_year, spending_month)",
		// Aggregate indexes
		"CREATE INDEX IF NOT EXISTS idx_monthly_summary_period ON dst_monthly_spending_summary(year, month)",
		"CREATE INDEX IF NOT EXISTS idx_monthly_summary_version ON dst_monthly_spending_summary(snapshot_version_source)",
		"CREATE INDEX IF NOT EXISTS idx_category_trends_period ON dst_category_trends(year, month)",
		"CREATE INDEX IF NOT EXISTS idx_category_trends_version ON dst_category_trends(snapshot_version_source)",
		"CREATE INDEX IF NOT EXISTS idx_person_analytics_period ON dst_person_analytics(year, month)",
		"CREATE INDEX IF NOT EXISTS idx_person_analytics_version ON dst_person_analytics(snapshot_version_source)",
		"CREATE INDEX IF NOT EXISTS idx_payment_summary_period ON dst_payment_method_summary(year, month)",
		"CREATE INDEX IF NOT EXISTS idx_payment_summary_version ON dst_payment_method_summary(snapshot_version_source)",
		// Run log indexes
		"CREATE INDEX IF NOT EXISTS idx_etl_runs_stage ON etl_runs(stage)",
		"CREATE INDEX IF NOT EXISTS idx_etl_runs_batch_id ON etl_runs(batch_id)",
		"CREATE INDEX IF NOT EXISTS idx_etl_runs_started_at ON etl_runs(started_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
