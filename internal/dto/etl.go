package dto

// PeriodQuery selects one calendar month of aggregate data.
type PeriodQuery struct {
	Year  int `query:"year" json:"year" validate:"required,warehouse_year"`
	Month int `query:"month" json:"month" validate:"required,min=1,max=12"`
}

// RunLogQuery filters the ETL run log.
type RunLogQuery struct {
	Stage string `query:"stage" json:"stage" validate:"omitempty,etl_stage"`
	Limit int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=500"`
}

// VersionSummaryQuery caps how many snapshot versions are reported.
type VersionSummaryQuery struct {
	Limit int `query:"limit" json:"limit" validate:"omitempty,min=1,max=200"`
}
