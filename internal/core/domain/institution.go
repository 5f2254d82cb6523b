package domain

import "github.com/shopspring/decimal"

// Institution is a university or college the tenant places students with.
type Institution struct {
	InstitutionID string  `json:"institutionID"`
	TenantID      string  `json:"tenantID"`
	Name          string  `json:"name"`
	Country       string  `json:"country"`
	City          *string `json:"city,omitempty"`
	Website       *string `json:"website,omitempty"`
	IsActive      bool    `json:"isActive"`
	AuditFields
}

// Course is a programme offered by an institution.
type Course struct {
	CourseID       string          `json:"courseID"`
	InstitutionID  string          `json:"institutionID"`
	Name           string          `json:"name"`
	Level          string          `json:"level"`
	DurationMonths int             `json:"durationMonths"`
	TuitionFee     decimal.Decimal `json:"tuitionFee"`
	CurrencyCode   string          `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
