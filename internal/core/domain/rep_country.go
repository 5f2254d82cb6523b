package domain

// DefaultStatusName is the initial pipeline stage seeded for every RepCountry.
const DefaultStatusName = "New"

// RepCountry is a tenant's representation arrangement for one country.
type RepCountry struct {
	RepCountryID string             `json:"repCountryID"`
	TenantID     string             `json:"tenantID"`
	CountryName  string             `json:"countryName"`
	Description  *string            `json:"description,omitempty"`
	IsActive     bool               `json:"isActive"`
	Statuses     []RepCountryStatus `json:"statuses,omitempty"`
	AuditFields
}

// RepCountryStatus is an ordered stage in a RepCountry's pipeline.
// A protected status cannot have its active flag changed.
type RepCountryStatus struct {
	StatusID     string      `json:"statusID"`
	RepCountryID string      `json:"repCountryID"`
	StatusName   string      `json:"statusName"`
	Order        int         `json:"order"`
	IsActive     bool        `json:"isActive"`
	IsProtected  bool        `json:"isProtected"`
	Notes        *string     `json:"notes,omitempty"`
	SubStatuses  []SubStatus `json:"subStatuses,omitempty"`
	AuditFields
}

// SubStatus is an ordered child stage of a RepCountryStatus.
type SubStatus struct {
	SubStatusID        string  `json:"subStatusID"`
	RepCountryStatusID string  `json:"repCountryStatusID"`
	Name               string  `json:"name"`
	Order              int     `json:"order"`
	IsActive           bool    `json:"isActive"`
	Description        *string `json:"description,omitempty"`
	AuditFields
}

// StatusOrder assigns an order to the status with the given name.
type StatusOrder struct {
	StatusName string `json:"statusName"`
	Order      int    `json:"order"`
}

// NextOrder returns the order for an entry appended after currentMax.
// currentMax is zero for an empty collection.
func NextOrder(currentMax int) int {
	if currentMax < 0 {
		currentMax = 0
	}
	return currentMax + 1
}
