package domain

// ContactDetails are the address fields shared by branches, associates and processing offices.
type ContactDetails struct {
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
}
