package domain

// Company is the tenant that owns users, expenses and approval flows.
type Company struct {
	CompanyID    string  `json:"companyID"`
	Name         string  `json:"name"`
	CurrencyCode string  `json:"currencyCode"` // ISO 4217, used for every expense of the company
	Country      *string `json:"country,omitempty"`
	IsActive     bool    `json:"isActive"`
	AuditFields
}
