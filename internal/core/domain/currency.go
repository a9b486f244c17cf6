package domain

// Currency represents a supported currency in the domain. The directory is
// read-only at runtime; entries are seeded by migration.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "COP")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "Colombian Peso"
	Precision    int16  `json:"precision"`    // Decimal places used for display
	AuditFields
}
