package models

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	Precision    int16  `db:"precision"`
	AuditFields
}
