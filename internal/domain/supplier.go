package domain

import "time"

// Supplier is the domain model for a registered supplier.
type Supplier struct {
	ID          int64
	Name        string
	LegalName   string
	TaxID       string
	Age         int
	Phone       string
	Email       string
	Address     string
	Website     string
	Service     string
	Duration    string
	ContractRef string
	Responsible string
	Notes       string
	CreatedAt   time.Time
}

// SupplierSummary is the listing projection of a supplier.
type SupplierSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
}
