package dto

// SupplierRegisterRequest carries the supplier registration form fields.
type SupplierRegisterRequest struct {
	Name        string `form:"name" json:"name"`
	LegalName   string `form:"legal_name" json:"legal_name"`
	TaxID       string `form:"tax_id" json:"tax_id"`
	Age         string `form:"age" json:"age"`
	Phone       string `form:"phone" json:"phone"`
	Email       string `form:"email" json:"email"`
	Address     string `form:"address" json:"address"`
	Website     string `form:"website" json:"website"`
	Service     string `form:"service" json:"service"`
	Duration    string `form:"duration" json:"duration"`
	ContractRef string `form:"contract_ref" json:"contract_ref"`
	Responsible string `form:"responsible" json:"responsible"`
	Notes       string `form:"notes" json:"notes"`
}
