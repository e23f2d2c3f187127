package models

import "time"

// Currency is one of the ISO 4217 codes the studio bills in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyINR Currency = "INR"
)

// InvoiceStatus is the billing lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// InvoiceItem is a single billed line. Quantity and UnitPrice are pointers
// so an explicit zero passes the required check.
type InvoiceItem struct {
	Description string   `json:"description" bson:"description" binding:"required"`
	Quantity    *float64 `json:"quantity" bson:"quantity" binding:"required,gte=0"`
	UnitPrice   *float64 `json:"unit_price" bson:"unit_price" binding:"required,gte=0"`
}

// Invoice bills a client, optionally tied to a project. Totals are not
// computed here; items, tax rate and discount are stored as submitted.
type Invoice struct {
	ClientID  string        `json:"client_id" bson:"client_id" binding:"required"`
	ProjectID *string       `json:"project_id" bson:"project_id"`
	Number    *string       `json:"number" bson:"number"`
	IssueDate *time.Time    `json:"issue_date" bson:"issue_date"`
	DueDate   *time.Time    `json:"due_date" bson:"due_date"`
	Currency  Currency      `json:"currency" bson:"currency" binding:"omitempty,oneof=USD EUR GBP CAD AUD INR"`
	Items     []InvoiceItem `json:"items" bson:"items" binding:"omitempty,dive"`
	TaxRate   float64       `json:"tax_rate" bson:"tax_rate" binding:"gte=0,lte=1"`
	Discount  float64       `json:"discount" bson:"discount" binding:"gte=0"`
	Status    InvoiceStatus `json:"status" bson:"status" binding:"omitempty,oneof=draft sent paid overdue void"`
	Notes     *string       `json:"notes" bson:"notes"`
}

// SetDefaults fills unset optional fields with their declared defaults.
func (i *Invoice) SetDefaults() {
	if i.Currency == "" {
		i.Currency = CurrencyUSD
	}
	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}
	if i.Items == nil {
		i.Items = []InvoiceItem{}
	}
}
