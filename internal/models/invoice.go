package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineItem is the hand-off shape consumed by the invoicing system.
// It is produced from a StoredCalculation and never persisted here;
// invoice lifecycle belongs to the invoicing side.
type InvoiceLineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	VATAmount   decimal.Decimal `json:"vat_amount"`
	LineTotal   decimal.Decimal `json:"line_total"`
	ReferenceID uuid.UUID       `json:"reference_id"`
}
