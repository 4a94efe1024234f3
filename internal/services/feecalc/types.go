package feecalc

import (
	"lexofis/internal/models"

	"github.com/shopspring/decimal"
)

// Request carries the inputs of one fee calculation. CaseID and ClientID
// are opaque references passed through for record linkage.
type Request struct {
	Category     models.TariffCategory
	SubjectValue decimal.Decimal
	PartyCount   int
	VATRate      *decimal.Decimal // nil means the configured default applies
	CaseID       string
	ClientID     string
}

// Result is the full breakdown of one calculation. All figures are kept at
// full precision; rounding happens only when figures are rendered.
type Result struct {
	Category     models.TariffCategory
	SubjectValue decimal.Decimal
	PartyCount   int
	VATRate      decimal.Decimal

	BaseFee     decimal.Decimal
	VATAmount   decimal.Decimal
	TotalFee    decimal.Decimal
	FeePerParty decimal.Decimal

	AppliedBracket models.TariffBracket
	Steps          []string
}
