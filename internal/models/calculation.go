package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StringList stores an ordered list of strings as jsonb.
type StringList []string

// Value implements the driver.Valuer interface.
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("StringList: expected []byte")
	}
	return json.Unmarshal(bytes, l)
}

// StoredCalculation is an immutable record of one completed fee
// calculation. Records are created and deleted, never updated.
type StoredCalculation struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Category     TariffCategory  `gorm:"type:varchar(20);not null;index" json:"calculation_type"`
	SubjectValue decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"subject_value"`
	PartyCount   int             `gorm:"not null" json:"party_count"`
	VATRate      decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"vat_rate"`
	BaseFee      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"base_fee"`
	VATAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"vat_amount"`
	TotalFee     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_fee"`
	FeePerParty  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"fee_per_party"`

	// Echo of the bracket that was applied, kept for audit and display.
	BracketMin        decimal.Decimal  `gorm:"type:decimal(18,2)" json:"bracket_min"`
	BracketMax        *decimal.Decimal `gorm:"type:decimal(18,2)" json:"bracket_max"`
	BracketFixedFee   *decimal.Decimal `gorm:"type:decimal(18,2)" json:"bracket_fixed_fee,omitempty"`
	BracketPercentage *decimal.Decimal `gorm:"type:decimal(8,4)" json:"bracket_percentage,omitempty"`

	Steps StringList `gorm:"type:jsonb" json:"calculation_steps"`

	// Opaque references to the owning case and client, not interpreted here.
	CaseID   string `gorm:"index" json:"case_id,omitempty"`
	ClientID string `gorm:"index" json:"client_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AppliedBracket reconstructs the bracket echo as a TariffBracket.
func (s *StoredCalculation) AppliedBracket() TariffBracket {
	app := ApportionmentTotal
	if s.Category == TariffCategoryUrgent {
		app = ApportionmentPerParty
	}
	return TariffBracket{
		MinValue:      s.BracketMin,
		MaxValue:      s.BracketMax,
		FixedFee:      s.BracketFixedFee,
		Percentage:    s.BracketPercentage,
		Apportionment: app,
	}
}
