package tariff

import (
	"testing"

	"lexofis/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTable_Validate(t *testing.T) {
	assert.NoError(t, NewTable().Validate())
}

func TestTable_Validate_Malformed(t *testing.T) {
	maxVal := dec("100")
	fee := dec("10")
	pct := dec("2")

	tests := []struct {
		name     string
		brackets []models.TariffBracket
	}{
		{
			name:     "empty ladder",
			brackets: []models.TariffBracket{},
		},
		{
			name: "does not start at zero",
			brackets: []models.TariffBracket{
				{MinValue: dec("1"), FixedFee: &fee, Apportionment: models.ApportionmentTotal},
			},
		},
		{
			name: "terminal bracket bounded",
			brackets: []models.TariffBracket{
				{MinValue: dec("0"), MaxValue: &maxVal, FixedFee: &fee, Apportionment: models.ApportionmentTotal},
			},
		},
		{
			name: "gap between brackets",
			brackets: []models.TariffBracket{
				{MinValue: dec("0"), MaxValue: &maxVal, FixedFee: &fee, Apportionment: models.ApportionmentTotal},
				{MinValue: dec("200"), FixedFee: &fee, Apportionment: models.ApportionmentTotal},
			},
		},
		{
			name: "both fee rules set",
			brackets: []models.TariffBracket{
				{MinValue: dec("0"), FixedFee: &fee, Percentage: &pct, Apportionment: models.ApportionmentTotal},
			},
		},
		{
			name: "no fee rule set",
			brackets: []models.TariffBracket{
				{MinValue: dec("0"), Apportionment: models.ApportionmentTotal},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{brackets: map[models.TariffCategory][]models.TariffBracket{
				models.TariffCategoryStandard: tt.brackets,
			}}
			err := table.Validate()
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestTable_BracketsFor(t *testing.T) {
	table := NewTable()

	tests := []struct {
		category models.TariffCategory
		count    int
	}{
		{models.TariffCategoryStandard, 12},
		{models.TariffCategoryCommercial, 10},
		{models.TariffCategoryUrgent, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			brackets, err := table.BracketsFor(tt.category)
			require.NoError(t, err)
			assert.Len(t, brackets, tt.count)
			assert.True(t, brackets[len(brackets)-1].Unbounded())
		})
	}
}

func TestTable_BracketsFor_UnknownCategory(t *testing.T) {
	_, err := NewTable().BracketsFor("expedited")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

// Every non-negative value must land in exactly one bracket: no gaps, no
// overlaps. Sampled at every bracket boundary and one step either side.
func TestTable_BracketCoverage(t *testing.T) {
	table := NewTable()
	step := dec("0.01")

	for category, brackets := range table.Categories() {
		samples := []decimal.Decimal{dec("0"), dec("0.01"), dec("12345.67")}
		for _, b := range brackets {
			samples = append(samples, b.MinValue)
			if !b.MinValue.IsZero() {
				samples = append(samples, b.MinValue.Sub(step))
			}
			if !b.Unbounded() {
				samples = append(samples, *b.MaxValue, b.MaxValue.Add(step))
			}
		}

		for _, value := range samples {
			if value.IsNegative() {
				continue
			}
			matches := 0
			for _, b := range brackets {
				if b.Contains(value) {
					matches++
				}
			}
			assert.Equalf(t, 1, matches,
				"category %s value %s matched %d brackets", category, value, matches)
		}
	}
}

func TestTable_Find(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name     string
		category models.TariffCategory
		value    string
		wantFee  string
	}{
		{"first standard bracket", models.TariffCategoryStandard, "3000", "650"},
		{"standard lower bound inclusive", models.TariffCategoryStandard, "5000.01", "950"},
		{"standard upper bound inclusive", models.TariffCategoryStandard, "10000", "950"},
		{"commercial upper bound inclusive", models.TariffCategoryCommercial, "50000", "2960"},
		{"standard unbounded terminal", models.TariffCategoryStandard, "10000000000", "14630"},
		{"commercial unbounded terminal", models.TariffCategoryCommercial, "99000000", "24370"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bracket, found, err := table.Find(tt.category, dec(tt.value))
			require.NoError(t, err)
			require.True(t, found)
			require.NotNil(t, bracket.FixedFee)
			assert.True(t, bracket.FixedFee.Equal(dec(tt.wantFee)),
				"want fee %s, got %s", tt.wantFee, bracket.FixedFee)
		})
	}
}

func TestTable_Find_NoMatch(t *testing.T) {
	// Negative values precede every bracket; only possible via malformed
	// input that skipped validation.
	_, found, err := NewTable().Find(models.TariffCategoryStandard, dec("-1"))
	require.NoError(t, err)
	assert.False(t, found)
}
