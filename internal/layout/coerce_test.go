package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/flatsheet/internal/models"
)

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Leaf
	}{
		{"empty is null", "", models.NullLeaf()},
		{"empty object marker", "{}", models.EmptyObjectLeaf()},
		{"empty array marker", "[]", models.EmptyArrayLeaf()},
		{"lowercase true", "true", models.BoolLeaf(true)},
		{"lowercase false", "false", models.BoolLeaf(false)},
		{"capitalized True stays string", "True", models.StringLeaf("True")},
		{"uppercase FALSE stays string", "FALSE", models.StringLeaf("FALSE")},
		{"integer", "42", models.NumberLeaf("42")},
		{"negative integer", "-7", models.NumberLeaf("-7")},
		{"leading zeros collapse", "007", models.NumberLeaf("7")},
		{"float", "3.14", models.NumberLeaf("3.14")},
		{"scientific notation", "2e3", models.NumberLeaf("2000")},
		{"negative float", "-0.5", models.NumberLeaf("-0.5")},
		{"plain text", "hello", models.StringLeaf("hello")},
		{"number with trailing noise", "42abc", models.StringLeaf("42abc")},
		{"number with spaces", " 42", models.StringLeaf(" 42")},
		{"infinity stays string", "Inf", models.StringLeaf("Inf")},
		{"nan stays string", "NaN", models.StringLeaf("NaN")},
		{"hex stays string", "0x10", models.StringLeaf("0x10")},
		{"underscored digits stay string", "1_000", models.StringLeaf("1_000")},
		{"lone minus stays string", "-", models.StringLeaf("-")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceText(tt.input))
		})
	}
}

func TestCoerceTextIsPure(t *testing.T) {
	// Same input, same output, regardless of how often or in what order.
	inputs := []string{"true", "007", "x", "", "3.5"}
	for i := 0; i < 3; i++ {
		for _, s := range inputs {
			assert.Equal(t, CoerceText(s), CoerceText(s))
		}
	}
}

func TestCoerceCellOnlyRetypesRawCells(t *testing.T) {
	raw := models.RawCell("42")
	assert.Equal(t, models.LeafCell(models.NumberLeaf("42")), coerceCell(raw))

	absent := models.AbsentCell()
	assert.Equal(t, absent, coerceCell(absent))

	// Typed cells are already exact; a genuine string that happens to
	// look like a boolean or number must stay a string.
	for _, typed := range []models.Cell{
		models.LeafCell(models.BoolLeaf(true)),
		models.LeafCell(models.StringLeaf("true")),
		models.LeafCell(models.StringLeaf("007")),
		models.LeafCell(models.StringLeaf("")),
	} {
		assert.Equal(t, typed, coerceCell(typed))
	}
}
