// Package layout maps flattened pairs to and from the two tabular
// layouts: horizontal (one column per path, one row per record) and
// vertical (two columns, Key and Value, one row per leaf).
package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/mcncl/flatsheet/internal/models"
)

// CoerceText converts raw cell text to a leaf by an explicit rule table,
// applied in order:
//
//	""              -> null
//	"{}"            -> empty-object marker
//	"[]"            -> empty-array marker
//	"true"/"false"  -> boolean (exact lowercase only)
//	integer literal -> number ("007" parses to 7)
//	float literal   -> number (finite decimal forms only)
//	anything else   -> string
//
// The function is total and depends on the text alone, never on cell
// position. Strings that look like booleans or numbers are re-typed on
// read-back; that loss is inherent to untyped cells.
func CoerceText(s string) models.Leaf {
	switch s {
	case "":
		return models.NullLeaf()
	case "{}":
		return models.EmptyObjectLeaf()
	case "[]":
		return models.EmptyArrayLeaf()
	case "true":
		return models.BoolLeaf(true)
	case "false":
		return models.BoolLeaf(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NumberLeaf(strconv.FormatInt(i, 10))
	}
	if isFloatText(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return models.NumberLeaf(strconv.FormatFloat(f, 'g', -1, 64))
		}
	}
	return models.StringLeaf(s)
}

// isFloatText filters out the forms ParseFloat accepts but JSON numbers
// do not cover: hex mantissas, digit underscores, infinities, NaN.
func isFloatText(s string) bool {
	if strings.ContainsAny(s, "xXpP_") {
		return false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return false
	}
	return true
}

// coerceCell applies CoerceText to raw cells read back from a sheet and
// leaves typed cells untouched, so tables that never left memory keep
// their exact leaves — a genuine string "true" only re-types after a
// trip through untyped cell text.
func coerceCell(c models.Cell) models.Cell {
	if c.Raw() {
		return models.LeafCell(CoerceText(c.Leaf().StringVal()))
	}
	return c
}
