package layout

import (
	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/flatten"
	"github.com/mcncl/flatsheet/internal/models"
)

// ToKV flattens v into a two-column Key/Value table, one row per
// flattened pair, Key holding the serialized path. A root scalar yields
// a single row with an empty Key.
func ToKV(v models.Value, sep, name string) models.Table {
	pairs := flatten.Flatten(v)
	rows := make([][]models.Cell, len(pairs))
	for i, pr := range pairs {
		rows[i] = []models.Cell{
			models.LeafCell(models.StringLeaf(pr.Path.String(sep))),
			models.LeafCell(pr.Leaf),
		}
	}
	return models.Table{
		Name:    name,
		Columns: []string{models.KeyColumn, models.ValueColumn},
		Rows:    rows,
	}
}

// FromKV reverses ToKV: each row's Key is parsed as a path and paired
// with the coerced Value cell, then the pairs are unflattened. Keys are
// taken as raw text so a numeric-looking key is not re-typed by cell
// coercion. An empty Value cell is an explicit null here; exactly one
// row with an empty Key reconstructs a bare root value.
func FromKV(t models.Table, sep string) (models.Value, error) {
	if len(t.Columns) < 2 {
		return models.Value{}, errors.NewSheetError("vertical layout needs Key and Value columns", errors.ErrSheetEmpty)
	}

	pairs := make([]models.FlatPair, 0, len(t.Rows))
	for _, row := range t.Rows {
		var keyCell, valCell models.Cell
		if len(row) > 0 {
			keyCell = row[0]
		}
		if len(row) > 1 {
			valCell = row[1]
		}
		key := keyCell.Text()
		if key == "" && keyCell.Absent() && valCell.Absent() {
			// Blank padding row in the source sheet.
			continue
		}
		path, err := models.ParsePath(key, sep)
		if err != nil {
			return models.Value{}, errors.NewStructureError(err.Error(), errors.ErrStructureConflict)
		}
		valCell = coerceCell(valCell)
		leaf := valCell.Leaf()
		if valCell.Absent() {
			leaf = models.NullLeaf()
		}
		pairs = append(pairs, models.FlatPair{Path: path, Leaf: leaf})
	}
	if len(pairs) == 0 {
		// A root null writes as one row with blank Key and Value cells,
		// which a workbook hands back as no surviving rows at all. It is
		// the only document that can produce such a sheet, so rebuild it
		// rather than fail on a file the tool wrote itself.
		return models.Null(), nil
	}
	return flatten.Unflatten(pairs)
}
