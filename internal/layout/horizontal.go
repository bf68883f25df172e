package layout

import (
	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/flatten"
	"github.com/mcncl/flatsheet/internal/models"
)

// ToTable flattens each record and lays the results out horizontally:
// the column list is the union of serialized paths across all records in
// first-seen order, one row per record, an absent cell where a record
// has no value for a column. A record that is a root scalar contributes
// a column with an empty header.
func ToTable(records []models.Value, sep, name string) models.Table {
	var columns []string
	colIdx := make(map[string]int)
	flat := make([]map[string]models.Leaf, len(records))

	for ri, rec := range records {
		leaves := make(map[string]models.Leaf)
		for _, pr := range flatten.Flatten(rec) {
			col := pr.Path.String(sep)
			if _, ok := colIdx[col]; !ok {
				colIdx[col] = len(columns)
				columns = append(columns, col)
			}
			leaves[col] = pr.Leaf
		}
		flat[ri] = leaves
	}

	rows := make([][]models.Cell, len(records))
	for ri, leaves := range flat {
		row := make([]models.Cell, len(columns))
		for ci, col := range columns {
			if leaf, ok := leaves[col]; ok {
				row[ci] = models.LeafCell(leaf)
			} else {
				row[ci] = models.AbsentCell()
			}
		}
		rows[ri] = row
	}

	return models.Table{Name: name, Columns: columns, Rows: rows}
}

// FromTable reverses ToTable: each row's present cells become flattened
// pairs keyed by the column header parsed as a path, then each row is
// unflattened into one record. Absent cells are skipped, so a column a
// record never had simply stays missing from it.
func FromTable(t models.Table, sep string) ([]models.Value, error) {
	paths := make([]models.Path, len(t.Columns))
	for ci, col := range t.Columns {
		p, err := models.ParsePath(col, sep)
		if err != nil {
			return nil, errors.NewStructureError(err.Error(), errors.ErrStructureConflict)
		}
		paths[ci] = p
	}

	records := make([]models.Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		pairs := make([]models.FlatPair, 0, len(row))
		for ci, cell := range row {
			if ci >= len(paths) {
				break
			}
			cell = coerceCell(cell)
			if cell.Absent() {
				continue
			}
			pairs = append(pairs, models.FlatPair{Path: paths[ci], Leaf: cell.Leaf()})
		}
		if len(pairs) == 0 {
			// Blank padding row in the source sheet.
			continue
		}
		rec, err := flatten.Unflatten(pairs)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
