// Package sheet reads and writes models.Table as xlsx workbooks.
package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/models"
)

// Excel caps sheet names at 31 characters and rejects []:*?/\ in them.
const maxSheetNameLen = 31

const invalidSheetChars = `[]:*?/\`

// SanitizeName makes a string usable as an xlsx sheet name: invalid
// characters become underscores, an empty result falls back to "Sheet",
// and the length is capped.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(invalidSheetChars, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	safe := b.String()
	if safe == "" {
		safe = "Sheet"
	}
	// The cap counts characters, not bytes; slicing bytes would cut a
	// multibyte name mid-rune and hand the workbook an invalid name.
	if runes := []rune(safe); len(runes) > maxSheetNameLen {
		safe = string(runes[:maxSheetNameLen])
	}
	return safe
}

// WriteWorkbook writes the table as a single-sheet xlsx file at path.
// The header row carries the column names; numbers are written as native
// number cells, everything else as text. Null and absent cells stay
// blank.
func WriteWorkbook(path string, t models.Table, autosize bool) error {
	f := excelize.NewFile()
	defer f.Close()

	name := SanitizeName(t.Name)
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return errors.NewSheetError(fmt.Sprintf("failed to name sheet '%s'", name), err)
	}

	for ci, col := range t.Columns {
		addr, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return errors.NewSheetError("failed to compute cell address", err)
		}
		if err := f.SetCellStr(name, addr, col); err != nil {
			return errors.NewSheetError(fmt.Sprintf("failed to write header '%s'", col), err)
		}
	}

	for ri, row := range t.Rows {
		for ci, cell := range row {
			if err := writeCell(f, name, ci+1, ri+2, cell); err != nil {
				return err
			}
		}
	}

	if autosize {
		if err := autosizeColumns(f, name, t); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewSheetError(fmt.Sprintf("failed to save workbook '%s'", path), err)
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, col, row int, cell models.Cell) error {
	if cell.Absent() {
		return nil
	}
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.NewSheetError("failed to compute cell address", err)
	}

	leaf := cell.Leaf()
	switch leaf.Kind() {
	case models.LeafNull:
		// Blank cell; read back as absent/null.
		return nil
	case models.LeafNumber:
		err = setNumberCell(f, sheet, addr, leaf.NumberVal())
	default:
		// Strings, booleans and the {} / [] marker texts. Booleans go in
		// as lowercase text, not native cells: the workbook reader hands
		// native booleans back as "TRUE"/"FALSE", which the exact
		// lowercase coercion rule would then refuse to re-type.
		err = f.SetCellStr(sheet, addr, leaf.Text())
	}
	if err != nil {
		return errors.NewSheetError(fmt.Sprintf("failed to write cell %s", addr), err)
	}
	return nil
}

func setNumberCell(f *excelize.File, sheet, addr, literal string) error {
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return f.SetCellInt(sheet, addr, int(i))
	}
	fv, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// A literal the decoder accepted but strconv does not; store the
		// text so the data is at least visible.
		return f.SetCellStr(sheet, addr, literal)
	}
	return f.SetCellFloat(sheet, addr, fv, -1, 64)
}

// autosizeColumns widens each column to its longest content plus a
// little padding, capped at 60.
func autosizeColumns(f *excelize.File, sheet string, t models.Table) error {
	for ci, col := range t.Columns {
		width := len(col)
		for _, row := range t.Rows {
			if ci < len(row) {
				if l := len(row[ci].Text()); l > width {
					width = l
				}
			}
		}
		adjusted := float64(width + 2)
		if adjusted > 60 {
			adjusted = 60
		}
		colName, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return errors.NewSheetError("failed to compute column name", err)
		}
		if err := f.SetColWidth(sheet, colName, colName, adjusted); err != nil {
			return errors.NewSheetError(fmt.Sprintf("failed to size column %s", colName), err)
		}
	}
	return nil
}

// ReadTable opens the workbook at path and reads one sheet as a table.
// An empty sheetName selects the first sheet. Cells come back as raw
// text (empty cells as absent); type coercion is the layout adapters'
// job on the way back to JSON.
func ReadTable(path, sheetName string) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Table{}, errors.NewSheetError(fmt.Sprintf("failed to open workbook '%s'", path), err)
	}
	defer f.Close()
	return readTable(f, sheetName)
}

// ReadTableFrom reads a workbook from a stream, for piped input.
func ReadTableFrom(r io.Reader, sheetName string) (models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Table{}, errors.NewSheetError("failed to open workbook from stream", err)
	}
	defer f.Close()
	return readTable(f, sheetName)
}

func readTable(f *excelize.File, sheetName string) (models.Table, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	} else {
		idx, err := f.GetSheetIndex(sheetName)
		if err != nil || idx < 0 {
			return models.Table{}, errors.NewSheetError(
				fmt.Sprintf("sheet '%s' does not exist", sheetName),
				errors.ErrSheetNotFound,
			)
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, errors.NewSheetError(fmt.Sprintf("failed to read sheet '%s'", sheetName), err)
	}
	if len(rows) == 0 {
		return models.Table{}, errors.NewSheetError(
			fmt.Sprintf("sheet '%s' is empty", sheetName),
			errors.ErrSheetEmpty,
		)
	}

	columns := rows[0]
	table := models.Table{Name: sheetName, Columns: columns}
	for _, raw := range rows[1:] {
		row := make([]models.Cell, len(columns))
		for ci := range columns {
			if ci < len(raw) && raw[ci] != "" {
				row[ci] = models.RawCell(raw[ci])
			} else {
				row[ci] = models.AbsentCell()
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
