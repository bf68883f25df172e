package sheet

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/models"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name untouched", "data", "data"},
		{"invalid characters replaced", "a[b]:c*d?e/f\\g", "a_b__c_d_e_f_g"},
		{"empty falls back", "", "Sheet"},
		{"long name capped", strings.Repeat("x", 40), strings.Repeat("x", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.input))
		})
	}
}

func TestSanitizeNameCapsByRunes(t *testing.T) {
	// The 31-character cap counts characters; a byte slice would cut a
	// multibyte name mid-rune and produce an invalid sheet name.
	got := SanitizeName(strings.Repeat("ü", 40))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 31, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("ü", 31), got)
}

func TestWriteWorkbookMultibyteSheetName(t *testing.T) {
	name := strings.Repeat("ü", 40)
	table := models.Table{
		Name:    name,
		Columns: []string{"a"},
		Rows:    [][]models.Cell{{models.LeafCell(models.StringLeaf("x"))}},
	}

	path := filepath.Join(t.TempDir(), "multibyte.xlsx")
	require.NoError(t, WriteWorkbook(path, table, false))

	got, err := ReadTable(path, strings.Repeat("ü", 31))
	require.NoError(t, err)
	assert.Equal(t, "x", got.Rows[0][0].Text())
}

func TestWriteAndReadWorkbook(t *testing.T) {
	table := models.Table{
		Name:    "data",
		Columns: []string{"name", "count", "active", "note"},
		Rows: [][]models.Cell{
			{
				models.LeafCell(models.StringLeaf("alpha")),
				models.LeafCell(models.NumberLeaf("3")),
				models.LeafCell(models.BoolLeaf(true)),
				models.AbsentCell(),
			},
			{
				models.LeafCell(models.StringLeaf("beta")),
				models.LeafCell(models.NumberLeaf("2.5")),
				models.LeafCell(models.BoolLeaf(false)),
				models.LeafCell(models.StringLeaf("second")),
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteWorkbook(path, table, true))

	got, err := ReadTable(path, "")
	require.NoError(t, err)
	assert.Equal(t, "data", got.Name)
	assert.Equal(t, table.Columns, got.Columns)
	require.Len(t, got.Rows, 2)

	// Cells come back as raw text; typing is the layout adapters' job.
	assert.Equal(t, "alpha", got.Rows[0][0].Text())
	assert.Equal(t, "3", got.Rows[0][1].Text())
	assert.Equal(t, "true", got.Rows[0][2].Text())
	assert.True(t, got.Rows[0][3].Absent())
	assert.Equal(t, "second", got.Rows[1][3].Text())
}

func TestWriteWorkbookMarkerCells(t *testing.T) {
	table := models.Table{
		Name:    "data",
		Columns: []string{models.KeyColumn, models.ValueColumn},
		Rows: [][]models.Cell{
			{models.LeafCell(models.StringLeaf("list")), models.LeafCell(models.EmptyArrayLeaf())},
			{models.LeafCell(models.StringLeaf("map")), models.LeafCell(models.EmptyObjectLeaf())},
		},
	}

	path := filepath.Join(t.TempDir(), "markers.xlsx")
	require.NoError(t, WriteWorkbook(path, table, false))

	got, err := ReadTable(path, "")
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "[]", got.Rows[0][1].Text())
	assert.Equal(t, "{}", got.Rows[1][1].Text())
}

func TestWriteWorkbookSanitizesSheetName(t *testing.T) {
	table := models.Table{
		Name:    "bad/name",
		Columns: []string{"a"},
		Rows:    [][]models.Cell{{models.LeafCell(models.StringLeaf("x"))}},
	}

	path := filepath.Join(t.TempDir(), "san.xlsx")
	require.NoError(t, WriteWorkbook(path, table, false))

	got, err := ReadTable(path, "bad_name")
	require.NoError(t, err)
	assert.Equal(t, "bad_name", got.Name)
}

func TestReadTableMissingSheet(t *testing.T) {
	table := models.Table{
		Name:    "data",
		Columns: []string{"a"},
		Rows:    [][]models.Cell{{models.LeafCell(models.StringLeaf("x"))}},
	}

	path := filepath.Join(t.TempDir(), "one.xlsx")
	require.NoError(t, WriteWorkbook(path, table, false))

	_, err := ReadTable(path, "nope")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrSheetNotFound))
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.Error(t, err)
}
