package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/mcncl/flatsheet/internal/config"
	"github.com/mcncl/flatsheet/internal/encoder"
	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/layout"
	"github.com/mcncl/flatsheet/internal/models"
	"github.com/mcncl/flatsheet/internal/parser"
	"github.com/mcncl/flatsheet/internal/sheet"
)

// CLI defines the command-line interface
var CLI struct {
	ToSheet toSheetCmd `cmd:"" name:"to-sheet" help:"Convert JSON or NDJSON to an xlsx spreadsheet."`
	ToJSON  toJSONCmd  `cmd:"" name:"to-json" help:"Convert an xlsx spreadsheet back to JSON."`

	Config  string           `help:"Path to config file. Searched for in parent directories when unset." type:"path"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

// Context holds the runtime context shared by commands
type Context struct {
	Config *config.Config
	Log    *log.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("flatsheet"),
		kong.Description("Convert JSON documents to spreadsheets and back, losslessly."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("flatsheet version %s", Version)},
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	logger := log.New(os.Stderr)
	if CLI.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = ctx.Run(&Context{Config: cfg, Log: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: flatsheet --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the config file: an explicit --config path, then
// the nearest config file up the directory tree, then defaults.
func loadConfig(logger *log.Logger) (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	logger.Debug("loading config", "path", path)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to load config '%s'", path), err)
	}
	return cfg, nil
}

type toSheetCmd struct {
	Input      string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output     string `help:"Path to output .xlsx file. Defaults to the input name with .xlsx." short:"o" type:"path"`
	RootSheet  string `help:"Sheet name for the written table. Defaults to the input file name." name:"root-sheet"`
	Sep        string `help:"Separator joining flattened path segments."`
	Vertical   bool   `help:"Write a two-column Key/Value layout instead of the horizontal one."`
	NDJSON     bool   `help:"Treat input as newline-delimited JSON, one record per line." name:"ndjson"`
	NoAutosize bool   `help:"Disable column auto-sizing." name:"no-autosize"`
}

// Run converts JSON input into an xlsx workbook.
func (c *toSheetCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	sep := c.Sep
	if sep == "" {
		sep = cfg.Separator
	}
	vertical := c.Vertical || cfg.Layout == config.LayoutVertical
	ndjson := c.NDJSON || cfg.NDJSON
	autosize := cfg.Autosize && !c.NoAutosize

	name := c.RootSheet
	if name == "" {
		if c.Input != "" {
			name = config.DefaultSheetName(c.Input)
		} else {
			name = cfg.RootSheet
		}
	}

	output := c.Output
	if output == "" {
		if c.Input == "" {
			return errors.NewOutputError("output path is required when reading from stdin", nil)
		}
		output = replaceExt(c.Input, ".xlsx")
	}

	table, err := buildTable(c.Input, sep, name, vertical, ndjson)
	if err != nil {
		return err
	}
	ctx.Log.Debug("built table", "sheet", table.Name, "columns", len(table.Columns), "rows", len(table.Rows))

	if err := sheet.WriteWorkbook(output, table, autosize); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}

// buildTable parses the input and applies the selected layout adapter.
// Record splitting follows the forward rules: an NDJSON stream is one
// record per line, a root array is one record per element, anything else
// is a single record. Vertical layout flattens the whole document (an
// NDJSON stream is treated as a root array there).
func buildTable(input, sep, name string, vertical, ndjson bool) (models.Table, error) {
	if ndjson {
		docs, err := parseNDJSONInput(input)
		if err != nil {
			return models.Table{}, err
		}
		if vertical {
			return layout.ToKV(models.Array(docs...), sep, name), nil
		}
		return layout.ToTable(docs, sep, name), nil
	}

	value, err := parseInput(input)
	if err != nil {
		return models.Table{}, err
	}
	if vertical {
		return layout.ToKV(value, sep, name), nil
	}
	records := []models.Value{value}
	if value.Kind() == models.KindArray && len(value.Elems()) > 0 {
		records = value.Elems()
	}
	return layout.ToTable(records, sep, name), nil
}

type toJSONCmd struct {
	Input     string `help:"Path to input .xlsx file. If not specified, reads from stdin." short:"i" type:"path"`
	Output    string `help:"Path to output JSON file. Defaults to the input name with .json." short:"o" type:"path"`
	Sheet     string `help:"Sheet name to read. Defaults to the first sheet."`
	Sep       string `help:"Separator joining flattened path segments."`
	Indent    int    `help:"JSON indentation width." default:"-1"`
	NDJSON    bool   `help:"Write newline-delimited JSON, one record per line." name:"ndjson"`
	Timestamp bool   `help:"Append a timestamp to the output file name."`
}

// Run converts an xlsx workbook back into JSON.
func (c *toJSONCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	sep := c.Sep
	if sep == "" {
		sep = cfg.Separator
	}
	indent := c.Indent
	if indent < 0 {
		indent = cfg.Indent
	}

	table, err := readTableInput(c.Input, c.Sheet)
	if err != nil {
		return err
	}
	ctx.Log.Debug("read table", "sheet", table.Name, "columns", len(table.Columns), "rows", len(table.Rows))

	text, err := rehydrate(table, sep, indent, c.NDJSON)
	if err != nil {
		return err
	}

	if c.Input == "" && c.Output == "" {
		_, err := fmt.Println(strings.TrimRight(text, "\n"))
		if err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}

	output := c.Output
	if output == "" {
		output = replaceExt(c.Input, ".json")
	}
	if c.Timestamp {
		output = timestamped(output)
	}
	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", output), err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}

// rehydrate rebuilds JSON text from a table, auto-detecting the layout
// from the header row: a Key/Value header means vertical.
func rehydrate(table models.Table, sep string, indent int, ndjson bool) (string, error) {
	if table.IsVertical() {
		value, err := layout.FromKV(table, sep)
		if err != nil {
			return "", err
		}
		if ndjson {
			return encodeNDJSON(recordsOf(value))
		}
		text, err := encoder.Encode(value, indent)
		if err != nil {
			return "", err
		}
		return text + "\n", nil
	}

	records, err := layout.FromTable(table, sep)
	if err != nil {
		return "", err
	}
	if ndjson {
		return encodeNDJSON(records)
	}
	var value models.Value
	switch len(records) {
	case 0:
		return "", errors.NewSheetError("table has no data rows", errors.ErrSheetEmpty)
	case 1:
		value = records[0]
	default:
		value = models.Array(records...)
	}
	text, err := encoder.Encode(value, indent)
	if err != nil {
		return "", err
	}
	return text + "\n", nil
}

// recordsOf splits a root array into its elements for NDJSON output;
// any other value is a single record.
func recordsOf(v models.Value) []models.Value {
	if v.Kind() == models.KindArray && len(v.Elems()) > 0 {
		return v.Elems()
	}
	return []models.Value{v}
}

func encodeNDJSON(records []models.Value) (string, error) {
	var b strings.Builder
	for _, rec := range records {
		line, err := encoder.Encode(rec, 0)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// parseInput reads a single JSON document from file or stdin
func parseInput(input string) (models.Value, error) {
	if input != "" {
		return parser.ParseFile(input)
	}
	data, err := readStdin()
	if err != nil {
		return models.Value{}, err
	}
	return parser.ParseString(string(data))
}

// parseNDJSONInput reads NDJSON documents from file or stdin
func parseNDJSONInput(input string) ([]models.Value, error) {
	if input != "" {
		return parser.ParseNDJSONFile(input)
	}
	data, err := readStdin()
	if err != nil {
		return nil, err
	}
	return parser.ParseNDJSON(strings.NewReader(string(data)))
}

// readTableInput reads a workbook from file or stdin
func readTableInput(input, sheetName string) (models.Table, error) {
	if input != "" {
		return sheet.ReadTable(input, sheetName)
	}
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.Table{}, errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		return models.Table{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}
	return sheet.ReadTableFrom(os.Stdin, sheetName)
}

// readStdin reads piped input, refusing to block on an interactive
// terminal with nothing piped in
func readStdin() ([]byte, error) {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return data, nil
}

// replaceExt swaps the extension of a file path
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// timestamped inserts _YYYYMMDD_HHMMSS before the extension
func timestamped(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", stem, time.Now().Format("20060102_150405"), ext)
}
