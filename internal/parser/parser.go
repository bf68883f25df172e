// Package parser turns JSON and NDJSON text into models.Value trees,
// keeping object member order and number literals intact.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	gojson "github.com/goccy/go-json"

	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/models"
)

// Parse decodes a single JSON value from reader. Trailing data after the
// first value is an error; empty input reports ErrEmptyInput.
func Parse(reader io.Reader) (models.Value, error) {
	dec := gojson.NewDecoder(reader)
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxErr *gojson.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			return models.Value{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxErr.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return models.Value{}, errors.NewParsingError("failed to decode JSON", err)
	}

	if dec.More() {
		return models.Value{}, errors.NewParsingError("trailing data after first JSON value", errors.ErrMultipleJSON)
	}
	return value, nil
}

// decodeValue consumes exactly one value, recursing through containers
// token by token so member order survives.
func decodeValue(dec *gojson.Decoder) (models.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return models.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *gojson.Decoder, tok gojson.Token) (models.Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return models.Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return models.String(t), nil
	case gojson.Number:
		return models.Number(t.String()), nil
	case bool:
		return models.Bool(t), nil
	case nil:
		return models.Null(), nil
	default:
		return models.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *gojson.Decoder) (models.Value, error) {
	var members []models.Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return models.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return models.Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return models.Value{}, err
		}
		members = append(members, models.Member{Key: key, Value: val})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return models.Value{}, err
	}
	return models.Object(members...), nil
}

func decodeArray(dec *gojson.Decoder) (models.Value, error) {
	var elems []models.Value
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return models.Value{}, err
		}
		elems = append(elems, val)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return models.Value{}, err
	}
	return models.Array(elems...), nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	file, err := openInput(filePath)
	if err != nil {
		return models.Value{}, err
	}
	defer closeInput(file)
	return Parse(file)
}

// ParseNDJSON decodes newline-delimited JSON: one value per non-empty
// line, in order. A malformed line fails with its 1-based line number.
func ParseNDJSON(reader io.Reader) ([]models.Value, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var values []models.Value
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		value, err := Parse(strings.NewReader(line))
		if err != nil {
			return nil, errors.NewParsingError(
				fmt.Sprintf("invalid JSON on line %d", lineNo),
				err,
			)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewInputError("failed to read NDJSON input", err)
	}
	if len(values) == 0 {
		return nil, errors.NewParsingError("NDJSON input has no documents", errors.ErrEmptyInput)
	}
	return values, nil
}

// ParseNDJSONFile parses NDJSON from a file path
func ParseNDJSONFile(filePath string) ([]models.Value, error) {
	file, err := openInput(filePath)
	if err != nil {
		return nil, err
	}
	defer closeInput(file)
	return ParseNDJSON(file)
}

func openInput(filePath string) (*os.File, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}

	stat, err := file.Stat()
	if err != nil {
		closeInput(file)
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		closeInput(file)
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return file, nil
}

func closeInput(file *os.File) {
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
	}
}
