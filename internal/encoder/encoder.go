// Package encoder renders a models.Value back to JSON text. The walk is
// hand-written because ordered object members cannot survive a trip
// through a Go map marshal; string escaping is delegated to the JSON
// codec.
package encoder

import (
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/models"
)

// Encode renders v as JSON text. indent is the number of spaces per
// nesting level; zero or negative produces compact single-line output.
// No trailing newline is appended.
func Encode(v models.Value, indent int) (string, error) {
	var b strings.Builder
	if err := write(&b, v, indent, 0); err != nil {
		return "", errors.NewOutputError("failed to encode JSON", err)
	}
	return b.String(), nil
}

func write(b *strings.Builder, v models.Value, indent, depth int) error {
	switch v.Kind() {
	case models.KindNull:
		b.WriteString("null")
	case models.KindBool:
		if v.BoolVal() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case models.KindNumber:
		b.WriteString(v.NumberVal())
	case models.KindString:
		return writeString(b, v.StringVal())
	case models.KindObject:
		return writeObject(b, v.Members(), indent, depth)
	case models.KindArray:
		return writeArray(b, v.Elems(), indent, depth)
	}
	return nil
}

func writeObject(b *strings.Builder, members []models.Member, indent, depth int) error {
	if len(members) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, depth+1)
		if err := writeString(b, m.Key); err != nil {
			return err
		}
		b.WriteByte(':')
		if indent > 0 {
			b.WriteByte(' ')
		}
		if err := write(b, m.Value, indent, depth+1); err != nil {
			return err
		}
	}
	newline(b, indent, depth)
	b.WriteByte('}')
	return nil
}

func writeArray(b *strings.Builder, elems []models.Value, indent, depth int) error {
	if len(elems) == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, depth+1)
		if err := write(b, e, indent, depth+1); err != nil {
			return err
		}
	}
	newline(b, indent, depth)
	b.WriteByte(']')
	return nil
}

func writeString(b *strings.Builder, s string) error {
	escaped, err := gojson.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(escaped)
	return nil
}

func newline(b *strings.Builder, indent, depth int) {
	if indent <= 0 {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < indent*depth; i++ {
		b.WriteByte(' ')
	}
}
