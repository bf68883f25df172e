package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKinds(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindNull, Value{}.Kind(), "zero value is null")
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindNumber, Number("1.5").Kind())
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindObject, Object().Kind())
	assert.Equal(t, KindArray, Array().Kind())
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nulls", Null(), Null(), true},
		{"same bool", Bool(true), Bool(true), true},
		{"different bool", Bool(true), Bool(false), false},
		{"same number literal", Number("1"), Number("1"), true},
		{"different number literal", Number("1"), Number("1.0"), false},
		{"null vs empty object", Null(), Object(), false},
		{"empty object vs empty array", Object(), Array(), false},
		{
			"objects compare in order",
			Object(Member{"a", Number("1")}, Member{"b", Number("2")}),
			Object(Member{"b", Number("2")}, Member{"a", Number("1")}),
			false,
		},
		{
			"equal nested",
			Object(Member{"a", Array(Number("1"), String("x"))}),
			Object(Member{"a", Array(Number("1"), String("x"))}),
			true,
		},
		{
			"different lengths",
			Array(Number("1")),
			Array(Number("1"), Number("2")),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestLeafValueMaterialization(t *testing.T) {
	assert.True(t, NullLeaf().Value().Equal(Null()))
	assert.True(t, BoolLeaf(true).Value().Equal(Bool(true)))
	assert.True(t, NumberLeaf("42").Value().Equal(Number("42")))
	assert.True(t, StringLeaf("hi").Value().Equal(String("hi")))
	assert.True(t, EmptyObjectLeaf().Value().Equal(Object()))
	assert.True(t, EmptyArrayLeaf().Value().Equal(Array()))
}

func TestLeafOf(t *testing.T) {
	leaf, ok := LeafOf(Object())
	assert.True(t, ok)
	assert.Equal(t, LeafEmptyObject, leaf.Kind())

	leaf, ok = LeafOf(Array())
	assert.True(t, ok)
	assert.Equal(t, LeafEmptyArray, leaf.Kind())

	_, ok = LeafOf(Object(Member{"a", Null()}))
	assert.False(t, ok, "populated object is not a leaf")

	_, ok = LeafOf(Array(Null()))
	assert.False(t, ok, "populated array is not a leaf")
}

func TestLeafText(t *testing.T) {
	assert.Equal(t, "", NullLeaf().Text())
	assert.Equal(t, "true", BoolLeaf(true).Text())
	assert.Equal(t, "false", BoolLeaf(false).Text())
	assert.Equal(t, "3.14", NumberLeaf("3.14").Text())
	assert.Equal(t, "hello", StringLeaf("hello").Text())
	assert.Equal(t, "{}", EmptyObjectLeaf().Text())
	assert.Equal(t, "[]", EmptyArrayLeaf().Text())
}

func TestCell(t *testing.T) {
	assert.True(t, AbsentCell().Absent())
	assert.True(t, (Cell{}).Absent(), "zero cell is absent")
	assert.Equal(t, "", AbsentCell().Text())

	c := LeafCell(StringLeaf("x"))
	assert.False(t, c.Absent())
	assert.Equal(t, "x", c.Text())
}

func TestTableIsVertical(t *testing.T) {
	vertical := Table{Columns: []string{"Key", "Value"}}
	assert.True(t, vertical.IsVertical())

	horizontal := Table{Columns: []string{"a", "b"}}
	assert.False(t, horizontal.IsVertical())

	wide := Table{Columns: []string{"Key", "Value", "Extra"}}
	assert.False(t, wide.IsVertical())
}
