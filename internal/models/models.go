package models

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Member is one key/value entry of an object. Objects keep their members
// as an ordered slice so document insertion order survives a conversion.
type Member struct {
	Key   string
	Value Value
}

// Value is a tagged variant over the six JSON kinds. The zero value is
// JSON null. Numbers are stored as their source literal so that decoding
// and re-encoding does not lose precision or formatting.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  string
	strVal  string
	members []Member
	elems   []Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Number returns a JSON number value from its literal text.
func Number(literal string) Value {
	return Value{kind: KindNumber, numVal: literal}
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// Object returns a JSON object value with the given members, in order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: members}
}

// Array returns a JSON array value with the given elements, in order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

// Kind returns which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// BoolVal returns the boolean payload; false for other kinds.
func (v Value) BoolVal() bool {
	return v.boolVal
}

// NumberVal returns the number literal; empty for other kinds.
func (v Value) NumberVal() string {
	return v.numVal
}

// StringVal returns the string payload; empty for other kinds.
func (v Value) StringVal() string {
	return v.strVal
}

// Members returns the ordered object members; nil for other kinds.
func (v Value) Members() []Member {
	return v.members
}

// Elems returns the ordered array elements; nil for other kinds.
func (v Value) Elems() []Value {
	return v.elems
}

// IsScalar reports whether the value is one of the four leaf kinds.
func (v Value) IsScalar() bool {
	return v.kind != KindObject && v.kind != KindArray
}

// Equal reports structural equality: same kind, same payload, objects
// compared member-by-member in order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindString:
		return v.strVal == other.strVal
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i, m := range v.members {
			if m.Key != other.members[i].Key || !m.Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i, e := range v.elems {
			if !e.Equal(other.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}
