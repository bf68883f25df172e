package models

// LeafKind identifies which variant a Leaf holds.
type LeafKind uint8

const (
	LeafNull LeafKind = iota
	LeafBool
	LeafNumber
	LeafString
	// LeafEmptyObject and LeafEmptyArray are markers that keep container
	// emptiness alive through flattening. They are distinct variants, not
	// reserved strings, so genuine "{}" / "[]" string data cannot collide
	// with them in memory.
	LeafEmptyObject
	LeafEmptyArray
)

// Leaf is the value half of a flattened pair: one of the four scalar
// kinds, or an empty-container marker.
type Leaf struct {
	kind    LeafKind
	boolVal bool
	numVal  string
	strVal  string
}

// NullLeaf returns the null leaf.
func NullLeaf() Leaf {
	return Leaf{kind: LeafNull}
}

// BoolLeaf returns a boolean leaf.
func BoolLeaf(b bool) Leaf {
	return Leaf{kind: LeafBool, boolVal: b}
}

// NumberLeaf returns a number leaf from its literal text.
func NumberLeaf(literal string) Leaf {
	return Leaf{kind: LeafNumber, numVal: literal}
}

// StringLeaf returns a string leaf.
func StringLeaf(s string) Leaf {
	return Leaf{kind: LeafString, strVal: s}
}

// EmptyObjectLeaf returns the marker for a zero-member object.
func EmptyObjectLeaf() Leaf {
	return Leaf{kind: LeafEmptyObject}
}

// EmptyArrayLeaf returns the marker for a zero-element array.
func EmptyArrayLeaf() Leaf {
	return Leaf{kind: LeafEmptyArray}
}

// Kind returns which variant the leaf holds.
func (l Leaf) Kind() LeafKind {
	return l.kind
}

// BoolVal returns the boolean payload; false for other kinds.
func (l Leaf) BoolVal() bool {
	return l.boolVal
}

// NumberVal returns the number literal; empty for other kinds.
func (l Leaf) NumberVal() string {
	return l.numVal
}

// StringVal returns the string payload; empty for other kinds.
func (l Leaf) StringVal() string {
	return l.strVal
}

// Value materializes the leaf as a Value; markers become empty
// containers.
func (l Leaf) Value() Value {
	switch l.kind {
	case LeafBool:
		return Bool(l.boolVal)
	case LeafNumber:
		return Number(l.numVal)
	case LeafString:
		return String(l.strVal)
	case LeafEmptyObject:
		return Object()
	case LeafEmptyArray:
		return Array()
	default:
		return Null()
	}
}

// LeafOf extracts the leaf for a scalar or empty-container value. It
// reports false for objects and arrays that have contents, which must be
// walked rather than flattened in one step.
func LeafOf(v Value) (Leaf, bool) {
	switch v.Kind() {
	case KindNull:
		return NullLeaf(), true
	case KindBool:
		return BoolLeaf(v.BoolVal()), true
	case KindNumber:
		return NumberLeaf(v.NumberVal()), true
	case KindString:
		return StringLeaf(v.StringVal()), true
	case KindObject:
		if len(v.Members()) == 0 {
			return EmptyObjectLeaf(), true
		}
	case KindArray:
		if len(v.Elems()) == 0 {
			return EmptyArrayLeaf(), true
		}
	}
	return Leaf{}, false
}

// Text returns the leaf rendered as cell text: string payloads verbatim,
// numbers as their literal, booleans lowercase, null as the empty
// string, markers as "{}" / "[]".
func (l Leaf) Text() string {
	switch l.kind {
	case LeafBool:
		if l.boolVal {
			return "true"
		}
		return "false"
	case LeafNumber:
		return l.numVal
	case LeafString:
		return l.strVal
	case LeafEmptyObject:
		return "{}"
	case LeafEmptyArray:
		return "[]"
	default:
		return ""
	}
}

// FlatPair is one (path, leaf) entry of a flattened value.
type FlatPair struct {
	Path Path
	Leaf Leaf
}
