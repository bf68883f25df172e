// Package flatten maps a nested JSON value to and from an ordered list
// of (path, leaf) pairs. Flatten and Unflatten are exact inverses for
// any pair sequence Flatten itself produces.
package flatten

import (
	"github.com/mcncl/flatsheet/internal/models"
)

// Flatten walks v depth-first in pre-order and emits one FlatPair per
// leaf. Empty objects and arrays emit their marker leaf so emptiness
// survives the round trip; a scalar root emits a single pair with the
// empty path.
func Flatten(v models.Value) []models.FlatPair {
	pairs := make([]models.FlatPair, 0, 16)
	walk(models.Path{}, v, &pairs)
	return pairs
}

func walk(p models.Path, v models.Value, out *[]models.FlatPair) {
	if leaf, ok := models.LeafOf(v); ok {
		*out = append(*out, models.FlatPair{Path: p, Leaf: leaf})
		return
	}
	switch v.Kind() {
	case models.KindObject:
		for _, m := range v.Members() {
			walk(p.Child(m.Key), m.Value, out)
		}
	case models.KindArray:
		for i, e := range v.Elems() {
			walk(p.At(i), e, out)
		}
	}
}
