package flatten

import (
	"github.com/mcncl/flatsheet/internal/errors"
	"github.com/mcncl/flatsheet/internal/models"
)

// diagSep joins paths for error messages only; it plays no role in the
// reconstruction itself, which works on segment sequences.
const diagSep = "."

type nodeKind uint8

const (
	nodeUnset nodeKind = iota
	nodeLeaf
	nodeObject
	nodeArray
)

// node is the mutable builder tree Unflatten grows pair by pair before
// materializing an immutable Value.
type node struct {
	kind   nodeKind
	leaf   models.Leaf
	keys   []string
	fields map[string]*node
	elems  []*node
}

// Unflatten rebuilds a value tree from flattened pairs, the structural
// inverse of Flatten. It reports a structure conflict when the paths
// imply incompatible container types at the same location, when a leaf
// position is set twice, or when the input is empty. Indices left
// unfilled by the input become explicit nulls.
func Unflatten(pairs []models.FlatPair) (models.Value, error) {
	if len(pairs) == 0 {
		return models.Value{}, errors.NewStructureError("no pairs to unflatten", errors.ErrStructureConflict)
	}
	root := &node{}
	for _, pr := range pairs {
		if err := insert(root, pr); err != nil {
			return models.Value{}, err
		}
	}
	return materialize(root), nil
}

func insert(root *node, pr models.FlatPair) error {
	if len(pr.Path) == 0 {
		if root.kind != nodeUnset {
			return errors.NewStructureConflict("", "root set more than once")
		}
		root.kind = nodeLeaf
		root.leaf = pr.Leaf
		return nil
	}

	cur := root
	for i, seg := range pr.Path {
		var next *node
		if seg.IsIndex {
			if cur.kind == nodeUnset {
				cur.kind = nodeArray
			}
			if cur.kind != nodeArray {
				return errors.NewStructureConflict(pr.Path[:i].String(diagSep),
					"index segment addresses a non-array")
			}
			for len(cur.elems) <= seg.Index {
				cur.elems = append(cur.elems, nil)
			}
			if cur.elems[seg.Index] == nil {
				cur.elems[seg.Index] = &node{}
			}
			next = cur.elems[seg.Index]
		} else {
			if cur.kind == nodeUnset {
				cur.kind = nodeObject
				cur.fields = make(map[string]*node)
			}
			if cur.kind != nodeObject {
				return errors.NewStructureConflict(pr.Path[:i].String(diagSep),
					"key segment addresses a non-object")
			}
			child, ok := cur.fields[seg.Key]
			if !ok {
				child = &node{}
				cur.fields[seg.Key] = child
				cur.keys = append(cur.keys, seg.Key)
			}
			next = child
		}

		if i == len(pr.Path)-1 {
			if next.kind != nodeUnset {
				return errors.NewStructureConflict(pr.Path.String(diagSep),
					"leaf position already occupied")
			}
			next.kind = nodeLeaf
			next.leaf = pr.Leaf
			return nil
		}
		cur = next
	}
	return nil
}

func materialize(n *node) models.Value {
	switch {
	case n == nil, n.kind == nodeUnset:
		// Gap left by non-contiguous indices.
		return models.Null()
	case n.kind == nodeLeaf:
		return n.leaf.Value()
	case n.kind == nodeObject:
		members := make([]models.Member, len(n.keys))
		for i, k := range n.keys {
			members[i] = models.Member{Key: k, Value: materialize(n.fields[k])}
		}
		return models.Object(members...)
	default:
		elems := make([]models.Value, len(n.elems))
		for i, e := range n.elems {
			elems[i] = materialize(e)
		}
		return models.Array(elems...)
	}
}
