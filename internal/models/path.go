package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: either an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeySegment returns an object-key segment.
func KeySegment(key string) Segment {
	return Segment{Key: key}
}

// IndexSegment returns an array-index segment.
func IndexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Text returns the segment as it appears in a serialized path.
func (s Segment) Text() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Path addresses a leaf within a value tree as a sequence of segments.
// An empty path addresses the root itself.
type Path []Segment

// Child returns a copy of p extended with an object-key segment.
func (p Path) Child(key string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = KeySegment(key)
	return out
}

// At returns a copy of p extended with an array-index segment.
func (p Path) At(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = IndexSegment(i)
	return out
}

// String serializes the path by joining segment texts with sep. The
// empty path serializes to the empty string.
func (p Path) String(sep string) string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.Text()
	}
	return strings.Join(parts, sep)
}

// ParsePath splits a serialized path on sep and rebuilds the segment
// sequence. A token made entirely of digits with no leading zero (except
// the literal "0") becomes an array index; every other token is an
// object key. The empty string parses to the empty path.
//
// Keys that themselves contain sep cannot survive this split; that is a
// documented limitation of the flat serialization, not an error.
func ParsePath(s string, sep string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, sep)
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty segment in path %q", s)
		}
		if isIndexToken(part) {
			i, err := strconv.Atoi(part)
			if err != nil {
				// Digits only, so the token must be out of int range.
				return nil, fmt.Errorf("index segment %q in path %q: %w", part, s, err)
			}
			path = append(path, IndexSegment(i))
			continue
		}
		path = append(path, KeySegment(part))
	}
	return path, nil
}

// isIndexToken reports whether a token denotes an array index: all
// digits, no leading zero unless it is exactly "0".
func isIndexToken(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
