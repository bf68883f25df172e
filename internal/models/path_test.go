package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		sep  string
		want string
	}{
		{
			name: "empty path",
			path: Path{},
			sep:  ".",
			want: "",
		},
		{
			name: "single key",
			path: Path{KeySegment("a")},
			sep:  ".",
			want: "a",
		},
		{
			name: "nested keys",
			path: Path{KeySegment("a"), KeySegment("b"), KeySegment("c")},
			sep:  ".",
			want: "a.b.c",
		},
		{
			name: "index under key",
			path: Path{KeySegment("parent"), IndexSegment(0), KeySegment("child")},
			sep:  ".",
			want: "parent.0.child",
		},
		{
			name: "custom separator",
			path: Path{KeySegment("a"), KeySegment("b")},
			sep:  "/",
			want: "a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String(tt.sep))
		})
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		sep     string
		want    Path
		wantErr bool
	}{
		{
			name:  "empty string is the root path",
			input: "",
			sep:   ".",
			want:  Path{},
		},
		{
			name:  "plain keys",
			input: "a.b",
			sep:   ".",
			want:  Path{KeySegment("a"), KeySegment("b")},
		},
		{
			name:  "digit token is an index",
			input: "items.0.name",
			sep:   ".",
			want:  Path{KeySegment("items"), IndexSegment(0), KeySegment("name")},
		},
		{
			name:  "multi-digit index",
			input: "items.10",
			sep:   ".",
			want:  Path{KeySegment("items"), IndexSegment(10)},
		},
		{
			name:  "leading zero stays a key",
			input: "items.007",
			sep:   ".",
			want:  Path{KeySegment("items"), KeySegment("007")},
		},
		{
			name:  "literal zero is an index",
			input: "0",
			sep:   ".",
			want:  Path{IndexSegment(0)},
		},
		{
			name:  "custom separator",
			input: "a/0/b",
			sep:   "/",
			want:  Path{KeySegment("a"), IndexSegment(0), KeySegment("b")},
		},
		{
			name:    "empty segment fails",
			input:   "a..b",
			sep:     ".",
			wantErr: true,
		},
		{
			name:    "trailing separator fails",
			input:   "a.",
			sep:     ".",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input, tt.sep)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	paths := []Path{
		{},
		{KeySegment("a")},
		{KeySegment("a"), IndexSegment(3), KeySegment("b")},
		{IndexSegment(0), IndexSegment(1)},
		{KeySegment("translations"), KeySegment("en"), KeySegment("title")},
	}
	for _, p := range paths {
		got, err := ParsePath(p.String("."), ".")
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestPathChildAndAtDoNotAlias(t *testing.T) {
	base := Path{KeySegment("root")}
	a := base.Child("a")
	b := base.Child("b")

	assert.Equal(t, "root.a", a.String("."))
	assert.Equal(t, "root.b", b.String("."))
	assert.Equal(t, "root", base.String("."))

	i0 := base.At(0)
	assert.Equal(t, "root.0", i0.String("."))
	assert.Equal(t, "root.a", a.String("."))
}
