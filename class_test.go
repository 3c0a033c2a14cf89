package classwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		inputs []Class
		want   string
	}{
		{
			name:   "plain tokens join in order",
			inputs: []Class{Token("foo"), Token("bar")},
			want:   "foo bar",
		},
		{
			name:   "multi-token string splits",
			inputs: []Class{Token("btn btn--primary")},
			want:   "btn btn--primary",
		},
		{
			name:   "true conditional included",
			inputs: []Class{Token("base"), KV("active", true)},
			want:   "base active",
		},
		{
			name:   "false conditional excluded",
			inputs: []Class{Token("base"), KV("active", false)},
			want:   "base",
		},
		{
			name:   "nil inputs contribute nothing",
			inputs: []Class{Token("base"), nil, nil, Token("end")},
			want:   "base end",
		},
		{
			name:   "sequence flattens transparently",
			inputs: []Class{List(Token("foo"), Token("bar"))},
			want:   "foo bar",
		},
		{
			name:   "nested sequences flatten depth-first",
			inputs: []Class{List(Token("a"), List(Token("b"), Token("c")), Token("d"))},
			want:   "a b c d",
		},
		{
			name:   "sequence skips nil elements",
			inputs: []Class{List(Token("a"), nil, Token("b"))},
			want:   "a b",
		},
		{
			name: "keyed mapping includes truthy keys in order",
			inputs: []Class{Keyed(
				Pair{Class: "foo", On: true},
				Pair{Class: "bar", On: false},
				Pair{Class: "baz", On: true},
			)},
			want: "foo baz",
		},
		{
			name: "mixed variants flatten into one result",
			inputs: []Class{
				Token("base"),
				List(Token("array")),
				Keyed(Pair{Class: "object", On: true}),
			},
			want: "base array object",
		},
		{
			name:   "no inputs",
			inputs: nil,
			want:   "",
		},
		{
			name:   "same-family padding conflict keeps later",
			inputs: []Class{Token("px-2"), Token("px-4")},
			want:   "px-4",
		},
		{
			name:   "same-family color conflict keeps later",
			inputs: []Class{Token("text-red-500"), Token("text-blue-500")},
			want:   "text-blue-500",
		},
		{
			name:   "conflict resolution spans variants",
			inputs: []Class{Token("btn px-2"), KV("px-4", true)},
			want:   "btn px-4",
		},
		{
			name:   "non-conflicting tokens keep order",
			inputs: []Class{Token("flex items-center"), Token("gap-2")},
			want:   "flex items-center gap-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.inputs...)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComposeIdempotent(t *testing.T) {
	merged := Compose(Token("px-2 py-1 text-red-500"), Token("px-4"))
	require.Equal(t, "py-1 text-red-500 px-4", merged)

	// Re-composing a composed result with itself adds nothing.
	again := Compose(Token(merged), Token(merged))
	assert.Equal(t, merged, again)
}

func TestJoinSkipsConflictResolution(t *testing.T) {
	got := Join(Token("px-2"), Token("px-4"))
	require.Equal(t, "px-2 px-4", got)
}

func TestComposerNilTable(t *testing.T) {
	c := New(nil)

	// Without a table only exact duplicates are removed.
	assert.Equal(t, "px-2 px-4", c.Compose(Token("px-2"), Token("px-4")))
	assert.Equal(t, "bar foo", c.Compose(Token("foo"), Token("bar"), Token("foo")))
}
