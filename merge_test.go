package classwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "later padding wins",
			input: "px-2 px-4",
			want:  "px-4",
		},
		{
			name:  "later text color wins",
			input: "text-red-500 text-blue-500",
			want:  "text-blue-500",
		},
		{
			name:  "font size and text color do not conflict",
			input: "text-lg text-red-500",
			want:  "text-lg text-red-500",
		},
		{
			name:  "text alignment is its own family",
			input: "text-center text-lg text-left",
			want:  "text-lg text-left",
		},
		{
			name:  "shorthand displaces earlier axis utility",
			input: "px-2 p-4",
			want:  "p-4",
		},
		{
			name:  "axis utility does not displace earlier shorthand",
			input: "p-4 px-2",
			want:  "p-4 px-2",
		},
		{
			name:  "axis displaces earlier side",
			input: "pl-1 pr-3 px-2",
			want:  "px-2",
		},
		{
			name:  "negative margin shares the family",
			input: "-mx-2 mx-4",
			want:  "mx-4",
		},
		{
			name:  "display keywords conflict",
			input: "block flex",
			want:  "flex",
		},
		{
			name:  "display does not clash with flex utilities",
			input: "flex flex-col items-center",
			want:  "flex flex-col items-center",
		},
		{
			name:  "inset shorthand displaces sides",
			input: "top-2 left-4 inset-0",
			want:  "inset-0",
		},
		{
			name:  "side after inset survives alongside it",
			input: "inset-0 top-2",
			want:  "inset-0 top-2",
		},
		{
			name:  "border width and color are separate families",
			input: "border-2 border-red-500",
			want:  "border-2 border-red-500",
		},
		{
			name:  "bare border is a width",
			input: "border border-2",
			want:  "border-2",
		},
		{
			name:  "rounded scale",
			input: "rounded rounded-lg",
			want:  "rounded-lg",
		},
		{
			name:  "variant scopes do not cross",
			input: "hover:px-2 px-4",
			want:  "hover:px-2 px-4",
		},
		{
			name:  "same variant conflicts",
			input: "hover:px-2 hover:px-4",
			want:  "hover:px-4",
		},
		{
			name:  "variant order is normalized",
			input: "focus:hover:px-2 hover:focus:px-4",
			want:  "hover:focus:px-4",
		},
		{
			name:  "important is a separate scope",
			input: "!px-2 px-4",
			want:  "!px-2 px-4",
		},
		{
			name:  "important conflicts with important",
			input: "!px-2 !px-4",
			want:  "!px-4",
		},
		{
			name:  "arbitrary values share the family",
			input: "px-2 px-[13px]",
			want:  "px-[13px]",
		},
		{
			name:  "unknown tokens pass through in order",
			input: "card card__header is-open",
			want:  "card card__header is-open",
		},
		{
			name:  "exact duplicate kept once at last position",
			input: "foo bar foo",
			want:  "bar foo",
		},
		{
			name:  "fraction widths conflict",
			input: "w-1/2 w-full",
			want:  "w-full",
		},
		{
			name:  "single token untouched",
			input: "px-2",
			want:  "px-2",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveReportsDrops(t *testing.T) {
	c := New(DefaultTable())

	merged, drops := c.Resolve("px-2 foo px-4 foo")
	require.Equal(t, "px-4 foo", merged)
	require.Len(t, drops, 2)

	assert.Equal(t, Drop{Token: "px-2", Winner: "px-4", Reason: DropConflict}, drops[0])
	assert.Equal(t, Drop{Token: "foo", Winner: "foo", Reason: DropDuplicate}, drops[1])
}

func TestResolveCleanListHasNoDrops(t *testing.T) {
	c := New(DefaultTable())

	merged, drops := c.Resolve("flex items-center gap-2")
	require.Equal(t, "flex items-center gap-2", merged)
	assert.Empty(t, drops)
}

func TestResolveShorthandDropWinner(t *testing.T) {
	c := New(DefaultTable())

	merged, drops := c.Resolve("px-2 p-4")
	require.Equal(t, "p-4", merged)
	require.Len(t, drops, 1)
	assert.Equal(t, Drop{Token: "px-2", Winner: "p-4", Reason: DropConflict}, drops[0])
}

func TestSplitToken(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		wantModifiers []string
		wantImportant bool
		wantBase      string
	}{
		{
			name:     "bare utility",
			token:    "px-2",
			wantBase: "px-2",
		},
		{
			name:          "single variant",
			token:         "hover:px-2",
			wantModifiers: []string{"hover"},
			wantBase:      "px-2",
		},
		{
			name:          "stacked variants sorted",
			token:         "md:hover:px-2",
			wantModifiers: []string{"hover", "md"},
			wantBase:      "px-2",
		},
		{
			name:          "important",
			token:         "!px-2",
			wantImportant: true,
			wantBase:      "px-2",
		},
		{
			name:          "variant with important base",
			token:         "hover:!px-2",
			wantModifiers: []string{"hover"},
			wantImportant: true,
			wantBase:      "px-2",
		},
		{
			name:          "colon inside arbitrary variant does not split",
			token:         "[&:hover]:px-2",
			wantModifiers: []string{"[&:hover]"},
			wantBase:      "px-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, important, base := splitToken(tt.token)
			assert.Equal(t, tt.wantModifiers, mods)
			assert.Equal(t, tt.wantImportant, important)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}
