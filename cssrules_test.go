package classwind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFromCSS(t *testing.T) {
	rules := `
	.p-1 {
		padding: 0.25rem;
	}
	.p-2 {
		padding: 0.5rem;
	}
	`

	table, err := TableFromCSS(strings.NewReader(rules))
	require.NoError(t, err)

	c := New(table)
	// p-2 appears first, so the later p-1 wins even though a browser
	// would apply p-2 (defined later in the sheet).
	assert.Equal(t, "p-1", c.Merge("p-2 p-1"))
}

func TestAddCSSShorthandDisplacement(t *testing.T) {
	rules := `
	.pad { padding: 1rem; }
	.pad-x { padding-left: 1rem; padding-right: 1rem; }
	.pad-l { padding-left: 2rem; }
	`

	table, err := TableFromCSS(strings.NewReader(rules))
	require.NoError(t, err)

	c := New(table)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "shorthand displaces axis", input: "pad-x pad", want: "pad"},
		{name: "axis survives after shorthand", input: "pad pad-x", want: "pad pad-x"},
		{name: "axis displaces side", input: "pad-l pad-x", want: "pad-x"},
		{name: "shorthand displaces side", input: "pad-l pad", want: "pad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Merge(tt.input))
		})
	}
}

func TestAddCSSSkipsCompoundSelectors(t *testing.T) {
	rules := `
	.btn:hover { color: red; }
	.card .title { color: blue; }
	.plain { color: green; }
	`

	table, err := TableFromCSS(strings.NewReader(rules))
	require.NoError(t, err)

	_, ok := table.FamilyOf("btn")
	assert.False(t, ok, "pseudo-class rule should not register a family")
	_, ok = table.FamilyOf("card")
	assert.False(t, ok, "descendant rule should not register a family")

	family, ok := table.FamilyOf("plain")
	require.True(t, ok)
	assert.Equal(t, "css:color", family)
}

func TestAddCSSMergesRepeatedRules(t *testing.T) {
	rules := `
	.box { color: red; }
	.box { padding: 1rem; }
	.other { color: blue; padding: 2rem; }
	`

	table, err := TableFromCSS(strings.NewReader(rules))
	require.NoError(t, err)

	boxFamily, ok := table.FamilyOf("box")
	require.True(t, ok)
	otherFamily, ok := table.FamilyOf("other")
	require.True(t, ok)
	assert.Equal(t, boxFamily, otherFamily, "identical property sets share a family")

	c := New(table)
	assert.Equal(t, "other", c.Merge("box other"))
}

func TestAddCSSOnTopOfDefaultTable(t *testing.T) {
	table := DefaultTable()
	err := table.AddCSS(strings.NewReader(`.btn-pad { padding: 1rem; }`))
	require.NoError(t, err)

	c := New(table)
	// Stylesheet-derived families coexist with the built-in ones but do
	// not cross: the built-in px family is unrelated to css:padding-*.
	assert.Equal(t, "btn-pad", c.Merge("btn-pad btn-pad"))
	assert.Equal(t, "px-2 btn-pad", c.Merge("px-2 btn-pad"))
}

func TestAddCSSIgnoresCustomProperties(t *testing.T) {
	rules := `
	.themed {
		--accent: #f00;
		color: var(--accent);
	}
	`

	table, err := TableFromCSS(strings.NewReader(rules))
	require.NoError(t, err)

	family, ok := table.FamilyOf("themed")
	require.True(t, ok)
	assert.Equal(t, "css:color", family)
}
