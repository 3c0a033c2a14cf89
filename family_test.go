package classwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableFamilyOf(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name       string
		token      string
		wantFamily string
		wantOK     bool
	}{
		{name: "padding axis", token: "px-2", wantFamily: "px", wantOK: true},
		{name: "padding shorthand", token: "p-4", wantFamily: "p", wantOK: true},
		{name: "negative margin", token: "-mt-4", wantFamily: "mt", wantOK: true},
		{name: "text color", token: "text-red-500", wantFamily: "text-color", wantOK: true},
		{name: "text color with opacity", token: "text-red-500/80", wantFamily: "text-color", wantOK: true},
		{name: "text keyword color", token: "text-white", wantFamily: "text-color", wantOK: true},
		{name: "font size", token: "text-lg", wantFamily: "font-size", wantOK: true},
		{name: "arbitrary font size", token: "text-[13px]", wantFamily: "font-size", wantOK: true},
		{name: "arbitrary text color", token: "text-[#bada55]", wantFamily: "text-color", wantOK: true},
		{name: "text alignment", token: "text-center", wantFamily: "text-align", wantOK: true},
		{name: "background color", token: "bg-slate-100", wantFamily: "bg-color", wantOK: true},
		{name: "display keyword", token: "hidden", wantFamily: "display", wantOK: true},
		{name: "fractional width", token: "w-1/2", wantFamily: "w", wantOK: true},
		{name: "border width", token: "border-2", wantFamily: "border-w", wantOK: true},
		{name: "bare border", token: "border", wantFamily: "border-w", wantOK: true},
		{name: "border color", token: "border-red-500", wantFamily: "border-color", wantOK: true},
		{name: "component class unknown", token: "btn--primary", wantOK: false},
		{name: "empty token unknown", token: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			family, ok := table.FamilyOf(tt.token)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantFamily, family)
			}
		})
	}
}

func TestFamilyTableExtension(t *testing.T) {
	table := NewTable()
	table.AddPrefix("btn-", "button-kind", nil)
	table.AddClass("btn", "button-kind")

	c := New(table)
	assert.Equal(t, "btn-ghost", c.Merge("btn btn-ghost"))
	assert.Equal(t, "card btn", c.Merge("card btn-ghost btn"))
}

func TestFamilyTableOverrides(t *testing.T) {
	table := NewTable()
	table.AddPrefix("pad-x-", "pad-x", nil)
	table.AddPrefix("pad-", "pad", nil)
	table.AddOverride("pad", "pad-x")

	c := New(table)

	// The shorthand displaces the axis utility, not the reverse.
	assert.Equal(t, "pad-2", c.Merge("pad-x-4 pad-2"))
	assert.Equal(t, "pad-2 pad-x-4", c.Merge("pad-2 pad-x-4"))
}

func TestValuePredicates(t *testing.T) {
	assert.True(t, isSpacingValue("2"))
	assert.True(t, isSpacingValue("0.5"))
	assert.True(t, isSpacingValue("1/2"))
	assert.True(t, isSpacingValue("px"))
	assert.True(t, isSpacingValue("auto"))
	assert.True(t, isSpacingValue("[3px]"))
	assert.False(t, isSpacingValue("red-500"))

	assert.True(t, isColorValue("red-500"))
	assert.True(t, isColorValue("white"))
	assert.True(t, isColorValue("white/80"))
	assert.True(t, isColorValue("[#bada55]"))
	assert.False(t, isColorValue("lg"))
	assert.False(t, isColorValue("500"))
}
