package classwind

import (
	"strconv"
	"strings"
)

// FamilyTable maps class tokens to utility families. Tokens in the same
// family are mutually exclusive: they configure the same visual property,
// so only the last occurrence in a class list survives a merge.
//
// The table is configuration, not algorithm: lookups are driven by exact
// entries, ordered prefix rules, and cross-family overrides, all of which
// can be extended without touching the merge pass. Build a table once and
// share it; it must not be modified while a Composer is using it.
type FamilyTable struct {
	exact     map[string]string
	prefixes  []prefixRule
	overrides map[string][]string

	// cssFamilies tracks the property sets of families derived from
	// stylesheets via AddCSS, for displacement computation.
	cssFamilies map[string]map[string]bool
}

// prefixRule matches tokens by prefix, optionally constrained by a value
// predicate so "text-red-500" and "text-lg" can land in different families.
type prefixRule struct {
	prefix string
	family string
	match  func(value string) bool
}

// NewTable returns an empty family table.
func NewTable() *FamilyTable {
	return &FamilyTable{
		exact:     make(map[string]string),
		overrides: make(map[string][]string),
	}
}

// AddClass registers an exact token as a member of family.
func (t *FamilyTable) AddClass(token, family string) {
	t.exact[token] = family
}

// AddPrefix registers a prefix rule. Rules are checked in registration
// order and the first match wins. A nil match accepts any value.
func (t *FamilyTable) AddPrefix(prefix, family string, match func(value string) bool) {
	t.prefixes = append(t.prefixes, prefixRule{prefix: prefix, family: family, match: match})
}

// AddOverride declares that a token of family also displaces earlier
// tokens of the overridden families. Used for shorthands: a later "p-4"
// displaces an earlier "px-2", but not the other way around.
func (t *FamilyTable) AddOverride(family string, overridden ...string) {
	t.overrides[family] = append(t.overrides[family], overridden...)
}

// FamilyOf classifies a bare token (no variant modifiers). A leading "-"
// (negative value) does not change the family. Unknown tokens report
// ok=false and pass through merges untouched apart from duplicate removal.
func (t *FamilyTable) FamilyOf(token string) (family string, ok bool) {
	if t == nil {
		return "", false
	}
	token = strings.TrimPrefix(token, "-")

	if fam, exists := t.exact[token]; exists {
		return fam, true
	}

	for _, rule := range t.prefixes {
		if !strings.HasPrefix(token, rule.prefix) {
			continue
		}
		value := token[len(rule.prefix):]
		if rule.match == nil || rule.match(value) {
			return rule.family, true
		}
	}

	return "", false
}

// overridesOf returns the families displaced by a token of family.
func (t *FamilyTable) overridesOf(family string) []string {
	if t == nil {
		return nil
	}
	return t.overrides[family]
}

// Value predicates for prefix rules.

// isArbitrary reports whether a value is a bracketed arbitrary value,
// e.g. "[13px]" or "[#bada55]".
func isArbitrary(v string) bool {
	return len(v) > 2 && strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]")
}

// isNumericValue accepts spacing-scale values: integers, decimals,
// fractions ("1/2"), and arbitrary values.
func isNumericValue(v string) bool {
	if isArbitrary(v) {
		return true
	}
	if num, _, found := strings.Cut(v, "/"); found {
		v = num
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// isSpacingValue accepts the spacing scale plus the keyword values the
// spacing utilities share.
func isSpacingValue(v string) bool {
	switch v {
	case "px", "auto", "full":
		return true
	}
	return isNumericValue(v)
}

// colorNames is the standard palette. Shades are validated separately.
var colorNames = map[string]bool{
	"slate": true, "gray": true, "zinc": true, "neutral": true, "stone": true,
	"red": true, "orange": true, "amber": true, "yellow": true, "lime": true,
	"green": true, "emerald": true, "teal": true, "cyan": true, "sky": true,
	"blue": true, "indigo": true, "violet": true, "purple": true,
	"fuchsia": true, "pink": true, "rose": true,
	"black": true, "white": true, "transparent": true, "current": true, "inherit": true,
}

// isColorValue accepts palette colors ("red-500", "white", "white/80") and
// arbitrary color values ("[#bada55]").
func isColorValue(v string) bool {
	if isArbitrary(v) {
		return true
	}
	// Strip opacity suffix: "red-500/80"
	if base, _, found := strings.Cut(v, "/"); found {
		v = base
	}
	if colorNames[v] {
		return true
	}
	name, shade, found := cutLast(v, "-")
	if !found || !colorNames[name] {
		return false
	}
	_, err := strconv.Atoi(shade)
	return err == nil
}

// cutLast splits around the last occurrence of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}

// fontSizes are the named font-size scale values for the "text-" prefix.
var fontSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true,
	"2xl": true, "3xl": true, "4xl": true, "5xl": true, "6xl": true,
	"7xl": true, "8xl": true, "9xl": true,
}

func isFontSize(v string) bool {
	// Arbitrary color values ("[#bada55]") belong to text-color.
	return fontSizes[v] || (isArbitrary(v) && !strings.HasPrefix(v, "[#"))
}

// addExact registers each token under the same family.
func (t *FamilyTable) addExact(family string, tokens ...string) {
	for _, tok := range tokens {
		t.AddClass(tok, family)
	}
}

// DefaultTable returns the built-in family table covering the common
// utility groups. Axis shorthands override their component families
// ("p" displaces "px"/"py"/"pt"/..., "inset" displaces "top"/"left"/...).
func DefaultTable() *FamilyTable {
	t := NewTable()

	// Spacing: padding and margin, shorthand to longhand.
	for _, p := range []struct{ short, x, y, t, r, b, l string }{
		{"p", "px", "py", "pt", "pr", "pb", "pl"},
		{"m", "mx", "my", "mt", "mr", "mb", "ml"},
	} {
		for _, fam := range []string{p.short, p.x, p.y, p.t, p.r, p.b, p.l} {
			t.AddPrefix(fam+"-", fam, isSpacingValue)
		}
		t.AddOverride(p.short, p.x, p.y, p.t, p.r, p.b, p.l)
		t.AddOverride(p.x, p.r, p.l)
		t.AddOverride(p.y, p.t, p.b)
	}

	// Space-between.
	t.AddPrefix("space-x-", "space-x", isSpacingValue)
	t.AddPrefix("space-y-", "space-y", isSpacingValue)

	// Gap.
	t.AddPrefix("gap-x-", "gap-x", isSpacingValue)
	t.AddPrefix("gap-y-", "gap-y", isSpacingValue)
	t.AddPrefix("gap-", "gap", isSpacingValue)
	t.AddOverride("gap", "gap-x", "gap-y")

	// Inset and placement.
	t.AddPrefix("inset-x-", "inset-x", isSpacingValue)
	t.AddPrefix("inset-y-", "inset-y", isSpacingValue)
	t.AddPrefix("inset-", "inset", isSpacingValue)
	t.AddPrefix("top-", "top", isSpacingValue)
	t.AddPrefix("right-", "right", isSpacingValue)
	t.AddPrefix("bottom-", "bottom", isSpacingValue)
	t.AddPrefix("left-", "left", isSpacingValue)
	t.AddOverride("inset", "inset-x", "inset-y", "top", "right", "bottom", "left")
	t.AddOverride("inset-x", "right", "left")
	t.AddOverride("inset-y", "top", "bottom")

	// Sizing.
	t.AddPrefix("min-w-", "min-w", nil)
	t.AddPrefix("max-w-", "max-w", nil)
	t.AddPrefix("min-h-", "min-h", nil)
	t.AddPrefix("max-h-", "max-h", nil)
	t.AddPrefix("w-", "w", nil)
	t.AddPrefix("h-", "h", nil)
	t.AddPrefix("size-", "size", nil)
	t.AddOverride("size", "w", "h")

	// Display.
	t.addExact("display",
		"block", "inline-block", "inline", "flex", "inline-flex",
		"grid", "inline-grid", "table", "inline-table", "contents",
		"flow-root", "hidden")

	// Position.
	t.addExact("position", "static", "fixed", "absolute", "relative", "sticky")

	// Flex and grid.
	t.addExact("flex-direction", "flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse")
	t.addExact("flex-wrap", "flex-wrap", "flex-wrap-reverse", "flex-nowrap")
	t.addExact("flex", "flex-1", "flex-auto", "flex-initial", "flex-none")
	t.AddPrefix("grow-", "grow", isNumericValue)
	t.AddClass("grow", "grow")
	t.AddPrefix("shrink-", "shrink", isNumericValue)
	t.AddClass("shrink", "shrink")
	t.AddPrefix("basis-", "basis", nil)
	t.AddPrefix("order-", "order", nil)
	t.AddPrefix("grid-cols-", "grid-cols", nil)
	t.AddPrefix("grid-rows-", "grid-rows", nil)
	t.AddPrefix("col-span-", "col-span", nil)
	t.AddPrefix("row-span-", "row-span", nil)
	t.AddPrefix("items-", "items", nil)
	t.AddPrefix("justify-", "justify", nil)
	t.AddPrefix("content-", "content", nil)
	t.AddPrefix("self-", "self", nil)

	// Typography. Order matters for the shared "text-" prefix: alignment
	// is exact, size before color.
	t.addExact("text-align", "text-left", "text-center", "text-right", "text-justify", "text-start", "text-end")
	t.AddPrefix("text-", "font-size", isFontSize)
	t.AddPrefix("text-", "text-color", isColorValue)
	t.addExact("font-family", "font-sans", "font-serif", "font-mono")
	t.addExact("font-weight",
		"font-thin", "font-extralight", "font-light", "font-normal",
		"font-medium", "font-semibold", "font-bold", "font-extrabold", "font-black")
	t.AddPrefix("leading-", "leading", nil)
	t.AddPrefix("tracking-", "tracking", nil)
	t.addExact("text-transform", "uppercase", "lowercase", "capitalize", "normal-case")
	t.addExact("text-decoration", "underline", "overline", "line-through", "no-underline")
	t.AddPrefix("whitespace-", "whitespace", nil)
	t.AddPrefix("break-", "word-break", nil)

	// Backgrounds and borders.
	t.AddPrefix("bg-", "bg-color", isColorValue)
	t.AddPrefix("border-x-", "border-w-x", isNumericValue)
	t.AddPrefix("border-y-", "border-w-y", isNumericValue)
	t.AddPrefix("border-t-", "border-w-t", isNumericValue)
	t.AddPrefix("border-r-", "border-w-r", isNumericValue)
	t.AddPrefix("border-b-", "border-w-b", isNumericValue)
	t.AddPrefix("border-l-", "border-w-l", isNumericValue)
	t.AddPrefix("border-", "border-w", isNumericValue)
	t.AddClass("border", "border-w")
	t.AddOverride("border-w", "border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l")
	t.AddOverride("border-w-x", "border-w-r", "border-w-l")
	t.AddOverride("border-w-y", "border-w-t", "border-w-b")
	t.AddPrefix("border-", "border-color", isColorValue)
	t.addExact("border-style",
		"border-solid", "border-dashed", "border-dotted", "border-double",
		"border-hidden", "border-none")
	t.AddPrefix("rounded-", "rounded", nil)
	t.AddClass("rounded", "rounded")
	t.AddPrefix("divide-x-", "divide-x", isNumericValue)
	t.AddPrefix("divide-y-", "divide-y", isNumericValue)
	t.AddPrefix("ring-", "ring-color", isColorValue)
	t.AddPrefix("ring-", "ring-w", isNumericValue)
	t.AddClass("ring", "ring-w")

	// Effects and misc.
	t.AddPrefix("shadow-", "shadow", nil)
	t.AddClass("shadow", "shadow")
	t.AddPrefix("opacity-", "opacity", isNumericValue)
	t.AddPrefix("z-", "z", nil)
	t.AddPrefix("overflow-x-", "overflow-x", nil)
	t.AddPrefix("overflow-y-", "overflow-y", nil)
	t.AddPrefix("overflow-", "overflow", nil)
	t.AddOverride("overflow", "overflow-x", "overflow-y")
	t.AddPrefix("cursor-", "cursor", nil)
	t.AddPrefix("select-", "select", nil)
	t.AddPrefix("object-", "object", nil)
	t.AddPrefix("fill-", "fill", isColorValue)
	t.AddPrefix("stroke-", "stroke-color", isColorValue)
	t.AddPrefix("stroke-", "stroke-w", isNumericValue)
	t.AddPrefix("transition-", "transition", nil)
	t.AddClass("transition", "transition")
	t.AddPrefix("duration-", "duration", isNumericValue)
	t.AddPrefix("delay-", "delay", isNumericValue)
	t.AddPrefix("ease-", "ease", nil)
	t.AddPrefix("scale-", "scale", isNumericValue)
	t.AddPrefix("rotate-", "rotate", isNumericValue)
	t.AddPrefix("translate-x-", "translate-x", isSpacingValue)
	t.AddPrefix("translate-y-", "translate-y", isSpacingValue)
	t.addExact("visibility", "visible", "invisible", "collapse")
	t.addExact("pointer-events", "pointer-events-none", "pointer-events-auto")

	return t
}
