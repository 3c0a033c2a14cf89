package classwind

import "strings"

// Class is a single input to Compose. A Class is one of four shapes:
//
//   - Token: a plain class string ("btn", or "btn btn--primary")
//   - KV: a class guarded by a condition
//   - List: an ordered sequence of nested Class values
//   - Keyed: an ordered class -> condition mapping
//
// A nil Class contributes nothing. The concrete shapes are unexported so
// flattening is a total dispatch over known variants rather than runtime
// type inspection.
type Class interface {
	appendTokens(dst []string) []string
}

// Token returns a plain class input. Multi-class strings are split on
// whitespace, so Token("btn btn--primary") contributes two tokens.
func Token(class string) Class {
	return token(class)
}

type token string

func (t token) appendTokens(dst []string) []string {
	return append(dst, strings.Fields(string(t))...)
}

// KV returns a conditional class input. The class contributes its tokens
// only when on is true. The name mirrors templ.KV, which serves the same
// role in templates.
func KV(class string, on bool) Class {
	return conditional{class: class, on: on}
}

type conditional struct {
	class string
	on    bool
}

func (c conditional) appendTokens(dst []string) []string {
	if !c.on {
		return dst
	}
	return append(dst, strings.Fields(c.class)...)
}

// List returns an ordered sequence input. Nested sequences flatten
// depth-first, left to right. Nil elements are skipped.
func List(classes ...Class) Class {
	return list(classes)
}

type list []Class

func (l list) appendTokens(dst []string) []string {
	for _, c := range l {
		if c == nil {
			continue
		}
		dst = c.appendTokens(dst)
	}
	return dst
}

// Pair is one entry of a Keyed input.
type Pair struct {
	Class string
	On    bool
}

// Keyed returns an ordered mapping input: each pair contributes its class
// tokens when its condition is true, in declaration order. A slice of
// pairs is used instead of a map so iteration order is deterministic.
func Keyed(pairs ...Pair) Class {
	return keyed(pairs)
}

type keyed []Pair

func (k keyed) appendTokens(dst []string) []string {
	for _, p := range k {
		if !p.On {
			continue
		}
		dst = append(dst, strings.Fields(p.Class)...)
	}
	return dst
}

// Join flattens the inputs into a single space-separated class list,
// preserving relative order. No conflict resolution is applied.
func Join(classes ...Class) string {
	var tokens []string
	for _, c := range classes {
		if c == nil {
			continue
		}
		tokens = c.appendTokens(tokens)
	}
	return strings.Join(tokens, " ")
}

// Composer flattens class inputs and resolves utility conflicts against
// an injected family table. The zero value is not usable; construct with
// New. A Composer holds no mutable state and is safe for concurrent use.
type Composer struct {
	table *FamilyTable
}

// New returns a Composer using the given family table. A nil table means
// no conflict resolution: Compose degrades to Join plus duplicate removal.
func New(table *FamilyTable) *Composer {
	return &Composer{table: table}
}

// Compose flattens the inputs and resolves conflicts. For tokens in the
// same utility family the later occurrence wins; exact duplicate tokens
// are kept once, at their last position. Non-conflicting tokens keep
// their relative order.
func (c *Composer) Compose(classes ...Class) string {
	return c.Merge(Join(classes...))
}

var defaultComposer = New(DefaultTable())

// Compose flattens and conflict-resolves the inputs using the default
// family table.
func Compose(classes ...Class) string {
	return defaultComposer.Compose(classes...)
}

// Merge resolves conflicts in an already-joined class list using the
// default family table.
func Merge(classList string) string {
	return defaultComposer.Merge(classList)
}
