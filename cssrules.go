package classwind

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// shorthandProps expands CSS shorthands to the longhands they set, so a
// class declaring "padding" is recognized as displacing one declaring
// "padding-left".
var shorthandProps = map[string][]string{
	"padding":        {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"padding-inline": {"padding-left", "padding-right"},
	"padding-block":  {"padding-top", "padding-bottom"},
	"margin":         {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"margin-inline":  {"margin-left", "margin-right"},
	"margin-block":   {"margin-top", "margin-bottom"},
	"inset":          {"top", "right", "bottom", "left"},
	"inset-inline":   {"left", "right"},
	"inset-block":    {"top", "bottom"},
	"gap":            {"row-gap", "column-gap"},
	"overflow":       {"overflow-x", "overflow-y"},
	"flex":           {"flex-grow", "flex-shrink", "flex-basis"},
	"border":         {"border-width", "border-style", "border-color"},
	"outline":        {"outline-width", "outline-style", "outline-color"},
	"background":     {"background-color", "background-image", "background-size", "background-position", "background-repeat"},
	"font":           {"font-family", "font-size", "font-weight", "line-height"},
	"transition":     {"transition-property", "transition-duration", "transition-timing-function", "transition-delay"},
	"animation":      {"animation-name", "animation-duration", "animation-timing-function", "animation-delay"},
}

// AddCSS derives family entries from a stylesheet. Every simple
// single-class rule (".name { ... }") is registered under a family keyed
// by the set of properties it declares, with shorthands expanded. A
// family whose property set contains another's displaces it, matching
// how a browser would let the later class win.
//
// Rules with compound selectors, pseudo-classes, or no declarations are
// ignored; they do not describe a single reusable utility.
func (t *FamilyTable) AddCSS(r io.Reader) error {
	classProps, err := scanRules(r)
	if err != nil {
		return fmt.Errorf("parse stylesheet: %w", err)
	}

	if t.cssFamilies == nil {
		t.cssFamilies = make(map[string]map[string]bool)
	}

	for _, cp := range classProps {
		family := propertySignature(cp.props)
		t.AddClass(cp.class, family)

		if _, known := t.cssFamilies[family]; known {
			continue
		}

		// Displacement is one-way: a superset property family wins over
		// its subsets when it appears later.
		for other, otherProps := range t.cssFamilies {
			if containsAll(cp.props, otherProps) {
				t.AddOverride(family, other)
			}
			if containsAll(otherProps, cp.props) {
				t.AddOverride(other, family)
			}
		}
		t.cssFamilies[family] = cp.props
	}

	return nil
}

// TableFromCSS builds a fresh table from a stylesheet alone.
func TableFromCSS(r io.Reader) (*FamilyTable, error) {
	t := NewTable()
	if err := t.AddCSS(r); err != nil {
		return nil, err
	}
	return t, nil
}

type classRule struct {
	class string
	props map[string]bool
}

// scanRules lexes a stylesheet and collects the declared property names
// of every simple single-class rule.
func scanRules(r io.Reader) ([]classRule, error) {
	lexer := css.NewLexer(parse.NewInput(r))

	merged := make(map[string]map[string]bool)
	var order []string

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			break
		}

		if tt != css.DelimToken || len(text) == 0 || text[0] != '.' {
			continue
		}

		tt, name := lexer.Next()
		if tt != css.IdentToken {
			continue
		}
		className := string(name)

		// Anything between the class name and the opening brace makes
		// the selector compound; skip its declarations.
		simple := true
	selector:
		for {
			tt, _ := lexer.Next()
			switch tt {
			case css.ErrorToken:
				if err := lexer.Err(); err != nil && err != io.EOF {
					return nil, err
				}
				return collect(merged, order), nil
			case css.LeftBraceToken:
				break selector
			case css.WhitespaceToken, css.CommentToken:
			default:
				simple = false
			}
		}

		props := declaredProperties(lexer)
		if !simple || len(props) == 0 {
			continue
		}

		existing, seen := merged[className]
		if !seen {
			existing = make(map[string]bool)
			merged[className] = existing
			order = append(order, className)
		}
		for p := range props {
			existing[p] = true
		}
	}

	return collect(merged, order), nil
}

// declaredProperties reads property names until the closing brace,
// expanding shorthands. Custom properties (--*) are skipped.
func declaredProperties(lexer *css.Lexer) map[string]bool {
	props := make(map[string]bool)
	expectName := true

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			return props
		case css.IdentToken:
			if expectName {
				addProperty(props, strings.ToLower(string(text)))
				expectName = false
			}
		case css.CustomPropertyNameToken:
			expectName = false
		case css.SemicolonToken:
			expectName = true
		}
	}
}

func addProperty(props map[string]bool, name string) {
	if longhands, isShorthand := shorthandProps[name]; isShorthand {
		for _, l := range longhands {
			props[l] = true
		}
		return
	}
	props[name] = true
}

func collect(merged map[string]map[string]bool, order []string) []classRule {
	rules := make([]classRule, 0, len(order))
	for _, name := range order {
		rules = append(rules, classRule{class: name, props: merged[name]})
	}
	return rules
}

// propertySignature builds a deterministic family key from a property set.
func propertySignature(props map[string]bool) string {
	names := make([]string, 0, len(props))
	for p := range props {
		names = append(names, p)
	}
	sort.Strings(names)
	return "css:" + strings.Join(names, "+")
}

// containsAll reports whether super contains every key of sub.
func containsAll(super, sub map[string]bool) bool {
	if len(sub) > len(super) {
		return false
	}
	for p := range sub {
		if !super[p] {
			return false
		}
	}
	return true
}
