package classwind

import (
	"sort"
	"strings"
)

// DropReason explains why a token was removed during a merge.
type DropReason int

const (
	// DropConflict means a later token of the same utility family won.
	DropConflict DropReason = iota
	// DropDuplicate means an identical token appears later in the list.
	DropDuplicate
)

// Drop records one token removed by Resolve, along with the token that
// displaced it.
type Drop struct {
	Token  string
	Winner string
	Reason DropReason
}

// Merge resolves conflicts in a space-separated class list: per utility
// family the last token wins, exact duplicates are kept once at their
// last position, everything else passes through in order.
func (c *Composer) Merge(classList string) string {
	merged, _ := c.Resolve(classList)
	return merged
}

// Resolve is Merge plus an account of every removed token. The drops are
// reported in original token order.
func (c *Composer) Resolve(classList string) (string, []Drop) {
	tokens := strings.Fields(classList)
	if len(tokens) < 2 {
		return strings.Join(tokens, " "), nil
	}

	// Walk right to left so the last occurrence of each conflict key is
	// the one that survives.
	seen := make(map[string]string, len(tokens)) // conflict key -> winning token
	kept := make([]string, 0, len(tokens))
	var drops []Drop

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		key, family, scope := c.conflictKey(tok)

		if winner, taken := seen[key]; taken {
			reason := DropConflict
			if winner == tok {
				reason = DropDuplicate
			}
			drops = append(drops, Drop{Token: tok, Winner: winner, Reason: reason})
			continue
		}

		seen[key] = tok
		for _, displaced := range c.table.overridesOf(family) {
			if _, taken := seen[scope+displaced]; !taken {
				seen[scope+displaced] = tok
			}
		}
		kept = append(kept, tok)
	}

	// Restore original order.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	for i, j := 0, len(drops)-1; i < j; i, j = i+1, j-1 {
		drops[i], drops[j] = drops[j], drops[i]
	}

	return strings.Join(kept, " "), drops
}

// conflictKey computes the merge identity of a token. Tokens in a known
// family share a key per variant scope ("hover:px-2" does not conflict
// with "px-2"); unknown tokens conflict only with their exact text.
func (c *Composer) conflictKey(tok string) (key, family, scope string) {
	modifiers, important, base := splitToken(tok)

	fam, known := c.table.FamilyOf(base)
	if !known {
		return "raw:" + tok, "", ""
	}

	scope = strings.Join(modifiers, ":")
	if important {
		scope = "!" + scope
	}
	scope += "|"
	return scope + fam, fam, scope
}

// splitToken separates variant modifiers from the base utility. Modifier
// order is normalized so "hover:focus:px-2" and "focus:hover:px-2" share
// a conflict key. Colons inside brackets (arbitrary variants) do not
// split.
func splitToken(tok string) (modifiers []string, important bool, base string) {
	depth := 0
	start := 0
	for i, r := range tok {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, tok[start:i])
				start = i + 1
			}
		}
	}
	base = tok[start:]

	if strings.HasPrefix(base, "!") {
		important = true
		base = base[1:]
	}

	if len(modifiers) > 1 {
		sort.Strings(modifiers)
	}
	return modifiers, important, base
}
