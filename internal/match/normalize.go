package match

import "strings"

// Normalize prepares an ingredient or pantry item name for comparison:
// lower-case, trimmed, repeated whitespace folded, naive plural stripped.
// Recipe ingredient names and pantry item names go through the same
// normalization so "Tomatoes" and "tomato" compare equal.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), " ")
	return stripPlural(s)
}

// stripPlural removes common English plural suffixes. It is intentionally
// naive; edit-distance matching is out of scope.
func stripPlural(s string) string {
	switch {
	case len(s) > 3 && strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case len(s) > 4 && (strings.HasSuffix(s, "ches") || strings.HasSuffix(s, "shes")):
		return s[:len(s)-2]
	case len(s) > 3 && (strings.HasSuffix(s, "xes") || strings.HasSuffix(s, "zes") || strings.HasSuffix(s, "oes")):
		return s[:len(s)-2]
	case len(s) > 2 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") &&
		!strings.HasSuffix(s, "us") && !strings.HasSuffix(s, "sses"):
		return s[:len(s)-1]
	default:
		return s
	}
}
