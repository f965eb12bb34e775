package match

import (
	"sort"
	"strings"

	"fresh-pantry/internal/pantry"
)

// match tiers, most specific first
const (
	tierExact = iota
	tierSubstring
	tierNone
)

// FindMatches maps a recipe ingredient name to the pantry items it can be
// satisfied from, best match first. Exact normalized equality beats
// substring containment; within a tier the largest remaining quantity wins,
// which keeps stock from fragmenting. An empty result means the ingredient
// is missing.
func FindMatches(name string, items []pantry.Item) []pantry.Item {
	return rankMatches(name, items, false)
}

// FindMatchesByExpiry is the expiry-aware variant used during consumption:
// within a tier the soonest-expiring item is preferred, so cooking uses up
// stock that would otherwise go to waste.
func FindMatchesByExpiry(name string, items []pantry.Item) []pantry.Item {
	return rankMatches(name, items, true)
}

type rankedItem struct {
	item pantry.Item
	tier int
}

func rankMatches(name string, items []pantry.Item, byExpiry bool) []pantry.Item {
	target := Normalize(name)
	if target == "" {
		return nil
	}

	var ranked []rankedItem
	for _, item := range items {
		if tier := matchTier(target, Normalize(item.Name)); tier != tierNone {
			ranked = append(ranked, rankedItem{item: item, tier: tier})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].tier != ranked[j].tier {
			return ranked[i].tier < ranked[j].tier
		}
		if byExpiry {
			return expiresBefore(ranked[i].item, ranked[j].item)
		}
		return ranked[i].item.Quantity > ranked[j].item.Quantity
	})

	matches := make([]pantry.Item, len(ranked))
	for i, r := range ranked {
		matches[i] = r.item
	}
	return matches
}

func matchTier(target, candidate string) int {
	if candidate == "" {
		return tierNone
	}
	if target == candidate {
		return tierExact
	}
	if strings.Contains(target, candidate) || strings.Contains(candidate, target) {
		return tierSubstring
	}
	return tierNone
}

// expiresBefore orders items with an expiry date before those without,
// soonest first.
func expiresBefore(a, b pantry.Item) bool {
	switch {
	case a.ExpiryDate == nil:
		return false
	case b.ExpiryDate == nil:
		return true
	default:
		return a.ExpiryDate.Before(*b.ExpiryDate)
	}
}
