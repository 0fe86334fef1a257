package catalog

import "strings"

// AllDestinations is the "no destination filter" sentinel.
const AllDestinations = "All Hotels"

// Destinations returns the filterable destination list: the sentinel followed
// by each distinct country in inventory order.
func Destinations() []string {
	out := []string{AllDestinations}
	seen := map[string]bool{}
	for _, h := range Hotels {
		if !seen[h.Country] {
			seen[h.Country] = true
			out = append(out, h.Country)
		}
	}
	return out
}

// Common misspellings and transliterations seen in search traffic.
var destinationAliases = map[string]string{
	"all":        AllDestinations,
	"all-hotels": AllDestinations,
	"dubay":      "Dubai",
	"дубай":      "Dubai",
	"singapure":  "Singapore",
	"сингапур":   "Singapore",
	"tokio":      "Tokyo",
	"tonkyo":     "Tokyo",
	"токио":      "Tokyo",
	"new-york":   "New York",
	"ny":         "New York",
	"стамбул":    "Istanbul",
}

// NormalizeDestination maps free-text input to a known destination: alias
// table first, then Levenshtein distance <= 2 against the known list. Inputs
// with no close match fall back silently to AllDestinations.
func NormalizeDestination(in string) string {
	if in == "" {
		return AllDestinations
	}
	lc := strings.ToLower(strings.TrimSpace(in))
	if d, ok := destinationAliases[lc]; ok {
		return d
	}
	best, bestDist := AllDestinations, -1
	for _, d := range Destinations() {
		dist := levenshtein(lc, strings.ToLower(d))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if bestDist >= 0 && bestDist <= 2 {
		return best
	}
	return AllDestinations
}

func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	m, n := len(ar), len(br)
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[n]
}
