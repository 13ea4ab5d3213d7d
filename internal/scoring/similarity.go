package scoring

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Similarity returns a token-set similarity between a and b in [0, 100].
// Comparison is case-insensitive and ignores token order and repeated
// tokens. Empty input on either side yields 0.
func Similarity(a, b string) float64 {
	left := tokenSet(a)
	right := tokenSet(b)
	if len(left) == 0 || len(right) == 0 {
		return 0
	}

	var common, onlyLeft, onlyRight []string
	for tok := range left {
		if _, ok := right[tok]; ok {
			common = append(common, tok)
		} else {
			onlyLeft = append(onlyLeft, tok)
		}
	}
	for tok := range right {
		if _, ok := left[tok]; !ok {
			onlyRight = append(onlyRight, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyLeft)
	sort.Strings(onlyRight)

	base := strings.Join(common, " ")
	withLeft := strings.TrimSpace(base + " " + strings.Join(onlyLeft, " "))
	withRight := strings.TrimSpace(base + " " + strings.Join(onlyRight, " "))

	best := ratio(base, withLeft)
	if r := ratio(base, withRight); r > best {
		best = r
	}
	if r := ratio(withLeft, withRight); r > best {
		best = r
	}
	return best
}

// ratio is the Levenshtein similarity of two strings scaled to [0, 100].
func ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim) * 100
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), isSeparator)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '-', '_', ',', '.', ':', ';', '/', '|', '(', ')', '[', ']', '"', '\'':
		return true
	}
	return false
}
