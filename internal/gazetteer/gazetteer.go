// Package gazetteer builds and queries the local vocabulary of known artist,
// song and playlist names.
package gazetteer

import (
	"slices"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/metrics"
)

// Categories in export order.
var Categories = []string{
	constants.CategoryArtist,
	constants.CategorySong,
	constants.CategoryPlaylist,
	constants.CategoryProvider,
	constants.CategoryGenre,
}

// Term is one exported (category, term) pair.
type Term struct {
	Category string `json:"category"`
	Term     string `json:"term"`
}

// Entities maps a category to the term matched in a phrase.
type Entities map[string]string

func (e Entities) Has(category string) bool {
	_, ok := e[category]
	return ok
}

type entry struct {
	term   string
	folded string
}

// Gazetteer is an immutable vocabulary. Build a new one to change it.
type Gazetteer struct {
	terms map[string][]entry
}

// New builds a gazetteer from derived name lists. Entries are trimmed,
// deduplicated and sorted; blank entries are dropped. The provider aliases
// and genre tags are always included.
func New(artists, songs, playlists []string) *Gazetteer {
	return NewWithAliases(artists, songs, playlists, constants.ProviderAliases)
}

// NewWithAliases is New with an explicit provider alias list.
func NewWithAliases(artists, songs, playlists, aliases []string) *Gazetteer {
	g := &Gazetteer{terms: make(map[string][]entry, len(Categories))}
	g.set(constants.CategoryArtist, artists)
	g.set(constants.CategorySong, songs)
	g.set(constants.CategoryPlaylist, playlists)
	g.set(constants.CategoryProvider, aliases)
	g.set(constants.CategoryGenre, constants.GenreTags)
	return g
}

func (g *Gazetteer) set(category string, values []string) {
	seen := make(map[string]struct{}, len(values))
	var out []entry
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, entry{term: v, folded: fold(v)})
	}
	slices.SortFunc(out, func(a, b entry) int { return strings.Compare(a.term, b.term) })
	g.terms[category] = out
}

// Terms returns the sorted terms of one category.
func (g *Gazetteer) Terms(category string) []string {
	entries := g.terms[category]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.term
	}
	return out
}

// Pairs lists every (category, term) pair in category order.
func (g *Gazetteer) Pairs() []Term {
	var out []Term
	for _, c := range Categories {
		for _, e := range g.terms[c] {
			out = append(out, Term{Category: c, Term: e.term})
		}
	}
	return out
}

// Counts returns the number of terms per category.
func (g *Gazetteer) Counts() map[string]int {
	out := make(map[string]int, len(Categories))
	for _, c := range Categories {
		out[c] = len(g.terms[c])
	}
	return out
}

// Extract finds, for every category, the longest term occurring in phrase
// on word boundaries. Matching is case-insensitive.
func (g *Gazetteer) Extract(phrase string) Entities {
	haystack := fold(phrase)
	found := make(Entities)
	for _, c := range Categories {
		best := ""
		for _, e := range g.terms[c] {
			if len(e.folded) > len(best) && containsWord(haystack, e.folded) {
				best = e.folded
			}
		}
		if best != "" {
			found[c] = best
		}
	}
	return found
}

// containsWord reports whether needle occurs in s bounded by non-word runes
// or the string edges.
func containsWord(s, needle string) bool {
	if needle == "" {
		return false
	}
	for off := 0; off <= len(s)-len(needle); {
		i := strings.Index(s[off:], needle)
		if i < 0 {
			return false
		}
		start := off + i
		end := start + len(needle)
		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		off = start + size
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

var empty = New(nil, nil, nil)

// Index holds the current gazetteer and swaps it atomically on rebuild.
type Index struct {
	current atomic.Pointer[Gazetteer]
}

func NewIndex() *Index {
	idx := &Index{}
	idx.current.Store(empty)
	return idx
}

// Load returns the current gazetteer. It is never nil.
func (i *Index) Load() *Gazetteer {
	return i.current.Load()
}

// Store replaces the current gazetteer.
func (i *Index) Store(g *Gazetteer) {
	i.current.Store(g)
	for c, n := range g.Counts() {
		metrics.GazetteerTerms.WithLabelValues(c).Set(float64(n))
	}
}
