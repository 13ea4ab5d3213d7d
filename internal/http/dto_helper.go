package httpapp

import (
	"iter"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// Collect drains seq into a slice, stopping after limit results when limit
// is positive.
func Collect(seq iter.Seq[domain.Result], limit int) []domain.Result {
	out := []domain.Result{}
	for r := range seq {
		out = append(out, r)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
