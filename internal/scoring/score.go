// Package scoring computes match confidence between a query phrase and a
// provider candidate.
package scoring

import (
	"math"
	"strings"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// Params are the inputs of a single score computation.
type Params struct {
	Phrase    string
	Title     string
	Artist    string
	Mode      domain.SearchMode
	Rank      int
	BaseScore float64
}

// Score returns the confidence of a candidate. The value is clamped to 100
// before the universal rank decay, so it is never above 100 and decreases
// as Rank grows. It may be negative for low ranked, poorly matching items.
func Score(p Params) float64 {
	phrase := strings.TrimSpace(strings.ToLower(p.Phrase))
	titleSim := Similarity(phrase, strings.TrimSpace(p.Title))
	artistSim := Similarity(phrase, strings.TrimSpace(p.Artist))
	rank := float64(p.Rank)

	score := p.BaseScore
	switch p.Mode {
	case domain.SearchModeArtists:
		score += artistSim
	case domain.SearchModeTracks:
		if artistSim >= 75 {
			score += 0.5*artistSim + 0.5*titleSim
		} else {
			score += 0.85*titleSim + 0.15*artistSim
		}
		score -= 2 * rank
	default:
		switch {
		case artistSim >= 85:
			score += 0.85*artistSim + 0.15*titleSim
		case artistSim >= 70:
			score += 0.7*artistSim + 0.3*titleSim
		case artistSim >= 50:
			score += 0.5*titleSim + 0.5*artistSim
		default:
			score += 0.7*titleSim + 0.3*artistSim
		}
	}

	score = math.Min(score, 100)
	return score - 5*rank
}
