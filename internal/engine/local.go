package engine

import (
	"context"
	"iter"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/metrics"
)

// SearchLocal answers from the persistent stores only, using the gazetteer
// to pick out artist, song and playlist names. Results come in store order
// as copies; stored confidence is never modified.
func (e *Engine) SearchLocal(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result] {
	seq := func(yield func(domain.Result) bool) {
		entities := e.index.Load().Extract(phrase)

		base := 0.0
		if mediaType == domain.MediaTypeMusic {
			base += constants.LocalMusicBonus
		}
		base += constants.LocalSlotBonus * float64(len(entities))

		artist := entities[constants.CategoryArtist]
		song := entities[constants.CategorySong]
		playlist := entities[constants.CategoryPlaylist]

		if entities.Has(constants.CategoryProvider) {
			base += constants.LocalProviderBonus
			if !emit(yield, "playlist", e.FeaturedPlaylist()) {
				return
			}
		}

		if playlist != "" {
			for key, pl := range e.playlists.Items() {
				if ctx.Err() != nil {
					return
				}
				if !strings.Contains(fold(key), playlist) {
					continue
				}
				if !emit(yield, "playlist", pl.WithConfidence(base+constants.LocalPlaylistBonus)) {
					return
				}
			}
		}

		seen := make(map[string]struct{})
		if song != "" {
			for _, t := range e.archive.Items() {
				if ctx.Err() != nil {
					return
				}
				if !strings.Contains(fold(t.Title), song) {
					continue
				}
				score := base + constants.LocalSongBonus
				if artist != "" && matchesArtist(t, artist) {
					score += constants.LocalArtistBonus
				}
				seen[t.Locator] = struct{}{}
				if !emit(yield, "track", t.WithConfidence(math.Min(constants.MaxConfidence, score))) {
					return
				}
			}
		}

		if artist != "" {
			for _, t := range e.archive.Items() {
				if ctx.Err() != nil {
					return
				}
				if _, ok := seen[t.Locator]; ok || !matchesArtist(t, artist) {
					continue
				}
				seen[t.Locator] = struct{}{}
				if !emit(yield, "track", t.WithConfidence(math.Min(constants.MaxConfidence, base+constants.LocalArtistBonus))) {
					return
				}
			}
		}
	}
	return e.traced("local", phrase, domain.SearchModeGeneric, seq)
}

func matchesArtist(t domain.Track, artist string) bool {
	return strings.Contains(fold(t.Title), artist) || strings.Contains(fold(t.Artist), artist)
}

func emit(yield func(domain.Result) bool, kind string, r domain.Result) bool {
	metrics.ResultsTotal.WithLabelValues("local", kind).Inc()
	return yield(r)
}

func fold(s string) string {
	return cases.Fold().String(s)
}
