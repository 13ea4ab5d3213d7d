package engine

import (
	"context"
	"iter"

	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/metrics"
)

// SearchTracks runs a live track search. Music requests get a small bonus
// and naming the provider a larger one; the provider name is removed from
// the phrase before querying. Weak matches, previews and tracks longer than
// MaxTrackLength are dropped.
func (e *Engine) SearchTracks(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result] {
	base := 0.0
	if mediaType == domain.MediaTypeMusic {
		base += constants.TrackMusicBonus
	}
	if stripped, ok := e.stripAlias(phrase); ok {
		base += constants.TrackExplicitBonus
		phrase = stripped
	}

	seq := func(yield func(domain.Result) bool) {
		for r := range e.searcher.Search(ctx, phrase, domain.SearchModeTracks) {
			t, ok := r.(*domain.Track)
			if !ok {
				continue
			}
			if t.Score < constants.MinTrackConfidence {
				continue
			}
			if t.Length() < e.opts.PreviewFloor || t.Length() > e.opts.MaxTrackLength {
				continue
			}
			metrics.ResultsTotal.WithLabelValues("tracks", "track").Inc()
			if !yield(t.WithConfidence(t.Score + base)) {
				return
			}
		}
	}
	return e.traced("tracks", phrase, domain.SearchModeTracks, seq)
}

// SearchArtists runs a live artist search and yields one playlist per
// artist with the capability bonus added to its confidence.
func (e *Engine) SearchArtists(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result] {
	base := 0.0
	if mediaType == domain.MediaTypeMusic {
		base += constants.ArtistMusicBonus
	}
	if stripped, ok := e.stripAlias(phrase); ok {
		base += constants.ArtistExplicitBonus
		phrase = stripped
	}

	seq := func(yield func(domain.Result) bool) {
		for r := range e.searcher.Search(ctx, phrase, domain.SearchModeArtists) {
			pl, ok := r.(*domain.Playlist)
			if !ok {
				continue
			}
			metrics.ResultsTotal.WithLabelValues("artists", "playlist").Inc()
			if !yield(pl.WithConfidence(pl.Score + base)) {
				return
			}
		}
	}
	return e.traced("artists", phrase, domain.SearchModeArtists, seq)
}
