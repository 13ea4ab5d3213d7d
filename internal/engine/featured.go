package engine

import (
	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
)

// FeaturedMedia lists every archived track at the fixed featured confidence,
// in archive order.
func (e *Engine) FeaturedMedia() []domain.Track {
	out := make([]domain.Track, 0, e.archive.Len())
	for _, t := range e.archive.Items() {
		t.Score = constants.FeaturedTrackConfidence
		out = append(out, t)
	}
	return out
}

// FeaturedPlaylist bundles the first featured tracks into one playlist
// authored by the provider.
func (e *Engine) FeaturedPlaylist() *domain.Playlist {
	tracks := e.FeaturedMedia()
	if len(tracks) > e.opts.FeaturedEntries {
		tracks = tracks[:e.opts.FeaturedEntries]
	}
	pl := &domain.Playlist{
		Title:     e.opts.ProviderName + constants.SuffixFeaturedMedia,
		Author:    e.opts.ProviderName,
		MediaType: domain.MediaTypeMusic,
		Playback:  domain.PlaybackAudio,
		Tracks:    tracks,
		Score:     constants.FeaturedPlaylistConfidence,
	}
	if len(tracks) > 0 {
		pl.Image = tracks[0].Thumbnail
	}
	return pl
}
