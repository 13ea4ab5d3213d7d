package catalog

import (
	"strings"
	"time"

	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
)

// Locator builds the deferred-resolution reference for a provider URL. The
// same URL always yields the same locator.
func Locator(rawURL string) string {
	return constants.LocatorScheme + "//" + rawURL
}

// Normalizer turns raw provider records into canonical tracks.
type Normalizer struct {
	// PreviewFloor is the inclusive preview cutoff: records lasting this long
	// or shorter are discarded.
	PreviewFloor time.Duration
	MediaType    domain.MediaType
}

func NewNormalizer(previewFloor time.Duration) *Normalizer {
	if previewFloor <= 0 {
		previewFloor = constants.DefaultPreviewFloor
	}
	return &Normalizer{
		PreviewFloor: previewFloor,
		MediaType:    domain.MediaTypeMusic,
	}
}

// Check reports why a record cannot become a Track, or nil.
func (n *Normalizer) Check(raw domain.RawRecord) error {
	if strings.TrimSpace(raw.Title) == "" || strings.TrimSpace(raw.Artist) == "" || strings.TrimSpace(raw.URL) == "" {
		return ErrMalformedRecord
	}
	if raw.Duration <= n.PreviewFloor.Seconds() {
		return ErrPreview
	}
	return nil
}

// Track builds the canonical track for an accepted record.
func (n *Normalizer) Track(raw domain.RawRecord, score float64) *domain.Track {
	return &domain.Track{
		Title:     raw.Title,
		Artist:    raw.Artist,
		Locator:   Locator(raw.URL),
		Thumbnail: raw.Thumbnail,
		MediaType: n.MediaType,
		Playback:  domain.PlaybackAudio,
		Duration:  raw.Duration,
		Score:     score,
	}
}
