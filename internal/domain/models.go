package domain

import (
	"strings"
	"time"
)

// SearchMode selects which provider search endpoint a phrase is sent to.
type SearchMode string

const (
	SearchModeTracks  SearchMode = "tracks"
	SearchModeArtists SearchMode = "artists"
	SearchModeSets    SearchMode = "sets"
	SearchModeGeneric SearchMode = "generic"
)

// ParseSearchMode maps a user supplied string to a SearchMode. Unknown and
// empty values fall back to generic.
func ParseSearchMode(s string) SearchMode {
	switch SearchMode(strings.ToLower(strings.TrimSpace(s))) {
	case SearchModeTracks:
		return SearchModeTracks
	case SearchModeArtists:
		return SearchModeArtists
	case SearchModeSets:
		return SearchModeSets
	default:
		return SearchModeGeneric
	}
}

// Collection reports whether the mode returns named collections of tracks.
func (m SearchMode) Collection() bool {
	return m == SearchModeArtists || m == SearchModeSets
}

type MediaType string

const (
	MediaTypeGeneric MediaType = "generic"
	MediaTypeMusic   MediaType = "music"
)

// ParseMediaType returns MediaTypeMusic for "music" and generic otherwise.
func ParseMediaType(s string) MediaType {
	if strings.EqualFold(strings.TrimSpace(s), string(MediaTypeMusic)) {
		return MediaTypeMusic
	}
	return MediaTypeGeneric
}

type PlaybackType string

const PlaybackAudio PlaybackType = "audio"

// RawRecord is a candidate as returned by the provider adapter. Collection
// modes (artists, sets) carry their members in Tracks.
type RawRecord struct {
	Title     string      `json:"title"`
	Artist    string      `json:"artist"`
	URL       string      `json:"url"`
	Thumbnail string      `json:"thumbnail"`
	Tracks    []RawRecord `json:"tracks,omitempty"`
	Duration  float64     `json:"duration"`
}

// Result is either a *Track or a *Playlist.
type Result interface {
	Confidence() float64
	Record() Record
	result()
}

// Track is a single playable item. Locator is the archive key.
type Track struct {
	Title     string       `json:"title"`
	Artist    string       `json:"artist"`
	Locator   string       `json:"uri"`
	Thumbnail string       `json:"image"`
	MediaType MediaType    `json:"media_type"`
	Playback  PlaybackType `json:"playback"`
	Duration  float64      `json:"duration"`
	Score     float64      `json:"match_confidence"`
}

func (t *Track) Confidence() float64 { return t.Score }
func (*Track) result() {}

// Length returns the track duration as a time.Duration.
func (t *Track) Length() time.Duration {
	return time.Duration(t.Duration * float64(time.Second))
}

// WithConfidence returns a copy of t carrying the given score.
func (t Track) WithConfidence(score float64) *Track {
	t.Score = score
	return &t
}

// Playlist is a named, ordered set of tracks. It has no locator of its own;
// only its members are playable. Confidence has no upper bound.
type Playlist struct {
	Title     string       `json:"title"`
	Artist    string       `json:"artist"`
	Author    string       `json:"author,omitempty"`
	Image     string       `json:"image"`
	MediaType MediaType    `json:"media_type"`
	Playback  PlaybackType `json:"playback"`
	Tracks    []Track      `json:"playlist"`
	Duration  float64      `json:"duration"`
	Score     float64      `json:"match_confidence"`
}

func (p *Playlist) Confidence() float64 { return p.Score }
func (*Playlist) result() {}

// WithConfidence returns a shallow copy of p carrying the given score. The
// member slice is shared and must not be modified.
func (p Playlist) WithConfidence(score float64) *Playlist {
	p.Score = score
	return &p
}

var (
	_ Result = (*Track)(nil)
	_ Result = (*Playlist)(nil)
)
