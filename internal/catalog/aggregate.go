package catalog

import (
	"golang.org/x/text/cases"

	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/scoring"
)

// FoldKey case-folds a playlist store key.
func FoldKey(s string) string {
	return cases.Fold().String(s)
}

// Collection builds the playlist for an artist or set record. Members are
// scored with their position in the provider's nested list, filtered
// entries included. The first surviving member supplies the header.
func (n *Normalizer) Collection(phrase string, coll domain.RawRecord, mode domain.SearchMode, baseScore float64) (*domain.Playlist, error) {
	members := make([]domain.Track, 0, len(coll.Tracks))
	for idx, raw := range coll.Tracks {
		if err := n.Check(raw); err != nil {
			skipped(err)
			continue
		}
		score := scoring.Score(scoring.Params{
			Phrase: phrase,
			Title:  raw.Title,
			Artist: raw.Artist,
			Mode:   mode,
			Rank:   idx,
		})
		members = append(members, *n.Track(raw, score))
	}
	if len(members) == 0 {
		return nil, ErrEmptyCollection
	}

	header := members[0]
	pl := &domain.Playlist{
		Artist:    header.Artist,
		Image:     header.Thumbnail,
		MediaType: header.MediaType,
		Playback:  header.Playback,
		Tracks:    members,
		Duration:  header.Duration,
	}

	if mode == domain.SearchModeArtists {
		pl.Title = header.Artist + constants.SuffixFeaturedTracks
		// bonus for artists with more tracks
		pl.Score = header.Score + float64(len(coll.Tracks))
	} else {
		pl.Title = coll.Title + constants.SuffixPlaylist
		pl.Score = header.Score + baseScore
	}
	return pl, nil
}

// PlaylistKey returns the playlist store key for a collection.
func PlaylistKey(pl *domain.Playlist, coll domain.RawRecord, mode domain.SearchMode) string {
	if mode == domain.SearchModeSets {
		return FoldKey(coll.Title)
	}
	return pl.Title
}
