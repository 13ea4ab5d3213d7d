package catalog

import (
	"context"
	"strings"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// MockProvider serves a small fixed catalog. It backs the server when no
// provider URL is reachable in development and is used by tests.
type MockProvider struct {
	Tracks  []domain.RawRecord
	Artists []domain.RawRecord
	Sets    []domain.RawRecord
}

func NewMockProvider() *MockProvider {
	nuclear := domain.RawRecord{
		Title:     "Piratech - Nuclear Chill",
		Artist:    "Piratech",
		URL:       "https://soundcloud.com/acidkid/piratech-nuclear-chill",
		Thumbnail: "https://i1.sndcdn.com/artworks-nuclear-chill.jpg",
		Duration:  233.948,
	}
	mix := domain.RawRecord{
		Title:     "mix2chill",
		Artist:    "Piratech",
		URL:       "https://soundcloud.com/acidkid/mix2cxhill",
		Thumbnail: "https://i1.sndcdn.com/artworks-mix2chill.jpg",
		Duration:  1381.54,
	}
	silent := domain.RawRecord{
		Title:     "Silent Night",
		Artist:    "Relax Cafe Music BGM",
		URL:       "https://soundcloud.com/relaxcafemusic/silent-night",
		Thumbnail: "https://i1.sndcdn.com/artworks-silent-night.jpg",
		Duration:  166.269,
	}
	jingle := domain.RawRecord{
		Title:     "Jingle Bells",
		Artist:    "Relax Cafe Music BGM",
		URL:       "https://soundcloud.com/relaxcafemusic/jingle-bells",
		Thumbnail: "https://i1.sndcdn.com/artworks-jingle-bells.jpg",
		Duration:  142.838,
	}
	preview := domain.RawRecord{
		Title:     "Nuclear Chill (preview)",
		Artist:    "Piratech",
		URL:       "https://soundcloud.com/acidkid/nuclear-chill-preview",
		Thumbnail: "https://i1.sndcdn.com/artworks-preview.jpg",
		Duration:  30,
	}

	return &MockProvider{
		Tracks: []domain.RawRecord{nuclear, preview, mix},
		Artists: []domain.RawRecord{{
			Title:     "Piratech",
			Artist:    "Piratech",
			URL:       "https://soundcloud.com/acidkid",
			Thumbnail: nuclear.Thumbnail,
			Tracks:    []domain.RawRecord{nuclear, mix},
		}},
		Sets: []domain.RawRecord{{
			Title:     "Christmas Jazz",
			Artist:    "Relax Cafe Music BGM",
			URL:       "https://soundcloud.com/relaxcafemusic/sets/christmas-jazz",
			Thumbnail: silent.Thumbnail,
			Tracks:    []domain.RawRecord{silent, jingle},
		}},
	}
}

func (p *MockProvider) Search(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ProviderError{Mode: mode, Phrase: phrase, Cause: err}
	}

	switch mode {
	case domain.SearchModeArtists:
		return filterRecords(p.Artists, phrase), nil
	case domain.SearchModeSets:
		return filterRecords(p.Sets, phrase), nil
	case domain.SearchModeTracks:
		return filterRecords(p.Tracks, phrase), nil
	default:
		all := make([]domain.RawRecord, 0, len(p.Tracks))
		all = append(all, p.Tracks...)
		for _, s := range p.Sets {
			all = append(all, s.Tracks...)
		}
		return filterRecords(all, phrase), nil
	}
}

// filterRecords keeps records sharing at least one word with phrase. An
// empty phrase keeps everything.
func filterRecords(records []domain.RawRecord, phrase string) []domain.RawRecord {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 0 {
		return records
	}
	var out []domain.RawRecord
	for _, r := range records {
		haystack := strings.ToLower(r.Title + " " + r.Artist)
		for _, t := range r.Tracks {
			haystack += " " + strings.ToLower(t.Title)
		}
		for _, w := range words {
			if strings.Contains(haystack, w) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

var _ Provider = (*MockProvider)(nil)
