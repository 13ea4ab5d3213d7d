package domain

// Record is the output schema handed to the downstream ranking consumer.
type Record struct {
	MediaType       MediaType    `json:"media_type"`
	Playback        PlaybackType `json:"playback"`
	URI             string       `json:"uri,omitempty"`
	Image           string       `json:"image"`
	BackgroundImage string       `json:"bg_image"`
	Title           string       `json:"title"`
	Artist          string       `json:"artist"`
	Author          string       `json:"author,omitempty"`
	Playlist        []Record     `json:"playlist,omitempty"`
	MatchConfidence float64      `json:"match_confidence"`
	LengthMS        float64      `json:"length_ms"`
}

func (t *Track) Record() Record {
	return Record{
		MatchConfidence: t.Score,
		MediaType:       t.MediaType,
		LengthMS:        t.Duration * 1000,
		URI:             t.Locator,
		Playback:        t.Playback,
		Image:           t.Thumbnail,
		BackgroundImage: t.Thumbnail,
		Title:           t.Title,
		Artist:          t.Artist,
	}
}

func (p *Playlist) Record() Record {
	members := make([]Record, 0, len(p.Tracks))
	for i := range p.Tracks {
		members = append(members, p.Tracks[i].Record())
	}
	return Record{
		MatchConfidence: p.Score,
		MediaType:       p.MediaType,
		LengthMS:        p.Duration * 1000,
		Playback:        p.Playback,
		Image:           p.Image,
		BackgroundImage: p.Image,
		Title:           p.Title,
		Artist:          p.Artist,
		Author:          p.Author,
		Playlist:        members,
	}
}

// Records converts results to output records, preserving order.
func Records(results []Result) []Record {
	out := make([]Record, 0, len(results))
	for _, r := range results {
		out = append(out, r.Record())
	}
	return out
}
