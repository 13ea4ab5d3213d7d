package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// APIRecord is the wire shape of a provider search item.
type APIRecord struct {
	Title     string      `json:"title"`
	Artist    string      `json:"artist"`
	Username  string      `json:"username"`
	URL       string      `json:"url"`
	Thumbnail string      `json:"thumbnail"`
	Image     string      `json:"image"`
	Duration  FlexSeconds `json:"duration"`
	Tracks    []APIRecord `json:"tracks"`
}

// APISearchResponse wraps search items.
type APISearchResponse struct {
	Items []APIRecord `json:"items"`
}

func (r APIRecord) ToDomain() domain.RawRecord {
	artist := r.Artist
	if artist == "" {
		artist = r.Username
	}
	thumb := r.Thumbnail
	if thumb == "" {
		thumb = r.Image
	}
	rec := domain.RawRecord{
		Title:     r.Title,
		Artist:    artist,
		URL:       r.URL,
		Thumbnail: thumb,
		Duration:  float64(r.Duration),
	}
	if len(r.Tracks) > 0 {
		rec.Tracks = make([]domain.RawRecord, 0, len(r.Tracks))
		for _, t := range r.Tracks {
			rec.Tracks = append(rec.Tracks, t.ToDomain())
		}
	}
	return rec
}

func (r APISearchResponse) ToDomain() []domain.RawRecord {
	out := make([]domain.RawRecord, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, item.ToDomain())
	}
	return out
}

// FlexSeconds accepts a duration in seconds encoded as a JSON number or
// string. Values that do not parse as a number decode to zero so the
// normalizer drops that one record instead of failing the whole response.
type FlexSeconds float64

func (f *FlexSeconds) UnmarshalJSON(data []byte) error {
	*f = 0
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = FlexSeconds(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		*f = FlexSeconds(v)
	}
	return nil
}
