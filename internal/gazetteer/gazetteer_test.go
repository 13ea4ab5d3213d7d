package gazetteer

import (
	"context"
	"encoding/csv"
	"iter"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cesargomez89/soundscout/internal/config"
	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/store"
)

func TestNorm(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"A: B (Live) [HD]", "A- B "},
		{"Nuclear Chill [Instrumental]", "Nuclear Chill "},
		{"Track // remix", "Track "},
		{"One, Two", "One- Two"},
		{"Plain", "Plain"},
	}
	for _, tt := range tests {
		if got := Norm(tt.input); got != tt.expected {
			t.Errorf("Norm(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		title, artist string
		wantArtist    string
		wantSong      string
	}{
		{"Piratech - Nuclear Chill", "Piratech", "", "Nuclear Chill"},
		{"PIRATECH - Nuclear Chill", "Piratech", "", "Nuclear Chill"},
		{"Arch Enemy - Nemesis (Live)", "Century Media", "Arch Enemy", "Nemesis"},
		{"a - b - c", "", "a", "b"},
		{"Silent Night", "Relax Cafe Music BGM", "", "Silent Night"},
		{"Piratech", "piratech", "", ""},
		{"Nuclear Chill // remix", "", "", "Nuclear Chill"},
		{"14-The Nuclear Chill (Original Mix)", "Laurent Billiau", "14", "The Nuclear Chill"},
	}
	for _, tt := range tests {
		a, s := Split(tt.title, tt.artist)
		if a != tt.wantArtist || s != tt.wantSong {
			t.Errorf("Split(%q, %q) = (%q, %q), want (%q, %q)", tt.title, tt.artist, a, s, tt.wantArtist, tt.wantSong)
		}
	}
}

func TestNew_DedupesAndKeepsFixedVocabularies(t *testing.T) {
	g := New([]string{"Piratech", " Piratech ", "", "  ", "Arch Enemy"}, nil, nil)

	if got := g.Terms(constants.CategoryArtist); !reflect.DeepEqual(got, []string{"Arch Enemy", "Piratech"}) {
		t.Errorf("Unexpected artists %v", got)
	}
	if len(g.Terms(constants.CategorySong)) != 0 {
		t.Error("Expected no songs")
	}
	if got := g.Terms(constants.CategoryProvider); len(got) != len(constants.ProviderAliases) {
		t.Errorf("Expected provider aliases, got %v", got)
	}
	if got := g.Terms(constants.CategoryGenre); len(got) != len(constants.GenreTags) {
		t.Errorf("Expected genre tags, got %v", got)
	}
}

func TestExtract(t *testing.T) {
	g := New(
		[]string{"Relax Cafe Music BGM", "Piratech"},
		[]string{"Silent Night", "Night"},
		[]string{"christmas jazz"},
	)

	got := g.Extract("play Silent Night by relax cafe music bgm on soundcloud")
	if got[constants.CategorySong] != "silent night" {
		t.Errorf("Expected longest song match, got %q", got[constants.CategorySong])
	}
	if got[constants.CategoryArtist] != "relax cafe music bgm" {
		t.Errorf("Expected artist match, got %q", got[constants.CategoryArtist])
	}
	if !got.Has(constants.CategoryProvider) {
		t.Error("Expected provider alias match")
	}
	if got.Has(constants.CategoryPlaylist) {
		t.Error("Did not expect a playlist match")
	}

	got = g.Extract("christmas jazz please")
	if got[constants.CategoryPlaylist] != "christmas jazz" || got[constants.CategoryGenre] != "jazz" {
		t.Errorf("Unexpected entities %v", got)
	}
}

func TestExtract_WordBoundaries(t *testing.T) {
	g := New([]string{"Piratech"}, nil, nil)
	if got := g.Extract("piratechno mix"); got.Has(constants.CategoryArtist) {
		t.Errorf("Expected no match inside a word, got %v", got)
	}
	if got := g.Extract("piratech, please"); !got.Has(constants.CategoryArtist) {
		t.Error("Expected match before punctuation")
	}
}

func TestIndex(t *testing.T) {
	idx := NewIndex()
	if idx.Load() == nil {
		t.Fatal("Expected non-nil initial gazetteer")
	}
	if len(idx.Load().Terms(constants.CategoryArtist)) != 0 {
		t.Error("Expected empty initial artists")
	}
	idx.Store(New([]string{"Piratech"}, nil, nil))
	if got := idx.Load().Terms(constants.CategoryArtist); len(got) != 1 {
		t.Errorf("Expected swapped gazetteer, got %v", got)
	}
}

type stubSearcher struct {
	results map[domain.SearchMode][]domain.Result
	calls   int
}

func (s *stubSearcher) Search(ctx context.Context, phrase string, mode domain.SearchMode) iter.Seq[domain.Result] {
	s.calls++
	return func(yield func(domain.Result) bool) {
		for _, r := range s.results[mode] {
			if !yield(r) {
				return
			}
		}
	}
}

func newStores() (*store.Table[domain.Track], *store.Table[domain.Playlist]) {
	archive := store.NewMemoryTable[domain.Track]()
	archive.Set("ydl//a", domain.Track{Title: "Silent Night (Jazz Version)", Artist: "Relax Cafe Music BGM", Locator: "ydl//a"})
	playlists := store.NewMemoryTable[domain.Playlist]()
	playlists.Set("cozy christmas jazz", domain.Playlist{Title: "Cozy Christmas Jazz (Playlist)"})
	return archive, playlists
}

func TestBuilder_StoresOnly(t *testing.T) {
	archive, playlists := newStores()
	searcher := &stubSearcher{}
	b := NewBuilder(searcher, archive, playlists, nil, nil)

	g := b.Build(context.Background(), nil)

	if searcher.calls != 0 {
		t.Errorf("Expected no live searches, got %d", searcher.calls)
	}
	if got := g.Terms(constants.CategoryArtist); !reflect.DeepEqual(got, []string{"Relax Cafe Music BGM"}) {
		t.Errorf("Unexpected artists %v", got)
	}
	if got := g.Terms(constants.CategorySong); !reflect.DeepEqual(got, []string{"Silent Night"}) {
		t.Errorf("Unexpected songs %v", got)
	}
	if got := g.Terms(constants.CategoryPlaylist); !reflect.DeepEqual(got, []string{"cozy christmas jazz"}) {
		t.Errorf("Unexpected playlists %v", got)
	}
}

func TestBuilder_SeedsAndIdempotence(t *testing.T) {
	archive, playlists := newStores()
	searcher := &stubSearcher{results: map[domain.SearchMode][]domain.Result{
		domain.SearchModeTracks: {
			&domain.Track{Title: "Piratech - Nuclear Chill", Artist: "Piratech"},
		},
		domain.SearchModeArtists: {
			&domain.Playlist{Title: "Arch Enemy (Featured Tracks)", Artist: "Arch Enemy", Tracks: []domain.Track{
				{Title: "Nemesis", Artist: "Arch Enemy"},
			}},
		},
		domain.SearchModeSets: {
			&domain.Playlist{Title: "Christmas Jazz (Playlist)", Artist: "Willow Jazz", Tracks: []domain.Track{
				{Title: "Santa Baby", Artist: "Willow Jazz"},
			}},
		},
	}}
	b := NewBuilder(searcher, archive, playlists, nil, nil)
	seeds := &config.Seeds{
		FeaturedTracks:  []string{"piratech nuclear chill"},
		FeaturedArtists: []string{"arch enemy"},
		FeaturedSets:    []string{"christmas jazz"},
	}

	first := b.Build(context.Background(), seeds)
	second := b.Build(context.Background(), seeds)

	if !reflect.DeepEqual(first.Pairs(), second.Pairs()) {
		t.Error("Expected identical gazetteers from identical inputs")
	}

	artists := first.Terms(constants.CategoryArtist)
	for _, want := range []string{"Arch Enemy", "Piratech", "Relax Cafe Music BGM", "Willow Jazz"} {
		if !contains(artists, want) {
			t.Errorf("Expected artist %q in %v", want, artists)
		}
	}
	songs := first.Terms(constants.CategorySong)
	for _, want := range []string{"Nuclear Chill", "Nemesis", "Santa Baby", "Silent Night"} {
		if !contains(songs, want) {
			t.Errorf("Expected song %q in %v", want, songs)
		}
	}
	if !contains(first.Terms(constants.CategoryPlaylist), "Christmas Jazz") {
		t.Errorf("Expected normalized set title, got %v", first.Terms(constants.CategoryPlaylist))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.csv")
	g := New([]string{"Piratech"}, []string{"Nuclear Chill"}, nil)

	if err := ExportCSV(path, g); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	// a second export replaces the file
	if err := ExportCSV(path, g); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Invalid csv: %v", err)
	}
	if len(rows) != 1+len(g.Pairs()) {
		t.Fatalf("Expected header plus %d rows, got %d", len(g.Pairs()), len(rows))
	}
	if rows[0][0] != "category" || rows[0][1] != "term" {
		t.Errorf("Unexpected header %v", rows[0])
	}
	if rows[1][0] != constants.CategoryArtist || rows[1][1] != "Piratech" {
		t.Errorf("Unexpected first row %v", rows[1])
	}
}
