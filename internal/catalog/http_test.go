package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/httpclient"
	"github.com/cesargomez89/soundscout/internal/store"
)

func TestHTTPProvider_SearchPaths(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"title":"Piratech","username":"Piratech","image":"https://img/p.jpg","tracks":[{"title":"Nuclear Chill","artist":"Piratech","url":"https://x/1","image":"https://img/1.jpg","duration":"233.9"}]}]}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL+"/", httpclient.NewClient(srv.Client(), 0), nil)
	records, err := p.Search(context.Background(), "pira tech", domain.SearchModeArtists)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotPath != "/search/people" || gotQuery != "pira tech" {
		t.Errorf("Unexpected request %s?q=%s", gotPath, gotQuery)
	}
	if len(records) != 1 || records[0].Artist != "Piratech" || records[0].Thumbnail != "https://img/p.jpg" {
		t.Fatalf("Unexpected records %+v", records)
	}
	nested := records[0].Tracks
	if len(nested) != 1 || nested[0].Duration != 233.9 || nested[0].URL != "https://x/1" {
		t.Errorf("Unexpected nested records %+v", nested)
	}
}

func TestHTTPProvider_GenericPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"items":[{"title":"a","artist":"b","url":"u","thumbnail":"t","duration":120}]}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, httpclient.NewClient(srv.Client(), 0), nil)
	records, err := p.Search(context.Background(), "a", domain.SearchModeGeneric)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotPath != "/search" {
		t.Errorf("Expected /search, got %s", gotPath)
	}
	if records[0].Thumbnail != "t" || records[0].Duration != 120 {
		t.Errorf("Unexpected record %+v", records[0])
	}
}

func TestHTTPProvider_ErrorsAreProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search/sets" {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, httpclient.NewClient(srv.Client(), 0), nil)

	for _, mode := range []domain.SearchMode{domain.SearchModeTracks, domain.SearchModeSets} {
		_, err := p.Search(context.Background(), "q", mode)
		var perr *ProviderError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected ProviderError for %s, got %v", mode, err)
		}
		if perr.Mode != mode || perr.Phrase != "q" {
			t.Errorf("Unexpected error fields %+v", perr)
		}
	}
}

func TestHTTPProvider_BadDurationSkipsOnlyThatRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[` +
			`{"title":"ok","artist":"a","url":"https://x/ok","thumbnail":"t","duration":200},` +
			`{"title":"bad","artist":"a","url":"https://x/bad","thumbnail":"t","duration":"n/a"},` +
			`{"title":"odd","artist":"a","url":"https://x/odd","thumbnail":"t","duration":{"s":1}}]}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, httpclient.NewClient(srv.Client(), 0), nil)
	records, err := p.Search(context.Background(), "x", domain.SearchModeTracks)
	if err != nil {
		t.Fatalf("Expected the batch to decode, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if records[0].Duration != 200 || records[1].Duration != 0 || records[2].Duration != 0 {
		t.Errorf("Unexpected durations %v %v %v", records[0].Duration, records[1].Duration, records[2].Duration)
	}

	d := NewDispatcher(p, NewNormalizer(0), store.NewMemoryTable[domain.Track](), store.NewMemoryTable[domain.Playlist](), nil)
	var titles []string
	for r := range d.Search(context.Background(), "ok", domain.SearchModeTracks) {
		titles = append(titles, r.(*domain.Track).Title)
	}
	if len(titles) != 1 || titles[0] != "ok" {
		t.Errorf("Expected only the well-formed record, got %v", titles)
	}
}

func TestFlexSeconds_Unmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`12.5`, 12.5},
		{`"233.9"`, 233.9},
		{`" 90 "`, 90},
		{`""`, 0},
		{`null`, 0},
		{`"n/a"`, 0},
		{`"NaN"`, 0},
		{`true`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexSeconds
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if float64(f) != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, float64(f), tt.want)
			}
		})
	}
}

func TestMockProvider_FiltersByPhrase(t *testing.T) {
	p := NewMockProvider()
	records, err := p.Search(context.Background(), "jingle", domain.SearchModeGeneric)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Jingle Bells" {
		t.Errorf("Unexpected records %+v", records)
	}

	sets, _ := p.Search(context.Background(), "christmas", domain.SearchModeSets)
	if len(sets) != 1 || len(sets[0].Tracks) != 2 {
		t.Errorf("Unexpected sets %+v", sets)
	}
}
