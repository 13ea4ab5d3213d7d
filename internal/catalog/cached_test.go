package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cesargomez89/soundscout/internal/domain"
)

type countingProvider struct {
	records []domain.RawRecord
	err     error
	calls   int
}

func (p *countingProvider) Search(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.records, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestCachedProvider_Search(t *testing.T) {
	inner := &countingProvider{records: []domain.RawRecord{{Title: "Result", Artist: "A", URL: "u", Duration: 120}}}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cp := NewCachedProvider(inner, time.Hour, clock.Now, nil)

	ctx := context.Background()

	// 1. First call - should call inner provider
	res, err := cp.Search(ctx, "query", domain.SearchModeTracks)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(res) != 1 || res[0].Title != "Result" {
		t.Errorf("Unexpected result %+v", res)
	}
	if inner.calls != 1 {
		t.Errorf("Expected inner provider to be called once, got %d", inner.calls)
	}

	// 2. Second call within the window - should hit the cache
	clock.Advance(59 * time.Minute)
	res, err = cp.Search(ctx, "query", domain.SearchModeTracks)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(res) != 1 || res[0].Title != "Result" {
		t.Errorf("Unexpected cached result %+v", res)
	}
	if inner.calls != 1 {
		t.Errorf("Expected inner provider to still be called once, got %d", inner.calls)
	}

	// 3. Same phrase in another mode is a separate entry
	if _, err := cp.Search(ctx, "query", domain.SearchModeSets); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("Expected a provider call for a new mode, got %d", inner.calls)
	}

	// 4. After expiry the provider is called again
	clock.Advance(2 * time.Minute)
	if _, err := cp.Search(ctx, "query", domain.SearchModeTracks); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("Expected a provider call after expiry, got %d", inner.calls)
	}
}

func TestCachedProvider_ErrorsAreNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("boom")}
	cp := NewCachedProvider(inner, time.Hour, nil, nil)

	for i := 0; i < 2; i++ {
		if _, err := cp.Search(context.Background(), "query", domain.SearchModeTracks); err == nil {
			t.Fatal("Expected error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("Expected failed calls to reach the provider each time, got %d", inner.calls)
	}
}

func TestCachedProvider_ClearCache(t *testing.T) {
	inner := &countingProvider{}
	cp := NewCachedProvider(inner, time.Hour, nil, nil)

	_, _ = cp.Search(context.Background(), "q", domain.SearchModeGeneric)
	cp.ClearCache()
	_, _ = cp.Search(context.Background(), "q", domain.SearchModeGeneric)

	if inner.calls != 2 {
		t.Errorf("Expected provider call after clear, got %d", inner.calls)
	}
}

func TestCachedProvider_DistinctPhrasesDoNotAccumulate(t *testing.T) {
	inner := &countingProvider{records: []domain.RawRecord{{Title: "Result", Artist: "A", URL: "u", Duration: 120}}}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cp := NewCachedProvider(inner, time.Hour, clock.Now, nil)

	for i := 0; i < 1000; i++ {
		if _, err := cp.Search(context.Background(), fmt.Sprintf("phrase %d", i), domain.SearchModeTracks); err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		clock.Advance(2 * time.Hour)
	}

	if n := cp.cache.Len(); n > 1 {
		t.Errorf("Expected expired responses to be released, %d retained", n)
	}
}
