package engine

import (
	"context"
	"iter"
	"sync"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// SearchProvider is the capability surface a host queries for results.
type SearchProvider interface {
	Name() string
	SearchTracks(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result]
	SearchArtists(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result]
	SearchLocal(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result]
}

// FeaturedProvider is implemented by providers that offer featured media.
type FeaturedProvider interface {
	FeaturedMedia() []domain.Track
	FeaturedPlaylist() *domain.Playlist
}

var (
	_ SearchProvider   = (*Engine)(nil)
	_ FeaturedProvider = (*Engine)(nil)
)

// Registry holds the search providers known to the host, in registration
// order.
type Registry struct {
	mu        sync.RWMutex
	providers []SearchProvider
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(p SearchProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

func (r *Registry) Providers() []SearchProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]SearchProvider(nil), r.providers...)
}

// Search chains every capability of every provider: local results first,
// then live tracks, then live artists.
func (r *Registry) Search(ctx context.Context, phrase string, mediaType domain.MediaType) iter.Seq[domain.Result] {
	providers := r.Providers()
	return func(yield func(domain.Result) bool) {
		for _, p := range providers {
			for _, seq := range []iter.Seq[domain.Result]{
				p.SearchLocal(ctx, phrase, mediaType),
				p.SearchTracks(ctx, phrase, mediaType),
				p.SearchArtists(ctx, phrase, mediaType),
			} {
				for res := range seq {
					if !yield(res) {
						return
					}
				}
			}
		}
	}
}

// Featured returns the featured playlist of every provider that has one.
func (r *Registry) Featured() []*domain.Playlist {
	var out []*domain.Playlist
	for _, p := range r.Providers() {
		if fp, ok := p.(FeaturedProvider); ok {
			out = append(out, fp.FeaturedPlaylist())
		}
	}
	return out
}
