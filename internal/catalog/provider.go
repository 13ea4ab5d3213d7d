package catalog

import (
	"context"

	"github.com/cesargomez89/soundscout/internal/domain"
)

// Provider is the external audio-content search capability. Collection
// modes return one record per person or set with members in Tracks.
type Provider interface {
	Search(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error)

func (f ProviderFunc) Search(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error) {
	return f(ctx, phrase, mode)
}
