package catalog

import (
	"errors"
	"fmt"

	"github.com/cesargomez89/soundscout/internal/domain"
)

var (
	// ErrMalformedRecord marks a provider record missing title, artist or url.
	ErrMalformedRecord = errors.New("malformed provider record")
	// ErrPreview marks a record too short to be a full song.
	ErrPreview = errors.New("preview record")
	// ErrEmptyCollection marks a collection with no surviving members.
	ErrEmptyCollection = errors.New("collection has no playable tracks")
)

// ProviderError wraps any failure contacting or decoding the provider.
type ProviderError struct {
	Cause  error
	Mode   domain.SearchMode
	Phrase string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider search %s %q: %v", e.Mode, e.Phrase, e.Cause)
}

func (e *ProviderError) Unwrap() error { return e.Cause }
