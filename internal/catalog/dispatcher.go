package catalog

import (
	"context"
	"errors"
	"iter"
	"log/slog"

	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/metrics"
	"github.com/cesargomez89/soundscout/internal/scoring"
	"github.com/cesargomez89/soundscout/internal/store"
)

// Dispatcher runs the provider-backed search path: fetch, normalize, score,
// persist. It never fails; provider errors degrade to an empty sequence.
type Dispatcher struct {
	provider   Provider
	normalizer *Normalizer
	archive    store.Map[domain.Track]
	playlists  store.Map[domain.Playlist]
	logger     *slog.Logger
}

func NewDispatcher(provider Provider, normalizer *Normalizer, archive store.Map[domain.Track], playlists store.Map[domain.Playlist], logger *slog.Logger) *Dispatcher {
	if normalizer == nil {
		normalizer = NewNormalizer(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		provider:   provider,
		normalizer: normalizer,
		archive:    archive,
		playlists:  playlists,
		logger:     logger,
	}
}

func (d *Dispatcher) Archive() store.Map[domain.Track] { return d.archive }

func (d *Dispatcher) Playlists() store.Map[domain.Playlist] { return d.playlists }

// Search returns a lazy, single-use sequence of results for phrase in the
// given mode. Tracks and generic yield *domain.Track in provider order;
// artists and sets yield *domain.Playlist. Every accepted item is written to
// the stores before it is yielded, and both stores are flushed once when
// the sequence ends, including when the consumer stops early.
func (d *Dispatcher) Search(ctx context.Context, phrase string, mode domain.SearchMode) iter.Seq[domain.Result] {
	return func(yield func(domain.Result) bool) {
		records, err := d.provider.Search(ctx, phrase, mode)
		if err != nil {
			d.logger.Warn("Provider search failed", "phrase", phrase, "mode", mode, "error", err)
			return
		}
		defer d.flush()

		if mode.Collection() {
			d.collections(phrase, mode, records, yield)
			return
		}
		d.tracks(phrase, mode, records, yield)
	}
}

func (d *Dispatcher) tracks(phrase string, mode domain.SearchMode, records []domain.RawRecord, yield func(domain.Result) bool) {
	accepted := 0
	for _, raw := range records {
		if err := d.normalizer.Check(raw); err != nil {
			skipped(err)
			continue
		}
		score := scoring.Score(scoring.Params{
			Phrase: phrase,
			Title:  raw.Title,
			Artist: raw.Artist,
			Mode:   mode,
			Rank:   accepted,
		})
		track := d.normalizer.Track(raw, score)
		d.archive.Set(track.Locator, *track)
		accepted++

		metrics.ResultsTotal.WithLabelValues("provider", "track").Inc()
		if !yield(track) {
			return
		}
	}
}

func (d *Dispatcher) collections(phrase string, mode domain.SearchMode, records []domain.RawRecord, yield func(domain.Result) bool) {
	for _, coll := range records {
		pl, err := d.normalizer.Collection(phrase, coll, mode, 0)
		if err != nil {
			d.logger.Debug("Dropping collection", "title", coll.Title, "error", err)
			continue
		}
		for _, member := range pl.Tracks {
			d.archive.Set(member.Locator, member)
		}
		d.playlists.Set(PlaylistKey(pl, coll, mode), *pl)

		metrics.ResultsTotal.WithLabelValues("provider", "playlist").Inc()
		if !yield(pl) {
			return
		}
	}
}

// flush persists both stores. Failures are logged and counted only; results
// already handed out stay valid.
func (d *Dispatcher) flush() {
	if err := d.archive.Store(); err != nil {
		metrics.StoreFlushErrorsTotal.WithLabelValues("archive").Inc()
		d.logger.Error("Failed to store archive", "error", err)
	}
	if err := d.playlists.Store(); err != nil {
		metrics.StoreFlushErrorsTotal.WithLabelValues("playlists").Inc()
		d.logger.Error("Failed to store playlists", "error", err)
	}
	metrics.StoreEntries.WithLabelValues("archive").Set(float64(d.archive.Len()))
	metrics.StoreEntries.WithLabelValues("playlists").Set(float64(d.playlists.Len()))
}

func skipped(err error) {
	reason := "malformed"
	if errors.Is(err, ErrPreview) {
		reason = "preview"
	}
	metrics.SkippedRecordsTotal.WithLabelValues(reason).Inc()
}
