// Package engine exposes the search capabilities a host queries: live track
// and artist search with capability bonuses, local corpus search, featured
// media and the precache job.
package engine

import (
	"context"
	"iter"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cesargomez89/soundscout/internal/config"
	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/gazetteer"
	"github.com/cesargomez89/soundscout/internal/logger"
	"github.com/cesargomez89/soundscout/internal/store"
)

// Options configure an Engine. Zero values fall back to the defaults in
// package constants.
type Options struct {
	// Seeds is called on every full precache so edits to the seeds file are
	// picked up without a restart.
	Seeds           func() (config.Seeds, error)
	ProviderName    string
	KeywordsCSV     string
	PreviewFloor    time.Duration
	MaxTrackLength  time.Duration
	FeaturedEntries int
}

type Engine struct {
	searcher  gazetteer.Searcher
	archive   store.Map[domain.Track]
	playlists store.Map[domain.Playlist]
	index     *gazetteer.Index
	builder   *gazetteer.Builder
	opts      Options
	aliases   []*regexp.Regexp
	logger    *logger.Logger

	precacheMu sync.Mutex
}

func New(searcher gazetteer.Searcher, archive store.Map[domain.Track], playlists store.Map[domain.Playlist], opts Options, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Default()
	}
	if opts.ProviderName == "" {
		opts.ProviderName = constants.DefaultProviderName
	}
	if opts.PreviewFloor <= 0 {
		opts.PreviewFloor = constants.DefaultPreviewFloor
	}
	if opts.MaxTrackLength <= 0 {
		opts.MaxTrackLength = constants.DefaultMaxTrackLength
	}
	if opts.FeaturedEntries <= 0 {
		opts.FeaturedEntries = constants.DefaultFeaturedEntries
	}
	if opts.Seeds == nil {
		opts.Seeds = func() (config.Seeds, error) { return config.DefaultSeeds(), nil }
	}

	names := aliasNames(opts.ProviderName)
	e := &Engine{
		searcher:  searcher,
		archive:   archive,
		playlists: playlists,
		index:     gazetteer.NewIndex(),
		opts:      opts,
		logger:    log.WithComponent("engine"),
	}
	e.builder = gazetteer.NewBuilder(searcher, archive, playlists, names, e.logger.Logger)
	for _, n := range names {
		e.aliases = append(e.aliases, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(n)+`\b`))
	}
	return e
}

// aliasNames returns the fixed provider aliases plus the configured name.
func aliasNames(provider string) []string {
	names := append([]string(nil), constants.ProviderAliases...)
	for _, n := range names {
		if strings.EqualFold(n, provider) {
			return names
		}
	}
	return append(names, provider)
}

func (e *Engine) Name() string { return e.opts.ProviderName }

// Gazetteer returns the current vocabulary.
func (e *Engine) Gazetteer() *gazetteer.Gazetteer { return e.index.Load() }

// Search runs the raw provider-backed path for one mode.
func (e *Engine) Search(ctx context.Context, phrase string, mode domain.SearchMode) iter.Seq[domain.Result] {
	return e.traced("provider", phrase, mode, e.searcher.Search(ctx, phrase, mode))
}

// stripAlias reports whether phrase names the provider and returns the
// phrase with every alias removed.
func (e *Engine) stripAlias(phrase string) (string, bool) {
	matched := false
	for _, re := range e.aliases {
		if re.MatchString(phrase) {
			matched = true
			phrase = re.ReplaceAllString(phrase, "")
		}
	}
	if !matched {
		return phrase, false
	}
	return strings.Join(strings.Fields(phrase), " "), true
}

// traced wraps seq with a query id and a completion log line.
func (e *Engine) traced(path, phrase string, mode domain.SearchMode, seq iter.Seq[domain.Result]) iter.Seq[domain.Result] {
	return func(yield func(domain.Result) bool) {
		log := e.logger.WithQuery(uuid.NewString(), phrase, string(mode))
		start := time.Now()
		n := 0
		defer func() {
			log.Debug("Search finished", "path", path, "results", n, "duration", time.Since(start))
		}()
		for r := range seq {
			n++
			if !yield(r) {
				return
			}
		}
	}
}
