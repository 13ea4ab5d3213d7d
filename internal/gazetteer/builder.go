package gazetteer

import (
	"context"
	"iter"
	"log/slog"

	"github.com/cesargomez89/soundscout/internal/config"
	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/store"
)

// Searcher runs a live provider search.
type Searcher interface {
	Search(ctx context.Context, phrase string, mode domain.SearchMode) iter.Seq[domain.Result]
}

// Builder derives a gazetteer from the persistent stores and, optionally,
// from live seed searches.
type Builder struct {
	searcher  Searcher
	archive   store.Map[domain.Track]
	playlists store.Map[domain.Playlist]
	aliases   []string
	logger    *slog.Logger
}

func NewBuilder(searcher Searcher, archive store.Map[domain.Track], playlists store.Map[domain.Playlist], aliases []string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if aliases == nil {
		aliases = constants.ProviderAliases
	}
	return &Builder{
		searcher:  searcher,
		archive:   archive,
		playlists: playlists,
		aliases:   aliases,
		logger:    logger,
	}
}

type names struct {
	artists   []string
	songs     []string
	playlists []string
}

func (n *names) title(title, artist string) {
	a, s := Split(title, artist)
	if a != "" {
		n.artists = append(n.artists, a)
	}
	if s != "" {
		n.songs = append(n.songs, s)
	}
}

// Build scans the stores and, when seeds is non-nil, runs every seed query
// live. The result replaces any previous gazetteer; nothing is carried over.
func (b *Builder) Build(ctx context.Context, seeds *config.Seeds) *Gazetteer {
	var n names

	for _, t := range b.archive.Items() {
		n.artists = append(n.artists, t.Artist)
		n.songs = append(n.songs, Norm(t.Title))
	}
	n.playlists = append(n.playlists, b.playlists.Keys()...)

	if seeds != nil {
		b.seedTracks(ctx, &n, seeds.FeaturedTracks)
		b.seedCollections(ctx, &n, domain.SearchModeArtists, seeds.FeaturedArtists)
		b.seedCollections(ctx, &n, domain.SearchModeSets, seeds.FeaturedSets)
	}

	g := NewWithAliases(n.artists, n.songs, n.playlists, b.aliases)
	counts := g.Counts()
	b.logger.Debug("Gazetteer built",
		"artists", counts[constants.CategoryArtist],
		"songs", counts[constants.CategorySong],
		"playlists", counts[constants.CategoryPlaylist],
		"live", seeds != nil,
	)
	return g
}

func (b *Builder) seedTracks(ctx context.Context, n *names, queries []string) {
	for _, q := range queries {
		for r := range b.searcher.Search(ctx, q, domain.SearchModeTracks) {
			t, ok := r.(*domain.Track)
			if !ok {
				continue
			}
			n.artists = append(n.artists, t.Artist)
			n.title(t.Title, t.Artist)
		}
	}
}

func (b *Builder) seedCollections(ctx context.Context, n *names, mode domain.SearchMode, queries []string) {
	for _, q := range queries {
		for r := range b.searcher.Search(ctx, q, mode) {
			pl, ok := r.(*domain.Playlist)
			if !ok {
				continue
			}
			n.artists = append(n.artists, pl.Artist)
			if mode == domain.SearchModeSets {
				n.playlists = append(n.playlists, Norm(pl.Title))
			}
			for _, member := range pl.Tracks {
				n.title(member.Title, pl.Artist)
			}
		}
	}
}
