// Package app wires the configured components into a running search stack.
package app

import (
	"context"
	"fmt"

	"github.com/cesargomez89/soundscout/internal/catalog"
	"github.com/cesargomez89/soundscout/internal/config"
	"github.com/cesargomez89/soundscout/internal/constants"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/engine"
	"github.com/cesargomez89/soundscout/internal/httpclient"
	"github.com/cesargomez89/soundscout/internal/logger"
	"github.com/cesargomez89/soundscout/internal/store"
)

type App struct {
	Config     *config.Config
	Logger     *logger.Logger
	DB         *store.DB
	Cache      *catalog.CachedProvider
	Dispatcher *catalog.Dispatcher
	Engine     *engine.Engine
	Registry   *engine.Registry
}

// New opens the stores and builds the engine. A nil provider talks to
// cfg.ProviderURL over HTTP.
func New(cfg *config.Config, log *logger.Logger, provider catalog.Provider) (*App, error) {
	if log == nil {
		log = logger.Default()
	}

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	archive, err := store.NewTable[domain.Track](db, constants.ArchiveTable)
	if err != nil {
		db.Close()
		return nil, err
	}
	playlists, err := store.NewTable[domain.Playlist](db, constants.PlaylistTable)
	if err != nil {
		db.Close()
		return nil, err
	}

	if provider == nil {
		client := httpclient.NewClient(nil, cfg.ProviderRate)
		provider = catalog.NewHTTPProvider(cfg.ProviderURL, client, log.WithComponent("provider").Logger)
	}
	cached := catalog.NewCachedProvider(provider, cfg.CacheTTL, nil, log.WithComponent("cache").Logger)

	dispatcher := catalog.NewDispatcher(
		cached,
		catalog.NewNormalizer(cfg.PreviewFloor),
		archive,
		playlists,
		log.WithComponent("dispatcher").Logger,
	)

	seedsFile := cfg.SeedsFile
	eng := engine.New(dispatcher, archive, playlists, engine.Options{
		Seeds:           func() (config.Seeds, error) { return config.LoadSeeds(seedsFile) },
		ProviderName:    cfg.ProviderName,
		KeywordsCSV:     cfg.KeywordsCSV,
		PreviewFloor:    cfg.PreviewFloor,
		MaxTrackLength:  cfg.MaxTrackLength,
		FeaturedEntries: constants.DefaultFeaturedEntries,
	}, log)

	reg := engine.NewRegistry()
	reg.Register(eng)

	log.Info("Search stack ready",
		"provider", cfg.ProviderName,
		"archive", archive.Len(),
		"playlists", playlists.Len(),
	)

	return &App{
		Config:     cfg,
		Logger:     log,
		DB:         db,
		Cache:      cached,
		Dispatcher: dispatcher,
		Engine:     eng,
		Registry:   reg,
	}, nil
}

// Refresh clears the ephemeral cache and runs a full precache. It is the
// callback for seeds file changes.
func (a *App) Refresh(ctx context.Context) error {
	a.Cache.ClearCache()
	_, err := a.Engine.Precache(ctx, true)
	return err
}

func (a *App) Close() error {
	return a.DB.Close()
}
