package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cesargomez89/soundscout/internal/config"
	"github.com/cesargomez89/soundscout/internal/gazetteer"
)

// PrecacheResult summarizes one gazetteer rebuild.
type PrecacheResult struct {
	Counts   map[string]int `json:"counts"`
	Exported string         `json:"exported,omitempty"`
	Live     bool           `json:"live"`
	Duration time.Duration  `json:"duration_ns"`
}

// Precache rebuilds the gazetteer from the stores and, when live is set,
// from the seed queries, then exports it. Runs are serialized. A failure to
// read the seeds or write the export is returned after the new gazetteer
// has been installed.
func (e *Engine) Precache(ctx context.Context, live bool) (PrecacheResult, error) {
	e.precacheMu.Lock()
	defer e.precacheMu.Unlock()

	start := time.Now()
	res := PrecacheResult{Live: live}

	var seeds *config.Seeds
	var seedErr error
	if live {
		s, err := e.opts.Seeds()
		if err != nil {
			seedErr = fmt.Errorf("load seeds: %w", err)
			e.logger.Warn("Falling back to default seeds", "error", err)
			s = config.DefaultSeeds()
		}
		seeds = &s
	}

	g := e.builder.Build(ctx, seeds)
	e.index.Store(g)
	res.Counts = g.Counts()

	if e.opts.KeywordsCSV != "" {
		if err := gazetteer.ExportCSV(e.opts.KeywordsCSV, g); err != nil {
			res.Duration = time.Since(start)
			return res, fmt.Errorf("export gazetteer: %w", err)
		}
		res.Exported = e.opts.KeywordsCSV
	}

	res.Duration = time.Since(start)
	e.logger.Info("Precache complete", "live", live, "counts", res.Counts, "duration", res.Duration)
	return res, seedErr
}
