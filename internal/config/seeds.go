package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cesargomez89/soundscout/internal/constants"
)

// Seeds lists the live queries a full precache runs.
type Seeds struct {
	FeaturedTracks  []string `toml:"featured_tracks"`
	FeaturedArtists []string `toml:"featured_artists"`
	FeaturedSets    []string `toml:"featured_sets"`
}

// DefaultSeeds is used when no seeds file is configured.
func DefaultSeeds() Seeds {
	return Seeds{FeaturedSets: append([]string(nil), constants.DefaultFeaturedSets...)}
}

// LoadSeeds reads a TOML seeds file. An empty path or a missing file yields
// DefaultSeeds. Sets fall back to the defaults when the key is absent.
func LoadSeeds(path string) (Seeds, error) {
	if path == "" {
		return DefaultSeeds(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSeeds(), nil
		}
		return Seeds{}, fmt.Errorf("open seeds file: %w", err)
	}
	defer file.Close() //nolint:errcheck // deferred cleanup

	var raw struct {
		FeaturedTracks  []string  `toml:"featured_tracks"`
		FeaturedArtists []string  `toml:"featured_artists"`
		FeaturedSets    *[]string `toml:"featured_sets"`
	}
	if err := toml.NewDecoder(file).Decode(&raw); err != nil {
		return Seeds{}, fmt.Errorf("decode seeds file: %w", err)
	}

	seeds := Seeds{
		FeaturedTracks:  raw.FeaturedTracks,
		FeaturedArtists: raw.FeaturedArtists,
		FeaturedSets:    append([]string(nil), constants.DefaultFeaturedSets...),
	}
	if raw.FeaturedSets != nil {
		seeds.FeaturedSets = *raw.FeaturedSets
	}
	return seeds, nil
}
