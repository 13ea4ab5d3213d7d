// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort            = "8080"
	DefaultDBPath          = "soundscout.db"
	DefaultProviderURL     = "http://127.0.0.1:8000"
	DefaultProviderName    = "SoundCloud"
	DefaultProviderRate    = 2.0
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultRetryCount      = 3
	DefaultRetryBase       = 1 * time.Second
	DefaultCacheTTL        = 3 * time.Hour
	DefaultKeywordsCSV     = "soundcloud.csv"
	DefaultPreviewFloor    = 60 * time.Second
	DefaultMaxTrackLength  = 45 * time.Minute
	DefaultFeaturedEntries = 50
)

// Locator scheme. Every locator is LocatorScheme + "//" + original URL and
// must be resolved again before playback.
const LocatorScheme = "ydl"

// Playlist title suffixes.
const (
	SuffixFeaturedTracks = " (Featured Tracks)"
	SuffixPlaylist       = " (Playlist)"
	SuffixFeaturedMedia  = " Featured Media (Playlist)"
)

// Confidence constants used by the capability layer and local search.
const (
	FeaturedTrackConfidence    = 80
	FeaturedPlaylistConfidence = 50
	MinTrackConfidence         = 35

	TrackMusicBonus     = 10
	TrackExplicitBonus  = 30
	ArtistMusicBonus    = 15
	ArtistExplicitBonus = 50

	LocalMusicBonus    = 25
	LocalSlotBonus     = 20
	LocalProviderBonus = 20
	LocalPlaylistBonus = 35
	LocalSongBonus     = 30
	LocalArtistBonus   = 30
	MaxConfidence      = 100
)

// Gazetteer categories.
const (
	CategoryArtist   = "artist_name"
	CategorySong     = "song_name"
	CategoryPlaylist = "playlist_name"
	CategoryProvider = "music_streaming_provider"
	CategoryGenre    = "music_genre"
)

// ProviderAliases are the fixed names a user may say to address the provider.
var ProviderAliases = []string{"Soundcloud", "sound cloud"}

// GenreTags is the fixed genre vocabulary registered on every precache.
var GenreTags = []string{"indie", "rock", "metal", "pop", "jazz", "trance"}

// DefaultFeaturedSets is used when the seeds file does not list any sets.
var DefaultFeaturedSets = []string{"jazz", "classic rock"}

// Database
const (
	ArchiveTable  = "archive"
	PlaylistTable = "playlists"
)

// File Permissions
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)
