package main

import (
	"fmt"
	"iter"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/soundscout/internal/domain"
	httpapp "github.com/cesargomez89/soundscout/internal/http"
	"github.com/cesargomez89/soundscout/internal/http/dto"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var kind, mode, media string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <phrase...>",
		Short: "Search the provider through the engine",
		Long: `Search runs a phrase through one of the engine paths:

  all      local corpus, then tracks, then artists (default)
  tracks   live track search with capability bonuses
  artists  live collection search with capability bonuses
  raw      the provider dispatcher for one --mode`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.open()
			if err != nil {
				return err
			}
			phrase := strings.Join(args, " ")
			mediaType := domain.ParseMediaType(media)

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var seq iter.Seq[domain.Result]
			switch kind {
			case "all":
				seq = a.Registry.Search(runCtx, phrase, mediaType)
			case "tracks":
				seq = a.Engine.SearchTracks(runCtx, phrase, mediaType)
			case "artists":
				seq = a.Engine.SearchArtists(runCtx, phrase, mediaType)
			case "raw":
				seq = a.Engine.Search(runCtx, phrase, domain.ParseSearchMode(mode))
			default:
				return fmt.Errorf("unknown kind %q (want all, tracks, artists or raw)", kind)
			}
			return printResults(cmd, ctx.jsonOut, phrase, kind, httpapp.Collect(seq, limit))
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "all", "Search path: all, tracks, artists or raw")
	cmd.Flags().StringVarP(&mode, "mode", "m", "generic", "Provider mode for --kind raw: tracks, artists, sets or generic")
	cmd.Flags().StringVar(&media, "media", "music", "Media type: music or generic")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum results (0 for all)")
	return cmd
}

func newLocalCommand(ctx *commandContext) *cobra.Command {
	var media string
	var limit int

	cmd := &cobra.Command{
		Use:   "local <phrase...>",
		Short: "Match a phrase against the gazetteer and stored corpus",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.open()
			if err != nil {
				return err
			}
			if _, err := a.Engine.Precache(cmd.Context(), false); err != nil {
				a.Logger.Warn("Gazetteer rebuild incomplete", "error", err)
			}
			phrase := strings.Join(args, " ")
			seq := a.Engine.SearchLocal(cmd.Context(), phrase, domain.ParseMediaType(media))
			return printResults(cmd, ctx.jsonOut, phrase, "local", httpapp.Collect(seq, limit))
		},
	}

	cmd.Flags().StringVar(&media, "media", "music", "Media type: music or generic")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (0 for all)")
	return cmd
}

func printResults(cmd *cobra.Command, jsonOut bool, phrase, kind string, results []domain.Result) error {
	if jsonOut || !isTerminal(cmd.OutOrStdout()) {
		return writeJSON(cmd, dto.NewSearchResponse(phrase, kind, results))
	}
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderResults(results))
	return nil
}
