package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/soundscout/internal/gazetteer"
)

func newPrecacheCommand(ctx *commandContext) *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "precache",
		Short: "Rebuild the gazetteer from the stores and seed queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.open()
			if err != nil {
				return err
			}
			res, err := a.Engine.Precache(cmd.Context(), live)
			if err != nil {
				a.Logger.Warn("Precache incomplete", "error", err)
			}
			if ctx.jsonOut || !isTerminal(cmd.OutOrStdout()) {
				if jerr := writeJSON(cmd, res); jerr != nil {
					return jerr
				}
				return err
			}

			keys := make([]string, 0, len(res.Counts))
			for k := range res.Counts {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, []string{k, fmt.Sprintf("%d", res.Counts[k])})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Terms"}, rows, []columnAlignment{alignLeft, alignRight}))
			if res.Exported != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s in %s\n", res.Exported, res.Duration.Round(time.Millisecond))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&live, "live", true, "Run the seed queries against the provider")
	return cmd
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the stored-corpus gazetteer to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.open()
			if err != nil {
				return err
			}
			if _, err := a.Engine.Precache(cmd.Context(), false); err != nil {
				a.Logger.Warn("Precache incomplete", "error", err)
			}
			g := a.Engine.Gazetteer()
			if err := gazetteer.ExportCSV(args[0], g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d terms to %s\n", len(g.Pairs()), args[0])
			return nil
		},
	}
}
