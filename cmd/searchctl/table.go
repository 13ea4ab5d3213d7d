package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/cesargomez89/soundscout/internal/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// renderResults lays out one row per result. Playlists list their member
// count in place of a locator.
func renderResults(results []domain.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rec := r.Record()
		kind, target := "track", rec.URI
		if len(rec.Playlist) > 0 || rec.URI == "" {
			kind = "playlist"
			target = fmt.Sprintf("%d tracks", len(rec.Playlist))
		}
		rows = append(rows, []string{
			kind,
			fmt.Sprintf("%.1f", rec.MatchConfidence),
			truncate(rec.Title, 48),
			truncate(rec.Artist, 32),
			formatLength(rec.LengthMS),
			target,
		})
	}
	return renderTable(
		[]string{"Kind", "Confidence", "Title", "Artist", "Length", "URI"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func formatLength(ms float64) string {
	if ms <= 0 {
		return "-"
	}
	secs := int(ms / 1000)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func truncate(s string, n int) string {
	if n <= 0 || len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
