package gazetteer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/cesargomez89/soundscout/internal/filesystem"
)

// ExportCSV writes every (category, term) pair to path with a header row.
// Writers are serialized through a sidecar lock file and the file is
// replaced atomically.
func ExportCSV(path string, g *Gazetteer) error {
	if err := filesystem.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock() //nolint:errcheck // deferred cleanup

	return filesystem.WriteAtomic(path, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write([]string{"category", "term"}); err != nil {
			return err
		}
		for _, p := range g.Pairs() {
			if err := w.Write([]string{p.Category, p.Term}); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	})
}
