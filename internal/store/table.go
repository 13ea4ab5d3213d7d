package store

import (
	"encoding/json"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/cesargomez89/soundscout/internal/constants"
)

// Map is an insertion-ordered mapping with explicit flushing. Set on an
// existing key overwrites the value and keeps its position.
type Map[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Keys() []string
	Values() []V
	Items() iter.Seq2[string, V]
	Len() int
	Clear()
	Store() error
}

// Table is a Map held in memory and persisted to a sqlite table on Store.
// A Table without a DB only lives in memory.
type Table[V any] struct {
	db      *DB
	values  map[string]V
	dirty   map[string]struct{}
	name    string
	keys    []string
	mu      sync.RWMutex
	cleared bool
}

type row struct {
	UpdatedAt time.Time `db:"updated_at"`
	Key       string    `db:"key"`
	Data      []byte    `db:"data"`
	Position  int       `db:"position"`
}

var tables = map[string]bool{
	constants.ArchiveTable:  true,
	constants.PlaylistTable: true,
}

// NewTable loads the named table from db in position order.
func NewTable[V any](db *DB, name string) (*Table[V], error) {
	if !tables[name] {
		return nil, fmt.Errorf("unknown table %q", name)
	}
	t := NewMemoryTable[V]()
	t.db = db
	t.name = name

	var rows []row
	query := fmt.Sprintf("SELECT key, position, data FROM %s ORDER BY position", name)
	if err := db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	for _, r := range rows {
		var v V
		if err := json.Unmarshal(r.Data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s entry %q: %w", name, r.Key, err)
		}
		t.keys = append(t.keys, r.Key)
		t.values[r.Key] = v
	}
	return t, nil
}

// NewMemoryTable creates an empty Table that is never persisted.
func NewMemoryTable[V any]() *Table[V] {
	return &Table[V]{
		values: make(map[string]V),
		dirty:  make(map[string]struct{}),
	}
}

func (t *Table[V]) Get(key string) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[key]
	return v, ok
}

func (t *Table[V]) Set(key string, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	t.dirty[key] = struct{}{}
}

func (t *Table[V]) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.keys...)
}

func (t *Table[V]) Values() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]V, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.values[k])
	}
	return out
}

// Items iterates over a snapshot taken when iteration starts, so Set calls
// made while iterating are not observed.
func (t *Table[V]) Items() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.mu.RLock()
		keys := append([]string(nil), t.keys...)
		values := make([]V, len(keys))
		for i, k := range keys {
			values[i] = t.values[k]
		}
		t.mu.RUnlock()

		for i, k := range keys {
			if !yield(k, values[i]) {
				return
			}
		}
	}
}

func (t *Table[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.keys)
}

func (t *Table[V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keys = nil
	t.values = make(map[string]V)
	t.dirty = make(map[string]struct{})
	t.cleared = true
}

// Store flushes changes made since the last Store.
func (t *Table[V]) Store() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.db == nil {
		t.dirty = make(map[string]struct{})
		t.cleared = false
		return nil
	}
	if len(t.dirty) == 0 && !t.cleared {
		return nil
	}

	tx, err := t.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin %s flush: %w", t.name, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if t.cleared {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", t.name)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", t.name, err)
		}
	}

	upsert := fmt.Sprintf(`
		INSERT INTO %s (key, position, data, updated_at) VALUES (:key, :position, :data, :updated_at)
		ON CONFLICT(key) DO UPDATE SET position = excluded.position, data = excluded.data, updated_at = excluded.updated_at
	`, t.name)

	now := time.Now()
	for pos, key := range t.keys {
		if _, ok := t.dirty[key]; !ok {
			continue
		}
		data, err := json.Marshal(t.values[key])
		if err != nil {
			return fmt.Errorf("failed to encode %s entry %q: %w", t.name, key, err)
		}
		if _, err := tx.NamedExec(upsert, row{Key: key, Position: pos, Data: data, UpdatedAt: now}); err != nil {
			return fmt.Errorf("failed to write %s entry %q: %w", t.name, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s flush: %w", t.name, err)
	}
	t.dirty = make(map[string]struct{})
	t.cleared = false
	return nil
}

var _ Map[int] = (*Table[int])(nil)
