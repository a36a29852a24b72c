// Package store provides the flat key-value task store backed by BadgerDB.
//
// The key layout is flat, string-keyed JSON:
//
//	recurringTasks                  weekday name -> ordered label array
//	completedRecurring-<day>        labels completed on that day
//	calendarTasks-<day>             CalendarTask array owned by that day
//	deadlineTasks                   task id -> mirrored deadline copy
//	sustainedLists                  list id -> sustained checklist
//
// Read accessors never fail: a missing or unparsable key yields an empty
// default, logged at Warn for diagnostics only.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Key layout. PrefixCompletedRecurring and PrefixCalendarTasks are the two
// day-keyed prefixes; full-store scans must consider both.
const (
	KeyRecurring             = "recurringTasks"
	KeyDeadlines             = "deadlineTasks"
	KeySustainedLists        = "sustainedLists"
	KeySustainedLegacy       = "sustainedTasks"
	PrefixCompletedRecurring = "completedRecurring-"
	PrefixCalendarTasks      = "calendarTasks-"
	PrefixDigestShown        = "analyticsShown-"
)

// Store is the task store. All methods are safe for concurrent use; Badger
// serializes transactions internally.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
	now    func() time.Time
}

// Config configures a Store.
type Config struct {
	// Dir is the directory for the database files. Ignored when InMemory.
	Dir string

	// InMemory opens a non-persistent database, used by tests.
	InMemory bool

	// Logger receives diagnostics for malformed stored data. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Open opens the task store.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, fmt.Errorf("store: dir is required for a persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get loads and unmarshals one key into v. Returns false when the key is
// absent or the stored value is malformed; malformed data is never an error.
func (s *Store) get(key string, v any) bool {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			s.logger.Warn("store read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn("malformed stored value, treating as empty", "key", key, "error", err)
		return false
	}
	return true
}

// set marshals v and writes it under key.
func (s *Store) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// DayKeysWithPrefix returns the sorted day keys of every stored key matching
// prefix, e.g. DayKeysWithPrefix(PrefixCalendarTasks) -> ["2024-06-03", ...].
func (s *Store) DayKeysWithPrefix(prefix string) []string {
	var keys []string
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			keys = append(keys, strings.TrimPrefix(key, prefix))
		}
		return nil
	})
	sort.Strings(keys)
	return keys
}

// Export dumps every key-value pair in the store.
func (s *Store) Export() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[string(item.Key())] = json.RawMessage(val)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export store: %w", err)
	}
	return out, nil
}

// Import replaces the entire store contents with data.
func (s *Store) Import(data map[string]json.RawMessage) error {
	if err := s.Clear(); err != nil {
		return err
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for key, val := range data {
		if err := wb.Set([]byte(key), []byte(val)); err != nil {
			return fmt.Errorf("import %s: %w", key, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("import store: %w", err)
	}
	return nil
}

// Clear removes every key in the store.
func (s *Store) Clear() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}
