package store

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
)

// Subscribe invokes fn with the changed keys whenever a task collection is
// written: a completedRecurring-* or calendarTasks-* record, the deadline
// index, or a sustained collection. It blocks until ctx is cancelled.
//
// This is the storage-change notification the presentation layer observes to
// re-run aggregation for its active range.
func (s *Store) Subscribe(ctx context.Context, fn func(keys []string)) error {
	matches := []pb.Match{
		{Prefix: []byte(PrefixCompletedRecurring)},
		{Prefix: []byte(PrefixCalendarTasks)},
		{Prefix: []byte(KeyDeadlines)},
		{Prefix: []byte(KeySustainedLists)},
		{Prefix: []byte(KeySustainedLegacy)},
	}

	err := s.db.Subscribe(ctx, func(kvs *badger.KVList) error {
		keys := make([]string, 0, len(kvs.Kv))
		for _, kv := range kvs.Kv {
			keys = append(keys, string(kv.Key))
		}
		if len(keys) > 0 {
			fn(keys)
		}
		return nil
	}, matches)

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
