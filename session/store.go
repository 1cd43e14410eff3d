package session

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"care-lab/domain"

	"github.com/dgraph-io/badger/v4"
)

type IEntryStore interface {
	Put(entry domain.CareLogEntry) error
	List(sessionID string) ([]domain.CareLogEntry, error)
}

// EntryStore keeps care log entries for the lifetime of the process only.
// The backing Badger instance runs fully in memory: closing the process
// drops every entry, which is the intended retention model.
type EntryStore struct {
	db           *badger.DB
	log          *slog.Logger
	limitEntries *int
}

func NewEntryStore(db *badger.DB, log *slog.Logger, limitEntries *int) EntryStore {
	return EntryStore{db: db, log: log, limitEntries: limitEntries}
}

// OpenEphemeral opens the in-memory Badger instance backing the store.
func OpenEphemeral() (*badger.DB, error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(options)
}

// Put stores an entry under "entry:{session}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent collisions if two entries land on the same nanosecond.
func (s EntryStore) Put(entry domain.CareLogEntry) error {
	key := fmt.Sprintf("entry:%s:%019d:%s",
		entry.SessionID,
		entry.At.UnixNano(),
		entry.ID,
	)
	bytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List returns the session's entries newest first using a reverse prefix
// scan; the padded timestamp in the key gives the ordering for free.
// Collection stops once the configured limit is reached.
func (s EntryStore) List(sessionID string) ([]domain.CareLogEntry, error) {
	var rawEntries [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("entry:%s:", sessionID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then walk backwards.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if s.limitEntries != nil && len(rawEntries) == *s.limitEntries {
				s.log.Debug(fmt.Sprintf("Maximum of %d entries reached", *s.limitEntries))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				rawEntries = append(rawEntries, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CareLogEntry, 0, len(rawEntries))
	for _, raw := range rawEntries {
		var entry domain.CareLogEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
