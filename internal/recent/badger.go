package recent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps the list under StorageKey in a Badger database
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens a Badger database at path. An empty path opens an
// in-memory database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for recent videos: %w", err)
	}
	return NewBadgerStore(db), nil
}

// NewBadgerStore wraps an open database
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Load reads the list. A corrupt value is logged, reset and read as empty.
func (s *BadgerStore) Load(ctx context.Context) ([]Entry, error) {
	var (
		entries []Entry
		corrupt bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		entries, corrupt, err = readEntries(ctx, txn)
		return err
	})
	if err != nil {
		return nil, err
	}

	if corrupt {
		if err := s.Save(ctx, []Entry{}); err != nil {
			slog.WarnContext(ctx, "Failed to reset recent videos", "error", err)
		}
	}
	return entries, nil
}

// Save replaces the list
func (s *BadgerStore) Save(_ context.Context, entries []Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(StorageKey), data); err != nil {
			return fmt.Errorf("set recent videos: %w", err)
		}
		return nil
	})
}

// Remove deletes every entry for youtubeID in a single transaction
func (s *BadgerStore) Remove(ctx context.Context, youtubeID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		entries, _, err := readEntries(ctx, txn)
		if err != nil {
			return err
		}
		data, err := encodeEntries(Without(entries, youtubeID))
		if err != nil {
			return err
		}
		return txn.Set([]byte(StorageKey), data)
	})
}

// Close closes the database
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func readEntries(ctx context.Context, txn *badger.Txn) ([]Entry, bool, error) {
	item, err := txn.Get([]byte(StorageKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []Entry{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get recent videos: %w", err)
	}

	var (
		entries []Entry
		ok      bool
	)
	if err := item.Value(func(val []byte) error {
		entries, ok = decodeEntries(ctx, val)
		return nil
	}); err != nil {
		return nil, false, fmt.Errorf("read recent videos: %w", err)
	}
	return entries, !ok, nil
}
