// Package store keeps the command history of the REPL in a bbolt database.
package store

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/plum-lang/plum/pkg/logutil"
	"github.com/plum-lang/plum/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Functions that initialize the database, keyed by description.
var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is a History backed by a database file.
type DBStore interface {
	storedefs.History
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the database at path, creating it if necessary. It waits at
// most one second for another process holding the database to release it.
func NewStore(path string) (DBStore, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return errors.Wrap(err, name)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Infof("opened database %s", path)
	return &dbStore{db}, nil
}

// Close closes the database.
func (s *dbStore) Close() error {
	logger.Infof("closing database %s", s.db.Path())
	return s.db.Close()
}
