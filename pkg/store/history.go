package store

import (
	"bytes"
	"encoding/binary"

	bolt "go.etcd.io/bbolt"

	"github.com/plum-lang/plum/pkg/store/storedefs"
)

const bucketHistory = "history"

func init() {
	initDB["create history bucket"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	}
}

func history(tx *bolt.Tx) *bolt.Bucket { return tx.Bucket([]byte(bucketHistory)) }

// AddLine appends a line to the history and returns its sequence number.
func (s *dbStore) AddLine(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := history(tx)
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), []byte(text))
	})
	return int(seq), err
}

// Line returns the line with the given sequence number.
func (s *dbStore) Line(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := history(tx).Get(seqKey(uint64(seq)))
		if v == nil {
			return storedefs.ErrNoSuchLine
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Lines returns the entries with sequence numbers in [from, upto).
func (s *dbStore) Lines(from, upto int) ([]storedefs.Entry, error) {
	var entries []storedefs.Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := history(tx).Cursor()
		for k, v := c.Seek(seqKey(uint64(from))); k != nil; k, v = c.Next() {
			seq := int(binary.BigEndian.Uint64(k))
			if upto >= 0 && seq >= upto {
				break
			}
			entries = append(entries, storedefs.Entry{Text: string(v), Seq: seq})
		}
		return nil
	})
	return entries, err
}

// Trim deletes the oldest lines, keeping at most keep of them.
func (s *dbStore) Trim(keep int) (int, error) {
	keep = max(keep, 0)
	deleted := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := history(tx)
		// Keys are collected first; deleting under a cursor skips entries.
		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, bytes.Clone(k))
		}
		if len(keys) <= keep {
			return nil
		}
		stale := keys[:len(keys)-keep]
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	return deleted, err
}

func seqKey(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, seq)
}
