// Package perftcache memoizes perft leaf-node counts keyed by (position
// hash, depth), backed by Badger. Perft is the one deterministic,
// repeatable computation in this engine's scope: the same hash at the same
// depth always produces the same leaf count, so a persisted cache survives
// across process runs and across positions that transpose into each other.
package perftcache

import (
	"encoding/binary"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// Cache wraps a Badger database storing perft(hash, depth) -> node count.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a perft cache rooted at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("perftcache: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func cacheKey(hash uint64, depth int) []byte {
	buf := make([]byte, 9)
	binary.BigEndian.PutUint64(buf[:8], hash)
	buf[8] = byte(depth)
	return buf
}

// Get returns the cached leaf count for (hash, depth) and whether it was
// present.
func (c *Cache) Get(hash uint64, depth int) (uint64, bool) {
	var nodes uint64
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(hash, depth))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("perftcache: corrupt entry for hash %x depth %d", hash, depth)
			}
			nodes = binary.BigEndian.Uint64(val)
			found = true
			return nil
		})
	})
	if err != nil {
		return 0, false
	}

	return nodes, found
}

// Put stores the leaf count for (hash, depth), overwriting any prior entry.
func (c *Cache) Put(hash uint64, depth int, nodes uint64) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, nodes)

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(hash, depth), val)
	})
}
