package cache

import (
	"context"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/ubiquity/permit2-rpc-manager/config"
)

var bboltBucket = []byte("rpc_cache")

// BboltConnector is the embedded, on-disk cache driver: a single-process
// deployment that must survive restarts without an external dependency.
type BboltConnector struct {
	db *bolt.DB
}

func NewBboltConnector(cfg config.BboltConfig) (*BboltConnector, error) {
	path := cfg.Path
	if path == "" {
		path = "./rpcproxy-cache.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bboltBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &BboltConnector{db: db}, nil
}

func (b *BboltConnector) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bboltBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *BboltConnector) Set(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bboltBucket).Put([]byte(key), value)
	})
}

func (b *BboltConnector) Close() error {
	return b.db.Close()
}
