// Package cache memoizes digests of a wrapped hasher.
package cache

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-bytecodec/core/hash"
)

var DefaultSize = 1024

type Hasher struct {
	hasher hash.Hasher
	data   *lru.Cache[string, hash.Digest]
}

func (c *Hasher) Code() uint64 {
	return c.hasher.Code()
}

func (c *Hasher) Size() uint64 {
	return c.hasher.Size()
}

func (c *Hasher) Sum(b []byte) (hash.Digest, error) {
	if c == nil || c.hasher == nil {
		return nil, errors.New("caching hasher is not initialized")
	}
	key := string(b)
	if d, ok := c.data.Get(key); ok {
		return d, nil
	}
	d, err := c.hasher.Sum(b)
	if err != nil {
		return nil, err
	}
	c.data.Add(key, d)
	return d, nil
}

// Len is the number of cached digests.
func (c *Hasher) Len() int {
	return c.data.Len()
}

var _ hash.Hasher = (*Hasher)(nil)

// New wraps h with an in memory LRU cache of digests keyed by input. The size
// parameter controls the maximum number of digests kept. Pass a value less
// than 1 to use [DefaultSize].
func New(h hash.Hasher, size int) (*Hasher, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data, err := lru.New[string, hash.Digest](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &Hasher{hasher: h, data: data}, nil
}
