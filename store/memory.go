package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/patrickmn/go-cache"
)

// Memory is a Store keeping records in memory. Records never expire.
type Memory struct {
	cache *cache.Cache
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{cache: cache.New(cache.NoExpiration, 0)}
}

// Load returns a copy of the record stored for name.
func (m *Memory) Load(ctx context.Context, name string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if x, found := m.cache.Get(name); found {
		return x.(*Record).Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Save stores a copy of rec for name.
func (m *Memory) Save(ctx context.Context, name string, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("save %s: no record", name)
	}
	m.cache.Set(name, rec.Clone(), cache.NoExpiration)
	tracer().Debugf("memory store: saved %s (%d bytes)", name, len(rec.Sections))
	return nil
}

// Delete removes the record for name.
func (m *Memory) Delete(name string) {
	m.cache.Delete(name)
}

// Names returns the names of all stored pages, sorted.
func (m *Memory) Names() []string {
	items := m.cache.Items()
	names := make([]string, 0, len(items))
	for k := range items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
