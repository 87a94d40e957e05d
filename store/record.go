package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/page/legacy"
)

// ErrNotFound is returned by stores for unknown page names.
var ErrNotFound = errors.New("page not found")

// Meta is the metadata of a page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Layout      string `json:"layout"`
}

// Record is the persisted form of a page.
type Record struct {
	Sections json.RawMessage `json:"sections"`
	Meta     Meta            `json:"meta"`
}

// Store loads and saves page records by name.
type Store interface {
	// Load returns the record for a page, or an error wrapping ErrNotFound.
	Load(ctx context.Context, name string) (*Record, error)
	// Save creates or replaces the record for a page.
	Save(ctx context.Context, name string, rec *Record) error
}

// Encode creates the record for a page tree. Only the children of root are
// persisted.
func Encode(root *page.Node, meta Meta) (*Record, error) {
	sections := []*page.Node{}
	if root != nil && root.Children != nil {
		sections = root.Children
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("encoding page: %w", err)
	}
	return &Record{Sections: raw, Meta: meta}, nil
}

// Decode restores a page tree from a record, wrapping the persisted sections
// in a new root. Legacy documents are migrated. A nil record decodes to an
// empty page.
func Decode(rec *Record) (*page.Node, Meta, error) {
	if rec == nil {
		return page.NewRoot(), Meta{}, nil
	}
	root, err := legacy.Decode(rec.Sections)
	if err != nil {
		return nil, rec.Meta, fmt.Errorf("decoding page: %w", err)
	}
	return root, rec.Meta, nil
}

// Clone returns a deep copy of rec.
func (rec *Record) Clone() *Record {
	if rec == nil {
		return nil
	}
	c := *rec
	c.Sections = bytes.Clone(rec.Sections)
	return &c
}
