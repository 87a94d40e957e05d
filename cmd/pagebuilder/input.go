package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/store"
	"github.com/spf13/cobra"
)

// readRecord loads a page record. ref is a file path, "-" for stdin, or the
// name of a page in the configured store directory.
func (a *app) readRecord(ctx context.Context, ref string, stdin io.Reader) (*store.Record, error) {
	var data []byte
	var err error
	switch {
	case ref == "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(ref)
		if errors.Is(err, fs.ErrNotExist) {
			tracer().Debugf("no file %q, looking up page in %s", ref, a.config.StoreDir)
			return store.NewFiles(a.config.StoreDir).Load(ctx, ref)
		}
	}
	if err != nil {
		return nil, err
	}
	return parseRecord(data)
}

// parseRecord accepts a page record or a bare list of sections.
func parseRecord(data []byte) (*store.Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return &store.Record{Sections: data}, nil
	}
	rec := &store.Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("reading page record: %w", err)
	}
	return rec, nil
}

// readPage loads and decodes a page, migrating legacy documents.
func (a *app) readPage(cmd *cobra.Command, ref string) (*page.Node, store.Meta, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rec, err := a.readRecord(ctx, ref, cmd.InOrStdin())
	if err != nil {
		return nil, store.Meta{}, err
	}
	return store.Decode(rec)
}

// pageName derives a store name from a file path, e.g. "pages/home.json"
// yields "home".
func pageName(ref string) string {
	base := filepath.Base(ref)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
