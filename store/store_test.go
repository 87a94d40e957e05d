package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage() *page.Node {
	w := &page.Node{ID: "w1", Kind: page.KindWidget, WidgetType: "heading",
		Props: page.Values{"text": "Hi"}, Children: []*page.Node{}}
	c := &page.Node{ID: "c1", Kind: page.KindColumn, Props: page.Values{"width": 100.0},
		Children: []*page.Node{w}}
	s := &page.Node{ID: "s1", Kind: page.KindSection, Children: []*page.Node{c}}
	return page.NewRoot(s)
}

func TestEncodeDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.store")
	defer teardown()
	//
	root := samplePage()
	meta := Meta{Title: "Home", Description: "Start", Layout: "default"}
	rec, err := Encode(root, meta)
	require.NoError(t, err)
	assert.Equal(t, byte('['), rec.Sections[0], "only the root's children are persisted")
	again, m, err := Decode(rec)
	require.NoError(t, err)
	assert.Equal(t, meta, m)
	assert.Equal(t, root, again)
	//
	rec, err = Encode(page.NewRoot(), Meta{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(rec.Sections))
	empty, _, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, page.RootID, empty.ID)
}

func TestDecodeLegacyRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.store")
	defer teardown()
	//
	rec := &Record{Sections: []byte(`[{"id":"s1","columns":[{"id":"c1","width":100,
		"widgets":[{"id":"w1","type":"heading","content":{"text":"Hi"}}]}]}]`)}
	root, _, err := Decode(rec)
	require.NoError(t, err)
	w := page.Find(root, "w1")
	require.NotNil(t, w)
	assert.Equal(t, "heading", w.WidgetType)
	assert.Equal(t, "Hi", w.Props["text"])
}

func testStore(t *testing.T, st Store) {
	ctx := context.Background()
	_, err := st.Load(ctx, "home")
	assert.True(t, errors.Is(err, ErrNotFound))
	rec, err := Encode(samplePage(), Meta{Title: "Home"})
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "home", rec))
	got, err := st.Load(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Home", got.Meta.Title)
	assert.JSONEq(t, string(rec.Sections), string(got.Sections))
	// stored records do not alias the caller's
	rec.Meta.Title = "changed"
	got, _ = st.Load(ctx, "home")
	assert.Equal(t, "Home", got.Meta.Title)
	//
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, st.Save(cctx, "home", rec))
}

func TestMemoryStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.store")
	defer teardown()
	//
	m := NewMemory()
	testStore(t, m)
	assert.Equal(t, []string{"home"}, m.Names())
	m.Delete("home")
	assert.Empty(t, m.Names())
}

func TestFileStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.store")
	defer teardown()
	//
	dir := filepath.Join(t.TempDir(), "pages")
	f := NewFiles(dir)
	testStore(t, f)
	names, err := f.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, names)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
	//
	for _, bad := range []string{"", "../etc/passwd", "a b", ".hidden"} {
		_, err := f.Load(context.Background(), bad)
		assert.True(t, errors.Is(err, ErrInvalidName), bad)
	}
}
