package builder

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/store"
	"github.com/npillmayer/pagebuilder/style"
	"github.com/npillmayer/pagebuilder/widget"
	"github.com/npillmayer/pagebuilder/widget/builtin"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter() page.IDGenerator {
	n := 0
	return func(k page.Kind) string {
		n++
		return fmt.Sprintf("%s-%d", k, n)
	}
}

func newController(t *testing.T, opts ...Option) *Controller {
	reg := widget.NewRegistry()
	require.NoError(t, builtin.Register(reg))
	opts = append([]Option{WithRegistry(reg), WithIDGenerator(counter())}, opts...)
	return New("home", opts...)
}

func TestEditAndSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	c := newController(t)
	sid := c.AddSection(2, -1)
	assert.Equal(t, "section-1", sid)
	assert.Equal(t, sid, c.Selected())
	sec := page.Find(c.Root(), sid)
	require.Len(t, sec.Children, 2)
	col := sec.Children[0].ID
	wid := c.InsertWidget(col, "heading", 0)
	require.NotEmpty(t, wid)
	assert.Equal(t, wid, c.Selected())
	w := page.Find(c.Root(), wid)
	assert.Equal(t, "Add Your Heading Text Here", w.Props["text"], "registry defaults applied")
	// unknown parent: no change, selection kept
	v := c.Version()
	assert.Equal(t, "", c.InsertWidget("nope", "heading", 0))
	assert.Equal(t, v, c.Version())
	assert.Equal(t, wid, c.Selected())
	//
	dup := c.Duplicate(wid)
	require.NotEmpty(t, dup)
	assert.Equal(t, dup, c.Selected())
	assert.Equal(t, dup, page.Find(c.Root(), col).Children[1].ID)
	// removing an ancestor of the selection clears it
	assert.True(t, c.Remove(col))
	assert.Equal(t, "", c.Selected())
	assert.False(t, c.Remove(page.RootID), "root can't be removed")
	assert.False(t, c.Select("nope"))
}

func TestMoveUpdateReorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	c := newController(t)
	sid := c.AddSection(2, -1)
	cols := page.Find(c.Root(), sid).Children
	c1, c2 := cols[0].ID, cols[1].ID
	a := c.InsertWidget(c1, "text", -1)
	b := c.InsertWidget(c1, "button", -1)
	c.Select(c2)
	assert.True(t, c.Move(a, c2, 0))
	assert.Equal(t, a, c.Selected(), "moved node is selected")
	assert.Equal(t, a, page.Find(c.Root(), c2).Children[0].ID)
	assert.False(t, c.Move(sid, c1, 0), "can't move into own sub-tree")
	//
	assert.True(t, c.Update(b, page.Updates{Style: page.Values{"fontSize": 18}}))
	assert.Equal(t, a, c.Selected(), "update keeps selection")
	assert.Equal(t, 18, page.Find(c.Root(), b).Style["fontSize"])
	//
	c3 := c.InsertWidget(c2, "spacer", -1)
	assert.True(t, c.Reorder(c2, 1, 0))
	assert.Equal(t, c3, page.Find(c.Root(), c2).Children[0].ID)
	assert.False(t, c.Reorder(c2, 0, 7))
}

func TestUndoRedo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	var roots []*page.Node
	c := newController(t, OnChange(func(r *page.Node) { roots = append(roots, r) }))
	empty := c.Root()
	sid := c.AddSection(1, -1)
	afterAdd := c.Root()
	assert.True(t, c.CanUndo())
	assert.True(t, c.Undo())
	assert.Same(t, empty, c.Root())
	assert.Equal(t, "", c.Selected(), "undo clears selection")
	assert.True(t, c.Redo())
	assert.Same(t, afterAdd, c.Root())
	assert.False(t, c.Redo())
	// a new edit after undo truncates redo
	c.Undo()
	c.AddSection(3, -1)
	assert.False(t, c.CanRedo())
	assert.Nil(t, page.Find(c.Root(), sid))
	assert.Len(t, roots, 5)
}

func TestHistoryLimitOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	c := newController(t, HistoryLimit(2))
	c.AddSection(1, -1)
	c.AddSection(1, -1)
	c.AddSection(1, -1)
	assert.True(t, c.Undo())
	assert.False(t, c.Undo())
}

func TestDragAndDrop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	c := newController(t)
	sid := c.AddSection(1, -1)
	col := page.Find(c.Root(), sid).Children[0].ID
	v := c.Version()
	c.SetDragOver(col)
	assert.Equal(t, col, c.DragOver())
	assert.Equal(t, v, c.Version(), "dragging does not change the document")
	id := c.Drop(col, "image", 0)
	assert.NotEmpty(t, id)
	assert.Equal(t, "", c.DragOver())
	assert.Equal(t, id, c.SelectedNode().ID)
}

func TestLoadSave(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	ctx := context.Background()
	st := store.NewMemory()
	c := newController(t, WithStore(st), AutosaveDelay(time.Hour))
	require.NoError(t, c.Load(ctx, "home"), "missing page starts empty")
	assert.Empty(t, c.Root().Children)
	assert.False(t, c.Dirty())
	sid := c.AddSection(2, -1)
	c.SetMeta(store.Meta{Title: "Home"})
	assert.True(t, c.Dirty())
	require.NoError(t, c.Save(ctx))
	assert.False(t, c.Dirty())
	//
	d := newController(t, WithStore(st))
	require.NoError(t, d.Load(ctx, "home"))
	assert.Equal(t, "Home", d.Meta().Title)
	assert.NotNil(t, page.Find(d.Root(), sid))
	assert.False(t, d.CanUndo(), "load resets history")
	require.NoError(t, d.Close(ctx))
}

func TestLoadLegacyAndInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Save(ctx, "old", &store.Record{
		Sections: []byte(`[{"id":"s1","columns":[{"id":"c1","widgets":[{"id":"w1","type":"text"}]}]}]`),
	}))
	require.NoError(t, st.Save(ctx, "cyclic", &store.Record{
		Sections: []byte(`[{"id":"s1","kind":"section","children":[{"id":"s1","kind":"column","children":[]}]}]`),
	}))
	c := newController(t, WithStore(st))
	require.NoError(t, c.Load(ctx, "old"))
	assert.NotNil(t, page.Find(c.Root(), "w1"))
	before := c.Root()
	err := c.Load(ctx, "cyclic")
	assert.True(t, errors.Is(err, ErrInvalidDocument))
	assert.True(t, errors.Is(err, page.ErrCycle))
	assert.Same(t, before, c.Root(), "failed load keeps state")
	assert.Equal(t, "old", c.Name())
	//
	assert.True(t, errors.Is(New("x").Load(ctx, "x"), ErrNoStore))
	assert.True(t, errors.Is(New("x").Save(ctx), ErrNoStore))
}

func TestAutosaveAfterEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	ctx := context.Background()
	st := store.NewMemory()
	c := newController(t, WithStore(st), AutosaveDelay(20*time.Millisecond))
	c.AddSection(1, -1)
	c.AddSection(1, -1)
	require.Eventually(t, func() bool { return !c.Dirty() }, time.Second, 5*time.Millisecond)
	rec, err := st.Load(ctx, "home")
	require.NoError(t, err)
	root, _, err := store.Decode(rec)
	require.NoError(t, err)
	assert.Len(t, root.Children, 2)
	assert.NoError(t, c.SaveErr())
}

// The end-to-end scenario: build a page, style a heading, resolve it for
// mobile and lower it to CSS.
func TestEndToEndScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pb.builder")
	defer teardown()
	//
	c := newController(t)
	sid := c.AddSection(2, -1)
	sec := page.Find(c.Root(), sid)
	require.Len(t, sec.Children, 2)
	hid := c.InsertWidget(sec.Children[0].ID, "heading", -1)
	require.True(t, c.Update(hid, page.Updates{Style: page.Values{"fontSize": 28, "color": "#333"}}))
	h := page.Find(c.Root(), hid)
	assert.Equal(t, []string{page.RootID, sid, sec.Children[0].ID, hid}, func() []string {
		var ids []string
		for _, n := range page.Breadcrumb(c.Root(), hid) {
			ids = append(ids, n.ID)
		}
		return ids
	}())
	mobile := style.MergeStyle(h, page.Mobile)
	assert.Equal(t, style.MergeStyle(h, page.Desktop), mobile)
	decl := style.Lower(mobile)
	assert.Equal(t, style.Property("28px"), decl["fontSize"])
	assert.Equal(t, style.Property("#333"), decl["color"])
	for k, v := range decl {
		assert.NotEmpty(t, v, k)
	}
	assert.NoError(t, page.Validate(c.Root()))
}
