package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/store"
	"github.com/npillmayer/pagebuilder/widget"
)

// Errors returned by the controller.
var (
	ErrInvalidDocument = errors.New("invalid page document")
	ErrNoStore         = errors.New("no store configured")
)

// Controller manages the editing state of a single page. It is safe for
// concurrent use; operations are serialized.
type Controller struct {
	props
	mu       sync.Mutex
	name     string
	history  *History[*page.Node]
	meta     store.Meta
	selected string
	dragOver string
	version  uint64
	autosave *Autosaver
}

type props struct {
	historyLimit int
	delay        time.Duration
	registry     *widget.Registry
	store        store.Store
	newID        page.IDGenerator
	onChange     func(*page.Node)
}

// Option is a type to help initializing controllers at creation time.
type Option struct {
	config func(props) props
}

// HistoryLimit caps the number of undo steps kept. 0 means unbounded.
// Default is DefaultHistoryLimit.
func HistoryLimit(n int) Option {
	return Option{config: func(p props) props {
		p.historyLimit = n
		return p
	}}
}

// AutosaveDelay sets the quiescence period before automatic saves.
func AutosaveDelay(d time.Duration) Option {
	return Option{config: func(p props) props {
		p.delay = d
		return p
	}}
}

// WithRegistry sets the widget registry used for widget defaults.
func WithRegistry(reg *widget.Registry) Option {
	return Option{config: func(p props) props {
		p.registry = reg
		return p
	}}
}

// WithStore sets the store documents are loaded from and saved to. Without
// a store, documents are neither loaded nor saved.
func WithStore(st store.Store) Option {
	return Option{config: func(p props) props {
		p.store = st
		return p
	}}
}

// WithIDGenerator replaces the generator for ids of new nodes.
func WithIDGenerator(gen page.IDGenerator) Option {
	return Option{config: func(p props) props {
		p.newID = gen
		return p
	}}
}

// OnChange registers a callback which is called with the new root after
// every change of the document, including undo, redo and load. It is called
// with the controller locked and must not call back into the controller.
func OnChange(f func(*page.Node)) Option {
	return Option{config: func(p props) props {
		p.onChange = f
		return p
	}}
}

// New creates a controller for page name, holding an empty document.
//
//     ctrl := builder.New("home", builder.WithStore(st), builder.WithRegistry(reg))
//     if err := ctrl.Load(ctx, "home"); err != nil { … }
//     defer ctrl.Close(ctx)
//
func New(name string, opts ...Option) *Controller {
	c := &Controller{name: name}
	c.props = props{historyLimit: DefaultHistoryLimit, newID: page.NewID}
	for _, option := range opts {
		c.props = option.config(c.props)
	}
	if c.newID == nil {
		c.newID = page.NewID
	}
	if c.registry == nil {
		c.registry = widget.NewRegistry()
	}
	c.history = NewHistory(page.NewRoot(), c.historyLimit)
	if c.store != nil {
		c.autosave = NewAutosaver(c.delay, StoreSaver(c.store))
	}
	return c
}

// --- Queries ---------------------------------------------------------------

// Name returns the name of the page being edited.
func (c *Controller) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Root returns the current document.
func (c *Controller) Root() *page.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Current()
}

// Meta returns the page metadata.
func (c *Controller) Meta() store.Meta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meta
}

// Selected returns the id of the selected node, or "".
func (c *Controller) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// SelectedNode returns the selected node, or nil.
func (c *Controller) SelectedNode() *page.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == "" {
		return nil
	}
	return page.Find(c.history.Current(), c.selected)
}

// DragOver returns the id of the column currently dragged over, or "".
func (c *Controller) DragOver() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragOver
}

// Version returns a counter incremented with every change of the document.
func (c *Controller) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// CanUndo is true if there are changes to undo.
func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanUndo()
}

// CanRedo is true if there are undone changes to redo.
func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanRedo()
}

// --- Selection -------------------------------------------------------------

// Select selects the node with the given id. Unknown ids clear the
// selection. Returns true if a node is selected afterwards.
func (c *Controller) Select(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == "" || page.Find(c.history.Current(), id) == nil {
		c.selected = ""
		return false
	}
	c.selected = id
	return true
}

// SetDragOver records the column currently dragged over. Dragging does not
// change the document.
func (c *Controller) SetDragOver(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragOver = id
}

// --- Edits -----------------------------------------------------------------

// commit makes root current if it differs from the current document.
// c.mu must be held.
func (c *Controller) commit(op string, root *page.Node) bool {
	if root == c.history.Current() {
		tracer().Debugf("%s: document unchanged", op)
		return false
	}
	c.history.Push(root)
	c.changed(op)
	return true
}

// changed notifies observers about a new current document. c.mu must be held.
func (c *Controller) changed(op string) {
	c.version++
	root := c.history.Current()
	tracer().Debugf("%s: version %d", op, c.version)
	if c.onChange != nil {
		c.onChange(root)
	}
	if c.autosave != nil {
		c.autosave.Changed(c.snapshot())
	}
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{Name: c.name, Root: c.history.Current(), Meta: c.meta, Version: c.version}
}

// Insert inserts n as a child of parentID at index (see page.Insert) and
// selects it. Returns false if the document did not change.
func (c *Controller) Insert(parentID string, n *page.Node, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.commit("insert", page.Insert(c.history.Current(), parentID, n, index)) {
		return false
	}
	c.selected = n.ID
	return true
}

// InsertWidget creates a widget of type typ with the registry's default
// props and inserts it into parentID at index. It returns the id of the new
// widget, or "" if parentID is unknown. Unregistered types are inserted
// with empty props.
func (c *Controller) InsertWidget(parentID, typ string, index int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertWidget(parentID, typ, index)
}

func (c *Controller) insertWidget(parentID, typ string, index int) string {
	w := page.NewWidget(typ, c.registry.Defaults(typ))
	w.ID = c.newID(page.KindWidget)
	if !c.commit("insert widget", page.Insert(c.history.Current(), parentID, w, index)) {
		return ""
	}
	c.selected = w.ID
	return w.ID
}

// Drop completes a drag of a widget type onto a column: a new widget is
// inserted at index and the drag-over state is cleared.
func (c *Controller) Drop(columnID, typ string, index int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragOver = ""
	return c.insertWidget(columnID, typ, index)
}

// AddSection inserts a new section with the given number of columns into
// the root at index and selects it. Returns the id of the section.
func (c *Controller) AddSection(columns, index int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := page.NewSection(columns)
	s.ID = c.newID(page.KindSection)
	for _, col := range s.Children {
		col.ID = c.newID(page.KindColumn)
	}
	if !c.commit("add section", page.Insert(c.history.Current(), page.RootID, s, index)) {
		return ""
	}
	c.selected = s.ID
	return s.ID
}

// Remove deletes a node and its sub-tree. If the selection was inside the
// removed sub-tree, it is cleared.
func (c *Controller) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	root := page.Remove(c.history.Current(), id)
	if !c.commit("remove", root) {
		return false
	}
	if c.selected != "" && page.Find(root, c.selected) == nil {
		c.selected = ""
	}
	return true
}

// Update replaces fields of a node, see page.Update. Selection is not
// changed.
func (c *Controller) Update(id string, upd page.Updates) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit("update", page.Update(c.history.Current(), id, upd))
}

// Move re-parents a node, see page.Move, and selects it.
func (c *Controller) Move(id, targetParentID string, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.commit("move", page.Move(c.history.Current(), id, targetParentID, index)) {
		return false
	}
	c.selected = id
	return true
}

// Duplicate inserts a deep copy of a node with fresh ids right after it and
// selects the copy. Returns the id of the copy, or "".
func (c *Controller) Duplicate(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	root, clone := page.DuplicateWith(c.history.Current(), id, c.newID)
	if clone == nil || !c.commit("duplicate", root) {
		return ""
	}
	c.selected = clone.ID
	return clone.ID
}

// Reorder moves a child of parentID from one position to another.
func (c *Controller) Reorder(parentID string, from, to int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit("reorder", page.ReorderChildren(c.history.Current(), parentID, from, to))
}

// Undo steps back in history. The selection is cleared.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.history.Undo(); !ok {
		return false
	}
	c.selected = ""
	c.changed("undo")
	return true
}

// Redo re-applies an undone change. The selection is cleared.
func (c *Controller) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.history.Redo(); !ok {
		return false
	}
	c.selected = ""
	c.changed("redo")
	return true
}

// SetMeta replaces the page metadata. Metadata changes are saved but are
// not part of the undo history.
func (c *Controller) SetMeta(m store.Meta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m == c.meta {
		return
	}
	c.meta = m
	c.changed("set meta")
}

// --- Persistence -----------------------------------------------------------

// Load loads page name from the store, replacing the current document and
// history. A page missing from the store yields an empty document. Invalid
// documents are rejected with ErrInvalidDocument, leaving the controller
// unchanged.
func (c *Controller) Load(ctx context.Context, name string) error {
	if c.store == nil {
		return ErrNoStore
	}
	root, meta := page.NewRoot(), store.Meta{}
	rec, err := c.store.Load(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		tracer().Infof("page %s not found, starting empty", name)
	case err != nil:
		return fmt.Errorf("loading %s: %w", name, err)
	default:
		if root, meta, err = store.Decode(rec); err != nil {
			tracer().Errorf("page %s: %v", name, err)
			return fmt.Errorf("%w %s: %v", ErrInvalidDocument, name, err)
		}
	}
	if err := page.Validate(root); err != nil {
		tracer().Errorf("page %s: %v", name, err)
		return fmt.Errorf("%w %s: %w", ErrInvalidDocument, name, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name, c.meta = name, meta
	c.selected, c.dragOver = "", ""
	c.history.Reset(root)
	c.version++
	if c.onChange != nil {
		c.onChange(root)
	}
	if c.autosave != nil {
		c.autosave.Baseline(c.snapshot())
	}
	return nil
}

// Save saves the current document immediately.
func (c *Controller) Save(ctx context.Context) error {
	if c.autosave == nil {
		return ErrNoStore
	}
	c.mu.Lock()
	s := c.snapshot()
	c.mu.Unlock()
	return c.autosave.Save(ctx, s)
}

// Dirty is true if there are unsaved changes.
func (c *Controller) Dirty() bool {
	return c.autosave != nil && c.autosave.Dirty()
}

// SaveErr returns the error of the most recent save, if it failed.
func (c *Controller) SaveErr() error {
	if c.autosave == nil {
		return nil
	}
	return c.autosave.Err()
}

// Close stops automatic saves and saves pending changes.
func (c *Controller) Close(ctx context.Context) error {
	if c.autosave == nil {
		return nil
	}
	c.autosave.Stop()
	if !c.autosave.Dirty() {
		return nil
	}
	return c.autosave.Flush(ctx)
}
