package builder

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/store"
	"golang.org/x/sync/singleflight"
)

// DefaultAutosaveDelay is the default quiescence period before an automatic save.
const DefaultAutosaveDelay = 2 * time.Second

// Snapshot is a version of a page document, as handed to saves.
type Snapshot struct {
	Name    string
	Root    *page.Node
	Meta    store.Meta
	Version uint64
}

// SaveFunc persists a snapshot.
type SaveFunc func(ctx context.Context, s Snapshot) error

// StoreSaver returns a SaveFunc encoding snapshots and saving them to st.
func StoreSaver(st store.Store) SaveFunc {
	return func(ctx context.Context, s Snapshot) error {
		rec, err := store.Encode(s.Root, s.Meta)
		if err != nil {
			return err
		}
		return st.Save(ctx, s.Name, rec)
	}
}

// Autosaver saves snapshots after a period without changes.
//
// Changed records the latest snapshot and (re-)starts the delay; when it
// expires, the latest snapshot is saved unless it has been saved already.
// Flush saves the latest snapshot immediately. Concurrent requests to save
// the same version share a single save, and saves of different versions are
// serialized.
type Autosaver struct {
	save      SaveFunc
	debounced func(func())
	group     singleflight.Group
	saving    sync.Mutex // serializes calls to save
	mu        sync.Mutex // guards the fields below
	latest    Snapshot
	saved     uint64
	hasLatest bool
	stopped   bool
	err       error
}

// NewAutosaver creates an autosaver with a quiescence period of delay.
// A delay <= 0 selects DefaultAutosaveDelay.
func NewAutosaver(delay time.Duration, save SaveFunc) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{
		save:      save,
		debounced: debounce.New(delay),
	}
}

// Changed notifies the autosaver of a new document version.
func (a *Autosaver) Changed(s Snapshot) {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.latest, a.hasLatest = s, true
	a.mu.Unlock()
	a.debounced(a.fire)
}

// Baseline sets the snapshot regarded as saved, e.g. after loading a
// document, without triggering a save.
func (a *Autosaver) Baseline(s Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.latest, a.hasLatest = s, true
	a.saved = s.Version
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	s, pending := a.latest, a.hasLatest && !a.stopped && a.latest.Version > a.saved
	a.mu.Unlock()
	if !pending {
		return
	}
	tracer().Debugf("autosave of %s version %d", s.Name, s.Version)
	_ = a.run(context.Background(), s)
}

// Flush saves the latest snapshot immediately, regardless of whether it has
// been saved before.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	s, ok := a.latest, a.hasLatest
	a.mu.Unlock()
	if !ok {
		return nil
	}
	return a.run(ctx, s)
}

// Save records s as the latest snapshot and saves it immediately. It works
// after Stop as well.
func (a *Autosaver) Save(ctx context.Context, s Snapshot) error {
	a.mu.Lock()
	if !a.hasLatest || s.Version >= a.latest.Version {
		a.latest, a.hasLatest = s, true
	}
	a.mu.Unlock()
	return a.run(ctx, s)
}

// Dirty is true if the latest snapshot has not been saved.
func (a *Autosaver) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasLatest && a.latest.Version > a.saved
}

// Err returns the error of the most recent save, or nil if it succeeded.
func (a *Autosaver) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Stop disables automatic saves. Pending automatic saves are dropped;
// Flush still works.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
}

func (a *Autosaver) run(ctx context.Context, s Snapshot) error {
	key := s.Name + "@" + strconv.FormatUint(s.Version, 10)
	_, err, shared := a.group.Do(key, func() (interface{}, error) {
		a.saving.Lock()
		defer a.saving.Unlock()
		return nil, a.save(ctx, s)
	})
	if shared {
		tracer().Debugf("save of %s shared", key)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.err = err
	if err != nil {
		tracer().Errorf("saving %s failed: %v", key, err)
		return fmt.Errorf("saving %s: %w", s.Name, err)
	}
	if s.Version > a.saved {
		a.saved = s.Version
	}
	return nil
}
