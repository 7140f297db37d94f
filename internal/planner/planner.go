// Package planner is the application store: it owns the single AppData
// snapshot, exposes every user action, and saves after each change.
package planner

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/normalize"
	"github.com/sadopc/planr/internal/schema"
)

// Persister receives the encoded record after every state change.
type Persister interface {
	SaveState(raw []byte) error
}

type Option func(*Planner)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func WithPersister(ps Persister) Option {
	return func(p *Planner) { p.persist = ps }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// WithData seeds the planner with an already well-formed snapshot.
func WithData(d model.AppData) Option {
	return func(p *Planner) { p.data = d.Clone() }
}

type Planner struct {
	mu      sync.Mutex
	data    model.AppData
	now     func() time.Time
	persist Persister
	log     *slog.Logger
}

func New(opts ...Option) *Planner {
	p := &Planner{
		data: model.NewAppData(),
		now:  time.Now,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Now is the planner's clock.
func (p *Planner) Now() time.Time {
	return p.now()
}

// Snapshot returns a deep copy of the current state.
func (p *Planner) Snapshot() model.AppData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Clone()
}

// update runs fn under the lock. When fn reports a change the result
// replaces the snapshot and is persisted.
func (p *Planner) update(fn func(d model.AppData, now time.Time) (model.AppData, bool)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	next, changed := fn(p.data, p.now())
	if !changed {
		return false
	}
	p.data = next
	p.save()
	return true
}

// replace swaps in a whole new snapshot.
func (p *Planner) replace(d model.AppData) {
	p.update(func(model.AppData, time.Time) (model.AppData, bool) { return d, true })
}

// save must be called with mu held. Failures are logged; the in-memory
// state stays authoritative.
func (p *Planner) save() {
	if p.persist == nil {
		return
	}
	raw, err := schema.Marshal(p.data)
	if err != nil {
		p.log.Error("failed to encode state", "error", err)
		return
	}
	if err := p.persist.SaveState(raw); err != nil {
		p.log.Error("failed to persist state", "error", err)
	}
}

// Load replaces the state with a persisted record. An empty record leaves
// the defaults in place. A record that fails validation is discarded in
// favor of fresh defaults; the returned error says why.
func (p *Planner) Load(raw []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(raw) == 0 {
		return nil
	}
	doc, err := schema.Decode(raw)
	if err != nil {
		p.data = model.NewAppData()
		p.log.Warn("stored state is invalid, starting fresh", "error", err)
		return fmt.Errorf("load state: %w", err)
	}
	p.data = normalize.AppData(doc, p.now())
	return nil
}

// ExportState serializes the current state as pretty-printed JSON.
func (p *Planner) ExportState() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw, err := schema.Marshal(p.data)
	if err != nil {
		return "", fmt.Errorf("export state: %w", err)
	}
	return string(raw), nil
}

// ImportState validates text and, on success, replaces the entire state and
// stamps LastImportedAt. On failure the state is untouched and the error
// message starts with "Import failed: ".
func (p *Planner) ImportState(text string) error {
	doc, err := schema.ParseImport(text)
	if err != nil {
		return err
	}
	p.update(func(_ model.AppData, now time.Time) (model.AppData, bool) {
		d := normalize.AppData(doc, now)
		d.LastImportedAt = model.Timestamp(now)
		return d, true
	})
	return nil
}

// DeleteAllData resets everything to fresh defaults.
func (p *Planner) DeleteAllData() {
	p.replace(model.NewAppData())
}
