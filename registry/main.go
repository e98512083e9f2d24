// Package registry holds the Lines of a running process and serializes access to them.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/notify"
)

var (
	ErrNotFound = errors.New("line not found")
	ErrExists   = errors.New("line already exists")
)

// Snapshot is a copy of a Line's state at one point in time.
type Snapshot struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Stations []string  `json:"stations"`
	Count    int       `json:"count"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s %s (%d stations)", s.ID, s.Name, s.Count)
}

func snapshot(id uuid.UUID, l *line.Line) Snapshot {
	return Snapshot{
		ID:       id,
		Name:     l.Name,
		Stations: l.Names(),
		Count:    l.Count(),
	}
}

// Registry is safe for concurrent use. Lines added to it must not be touched except through it.
type Registry struct {
	linesLock sync.RWMutex
	lines     map[uuid.UUID]*line.Line
	// SnapshotMux receives a Snapshot after every Add and Append.
	SnapshotMux *notify.Multiplexer[Snapshot]
	sender      *notify.MultiplexerSender[Snapshot]
}

func New() *Registry {
	sender, mux := notify.NewMultiplexerSender[Snapshot]("registry")
	return &Registry{
		lines:       map[uuid.UUID]*line.Line{},
		SnapshotMux: mux,
		sender:      sender,
	}
}

func (r *Registry) Add(id uuid.UUID, l *line.Line) error {
	r.linesLock.Lock()
	defer r.linesLock.Unlock()
	if _, ok := r.lines[id]; ok {
		return fmt.Errorf("%s: %w", id, ErrExists)
	}
	r.lines[id] = l
	r.sender.Send(snapshot(id, l))
	return nil
}

// Append appends a station to the line with the given id.
func (r *Registry) Append(id uuid.UUID, station string) (Snapshot, error) {
	r.linesLock.Lock()
	defer r.linesLock.Unlock()
	l, ok := r.lines[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	l.Append(station)
	s := snapshot(id, l)
	r.sender.Send(s)
	return s, nil
}

func (r *Registry) Get(id uuid.UUID) (Snapshot, error) {
	r.linesLock.RLock()
	defer r.linesLock.RUnlock()
	l, ok := r.lines[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return snapshot(id, l), nil
}

// View calls fn with the line while holding the read lock. fn must not modify l.
func (r *Registry) View(id uuid.UUID, fn func(l *line.Line) error) error {
	r.linesLock.RLock()
	defer r.linesLock.RUnlock()
	l, ok := r.lines[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return fn(l)
}

// List returns snapshots of all lines, sorted by name and then ID.
func (r *Registry) List() []Snapshot {
	r.linesLock.RLock()
	defer r.linesLock.RUnlock()
	ss := make([]Snapshot, 0, len(r.lines))
	for id, l := range r.lines {
		ss = append(ss, snapshot(id, l))
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Name != ss[j].Name {
			return ss[i].Name < ss[j].Name
		}
		return ss[i].ID.String() < ss[j].ID.String()
	})
	return ss
}
