package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/roster-manager/internal/domain/roster"
)

// RosterRepository keeps named snapshots in process. Load reads the input
// snapshot and Save replaces the output snapshot.
type RosterRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]roster.Entry
	input     string
	output    string
}

func NewRosterRepository(input, output string) *RosterRepository {
	return &RosterRepository{
		snapshots: make(map[string][]roster.Entry),
		input:     input,
		output:    output,
	}
}

// Put stores a snapshot under name, replacing any previous one.
func (r *RosterRepository) Put(name string, entries []roster.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[name] = cloneEntries(entries)
}

// Snapshot returns a copy of the named snapshot.
func (r *RosterRepository) Snapshot(name string) ([]roster.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.snapshots[name]
	if !ok {
		return nil, false
	}
	return cloneEntries(entries), true
}

func (r *RosterRepository) Load(_ context.Context) (*roster.Roster, error) {
	entries, ok := r.Snapshot(r.input)
	if !ok {
		return nil, roster.ErrSourceNotFound
	}
	return roster.FromEntries(entries), nil
}

func (r *RosterRepository) Save(_ context.Context, rs *roster.Roster) error {
	r.Put(r.output, rs.Entries())
	return nil
}

func (r *RosterRepository) Source() string {
	return "Snapshot " + r.input
}

func cloneEntries(entries []roster.Entry) []roster.Entry {
	out := make([]roster.Entry, len(entries))
	copy(out, entries)
	return out
}
