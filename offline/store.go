// Package offline tracks network reachability and owns the durable queue of
// checklist submissions that could not be delivered.
package offline

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"preopedge/checklist"
	"preopedge/events"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Pending is one queued submission awaiting delivery. Entries are never
// mutated after creation, only removed.
type Pending struct {
	ID        string               `json:"id"`
	Data      checklist.Submission `json:"data"`
	Timestamp int64                `json:"timestamp"` // epoch millis
}

// Store is the durable pending queue. The whole queue lives in one JSON
// file that is rewritten in full on every mutation; at this scale the
// snapshot model keeps every mutation atomic for in-process readers.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []Pending
	bus     *events.Bus
	log     *logrus.Logger
}

// NewStore creates a Store backed by the JSON file at path and loads any
// existing snapshot. An unreadable or corrupt snapshot is logged and the
// queue starts empty; queued data is the only casualty, never the process.
func NewStore(path string, bus *events.Bus, log *logrus.Logger) *Store {
	s := &Store{path: path, bus: bus, log: log}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnf("pending queue unreadable, starting empty: %v", err)
		}
		return
	}
	var entries []Pending
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warnf("pending queue corrupt, starting empty: %v", err)
		return
	}
	s.entries = entries
}

// Enqueue appends a snapshot of the submission with a fresh id and the
// current timestamp, then rewrites the durable snapshot. The entry stays in
// memory even if the write fails, so a later mutation can persist it.
func (s *Store) Enqueue(sub checklist.Submission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Pending{
		ID:        uuid.NewString(),
		Data:      sub.Clone(),
		Timestamp: time.Now().UnixMilli(),
	}
	s.entries = append(s.entries, entry)
	err := s.persistLocked()
	s.emitLocked()
	return entry.ID, err
}

// Remove deletes one entry by id. Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			err := s.persistLocked()
			s.emitLocked()
			return err
		}
	}
	return nil
}

// ClearAll empties the queue and erases the durable snapshot.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		s.emitLocked()
		return fmt.Errorf("erase pending queue: %w", err)
	}
	s.emitLocked()
	return nil
}

// List returns a copy of the queue in enqueue order.
func (s *Store) List() []Pending {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Pending, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of pending entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshal pending queue: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Errorf("persist pending queue: %v", err)
		return fmt.Errorf("persist pending queue: %w", err)
	}
	return nil
}

func (s *Store) emitLocked() {
	if s.bus == nil {
		return
	}
	s.bus.Emit(events.Event{
		Type:    events.TypeQueueChanged,
		Payload: events.QueueChangedEvent{Pending: len(s.entries)},
	})
}
