package offline

import (
	"context"

	"preopedge/checklist"

	"github.com/sirupsen/logrus"
)

// Remote delivers one submission and returns the external record id.
type Remote interface {
	Submit(ctx context.Context, sub checklist.Submission) (string, error)
}

// SyncResult reports the outcome for one queue entry during a sync pass.
type SyncResult struct {
	ID       string `json:"id"`
	RecordID string `json:"record_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Syncer drains the pending queue to the remote service. It runs only when
// an operator asks for it; queued entries are never retried automatically,
// not even on reconnect.
type Syncer struct {
	store  *Store
	remote Remote
	log    *logrus.Logger
}

// NewSyncer creates a Syncer over the given store and remote client.
func NewSyncer(store *Store, remote Remote, log *logrus.Logger) *Syncer {
	return &Syncer{store: store, remote: remote, log: log}
}

// SyncAll attempts each pending entry oldest-first, one network call per
// entry. Delivered entries are removed; failed entries stay queued for a
// later attempt. The pass stops early if the context is cancelled.
func (s *Syncer) SyncAll(ctx context.Context) []SyncResult {
	entries := s.store.List()
	results := make([]SyncResult, 0, len(entries))

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		recordID, err := s.remote.Submit(ctx, entry.Data)
		if err != nil {
			s.log.Warnf("sync entry %s: %v", entry.ID, err)
			results = append(results, SyncResult{ID: entry.ID, Error: err.Error()})
			continue
		}
		if err := s.store.Remove(entry.ID); err != nil {
			s.log.Errorf("remove synced entry %s: %v", entry.ID, err)
		}
		s.log.Infof("synced entry %s as record %s", entry.ID, recordID)
		results = append(results, SyncResult{ID: entry.ID, RecordID: recordID})
	}
	return results
}
