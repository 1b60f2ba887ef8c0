package offline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"preopedge/checklist"
	"preopedge/events"

	"github.com/sirupsen/logrus"
)

type fakeRemote struct {
	calls int
	fail  func(sub checklist.Submission) bool
}

func (f *fakeRemote) Submit(_ context.Context, sub checklist.Submission) (string, error) {
	f.calls++
	if f.fail != nil && f.fail(sub) {
		return "", errors.New("HTTP error 500")
	}
	return "rec123", nil
}

func TestSyncAllRemovesOnlyDelivered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.json")
	store := NewStore(path, events.NewBus(), logrus.New())

	good := sampleSubmission()
	bad := sampleSubmission()
	bad.EmployeeName = "stuck"
	store.Enqueue(good)
	badID, _ := store.Enqueue(bad)

	remote := &fakeRemote{fail: func(sub checklist.Submission) bool {
		return sub.EmployeeName == "stuck"
	}}
	syncer := NewSyncer(store, remote, logrus.New())

	results := syncer.SyncAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if remote.calls != 2 {
		t.Errorf("remote called %d times, want 2", remote.calls)
	}
	if results[0].Error != "" || results[0].RecordID != "rec123" {
		t.Errorf("first result = %+v, want delivered", results[0])
	}
	if results[1].Error == "" {
		t.Errorf("second result = %+v, want failure", results[1])
	}

	left := store.List()
	if len(left) != 1 {
		t.Fatalf("queue has %d entries after sync, want 1", len(left))
	}
	if left[0].ID != badID {
		t.Errorf("remaining entry = %q, want the failed one %q", left[0].ID, badID)
	}
}

func TestSyncAllStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.json")
	store := NewStore(path, events.NewBus(), logrus.New())
	store.Enqueue(sampleSubmission())
	store.Enqueue(sampleSubmission())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	remote := &fakeRemote{}
	results := NewSyncer(store, remote, logrus.New()).SyncAll(ctx)
	if len(results) != 0 {
		t.Errorf("got %d results with cancelled context, want 0", len(results))
	}
	if remote.calls != 0 {
		t.Errorf("remote called %d times with cancelled context, want 0", remote.calls)
	}
}
