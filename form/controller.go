// Package form owns the draft submission and orchestrates the submit path:
// validate, then queue offline, acknowledge in demo mode, or deliver to the
// remote service with queue fallback on failure.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"preopedge/airtable"
	"preopedge/checklist"
	"preopedge/events"
	"preopedge/offline"
)

// Outcome classifies the result of one submit action.
type Outcome string

const (
	OutcomeInvalid            Outcome = "invalid"
	OutcomeBusy               Outcome = "busy"
	OutcomeSavedOffline       Outcome = "saved_offline"
	OutcomeDemo               Outcome = "demo"
	OutcomeSubmitted          Outcome = "submitted"
	OutcomeQueuedAfterFailure Outcome = "queued_after_failure"
)

// Result is the user-facing outcome of a submit action.
type Result struct {
	Outcome  Outcome `json:"outcome"`
	Message  string  `json:"message"`
	RecordID string  `json:"record_id,omitempty"`
	QueueID  string  `json:"queue_id,omitempty"`
}

// Remote is the slice of the submission client the controller needs.
type Remote interface {
	IsConfigured() bool
	Submit(ctx context.Context, sub checklist.Submission) (string, error)
}

// Controller owns the mutable draft and serializes submit actions. Exactly
// one queue mutation and at most one network call happen per submit.
type Controller struct {
	mu           sync.Mutex
	draft        checklist.Submission
	showGuidance bool
	submitting   bool

	store  *offline.Store
	status *offline.Monitor
	remote Remote
	bus    *events.Bus
	now    func() time.Time
}

// NewController creates a Controller with a fresh draft.
func NewController(store *offline.Store, status *offline.Monitor, remote Remote, bus *events.Bus) *Controller {
	c := &Controller{
		store:  store,
		status: status,
		remote: remote,
		bus:    bus,
		now:    time.Now,
	}
	c.draft = NewDraft(c.now())
	return c
}

// NewDraft returns a blank submission: today's date, every catalog item
// inspected, nothing flagged.
func NewDraft(t time.Time) checklist.Submission {
	return checklist.Submission{
		Date:                    t.Format("2006-01-02"),
		ItemsInspected:          checklist.AllItemIDs(),
		ItemsRequiringAttention: []string{},
	}
}

// Draft returns a snapshot of the current draft and the guidance flag.
func (c *Controller) Draft() (checklist.Submission, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone(), c.showGuidance
}

// SetDraft replaces the draft with the operator's current form state. The
// guidance flag latches on when any item requires attention; it never
// auto-hides, only Reset collapses it.
func (c *Controller) SetDraft(sub checklist.Submission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = sub.Clone()
	if len(c.draft.ItemsRequiringAttention) > 0 {
		c.showGuidance = true
	}
}

// Reset restores the draft to defaults with the date recomputed to today.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.draft = NewDraft(c.now())
	c.showGuidance = false
}

// Validate checks required fields in order and returns the first failure.
func Validate(sub checklist.Submission) error {
	if strings.TrimSpace(sub.EmployeeName) == "" {
		return errors.New("Employee Name is required")
	}
	if strings.TrimSpace(sub.AssetMake) == "" {
		return errors.New("Asset Make and Equipment Type is required")
	}
	if sub.EquipmentCondition == "" {
		return errors.New("Please select the equipment condition")
	}
	if sub.ActionTaken == "" {
		return errors.New("Please select the action taken")
	}
	return nil
}

// Submit runs the submit path against the current draft. On validation
// failure the draft is left untouched for correction; on every accepted
// outcome (queued, demo, delivered, queued after failure) the draft resets.
func (c *Controller) Submit(ctx context.Context) Result {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Result{Outcome: OutcomeBusy, Message: "A submission is already in progress"}
	}
	sub := c.draft.Clone()
	if err := Validate(sub); err != nil {
		c.mu.Unlock()
		return Result{Outcome: OutcomeInvalid, Message: err.Error()}
	}
	c.submitting = true
	c.mu.Unlock()

	res := c.dispatch(ctx, sub)

	c.mu.Lock()
	c.submitting = false
	c.resetLocked()
	c.mu.Unlock()

	c.notify(res, sub)
	return res
}

// dispatch branches on connectivity, then configuration, in that order.
func (c *Controller) dispatch(ctx context.Context, sub checklist.Submission) Result {
	if !c.status.Online() {
		id, _ := c.store.Enqueue(sub)
		return Result{
			Outcome: OutcomeSavedOffline,
			Message: "Saved offline. Your checklist will be submitted when you're back online.",
			QueueID: id,
		}
	}

	if !c.remote.IsConfigured() {
		return Result{
			Outcome: OutcomeDemo,
			Message: "Checklist Submitted (Demo Mode). Configure Airtable API keys for real submissions.",
		}
	}

	recordID, err := c.remote.Submit(ctx, sub)
	if err != nil {
		// A transport failure (no response at all) is a reachability
		// signal; an API rejection is not.
		var apiErr *airtable.APIError
		if !errors.As(err, &apiErr) {
			c.status.SetOnline(false)
		}
		id, _ := c.store.Enqueue(sub)
		return Result{
			Outcome: OutcomeQueuedAfterFailure,
			Message: fmt.Sprintf("%s. Saved locally for retry.", err.Error()),
			QueueID: id,
		}
	}

	c.status.SetOnline(true)
	return Result{
		Outcome:  OutcomeSubmitted,
		Message:  "Checklist Submitted. Record ID: " + recordID,
		RecordID: recordID,
	}
}

// notify broadcasts fire-and-forget events for accepted submissions.
func (c *Controller) notify(res Result, sub checklist.Submission) {
	if c.bus == nil {
		return
	}
	c.bus.Emit(events.Event{
		Type: events.TypeSubmissionResult,
		Payload: events.SubmissionResultEvent{
			Outcome:    string(res.Outcome),
			Message:    res.Message,
			RecordID:   res.RecordID,
			QueueID:    res.QueueID,
			Submission: sub,
		},
	})

	needsAttention := sub.EquipmentCondition == checklist.ConditionRequiresAttention ||
		sub.ActionTaken == checklist.ActionReported
	if !needsAttention || res.Outcome == OutcomeDemo {
		return
	}
	labels := make([]string, len(sub.ItemsRequiringAttention))
	for i, id := range sub.ItemsRequiringAttention {
		labels[i] = checklist.ItemLabel(id)
	}
	c.bus.Emit(events.Event{
		Type: events.TypeAttentionFlagged,
		Payload: events.AttentionFlaggedEvent{
			Date:         sub.Date,
			EmployeeName: sub.EmployeeName,
			AssetMake:    sub.AssetMake,
			AssetID:      sub.AssetID,
			Condition:    string(sub.EquipmentCondition),
			Action:       string(sub.ActionTaken),
			Items:        labels,
			Comments:     sub.Comments,
		},
	})
}
