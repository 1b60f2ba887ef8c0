package events

import (
	"time"

	"preopedge/checklist"
)

// Type identifies an event kind on the bus.
type Type string

const (
	TypeStatusChanged    Type = "status_changed"
	TypeQueueChanged     Type = "queue_changed"
	TypeSubmissionResult Type = "submission_result"
	TypeAttentionFlagged Type = "attention_flagged"
)

// Event is the envelope dispatched to subscribers.
type Event struct {
	Type      Type
	Timestamp time.Time
	Payload   interface{}
}

// StatusChangedEvent reports a network reachability transition.
type StatusChangedEvent struct {
	Online bool `json:"online"`
}

// QueueChangedEvent reports the new pending-queue length after a mutation.
type QueueChangedEvent struct {
	Pending int `json:"pending"`
}

// SubmissionResultEvent reports the outcome of one submit action.
type SubmissionResultEvent struct {
	Outcome    string               `json:"outcome"`
	Message    string               `json:"message"`
	RecordID   string               `json:"record_id,omitempty"`
	QueueID    string               `json:"queue_id,omitempty"`
	Submission checklist.Submission `json:"submission"`
}

// AttentionFlaggedEvent fires when an accepted checklist reports equipment
// that requires attention or was sent for maintenance.
type AttentionFlaggedEvent struct {
	Date         string   `json:"date"`
	EmployeeName string   `json:"employee_name"`
	AssetMake    string   `json:"asset_make"`
	AssetID      string   `json:"asset_id,omitempty"`
	Condition    string   `json:"condition"`
	Action       string   `json:"action"`
	Items        []string `json:"items,omitempty"`
	Comments     string   `json:"comments,omitempty"`
}
