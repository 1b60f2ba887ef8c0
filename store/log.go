package store

import (
	"encoding/json"
	"time"

	"preopedge/events"
)

// LogEntry is one recorded submit outcome.
type LogEntry struct {
	ID             int64    `json:"id"`
	LoggedAt       string   `json:"logged_at"`
	Date           string   `json:"date"`
	EmployeeName   string   `json:"employee_name"`
	EmployeeID     string   `json:"employee_id"`
	AssetMake      string   `json:"asset_make"`
	AssetID        string   `json:"asset_id"`
	Condition      string   `json:"condition"`
	Action         string   `json:"action"`
	AttentionItems []string `json:"attention_items"`
	Outcome        string   `json:"outcome"`
	RecordID       string   `json:"record_id"`
	QueueID        string   `json:"queue_id"`
	Detail         string   `json:"detail"`
}

// AppendResult records the outcome of one submit action.
func (db *DB) AppendResult(evt events.SubmissionResultEvent) error {
	items, _ := json.Marshal(evt.Submission.ItemsRequiringAttention)
	_, err := db.Exec(db.Q(`INSERT INTO submission_log
		(date, employee_name, employee_id, asset_make, asset_id, condition, action, attention_items, outcome, record_id, queue_id, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		evt.Submission.Date,
		evt.Submission.EmployeeName,
		evt.Submission.EmployeeID,
		evt.Submission.AssetMake,
		evt.Submission.AssetID,
		string(evt.Submission.EquipmentCondition),
		string(evt.Submission.ActionTaken),
		string(items),
		evt.Outcome,
		evt.RecordID,
		evt.QueueID,
		evt.Message,
	)
	return err
}

// RecentLog returns the newest log entries, most recent first.
func (db *DB) RecentLog(limit int) ([]LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(db.Q(`SELECT id, logged_at, date, employee_name, employee_id, asset_make, asset_id,
		condition, action, attention_items, outcome, record_id, queue_id, detail
		FROM submission_log ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var loggedAt any
		var items string
		if err := rows.Scan(&e.ID, &loggedAt, &e.Date, &e.EmployeeName, &e.EmployeeID, &e.AssetMake, &e.AssetID,
			&e.Condition, &e.Action, &items, &e.Outcome, &e.RecordID, &e.QueueID, &e.Detail); err != nil {
			return nil, err
		}
		e.LoggedAt = timestampString(loggedAt)
		if err := json.Unmarshal([]byte(items), &e.AttentionItems); err != nil {
			e.AttentionItems = nil
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// timestampString normalizes a scanned timestamp. SQLite hands back the
// stored text, Postgres a time.Time.
func timestampString(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}
