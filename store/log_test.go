package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"preopedge/checklist"
	"preopedge/config"
	"preopedge/events"
)

// testDB creates a temporary SQLite database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(&config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func resultEvent(outcome, name string) events.SubmissionResultEvent {
	return events.SubmissionResultEvent{
		Outcome:  outcome,
		Message:  "Checklist Submitted. Record ID: rec123",
		RecordID: "rec123",
		Submission: checklist.Submission{
			Date:                    "2026-08-30",
			EmployeeName:            name,
			EmployeeID:              "03",
			AssetMake:               "Forklift",
			AssetID:                 "FL-7",
			ItemsRequiringAttention: []string{"horn"},
			EquipmentCondition:      checklist.ConditionRequiresAttention,
			ActionTaken:             checklist.ActionReported,
		},
	}
}

func TestAppendResultRoundTrip(t *testing.T) {
	db := testDB(t)

	if err := db.AppendResult(resultEvent("submitted", "JD")); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := db.RecentLog(10)
	if err != nil {
		t.Fatalf("recentLog: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.ID == 0 {
		t.Error("ID should be assigned")
	}
	if e.LoggedAt == "" {
		t.Error("LoggedAt should be set")
	}
	if e.Date != "2026-08-30" {
		t.Errorf("Date = %q, want %q", e.Date, "2026-08-30")
	}
	if e.EmployeeName != "JD" {
		t.Errorf("EmployeeName = %q, want %q", e.EmployeeName, "JD")
	}
	if e.AssetMake != "Forklift" {
		t.Errorf("AssetMake = %q, want %q", e.AssetMake, "Forklift")
	}
	if e.Condition != "requires_attention" {
		t.Errorf("Condition = %q, want requires_attention", e.Condition)
	}
	if e.Action != "reported" {
		t.Errorf("Action = %q, want reported", e.Action)
	}
	if !reflect.DeepEqual(e.AttentionItems, []string{"horn"}) {
		t.Errorf("AttentionItems = %v, want [horn]", e.AttentionItems)
	}
	if e.Outcome != "submitted" {
		t.Errorf("Outcome = %q, want submitted", e.Outcome)
	}
	if e.RecordID != "rec123" {
		t.Errorf("RecordID = %q, want rec123", e.RecordID)
	}
	if e.Detail != "Checklist Submitted. Record ID: rec123" {
		t.Errorf("Detail = %q", e.Detail)
	}
}

func TestRecentLogOrderAndLimit(t *testing.T) {
	db := testDB(t)

	db.AppendResult(resultEvent("submitted", "first"))
	db.AppendResult(resultEvent("saved_offline", "second"))
	db.AppendResult(resultEvent("synced", "third"))

	entries, err := db.RecentLog(2)
	if err != nil {
		t.Fatalf("recentLog: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].EmployeeName != "third" || entries[1].EmployeeName != "second" {
		t.Errorf("order = [%s %s], want newest first", entries[0].EmployeeName, entries[1].EmployeeName)
	}

	// Zero limit falls back to the default and returns everything here.
	all, err := db.RecentLog(0)
	if err != nil {
		t.Fatalf("recentLog: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d entries with default limit, want 3", len(all))
	}
}

func TestRebind(t *testing.T) {
	got := Rebind("INSERT INTO t (a, b) VALUES (?, ?)")
	want := "INSERT INTO t (a, b) VALUES ($1, $2)"
	if got != want {
		t.Errorf("Rebind = %q, want %q", got, want)
	}
}
