package airtable

import (
	"reflect"
	"testing"

	"preopedge/checklist"
)

func TestFieldsAttentionLabels(t *testing.T) {
	sub := checklist.Submission{ItemsRequiringAttention: []string{"horn"}}
	fields := Fields(sub)

	got, ok := fields["Items Requiring Attention"]
	if !ok {
		t.Fatal("Items Requiring Attention missing from payload")
	}
	if !reflect.DeepEqual(got, []string{"Horn"}) {
		t.Errorf("Items Requiring Attention = %v, want [Horn]", got)
	}
}

func TestFieldsEmptyAttentionOmitted(t *testing.T) {
	sub := checklist.Submission{ItemsRequiringAttention: []string{}}
	fields := Fields(sub)
	if _, ok := fields["Items Requiring Attention"]; ok {
		t.Error("empty attention set should be omitted from payload")
	}
}

func TestFieldsUnknownItemFallsBackToID(t *testing.T) {
	sub := checklist.Submission{ItemsRequiringAttention: []string{"warp_core"}}
	fields := Fields(sub)
	if got := fields["Items Requiring Attention"]; !reflect.DeepEqual(got, []string{"warp_core"}) {
		t.Errorf("unknown id = %v, want raw id pass-through", got)
	}
}

func TestFieldsNumericCoercion(t *testing.T) {
	sub := checklist.Submission{Hours: "1200.5", Kilometers: "oops"}
	fields := Fields(sub)

	if got := fields["Hours"]; got != 1200.5 {
		t.Errorf("Hours = %v, want 1200.5", got)
	}
	if _, ok := fields["Kilometers"]; ok {
		t.Error("unparseable Kilometers should be omitted")
	}
}

func TestFieldsEmptyStringsOmitted(t *testing.T) {
	fields := Fields(checklist.Submission{})
	if len(fields) != 0 {
		t.Errorf("blank submission produced fields: %v", fields)
	}
}

func TestFieldsEmployeeIDMapping(t *testing.T) {
	fields := Fields(checklist.Submission{EmployeeID: checklist.EmployeeIDUnknown})
	if got := fields["Employee ID Number"]; got != "I Don't Know" {
		t.Errorf("Employee ID Number = %v, want %q", got, "I Don't Know")
	}

	fields = Fields(checklist.Submission{EmployeeID: "04"})
	if got := fields["Employee ID Number"]; got != "04" {
		t.Errorf("Employee ID Number = %v, want %q", got, "04")
	}
}

func TestFieldsFullSubmission(t *testing.T) {
	sub := checklist.Submission{
		Date:                    "2026-08-30",
		EmployeeName:            "JD",
		EmployeeID:              "03",
		AssetMake:               "Toyota Forklift",
		AssetID:                 "FL-7",
		Hours:                   "88",
		ItemsInspected:          []string{"engine_oil", "horn"},
		ItemsRequiringAttention: []string{"horn"},
		EquipmentCondition:      checklist.ConditionRequiresAttention,
		Comments:                "horn intermittent",
		ActionTaken:             checklist.ActionReported,
	}
	fields := Fields(sub)

	want := map[string]interface{}{
		"Date":                          "2026-08-30",
		"Employee Initials or Name":     "JD",
		"Employee ID Number":            "03",
		"Asset Make and Equipment Type": "Toyota Forklift",
		"Asset ID Number":               "FL-7",
		"Hours":                         88.0,
		"Items Inspected":               []string{"Engine Oil", "Horn"},
		"Items Requiring Attention":     []string{"Horn"},
		"Condition of Equipment":        "Requires Attention",
		"Comments/Observations":         "horn intermittent",
		"Action Taken":                  "Reported for Maintenance",
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields mismatch:\n got %v\nwant %v", fields, want)
	}
}
