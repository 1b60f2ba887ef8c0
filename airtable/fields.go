package airtable

import (
	"strconv"

	"preopedge/checklist"
)

// Fields maps a submission to the Airtable column names. Empty strings,
// absent or unparseable numerics, and empty item lists are omitted so the
// record carries only what the operator actually entered. Item ids that are
// not in the catalog fall back to the raw id.
func Fields(sub checklist.Submission) map[string]interface{} {
	fields := make(map[string]interface{})

	putString := func(name, value string) {
		if value != "" {
			fields[name] = value
		}
	}
	putNumber := func(name, value string) {
		if value == "" {
			return
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			fields[name] = f
		}
	}
	putLabels := func(name string, ids []string) {
		if len(ids) == 0 {
			return
		}
		labels := make([]string, len(ids))
		for i, id := range ids {
			labels[i] = checklist.ItemLabel(id)
		}
		fields[name] = labels
	}

	putString("Date", sub.Date)
	putString("Employee Initials or Name", sub.EmployeeName)
	putString("Employee ID Number", employeeIDValue(sub.EmployeeID))
	putString("Asset Make and Equipment Type", sub.AssetMake)
	putString("Asset ID Number", sub.AssetID)
	putNumber("Hours", sub.Hours)
	putNumber("Kilometers", sub.Kilometers)
	putLabels("Items Inspected", sub.ItemsInspected)
	putLabels("Items Requiring Attention", sub.ItemsRequiringAttention)
	putString("Condition of Equipment", sub.EquipmentCondition.ExternalLabel())
	putString("Comments/Observations", sub.Comments)
	putString("Action Taken", sub.ActionTaken.ExternalLabel())

	return fields
}

func employeeIDValue(id string) string {
	if id == checklist.EmployeeIDUnknown {
		return "I Don't Know"
	}
	return id
}
