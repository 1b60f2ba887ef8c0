package checklist

// Condition is the overall equipment state reported by the operator.
type Condition string

const (
	ConditionOK                Condition = "ok"
	ConditionRequiresAttention Condition = "requires_attention"
)

// ExternalLabel returns the human-readable label used in the remote record.
func (c Condition) ExternalLabel() string {
	switch c {
	case ConditionOK:
		return "OK"
	case ConditionRequiresAttention:
		return "Requires Attention"
	default:
		return ""
	}
}

// Action is what the operator did with the equipment after inspecting it.
type Action string

const (
	ActionCleared  Action = "cleared"
	ActionReported Action = "reported"
)

// ExternalLabel returns the human-readable label used in the remote record.
func (a Action) ExternalLabel() string {
	switch a {
	case ActionCleared:
		return "Equipment Cleared"
	case ActionReported:
		return "Reported for Maintenance"
	default:
		return ""
	}
}

// Submission is one operator's completed daily pre-operation inspection.
// JSON field names match the queue snapshot format, so entries written by
// earlier deployments read back unchanged.
type Submission struct {
	Date                    string    `json:"date"`
	EmployeeName            string    `json:"employeeName"`
	EmployeeID              string    `json:"employeeId"`
	AssetMake               string    `json:"assetMake"`
	AssetID                 string    `json:"assetId"`
	Hours                   string    `json:"hours"`
	Kilometers              string    `json:"kilometers"`
	ItemsInspected          []string  `json:"itemsInspected"`
	ItemsRequiringAttention []string  `json:"itemsRequiringAttention"`
	EquipmentCondition      Condition `json:"equipmentCondition"`
	Comments                string    `json:"comments"`
	ActionTaken             Action    `json:"actionTaken"`
}

// Clone returns a deep copy of the submission. Nil and empty item slices
// are preserved as-is so snapshots compare field-for-field.
func (s Submission) Clone() Submission {
	out := s
	out.ItemsInspected = cloneIDs(s.ItemsInspected)
	out.ItemsRequiringAttention = cloneIDs(s.ItemsRequiringAttention)
	return out
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
