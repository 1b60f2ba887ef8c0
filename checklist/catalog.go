package checklist

// Item is one equipment component or subsystem on the daily checklist.
// The catalog is reference data, fixed for the life of the process.
type Item struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Items is the fixed inspection catalog, in display order.
var Items = []Item{
	{
		ID:          "engine_oil",
		Label:       "Engine Oil",
		Description: "Check for proper level (between min/max marks), discoloration, contamination, leaks",
	},
	{
		ID:          "hydraulic_oil",
		Label:       "Hydraulic Oil",
		Description: "Check for proper level in reservoir, clarity/color, leaks in lines/fittings/cylinders, unusual sounds during operation",
	},
	{
		ID:          "coolant_level",
		Label:       "Coolant Level",
		Description: "Check for proper level in radiator/overflow tank, color/clarity, leaks, cooling system function",
	},
	{
		ID:          "chassis_rops",
		Label:       "Chassis ROPS",
		Description: "Check for structural integrity, missing components, cracks, loose bolts, deformation. Examples: ROPS has visible crack at mounting point, missing bolt at ROPS connection, signs of previous damage/repair, loose attachment points, seatbelt anchor point damaged",
	},
	{
		ID:          "fire_extinguisher",
		Label:       "Fire Extinguisher",
		Description: "Check for presence, accessibility, pressure gauge in green zone, seal intact, inspection date current",
	},
	{
		ID:          "horn",
		Label:       "Horn",
		Description: "Check for function, audibility, control accessibility",
	},
	{
		ID:          "gauges",
		Label:       "Gauges",
		Description: "Check for all gauges functional, proper readings, illumination if applicable. Examples: Fuel gauge not working, temperature gauge showing overheating, oil pressure gauge fluctuating, hour meter stuck/not advancing, warning lights staying illuminated after startup",
	},
	{
		ID:          "backup_alarm",
		Label:       "Backup Alarm",
		Description: "Check for function, audibility, automatic activation when in reverse",
	},
	{
		ID:          "lights_markers_beacons",
		Label:       "Lights/Markers/Beacons",
		Description: "Check for function of all lights (headlights, tail lights, turn signals, hazard lights, work lights, beacons)",
	},
	{
		ID:          "glass",
		Label:       "Glass",
		Description: "Check for visibility, cracks, chips, proper mounting, function of wipers if applicable",
	},
	{
		ID:          "mirrors",
		Label:       "Mirrors",
		Description: "Check for presence, secure mounting, adjustment capability, cleanliness, cracks. Examples: Right mirror missing, mirror bracket loose, mirror glass cracked, unable to properly adjust mirror, mirror vibrates excessively during operation, mirror doesn't provide adequate field of view",
	},
}

// ItemByID looks up a catalog item. ok is false for unknown ids; callers
// fall back to the raw id.
func ItemByID(id string) (Item, bool) {
	for _, it := range Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ItemLabel resolves an item id to its display label, or returns the id
// itself when it is not in the catalog.
func ItemLabel(id string) string {
	if it, ok := ItemByID(id); ok {
		return it.Label
	}
	return id
}

// AllItemIDs returns the catalog ids in display order.
func AllItemIDs() []string {
	ids := make([]string, len(Items))
	for i, it := range Items {
		ids[i] = it.ID
	}
	return ids
}

// EmployeeIDUnknown is the sentinel for operators who don't know their id.
const EmployeeIDUnknown = "unknown"

// EmployeeID is one selectable employee identifier.
type EmployeeID struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EmployeeIDs is the fixed set of selectable employee identifiers.
var EmployeeIDs = []EmployeeID{
	{Value: "01", Label: "01"},
	{Value: "02", Label: "02"},
	{Value: "03", Label: "03"},
	{Value: "04", Label: "04"},
	{Value: "05", Label: "05"},
	{Value: "06", Label: "06"},
	{Value: "07", Label: "07"},
	{Value: "08", Label: "08"},
	{Value: "09", Label: "09"},
	{Value: "10", Label: "10"},
	{Value: EmployeeIDUnknown, Label: "I Don't Know"},
}

// EmployeeIDLabel resolves an employee id to its display label. Unknown
// values pass through unchanged.
func EmployeeIDLabel(value string) string {
	for _, e := range EmployeeIDs {
		if e.Value == value {
			return e.Label
		}
	}
	return value
}
