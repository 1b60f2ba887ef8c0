package checklist

import "testing"

func TestCatalogSize(t *testing.T) {
	if len(Items) != 11 {
		t.Errorf("catalog has %d items, want 11", len(Items))
	}
}

func TestItemByID(t *testing.T) {
	it, ok := ItemByID("horn")
	if !ok {
		t.Fatal("horn not found in catalog")
	}
	if it.Label != "Horn" {
		t.Errorf("label = %q, want %q", it.Label, "Horn")
	}
	if it.Description == "" {
		t.Error("horn has no description")
	}

	if _, ok := ItemByID("flux_capacitor"); ok {
		t.Error("unknown id resolved to a catalog item")
	}
}

func TestItemLabelFallback(t *testing.T) {
	if got := ItemLabel("mirrors"); got != "Mirrors" {
		t.Errorf("ItemLabel(mirrors) = %q, want %q", got, "Mirrors")
	}
	if got := ItemLabel("not_in_catalog"); got != "not_in_catalog" {
		t.Errorf("ItemLabel fallback = %q, want raw id", got)
	}
}

func TestAllItemIDsOrder(t *testing.T) {
	ids := AllItemIDs()
	if len(ids) != len(Items) {
		t.Fatalf("got %d ids, want %d", len(ids), len(Items))
	}
	if ids[0] != "engine_oil" || ids[len(ids)-1] != "mirrors" {
		t.Errorf("ids out of display order: first=%q last=%q", ids[0], ids[len(ids)-1])
	}
}

func TestEmployeeIDLabel(t *testing.T) {
	if got := EmployeeIDLabel(EmployeeIDUnknown); got != "I Don't Know" {
		t.Errorf("unknown sentinel label = %q, want %q", got, "I Don't Know")
	}
	if got := EmployeeIDLabel("07"); got != "07" {
		t.Errorf("label = %q, want %q", got, "07")
	}
	if got := EmployeeIDLabel("99"); got != "99" {
		t.Errorf("out-of-catalog value = %q, want pass-through", got)
	}
}

func TestExternalLabels(t *testing.T) {
	if got := ConditionRequiresAttention.ExternalLabel(); got != "Requires Attention" {
		t.Errorf("condition label = %q", got)
	}
	if got := ConditionOK.ExternalLabel(); got != "OK" {
		t.Errorf("condition label = %q", got)
	}
	if got := ActionCleared.ExternalLabel(); got != "Equipment Cleared" {
		t.Errorf("action label = %q", got)
	}
	if got := ActionReported.ExternalLabel(); got != "Reported for Maintenance" {
		t.Errorf("action label = %q", got)
	}
	if got := Condition("").ExternalLabel(); got != "" {
		t.Errorf("empty condition label = %q, want empty", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Submission{
		ItemsInspected:          []string{"horn"},
		ItemsRequiringAttention: []string{"glass"},
	}
	cp := orig.Clone()
	cp.ItemsInspected[0] = "mirrors"
	if orig.ItemsInspected[0] != "horn" {
		t.Error("clone shares itemsInspected backing array")
	}
}
