package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("terminal"); got.Name != "terminal" {
		t.Errorf("ByName(terminal) = %s", got.Name)
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("unknown theme should fall back to %s, got %s", FlexokiDark.Name, got.Name)
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(All))
	}
	for _, n := range names {
		if !Known(n) {
			t.Errorf("Known(%q) = false", n)
		}
	}
	if Known("") {
		t.Error("empty name should not be known")
	}
}

func TestNamesAreSetupChoices(t *testing.T) {
	want := []string{"flexoki-dark", "terminal"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if Known("tokyo-night") {
		t.Error("tokyo-night is not shipped")
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)
	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %s, want terminal", Active.Name)
	}
}
