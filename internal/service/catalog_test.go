package service

import "testing"

func TestCatalogDefaults(t *testing.T) {
	c := NewClassCatalog(nil)
	if len(c.Classes()) != len(DefaultClasses) {
		t.Fatalf("expected default catalog, got %v", c.Classes())
	}
	if !c.IsValid("Mage") {
		t.Errorf("expected Mage to be valid")
	}
	if !c.IsValid("mage") {
		t.Errorf("matching should be case-insensitive")
	}
	if c.IsValid("Necromancer") {
		t.Errorf("unexpected class accepted")
	}
}

func TestCatalogCanonical(t *testing.T) {
	c := NewClassCatalog([]string{"Knight", "Priest"})
	if got := c.Canonical("knight"); got != "Knight" {
		t.Errorf("expected canonical casing, got %q", got)
	}
	if got := c.Canonical("Bard"); got != "Bard" {
		t.Errorf("unknown class should pass through, got %q", got)
	}
}

func TestCatalogReplaceNotifiesListeners(t *testing.T) {
	c := NewClassCatalog(nil)

	var got []string
	c.OnChange(func(classes []string) { got = classes })

	c.Replace([]string{"Knight", "knight", " Priest "})
	if len(got) != 2 {
		t.Fatalf("expected deduplicated list, got %v", got)
	}
	if got[0] != "Knight" || got[1] != "Priest" {
		t.Errorf("unexpected list: %v", got)
	}
	if c.IsValid("Mage") {
		t.Errorf("old catalog entries should be gone")
	}
}

func TestCatalogColors(t *testing.T) {
	c := NewClassCatalog(nil)
	if got := c.Color("mage"); got != DefaultClassColors["Mage"] {
		t.Errorf("expected Mage color via canonical lookup, got %q", got)
	}
	if got := c.Color("Necromancer"); got != fallbackClassColor {
		t.Errorf("expected fallback color for unknown class, got %q", got)
	}
}
