package categories

import (
	"testing"
)

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if got := registry.Default(); got != "Uncategorized" {
		t.Errorf("Default() = %q, want Uncategorized", got)
	}
	if !registry.Valid(registry.Default()) {
		t.Error("default category must be valid")
	}
	if registry.Valid("Nonsense") {
		t.Error("unknown category reported valid")
	}
	if len(registry.List()) == 0 {
		t.Error("category list is empty")
	}
}
