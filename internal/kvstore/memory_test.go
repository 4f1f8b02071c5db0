package kvstore

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get missing key: found=%v err=%v, want absent", found, err)
	}

	value := json.RawMessage(`[{"id":"1"}]`)
	if err := store.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found, err := store.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if string(got) != string(value) {
		t.Errorf("Get = %s, want %s", got, value)
	}

	// Mutating the returned bytes must not affect the stored value.
	got[2] = 'X'
	again, _, _ := store.Get(ctx, "k")
	if string(again) != string(value) {
		t.Errorf("stored value mutated through returned slice: %s", again)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "k"); found {
		t.Error("key still present after Delete")
	}
}

func TestMemoryStoreSetReplaces(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", json.RawMessage(`"old"`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "k", json.RawMessage(`"new"`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, _, _ := store.Get(ctx, "k")
	if string(got) != `"new"` {
		t.Errorf("Set should fully replace prior value, got %s", got)
	}
}
