package kvstore

import (
	"errors"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()

	in := []payload{
		{Name: "Slim-Fit Casual T-Shirt", Price: 29.99, Qty: 2},
		{Name: "Minimalist Ceramic Watch", Price: 159.99, Qty: 1},
	}
	if err := store.Put(KeyCart, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out []payload
	ok, err := store.Get(KeyCart, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cart key to exist")
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round-trip mismatch: %+v", out)
	}
}

func TestMemoryAbsentKey(t *testing.T) {
	store := NewMemory()

	var out []payload
	ok, err := store.Get(KeyOrders, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("absent key should report not found, not an error")
	}
}

func TestMemoryDelete(t *testing.T) {
	store := NewMemory()

	if err := store.Put(KeyUser, payload{Name: "x"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete(KeyUser); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var out payload
	if ok, _ := store.Get(KeyUser, &out); ok {
		t.Error("deleted key still present")
	}

	// Deleting again is a no-op.
	if err := store.Delete(KeyUser); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestMemoryFailWrites(t *testing.T) {
	store := NewMemory()
	boom := errors.New("disk full")

	store.FailWrites(KeyCart, boom)
	if err := store.Put(KeyCart, []payload{}); !errors.Is(err, boom) {
		t.Errorf("expected injected error, got %v", err)
	}

	store.FailWrites(KeyCart, nil)
	if err := store.Put(KeyCart, []payload{}); err != nil {
		t.Errorf("expected writes to recover, got %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "state"))

	in := []payload{
		{Name: "Artisanal Coffee Maker", Price: 79.99, Qty: 3},
	}
	if err := store.Put(KeyCart, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out []payload
	ok, err := store.Get(KeyCart, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || len(out) != 1 || out[0] != in[0] {
		t.Errorf("round-trip mismatch: ok=%v out=%+v", ok, out)
	}

	if err := store.Delete(KeyCart); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := store.Get(KeyCart, &out); ok {
		t.Error("deleted key still present")
	}
}

func TestFileAbsentKey(t *testing.T) {
	store := NewFile(t.TempDir())

	var out payload
	ok, err := store.Get(KeyUser, &out)
	if err != nil || ok {
		t.Errorf("absent key: ok=%v err=%v", ok, err)
	}
}
