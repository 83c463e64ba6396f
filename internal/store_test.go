package internal

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *ShareStore {
	t.Helper()
	store, err := OpenShareStore(filepath.Join(t.TempDir(), "wrapped.db"))
	if err != nil {
		t.Fatalf("OpenShareStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestShareStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	payload := []byte(`{"totalSessions":3}`)
	if err := store.Save("abc12345", "claude", payload); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load("abc12345")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Load() = %s, want %s", got, payload)
	}
}

func TestShareStoreLoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Load("nope1234")
	if !errors.Is(err, ErrShareNotFound) {
		t.Errorf("error = %v, want ErrShareNotFound", err)
	}
}

func TestShareStoreRejectsInvalidJSON(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("abc12345", "claude", []byte(`{broken`)); err == nil {
		t.Error("Save() should reject invalid JSON")
	}
	if err := store.Update("abc12345", []byte(`{broken`)); err == nil {
		t.Error("Update() should reject invalid JSON")
	}
}

func TestShareStoreUpdate(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("abc12345", "chatgpt", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Update("abc12345", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.Load("abc12345")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Load() = %s, want updated payload", got)
	}
}

func TestShareStoreUpdateMissing(t *testing.T) {
	store := openTestStore(t)

	err := store.Update("missing1", []byte(`{}`))
	if !errors.Is(err, ErrShareNotFound) {
		t.Errorf("error = %v, want ErrShareNotFound", err)
	}
}

func TestShareStoreDuplicateID(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("abc12345", "claude", []byte(`{}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save("abc12345", "claude", []byte(`{}`)); err == nil {
		t.Error("Save() should reject a duplicate share ID")
	}
}

func TestShareStoreList(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("first111", "claude", []byte(`{}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save("second22", "chatgpt", []byte(`{}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	for _, entry := range entries {
		if entry.CreatedAt.IsZero() {
			t.Errorf("entry %s has zero CreatedAt", entry.ID)
		}
	}
}

func TestGenerateShareID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateShareID()
		if len(id) != 8 {
			t.Fatalf("len(id) = %d, want 8", len(id))
		}
		for _, r := range id {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				t.Fatalf("id %q contains non-alphanumeric %q", id, r)
			}
		}
		seen[id] = true
	}
	if len(seen) < 90 {
		t.Errorf("only %d distinct IDs out of 100", len(seen))
	}
}
