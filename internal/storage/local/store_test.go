package local

import (
	"errors"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store == nil {
		t.Fatal("NewStore() returned nil")
	}
}

func TestStore_Save_Load(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	in := record{Name: "player", Count: 3}
	if err := store.Save("ledgers", "player", in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out record
	if err := store.Load("ledgers", "player", &out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out != in {
		t.Errorf("Load() = %+v; want %+v", out, in)
	}
}

func TestStore_Save_Overwrites(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	store.Save("ledgers", "player", record{Count: 1})
	if err := store.Save("ledgers", "player", record{Count: 2}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out record
	store.Load("ledgers", "player", &out)
	if out.Count != 2 {
		t.Errorf("Count = %d; want 2", out.Count)
	}
}

func TestStore_Load_NotFound(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	var out record
	if err := store.Load("ledgers", "missing", &out); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v; want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := NewStore(t.TempDir())
	store.Save("ledgers", "player", record{})

	if err := store.Delete("ledgers", "player"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Exists("ledgers", "player") {
		t.Error("record still exists after Delete()")
	}
	if err := store.Delete("ledgers", "player"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v; want ErrNotFound", err)
	}
}

func TestStore_List(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	ids, err := store.List("empty")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("List() = %v; want empty", ids)
	}

	store.Save("ledgers", "player", record{})
	store.Save("ledgers", "quests", record{})

	ids, _ = store.List("ledgers")
	if len(ids) != 2 {
		t.Errorf("List() returned %d ids; want 2", len(ids))
	}
}
