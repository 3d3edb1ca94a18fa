package memory_test

import (
	"errors"
	"testing"

	"hotel_rooms/internal/domain"
	"hotel_rooms/internal/storage/memory"
)

func mustRoom(t *testing.T, number string, baseCost float64) domain.Room {
	t.Helper()
	r, err := domain.NewRoom(number, baseCost, domain.NoDiscount{})
	if err != nil {
		t.Fatalf("room %s: %v", number, err)
	}
	return r
}

func TestInsert_PreservesOrder(t *testing.T) {
	repo := memory.New()
	for _, n := range []string{"301", "101", "201"} {
		if err := repo.Insert(mustRoom(t, n, 100)); err != nil {
			t.Fatalf("insert %s: %v", n, err)
		}
	}
	if repo.Len() != 3 {
		t.Fatalf("len: %d", repo.Len())
	}
	got := repo.All()
	for i, want := range []string{"301", "101", "201"} {
		if got[i].Number() != want {
			t.Fatalf("pos %d: expected %s, got %s", i, want, got[i].Number())
		}
	}
}

func TestInsert_Duplicate(t *testing.T) {
	repo := memory.New()
	if err := repo.Insert(mustRoom(t, "A", 100)); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := repo.Insert(mustRoom(t, "A", 250))
	if !errors.Is(err, domain.ErrDuplicateRoom) {
		t.Fatalf("expected ErrDuplicateRoom, got %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("registry should still hold exactly one room, got %d", repo.Len())
	}
}

func TestExists_CaseSensitive(t *testing.T) {
	repo := memory.New()
	if err := repo.Insert(mustRoom(t, "a-1", 100)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !repo.Exists("a-1") {
		t.Fatal("expected a-1 to exist")
	}
	if repo.Exists("A-1") {
		t.Fatal("lookup must be case-sensitive")
	}
}

func TestAll_ReturnsSnapshot(t *testing.T) {
	repo := memory.New()
	if err := repo.Insert(mustRoom(t, "101", 100)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	snap := repo.All()
	snap[0] = mustRoom(t, "999", 1)
	if got := repo.All()[0].Number(); got != "101" {
		t.Fatalf("registry state was aliased, got %s", got)
	}
}
