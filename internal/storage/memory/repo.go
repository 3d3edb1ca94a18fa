package memory

import (
	"fmt"

	"hotel_rooms/internal/domain"
)

// Repo keeps rooms in insertion order with a number index for the uniqueness
// check. Single steady state: it only ever grows.
type Repo struct {
	rooms []domain.Room
	byNum map[string]struct{}
}

func New() *Repo {
	return &Repo{byNum: make(map[string]struct{})}
}

func (r *Repo) Exists(number string) bool {
	_, ok := r.byNum[number]
	return ok
}

func (r *Repo) Insert(room domain.Room) error {
	if r.Exists(room.Number()) {
		return fmt.Errorf("%w: room %q already exists", domain.ErrDuplicateRoom, room.Number())
	}
	r.rooms = append(r.rooms, room)
	r.byNum[room.Number()] = struct{}{}
	return nil
}

// All copies the backing slice so callers cannot alias the registry state.
func (r *Repo) All() []domain.Room {
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *Repo) Len() int { return len(r.rooms) }
