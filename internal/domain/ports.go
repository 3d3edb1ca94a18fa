package domain

// RoomRepository is the registry port: an ordered, append-only collection of
// rooms with unique numbers. Rooms are never updated or removed.
type RoomRepository interface {
	// Exists reports whether a room with this exact number is registered.
	Exists(number string) bool
	// Insert appends a room, failing with ErrDuplicateRoom on a number collision.
	Insert(r Room) error
	// All returns a snapshot of the rooms in insertion order.
	All() []Room
	Len() int
}

// Read models

// RoomView is the listing row shown to the user.
type RoomView struct {
	Number    string
	BaseCost  float64
	FinalCost float64
}
