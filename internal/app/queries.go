package app

import (
	"fmt"

	"hotel_rooms/internal/domain"
)

// QueryService owns the read path: listing and the average-cost aggregate.
type QueryService struct {
	repo domain.RoomRepository
}

func NewQueryService(repo domain.RoomRepository) *QueryService {
	return &QueryService{repo: repo}
}

// ListRooms returns the registered rooms in insertion order. An empty registry
// yields an empty slice, not an error; the caller decides how to present that.
func (s *QueryService) ListRooms() []domain.RoomView {
	rooms := s.repo.All()
	out := make([]domain.RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomView(r))
	}
	return out
}

// AverageFinalCost returns the arithmetic mean of the final cost over all
// rooms, or ErrEmptyRoomList when nothing has been registered yet.
func (s *QueryService) AverageFinalCost() (float64, error) {
	rooms := s.repo.All()
	if len(rooms) == 0 {
		return 0, fmt.Errorf("%w: nothing to average", domain.ErrEmptyRoomList)
	}
	sum := 0.0
	for _, r := range rooms {
		sum += r.FinalCost()
	}
	return sum / float64(len(rooms)), nil
}
