package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_rooms/internal/adapters/observability"
	"hotel_rooms/internal/domain"
)

// longNumberWarnLen is the length past which a room number is suspicious but
// still accepted.
const longNumberWarnLen = 50

// RegistryService owns the write path of the room registry.
type RegistryService struct {
	repo domain.RoomRepository
}

func NewRegistryService(repo domain.RoomRepository) *RegistryService {
	return &RegistryService{repo: repo}
}

// AddRoom registers a room. discountPercent == 0 means no discount; any other
// validated value becomes a percentage discount. The duplicate check runs
// before value validation, so a colliding number fails with ErrDuplicateRoom
// even if the other inputs are also bad.
func (s *RegistryService) AddRoom(number string, baseCost, discountPercent float64) error {
	if len(number) > longNumberWarnLen {
		log.Warn().Str("number", number).Int("len", len(number)).
			Msg("room number is unusually long")
		observability.LongRoomNumbers.Inc()
	}

	if s.repo.Exists(number) {
		return fmt.Errorf("%w: room %q already exists", domain.ErrDuplicateRoom, number)
	}

	strat, err := domain.SelectDiscount(discountPercent)
	if err != nil {
		return err
	}
	room, err := domain.NewRoom(number, baseCost, strat)
	if err != nil {
		return err
	}
	if err := s.repo.Insert(room); err != nil {
		return err
	}

	observability.RoomsAdded.Inc()
	log.Debug().Str("number", number).Float64("base_cost", baseCost).
		Float64("discount_percent", discountPercent).Msg("room added")
	return nil
}
