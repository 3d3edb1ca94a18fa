package domain

import "math"

// Room is one hotel room's pricing record. Immutable after construction; the
// final cost is derived from the strategy on each access, never stored.
type Room struct {
	number   string
	baseCost float64
	discount DiscountStrategy
}

// NewRoom validates and builds a room. The number is expected to be already
// trimmed by the input boundary; an empty number here is a hard failure.
func NewRoom(number string, baseCost float64, discount DiscountStrategy) (Room, error) {
	if number == "" {
		return Room{}, invalidValuef("room number cannot be empty")
	}
	if baseCost <= 0 || math.IsNaN(baseCost) {
		return Room{}, invalidValuef("base cost must be > 0, got %g", baseCost)
	}
	if discount == nil {
		return Room{}, invalidValuef("discount strategy cannot be nil")
	}
	return Room{number: number, baseCost: baseCost, discount: discount}, nil
}

func (r Room) Number() string { return r.number }

func (r Room) BaseCost() float64 { return r.baseCost }

func (r Room) FinalCost() float64 { return r.discount.ComputeCost(r.baseCost) }
