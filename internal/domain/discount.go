package domain

import "math"

// DiscountStrategy turns a base nightly cost into a final cost. Strategies are
// immutable values; ComputeCost is pure.
type DiscountStrategy interface {
	ComputeCost(baseCost float64) float64
}

// NoDiscount leaves the base cost unchanged.
type NoDiscount struct{}

func (NoDiscount) ComputeCost(baseCost float64) float64 { return baseCost }

// PercentageDiscount takes percent off the base cost. percent is held in
// [0, 100); a 100% discount would make rooms free and is rejected.
type PercentageDiscount struct {
	percent float64
}

func NewPercentageDiscount(percent float64) (PercentageDiscount, error) {
	if percent < 0 || math.IsNaN(percent) {
		return PercentageDiscount{}, invalidValuef("discount percent must be >= 0, got %g", percent)
	}
	if percent >= 100 {
		return PercentageDiscount{}, invalidValuef("discount percent must be < 100, got %g", percent)
	}
	return PercentageDiscount{percent: percent}, nil
}

func (d PercentageDiscount) ComputeCost(baseCost float64) float64 {
	return baseCost * (1 - d.percent/100)
}

func (d PercentageDiscount) Percent() float64 { return d.percent }

// SelectDiscount picks the strategy for a validated user-supplied percent:
// exactly zero means no discount at all.
func SelectDiscount(percent float64) (DiscountStrategy, error) {
	if percent == 0 {
		return NoDiscount{}, nil
	}
	return NewPercentageDiscount(percent)
}
