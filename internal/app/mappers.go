package app

import "hotel_rooms/internal/domain"

func roomView(r domain.Room) domain.RoomView {
	return domain.RoomView{
		Number:    r.Number(),
		BaseCost:  r.BaseCost(),
		FinalCost: r.FinalCost(),
	}
}
