package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"hotel_rooms/internal/adapters/observability"
	"hotel_rooms/internal/app"
	"hotel_rooms/internal/domain"
)

// Menu drives the interactive session: it collects validated input, invokes
// the registry services, and maps every domain error to a printed message so
// the loop survives anything the user throws at it.
type Menu struct {
	prompt *Prompter
	out    io.Writer
	reg    *app.RegistryService
	q      *app.QueryService
}

func NewMenu(in io.Reader, out io.Writer, reg *app.RegistryService, q *app.QueryService) *Menu {
	return &Menu{prompt: NewPrompter(in, out), out: out, reg: reg, q: q}
}

// Run loops until the user picks exit or the input stream ends. Domain errors
// are reported and the loop continues; only I/O failures are returned.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "===== HOTEL ROOM MENU =====")
		fmt.Fprintln(m.out, "1. Add a room")
		fmt.Fprintln(m.out, "2. List all rooms")
		fmt.Fprintln(m.out, "3. Average cost per night (after discounts)")
		fmt.Fprintln(m.out, "0. Exit")
		fmt.Fprintln(m.out, "===========================")

		choice, err := m.prompt.MenuChoice("Your choice: ", 0, 3)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case 0:
			fmt.Fprintln(m.out, "Leaving the program.")
			observability.ObserveAction("exit")
			return nil
		case 1:
			if err := m.addRoom(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case 2:
			m.listRooms()
			observability.ObserveAction("list")
		case 3:
			m.averageCost()
			observability.ObserveAction("average")
		}
	}
}

func (m *Menu) addRoom() error {
	number, err := m.prompt.NonEmptyString("Room number (e.g. 101, A-12): ")
	if err != nil {
		return err
	}
	baseCost, err := m.prompt.PositiveFloat("Base cost per night: ")
	if err != nil {
		return err
	}
	discount, err := m.prompt.Percent("Discount percent (0 for none, below 100): ")
	if err != nil {
		return err
	}

	if err := m.reg.AddRoom(number, baseCost, discount); err != nil {
		m.reportError(err)
		return nil
	}
	fmt.Fprintln(m.out, "Room added.")
	observability.ObserveAction("add")
	return nil
}

func (m *Menu) listRooms() {
	rooms := m.q.ListRooms()
	if len(rooms) == 0 {
		fmt.Fprintln(m.out, "Room list is empty.")
		return
	}
	fmt.Fprintln(m.out, "Registered rooms:")
	fmt.Fprintf(m.out, "%-12s %14s %16s\n", "Number", "Base cost", "After discount")
	for _, r := range rooms {
		fmt.Fprintf(m.out, "%-12s %14.2f %16.2f\n", r.Number, r.BaseCost, r.FinalCost)
	}
}

func (m *Menu) averageCost() {
	avg, err := m.q.AverageFinalCost()
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Average cost per night (after discounts): %.2f\n", avg)
}

// reportError prints a recoverable failure and keeps the session alive.
func (m *Menu) reportError(err error) {
	observability.ObserveError(err)
	switch {
	case errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrDuplicateRoom),
		errors.Is(err, domain.ErrEmptyRoomList):
		fmt.Fprintf(m.out, "Error: %v\n", err)
	default:
		log.Error().Err(err).Msg("unexpected error")
		fmt.Fprintf(m.out, "Unexpected error: %v\n", err)
	}
}
