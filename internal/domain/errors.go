package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three recoverable domain failures. Callers classify
// with errors.Is; messages carry the specifics.
var (
	ErrInvalidValue  = errors.New("invalid value")
	ErrDuplicateRoom = errors.New("duplicate room")
	ErrEmptyRoomList = errors.New("room list is empty")
)

func invalidValuef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}
