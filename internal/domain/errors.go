package domain

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNotAvailable    = errors.New("room not available")
	ErrReservationNotFound = errors.New("reservation not found")
)
