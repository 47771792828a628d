package domain

import "fmt"

type RoomCategory string

const (
	CategoryStandard RoomCategory = "Standard"
	CategoryDeluxe   RoomCategory = "Deluxe"
	CategorySuite    RoomCategory = "Suite"
)

// Price is the fixed per-night rate for a category. Unknown categories
// charge nothing; the booking workflow relies on that fallback.
func (c RoomCategory) Price() float64 {
	switch c {
	case CategoryStandard:
		return 100
	case CategoryDeluxe:
		return 200
	case CategorySuite:
		return 300
	default:
		return 0
	}
}

type Room struct {
	Number   int
	Category RoomCategory
	Booked   bool
}

func (r *Room) String() string {
	status := "Available"
	if r.Booked {
		status = "Booked"
	}
	return fmt.Sprintf("Room %d (%s) - %s", r.Number, r.Category, status)
}
