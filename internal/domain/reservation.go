package domain

import (
	"fmt"
	"strconv"
)

// Reservation links a customer to a catalog room. ID is process-local
// and never persisted: cancellation looks reservations up by customer
// name, the id only anchors remove-by-identity in the ledger.
type Reservation struct {
	ID           string
	CustomerName string
	Room         *Room
	AmountPaid   float64
}

func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation [Customer: %s, Room: %d (%s), Paid: $%s]",
		r.CustomerName, r.Room.Number, r.Room.Category, FormatAmount(r.AmountPaid))
}

// ReservationRecord is the persisted form of a reservation: the three
// fields of one file line. The paid amount is deliberately absent, so
// reloaded reservations always carry a zero amount.
type ReservationRecord struct {
	CustomerName string
	RoomNumber   int
	Category     RoomCategory
}

// FormatAmount renders a charge without trailing zeros ($100, $0).
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
