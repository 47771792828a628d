package repository

import (
	"context"
	"strings"

	"hotelbook/internal/domain"
)

// ReservationLedger is the ordered in-memory set of live reservations.
type ReservationLedger struct {
	reservations []*domain.Reservation
}

func NewReservationLedger() *ReservationLedger {
	return &ReservationLedger{}
}

func (l *ReservationLedger) Add(ctx context.Context, res *domain.Reservation) error {
	l.reservations = append(l.reservations, res)
	return nil
}

// FindFirstByName returns the first reservation whose customer name
// matches ignoring case. Duplicate names are legal; the first wins.
func (l *ReservationLedger) FindFirstByName(ctx context.Context, name string) (*domain.Reservation, error) {
	for _, res := range l.reservations {
		if strings.EqualFold(res.CustomerName, name) {
			return res, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

// Remove deletes the entry with the given id, preserving the order of
// the rest.
func (l *ReservationLedger) Remove(ctx context.Context, id string) error {
	for i, res := range l.reservations {
		if res.ID == id {
			l.reservations = append(l.reservations[:i], l.reservations[i+1:]...)
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

// ListAll returns the ledger in insertion order. The slice is a copy;
// the entries themselves are shared.
func (l *ReservationLedger) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, len(l.reservations))
	copy(out, l.reservations)
	return out, nil
}
