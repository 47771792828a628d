package ports

import (
	"context"

	"hotelbook/internal/domain"
)

type ReservationStore interface {
	Save(ctx context.Context, reservations []*domain.Reservation) error
	Load(ctx context.Context) ([]domain.ReservationRecord, error)
}
