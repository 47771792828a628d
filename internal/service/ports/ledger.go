package ports

import (
	"context"

	"hotelbook/internal/domain"
)

type ReservationLedger interface {
	Add(ctx context.Context, res *domain.Reservation) error
	FindFirstByName(ctx context.Context, name string) (*domain.Reservation, error)
	Remove(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
}
