package ports

import (
	"context"

	"hotelbook/internal/domain"
)

type RoomCatalog interface {
	ListAvailable(ctx context.Context) ([]*domain.Room, error)
	FindAvailableByNumber(ctx context.Context, number int) (*domain.Room, error)
	FindByNumber(ctx context.Context, number int) (*domain.Room, error)
	Book(ctx context.Context, room *domain.Room) error
	Release(ctx context.Context, room *domain.Room) error
}
