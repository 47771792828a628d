package repository

import (
	"context"

	"hotelbook/internal/domain"
)

// defaultInventory is the fixed room stock. The catalog never grows or
// shrinks at runtime, only the booked flags change.
var defaultInventory = []struct {
	number   int
	category domain.RoomCategory
}{
	{101, domain.CategoryStandard},
	{102, domain.CategoryStandard},
	{201, domain.CategoryDeluxe},
	{202, domain.CategoryDeluxe},
	{301, domain.CategorySuite},
}

type RoomCatalog struct {
	rooms []*domain.Room
}

func NewRoomCatalog() *RoomCatalog {
	c := &RoomCatalog{rooms: make([]*domain.Room, 0, len(defaultInventory))}
	for _, inv := range defaultInventory {
		c.rooms = append(c.rooms, &domain.Room{Number: inv.number, Category: inv.category})
	}
	return c
}

// ListAvailable returns unbooked rooms in catalog order.
func (c *RoomCatalog) ListAvailable(ctx context.Context) ([]*domain.Room, error) {
	var res []*domain.Room
	for _, room := range c.rooms {
		if !room.Booked {
			res = append(res, room)
		}
	}
	return res, nil
}

func (c *RoomCatalog) FindAvailableByNumber(ctx context.Context, number int) (*domain.Room, error) {
	for _, room := range c.rooms {
		if room.Number == number && !room.Booked {
			return room, nil
		}
	}
	return nil, domain.ErrRoomNotAvailable
}

// FindByNumber ignores the booked flag; the restore path uses it to
// rebind persisted reservations to catalog rooms.
func (c *RoomCatalog) FindByNumber(ctx context.Context, number int) (*domain.Room, error) {
	for _, room := range c.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

// Book flips the booked flag without validation. Callers keep the flag
// in sync with the ledger: exactly one live reservation per booked room.
func (c *RoomCatalog) Book(ctx context.Context, room *domain.Room) error {
	room.Booked = true
	return nil
}

func (c *RoomCatalog) Release(ctx context.Context, room *domain.Room) error {
	room.Booked = false
	return nil
}
