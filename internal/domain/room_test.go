package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomCategory_Price(t *testing.T) {
	tests := []struct {
		name     string
		category RoomCategory
		want     float64
	}{
		{"standard", CategoryStandard, 100},
		{"deluxe", CategoryDeluxe, 200},
		{"suite", CategorySuite, 300},
		{"unknown category charges nothing", RoomCategory("Penthouse"), 0},
		{"empty category charges nothing", RoomCategory(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Price())
		})
	}
}

func TestRoom_String(t *testing.T) {
	room := &Room{Number: 101, Category: CategoryStandard}
	assert.Equal(t, "Room 101 (Standard) - Available", room.String())

	room.Booked = true
	assert.Equal(t, "Room 101 (Standard) - Booked", room.String())
}

func TestReservation_String(t *testing.T) {
	res := &Reservation{
		CustomerName: "Alice",
		Room:         &Room{Number: 101, Category: CategoryStandard},
		AmountPaid:   100,
	}
	assert.Equal(t, "Reservation [Customer: Alice, Room: 101 (Standard), Paid: $100]", res.String())

	restored := &Reservation{
		CustomerName: "Bob",
		Room:         &Room{Number: 201, Category: CategoryDeluxe},
		AmountPaid:   0,
	}
	assert.Equal(t, "Reservation [Customer: Bob, Room: 201 (Deluxe), Paid: $0]", restored.String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100", FormatAmount(100))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "99.5", FormatAmount(99.5))
}
