package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"hotelbook/internal/domain"
	"hotelbook/internal/service/ports"
)

type BookingService struct {
	catalog ports.RoomCatalog
	ledger  ports.ReservationLedger
	store   ports.ReservationStore
	payment ports.PaymentGateway
	logger  logger.Logger
}

func NewBookingService(
	catalog ports.RoomCatalog,
	ledger ports.ReservationLedger,
	store ports.ReservationStore,
	payment ports.PaymentGateway,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		catalog: catalog,
		ledger:  ledger,
		store:   store,
		payment: payment,
		logger:  logger,
	}
}

// AvailableRooms lists unbooked rooms in catalog order.
func (s *BookingService) AvailableRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.catalog.ListAvailable(ctx)
}

// Reservations lists the ledger in insertion order.
func (s *BookingService) Reservations(ctx context.Context) ([]*domain.Reservation, error) {
	return s.ledger.ListAll(ctx)
}

// FindAvailableRoom resolves a room that is both present and unbooked.
func (s *BookingService) FindAvailableRoom(ctx context.Context, number int) (*domain.Room, error) {
	return s.catalog.FindAvailableByNumber(ctx, number)
}

// Book charges the category price, marks the room booked and appends a
// reservation to the ledger. Nothing is mutated on failure.
func (s *BookingService) Book(ctx context.Context, roomNumber int, customerName string) (*domain.Reservation, error) {
	room, err := s.catalog.FindAvailableByNumber(ctx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("resolve room: %w", err)
	}

	price := room.Category.Price()
	if err = s.payment.Charge(ctx, price); err != nil {
		return nil, fmt.Errorf("charge payment: %w", err)
	}

	if err = s.catalog.Book(ctx, room); err != nil {
		return nil, fmt.Errorf("book room: %w", err)
	}

	res := &domain.Reservation{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		Room:         room,
		AmountPaid:   price,
	}
	if err = s.ledger.Add(ctx, res); err != nil {
		// keep the booked flag in sync with the ledger
		_ = s.catalog.Release(ctx, room)
		return nil, fmt.Errorf("record reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("customer", customerName),
		logger.Int("room", room.Number),
		logger.String("category", string(room.Category)),
	)

	return res, nil
}

// Cancel removes the first reservation matching the name ignoring case
// and releases its room. The ledger is untouched when no match exists.
func (s *BookingService) Cancel(ctx context.Context, customerName string) (*domain.Reservation, error) {
	res, err := s.ledger.FindFirstByName(ctx, customerName)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}

	if err = s.catalog.Release(ctx, res.Room); err != nil {
		return nil, fmt.Errorf("release room: %w", err)
	}
	if err = s.ledger.Remove(ctx, res.ID); err != nil {
		return nil, fmt.Errorf("remove reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("customer", res.CustomerName),
		logger.Int("room", res.Room.Number),
	)

	return res, nil
}

// Restore rebuilds the ledger from the persisted records. Records that
// reference rooms absent from the catalog are skipped. The persisted
// format carries no price, so restored reservations show a zero amount.
func (s *BookingService) Restore(ctx context.Context) (int, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load reservations: %w", err)
	}

	restored := 0
	for _, rec := range records {
		room, err := s.catalog.FindByNumber(ctx, rec.RoomNumber)
		if err != nil {
			s.logger.Warn("skipping reservation for unknown room",
				logger.Int("room", rec.RoomNumber),
				logger.String("customer", rec.CustomerName),
			)
			continue
		}

		if err = s.catalog.Book(ctx, room); err != nil {
			return restored, fmt.Errorf("book room %d: %w", room.Number, err)
		}
		res := &domain.Reservation{
			ID:           uuid.New().String(),
			CustomerName: rec.CustomerName,
			Room:         room,
			AmountPaid:   0,
		}
		if err = s.ledger.Add(ctx, res); err != nil {
			return restored, fmt.Errorf("record reservation: %w", err)
		}
		restored++
	}

	return restored, nil
}

// Persist writes the full ledger through the store.
func (s *BookingService) Persist(ctx context.Context) error {
	reservations, err := s.ledger.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}

	if err = s.store.Save(ctx, reservations); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}

	s.logger.Info("reservations saved",
		logger.Int("count", len(reservations)),
	)

	return nil
}
