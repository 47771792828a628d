package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"hotelbook/internal/domain"
	"hotelbook/internal/repository"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeGateway struct {
	charged   []float64
	chargeErr error
}

func (g *fakeGateway) Charge(ctx context.Context, amount float64) error {
	g.charged = append(g.charged, amount)
	return g.chargeErr
}

type fakeStore struct {
	records []domain.ReservationRecord
	loadErr error
	saved   [][]*domain.Reservation
	saveErr error
}

func (s *fakeStore) Load(ctx context.Context) ([]domain.ReservationRecord, error) {
	return s.records, s.loadErr
}

func (s *fakeStore) Save(ctx context.Context, reservations []*domain.Reservation) error {
	s.saved = append(s.saved, reservations)
	return s.saveErr
}

type testEnv struct {
	svc     *BookingService
	catalog *repository.RoomCatalog
	ledger  *repository.ReservationLedger
	gateway *fakeGateway
	store   *fakeStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		catalog: repository.NewRoomCatalog(),
		ledger:  repository.NewReservationLedger(),
		gateway: &fakeGateway{},
		store:   &fakeStore{},
	}
	env.svc = NewBookingService(env.catalog, env.ledger, env.store, env.gateway, newTestLogger(t))
	return env
}

func TestBookingService_Book(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.svc.Book(ctx, 101, "Alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice", res.CustomerName)
	assert.Equal(t, 101, res.Room.Number)
	assert.Equal(t, float64(100), res.AmountPaid)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.Room.Booked)

	assert.Equal(t, []float64{100}, env.gateway.charged)

	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Same(t, res, all[0])
}

func TestBookingService_Book_PricePerCategory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	deluxe, err := env.svc.Book(ctx, 201, "Bob")
	require.NoError(t, err)
	assert.Equal(t, float64(200), deluxe.AmountPaid)

	suite, err := env.svc.Book(ctx, 301, "Carol")
	require.NoError(t, err)
	assert.Equal(t, float64(300), suite.AmountPaid)
}

func TestBookingService_Book_RoomNotAvailable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Book(ctx, 101, "Alice")
	require.NoError(t, err)

	_, err = env.svc.Book(ctx, 101, "Bob")
	assert.ErrorIs(t, err, domain.ErrRoomNotAvailable)

	_, err = env.svc.Book(ctx, 999, "Bob")
	assert.ErrorIs(t, err, domain.ErrRoomNotAvailable)

	// only the successful booking reached the gateway or the ledger
	assert.Equal(t, []float64{100}, env.gateway.charged)
	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookingService_Book_ChargeFailureMutatesNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.gateway.chargeErr = errors.New("gateway down")

	_, err := env.svc.Book(ctx, 101, "Alice")
	require.Error(t, err)

	room, err := env.catalog.FindByNumber(ctx, 101)
	require.NoError(t, err)
	assert.False(t, room.Booked)

	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookingService_Cancel_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	booked, err := env.svc.Book(ctx, 101, "Alice")
	require.NoError(t, err)

	cancelled, err := env.svc.Cancel(ctx, "aLiCe")
	require.NoError(t, err)
	assert.Same(t, booked, cancelled)
	assert.False(t, cancelled.Room.Booked)

	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookingService_Cancel_NotFoundLeavesLedgerUntouched(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Book(ctx, 101, "Alice")
	require.NoError(t, err)

	_, err = env.svc.Cancel(ctx, "Bob")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)

	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	room, err := env.catalog.FindByNumber(ctx, 101)
	require.NoError(t, err)
	assert.True(t, room.Booked)
}

func TestBookingService_Cancel_DuplicateNamesRemovesFirstMatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Book(ctx, 101, "Sam")
	require.NoError(t, err)
	_, err = env.svc.Book(ctx, 102, "sam")
	require.NoError(t, err)

	cancelled, err := env.svc.Cancel(ctx, "SAM")
	require.NoError(t, err)
	assert.Equal(t, 101, cancelled.Room.Number)

	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 102, all[0].Room.Number)
	assert.True(t, all[0].Room.Booked)
}

func TestBookingService_Restore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.store.records = []domain.ReservationRecord{
		{CustomerName: "Bob", RoomNumber: 201, Category: domain.CategoryDeluxe},
		{CustomerName: "Ghost", RoomNumber: 999, Category: domain.CategoryStandard},
	}

	restored, err := env.svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	room, err := env.catalog.FindByNumber(ctx, 201)
	require.NoError(t, err)
	assert.True(t, room.Booked)

	all, err := env.ledger.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Bob", all[0].CustomerName)
	// price is not persisted; restored reservations always carry zero
	assert.Zero(t, all[0].AmountPaid)

	// restoring is not booking: no charge happens
	assert.Empty(t, env.gateway.charged)
}

func TestBookingService_Restore_LoadErrorPropagates(t *testing.T) {
	env := newTestEnv(t)
	env.store.loadErr = errors.New("disk on fire")

	_, err := env.svc.Restore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load reservations")
}

func TestBookingService_Persist(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.svc.Book(ctx, 101, "Alice")
	require.NoError(t, err)

	require.NoError(t, env.svc.Persist(ctx))
	require.Len(t, env.store.saved, 1)
	require.Len(t, env.store.saved[0], 1)
	assert.Same(t, res, env.store.saved[0][0])
}

func TestBookingService_Persist_SaveErrorPropagates(t *testing.T) {
	env := newTestEnv(t)
	env.store.saveErr = errors.New("read-only fs")

	err := env.svc.Persist(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save reservations")
}
