package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"hotelbook/internal/config"
	"hotelbook/internal/menu"
	"hotelbook/internal/payment"
	"hotelbook/internal/repository"
	"hotelbook/internal/service"
)

type App struct {
	cfg     *config.Config
	log     logger.Logger
	service *service.BookingService
	menu    *menu.Menu
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"hotelbook",
		cfg.Logger.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	catalog := repository.NewRoomCatalog()
	ledger := repository.NewReservationLedger()
	store := repository.NewFileStore(cfg.Storage.Path, log)
	gateway := payment.NewSimulator(log)

	app.service = service.NewBookingService(catalog, ledger, store, gateway, log)
	app.menu = menu.New(app.service, os.Stdin, os.Stdout, log)

	return app, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	restored, err := a.service.Restore(ctx)
	if err != nil {
		// an unreadable file must not block the session; start from
		// whatever was readable and tell the user
		fmt.Fprintf(os.Stdout, "Error loading reservations: %v\n", err)
		a.log.Error("restore failed",
			logger.String("error", err.Error()),
		)
	} else if restored > 0 {
		a.log.Info("reservations restored",
			logger.Int("count", restored),
		)
	}

	return a.menu.Run(ctx)
}
