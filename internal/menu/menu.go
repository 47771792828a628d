package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/logger"

	"hotelbook/internal/domain"
)

type BookingSvc interface {
	AvailableRooms(ctx context.Context) ([]*domain.Room, error)
	Reservations(ctx context.Context) ([]*domain.Reservation, error)
	FindAvailableRoom(ctx context.Context, number int) (*domain.Room, error)
	Book(ctx context.Context, roomNumber int, customerName string) (*domain.Reservation, error)
	Cancel(ctx context.Context, customerName string) (*domain.Reservation, error)
	Persist(ctx context.Context) error
}

// Menu is the interactive session loop. Reader and writer are injected
// so scripted sessions can drive the full loop in tests.
type Menu struct {
	service BookingSvc
	in      *bufio.Scanner
	out     io.Writer
	logger  logger.Logger
}

func New(service BookingSvc, in io.Reader, out io.Writer, logger logger.Logger) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run drives the loop until the user picks Exit, input ends, or ctx is
// cancelled. Exit saves the ledger first; ending any other way does not
// save.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			m.logger.Warn("session interrupted, reservations not saved")
			return nil
		}

		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			m.logger.Warn("input closed, reservations not saved")
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 0 // falls through to the invalid-choice arm
		}

		if exit := m.dispatch(ctx, choice); exit {
			return nil
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) (exit bool) {
	// a panic in one action must not kill the session
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("panic recovered",
				logger.Any("error", r),
				logger.String("stack", string(debug.Stack())),
			)
			fmt.Fprintln(m.out, "Something went wrong, please try again.")
		}
	}()

	switch choice {
	case 1:
		m.viewAvailableRooms(ctx)
	case 2:
		m.makeReservation(ctx)
	case 3:
		m.cancelReservation(ctx)
	case 4:
		m.viewReservations(ctx)
	case 5:
		m.saveReservations(ctx)
		return true
	default:
		fmt.Fprintln(m.out, "Invalid choice!")
	}

	return false
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n===== HOTEL RESERVATION SYSTEM =====")
	fmt.Fprintln(m.out, "1. View Available Rooms")
	fmt.Fprintln(m.out, "2. Make a Reservation")
	fmt.Fprintln(m.out, "3. Cancel Reservation")
	fmt.Fprintln(m.out, "4. View All Reservations")
	fmt.Fprintln(m.out, "5. Exit")
	fmt.Fprint(m.out, "Enter your choice: ")
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) viewAvailableRooms(ctx context.Context) {
	rooms, err := m.service.AvailableRooms(ctx)
	if err != nil {
		m.reportError("list available rooms", err)
		return
	}

	fmt.Fprintln(m.out, "\n--- Available Rooms ---")
	for _, room := range rooms {
		fmt.Fprintln(m.out, room)
	}
}

func (m *Menu) makeReservation(ctx context.Context) {
	m.viewAvailableRooms(ctx)

	fmt.Fprint(m.out, "Enter Room Number: ")
	line, ok := m.readLine()
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(m.out, "Room not available!")
		return
	}

	if _, err = m.service.FindAvailableRoom(ctx, roomNumber); err != nil {
		if errors.Is(err, domain.ErrRoomNotAvailable) {
			fmt.Fprintln(m.out, "Room not available!")
		} else {
			m.reportError("resolve room", err)
		}
		return
	}

	fmt.Fprint(m.out, "Enter Your Name: ")
	name, ok := m.readLine() // stored verbatim, not trimmed
	if !ok {
		return
	}

	res, err := m.service.Book(ctx, roomNumber, name)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotAvailable) {
			fmt.Fprintln(m.out, "Room not available!")
		} else {
			m.reportError("make reservation", err)
		}
		return
	}

	fmt.Fprintf(m.out, "Payment Simulation: $%s charged successfully!\n", domain.FormatAmount(res.AmountPaid))
	fmt.Fprintf(m.out, "Reservation Successful!\n%s\n", res)
}

func (m *Menu) cancelReservation(ctx context.Context) {
	fmt.Fprint(m.out, "Enter Your Name: ")
	name, ok := m.readLine()
	if !ok {
		return
	}

	if _, err := m.service.Cancel(ctx, name); err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			fmt.Fprintln(m.out, "No reservation found under this name.")
		} else {
			m.reportError("cancel reservation", err)
		}
		return
	}

	fmt.Fprintln(m.out, "Reservation canceled successfully!")
}

func (m *Menu) viewReservations(ctx context.Context) {
	reservations, err := m.service.Reservations(ctx)
	if err != nil {
		m.reportError("list reservations", err)
		return
	}

	fmt.Fprintln(m.out, "\n--- All Reservations ---")
	if len(reservations) == 0 {
		fmt.Fprintln(m.out, "No reservations found.")
		return
	}
	for _, res := range reservations {
		fmt.Fprintln(m.out, res)
	}
}

func (m *Menu) saveReservations(ctx context.Context) {
	if err := m.service.Persist(ctx); err != nil {
		fmt.Fprintf(m.out, "Error saving reservations: %v\n", err)
	}
}

// reportError covers failures outside the expected user-input errors:
// one line for the user, details for the log.
func (m *Menu) reportError(op string, err error) {
	m.logger.Error(op+" failed",
		logger.String("error", err.Error()),
	)
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
