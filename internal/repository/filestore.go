package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/logger"

	"hotelbook/internal/domain"
)

const fieldsPerLine = 3

// FileStore persists the ledger as one "name,roomNumber,category" line
// per reservation. The format has no header and no escaping; it is an
// external compatibility contract and must not change.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, logger logger.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Save overwrites the backing file with the full ledger contents.
func (s *FileStore) Save(ctx context.Context, reservations []*domain.Reservation) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, res := range reservations {
		fmt.Fprintf(w, "%s,%d,%s\n", res.CustomerName, res.Room.Number, res.Room.Category)
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	return nil
}

// Load reads the persisted reservation records. A missing file yields
// an empty result with no error. Malformed lines (wrong field count,
// non-numeric room number) are skipped with a warning rather than
// aborting the load.
func (s *FileStore) Load(ctx context.Context) ([]domain.ReservationRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var records []domain.ReservationRecord
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != fieldsPerLine {
			s.logger.Warn("skipping malformed reservation line",
				logger.Int("line", lineNo),
				logger.Int("fields", len(fields)),
			)
			continue
		}

		number, err := strconv.Atoi(fields[1])
		if err != nil {
			s.logger.Warn("skipping reservation line with bad room number",
				logger.Int("line", lineNo),
				logger.String("room", fields[1]),
			)
			continue
		}

		records = append(records, domain.ReservationRecord{
			CustomerName: fields[0],
			RoomNumber:   number,
			Category:     domain.RoomCategory(fields[2]),
		})
	}
	if err = sc.Err(); err != nil {
		return records, fmt.Errorf("read %s: %w", s.path, err)
	}

	return records, nil
}
