package payment

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

// Simulator stands in for a real payment provider: every charge
// succeeds. Amounts are logged so simulated charges stay auditable.
type Simulator struct {
	logger logger.Logger
}

func NewSimulator(logger logger.Logger) *Simulator {
	return &Simulator{logger: logger}
}

func (s *Simulator) Charge(ctx context.Context, amount float64) error {
	s.logger.Info("payment simulated",
		logger.Any("amount", amount),
	)
	return nil
}
