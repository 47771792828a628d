package ports

import "context"

type PaymentGateway interface {
	Charge(ctx context.Context, amount float64) error
}
