package payment

import (
	"context"

	"github.com/galleypos/galleypos-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Processor captures the tendered amount with the payment provider.
type Processor interface {
	SendPayment(ctx context.Context, method Method, amount decimal.Decimal) error
}

// StubProcessor accepts every payment. Card terminals on the trolley are
// offline-first and settle later, so the in-flight capture is a no-op.
type StubProcessor struct {
	logg *logger.Logger
}

// NewStubProcessor builds the always-accepting processor.
func NewStubProcessor(logg *logger.Logger) *StubProcessor {
	return &StubProcessor{logg: logg}
}

// SendPayment records the capture and accepts.
func (p *StubProcessor) SendPayment(ctx context.Context, method Method, amount decimal.Decimal) error {
	if p.logg != nil {
		ctx = p.logg.WithFields(ctx, map[string]any{
			"method": string(method),
			"amount": amount.StringFixed(2),
		})
		p.logg.Info(ctx, "payment accepted")
	}
	return nil
}
