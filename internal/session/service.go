package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/galleypos/galleypos-backend/internal/cart"
	"github.com/galleypos/galleypos-backend/internal/catalog"
	"github.com/galleypos/galleypos-backend/internal/payment"
	"github.com/galleypos/galleypos-backend/internal/pricing"
	"github.com/galleypos/galleypos-backend/internal/seat"
	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/galleypos/galleypos-backend/pkg/logger"
	"github.com/galleypos/galleypos-backend/pkg/metrics"
	"github.com/galleypos/galleypos-backend/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Slot names which of the two currency selectors was tapped. The first
// cycles forward through the currency ring, the second backward.
type Slot string

const (
	SlotFirst  Slot = "first"
	SlotSecond Slot = "second"
)

// ParseSlot validates a selector slot name.
func ParseSlot(value string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(value))) {
	case SlotFirst:
		return SlotFirst, nil
	case SlotSecond:
		return SlotSecond, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation,
		fmt.Sprintf("unknown currency slot %q, want %q or %q", value, SlotFirst, SlotSecond))
}

// LineInput is a requested cart line by catalog item id.
type LineInput struct {
	ItemID   int64
	Quantity int
}

// TenderInput is one payment attempt exactly as typed: the amount keeps
// its locale separator and is parsed here, not by the transport layer.
type TenderInput struct {
	Amount string
	Method string
}

// TenderResult reports what a tender did to the sale.
type TenderResult struct {
	Completed   bool
	Frozen      bool
	Remaining   decimal.Decimal
	StockErrors []string
	Session     *Snapshot
}

// Snapshot is a detached read model of a session, safe to hold after the
// store lock is released.
type Snapshot struct {
	ID            uuid.UUID
	Currency      money.Currency
	SaleType      string
	Ratio         decimal.Decimal
	Seat          seat.Seat
	Lines         []cart.Line
	FinalPrice    money.Price
	AdjustedPrice money.Price
	AmountDue     decimal.Decimal
	Status        payment.Status
	Frozen        bool
}

// Service drives one POS session through its lifecycle: cart edits,
// currency and tier switches, seat assignment and tendering.
type Service interface {
	Open(ctx context.Context) (*Snapshot, error)
	Get(ctx context.Context, id uuid.UUID) (*Snapshot, error)
	ReplaceCart(ctx context.Context, id uuid.UUID, lines []LineInput) (*Snapshot, error)
	UpsertLine(ctx context.Context, id uuid.UUID, line LineInput) (*Snapshot, error)
	RemoveLine(ctx context.Context, id uuid.UUID, itemID int64) (*Snapshot, error)
	CycleCurrency(ctx context.Context, id uuid.UUID, slot Slot) (*Snapshot, error)
	SetSaleType(ctx context.Context, id uuid.UUID, label string) (*Snapshot, error)
	SetSeat(ctx context.Context, id uuid.UUID, letter string, number int) (*Snapshot, error)
	SubmitTender(ctx context.Context, id uuid.UUID, input TenderInput) (*TenderResult, error)
}

type service struct {
	store     *Store
	catalog   catalog.Service
	processor payment.Processor
	metrics   *metrics.POSMetrics
	logg      *logger.Logger
}

// NewService wires the session service. Metrics may be nil.
func NewService(store *Store, cat catalog.Service, proc payment.Processor, pos *metrics.POSMetrics, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session store is required")
	}
	if cat == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog service is required")
	}
	if proc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payment processor is required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger is required")
	}
	return &service{store: store, catalog: cat, processor: proc, metrics: pos, logg: logg}, nil
}

func (s *service) Open(ctx context.Context) (*Snapshot, error) {
	var snap *Snapshot
	id, err := s.store.Create(func(sess *Session) error {
		snap = snapshotOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithField(ctx, "session_id", id.String()), "session opened")
	return snap, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	var snap *Snapshot
	err := s.store.Update(id, func(sess *Session) error {
		snap = snapshotOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *service) ReplaceCart(ctx context.Context, id uuid.UUID, inputs []LineInput) (*Snapshot, error) {
	lines, err := s.loadLines(ctx, inputs)
	if err != nil {
		return nil, err
	}
	return s.mutate(id, func(sess *Session) error {
		if sess.Payment.Frozen() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cart is frozen while payment is in progress")
		}
		return sess.Cart.SetLines(lines)
	})
}

func (s *service) UpsertLine(ctx context.Context, id uuid.UUID, input LineInput) (*Snapshot, error) {
	line, err := s.loadLine(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.mutate(id, func(sess *Session) error {
		if sess.Payment.Frozen() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cart is frozen while payment is in progress")
		}
		return sess.Cart.UpsertLine(line)
	})
}

func (s *service) RemoveLine(ctx context.Context, id uuid.UUID, itemID int64) (*Snapshot, error) {
	return s.mutate(id, func(sess *Session) error {
		if sess.Payment.Frozen() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "cart is frozen while payment is in progress")
		}
		sess.Cart.RemoveLine(itemID)
		return nil
	})
}

func (s *service) CycleCurrency(ctx context.Context, id uuid.UUID, slot Slot) (*Snapshot, error) {
	return s.mutate(id, func(sess *Session) error {
		if sess.Payment.Frozen() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "currency is locked while payment is in progress")
		}
		switch slot {
		case SlotFirst:
			sess.Currency = sess.Currency.Next()
		case SlotSecond:
			sess.Currency = sess.Currency.Prev()
		default:
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown currency slot %q", slot))
		}
		return nil
	})
}

func (s *service) SetSaleType(ctx context.Context, id uuid.UUID, label string) (*Snapshot, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sale type label is required")
	}
	return s.mutate(id, func(sess *Session) error {
		if sess.Payment.Frozen() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "sale type is locked while payment is in progress")
		}
		sess.SaleType = label
		return nil
	})
}

func (s *service) SetSeat(ctx context.Context, id uuid.UUID, letter string, number int) (*Snapshot, error) {
	st, err := seat.New(letter, number)
	if err != nil {
		return nil, err
	}
	return s.mutate(id, func(sess *Session) error {
		sess.Seat = st
		return nil
	})
}

func (s *service) SubmitTender(ctx context.Context, id uuid.UUID, input TenderInput) (*TenderResult, error) {
	method, err := payment.ParseMethod(input.Method)
	if err != nil {
		s.metrics.IncTenderRejected("invalid_method")
		return nil, err
	}
	amount, err := payment.ParseTender(input.Amount)
	if err != nil {
		s.metrics.IncTenderRejected("invalid_amount")
		return nil, err
	}

	result := &TenderResult{}
	err = s.store.Update(id, func(sess *Session) error {
		recompute(sess)
		sess.Payment.Begin(pricing.AdjustedPrice(sess.FinalPrice, sess.SaleType).Amount(sess.Currency))

		outcome, err := sess.Payment.ApplyTender(amount, sess.Cart.IsEmpty())
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeValidation {
				s.metrics.IncTenderRejected("exceeds_balance")
			} else {
				s.metrics.IncTenderRejected("state_conflict")
			}
			return err
		}

		currency := sess.Currency
		s.metrics.ObserveTenderAmount(string(currency), amount.InexactFloat64())

		if outcome.Frozen {
			s.metrics.IncPartialTender()
			result.Frozen = true
			result.Remaining = outcome.Remaining
			result.Session = snapshotOf(sess)
			s.logg.Info(s.logg.WithFields(ctx, map[string]any{
				"session_id": sess.ID.String(),
				"remaining":  outcome.Remaining.String(),
				"currency":   string(currency),
			}), "partial tender accepted, cart frozen")
			return nil
		}

		// Completed: decrement stock per line, hand off to the
		// processor, then reset for the next sale.
		result.Completed = true
		result.Remaining = decimal.Zero
		result.StockErrors = s.decrementLines(ctx, sess.Cart.Lines())

		if err := s.processor.SendPayment(ctx, method, amount); err != nil {
			s.logg.Error(ctx, "payment processor rejected completed sale", err)
		}
		s.metrics.IncSaleCompleted(string(method))

		sess.reset()
		recompute(sess)
		result.Session = snapshotOf(sess)
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"session_id": sess.ID.String(),
			"method":     string(method),
			"amount":     amount.String(),
			"currency":   string(currency),
		}), "sale completed")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// decrementLines walks the sold lines in order and decrements catalog
// stock one item at a time. Failures do not stop the walk and do not
// undo earlier decrements; they are aggregated and surfaced.
func (s *service) decrementLines(ctx context.Context, lines []cart.Line) []string {
	var agg error
	for _, line := range lines {
		if err := s.catalog.DecrementStock(ctx, line.ItemID, line.Quantity); err != nil {
			agg = multierr.Append(agg, fmt.Errorf("item %d: %w", line.ItemID, err))
			s.metrics.IncDecrementFailure()
			s.logg.Error(s.logg.WithField(ctx, "item_id", line.ItemID), "stock decrement failed", err)
		}
	}
	if agg == nil {
		return nil
	}
	errs := multierr.Errors(agg)
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

// mutate applies fn under the store lock, then recomputes totals and
// reorders the cart before snapshotting.
func (s *service) mutate(id uuid.UUID, fn func(*Session) error) (*Snapshot, error) {
	var snap *Snapshot
	err := s.store.Update(id, func(sess *Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		recompute(sess)
		snap = snapshotOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// loadLines resolves inputs against the catalog, snapshotting name,
// stock and prices at add time.
func (s *service) loadLines(ctx context.Context, inputs []LineInput) ([]cart.Line, error) {
	lines := make([]cart.Line, 0, len(inputs))
	for _, input := range inputs {
		line, err := s.loadLine(ctx, input)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *service) loadLine(ctx context.Context, input LineInput) (cart.Line, error) {
	product, err := s.catalog.GetItem(ctx, input.ItemID)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.Line{
		ItemID:    product.ID,
		Name:      product.Name,
		Stock:     product.Stock,
		UnitPrice: product.Price(),
		Quantity:  input.Quantity,
	}, nil
}

func recompute(sess *Session) {
	sess.Cart.SortByPrice(sess.Currency)
	sess.FinalPrice = pricing.FinalPrice(sess.Cart.Lines())
	sess.Payment.SyncDue(pricing.AdjustedPrice(sess.FinalPrice, sess.SaleType).Amount(sess.Currency))
}

func snapshotOf(sess *Session) *Snapshot {
	adjusted := pricing.AdjustedPrice(sess.FinalPrice, sess.SaleType)
	return &Snapshot{
		ID:            sess.ID,
		Currency:      sess.Currency,
		SaleType:      sess.SaleType,
		Ratio:         pricing.RatioFor(sess.SaleType),
		Seat:          sess.Seat,
		Lines:         sess.Cart.Lines(),
		FinalPrice:    sess.FinalPrice,
		AdjustedPrice: adjusted,
		AmountDue:     sess.Payment.Remaining,
		Status:        sess.Payment.Status,
		Frozen:        sess.Payment.Frozen(),
	}
}
