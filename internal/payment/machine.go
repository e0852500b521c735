// Package payment implements the tender workflow: a sale moves from an
// open cart through optional partial payments to completion. Once a
// partial tender lands, the cart is frozen so the total cannot drift
// mid-transaction.
package payment

import (
	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/galleypos/galleypos-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// Status is the payment workflow state.
type Status string

const (
	// StatusIdle: cart open for edits, no payment started.
	StatusIdle Status = "idle"
	// StatusAwaitingTender: payment view open, cart not yet frozen.
	StatusAwaitingTender Status = "awaiting_tender"
	// StatusFrozen: a partial payment was accepted; cart locked, balance > 0.
	StatusFrozen Status = "frozen"
	// StatusCompleted: balance reached zero (or the cart was empty).
	StatusCompleted Status = "completed"
)

// State tracks one session's payment progress. Remaining is denominated
// in the session's active currency.
type State struct {
	Status    Status          `json:"status"`
	Remaining decimal.Decimal `json:"remaining"`
}

// NewState returns the idle state.
func NewState() State {
	return State{Status: StatusIdle}
}

// Frozen reports whether cart edits are locked out.
func (s State) Frozen() bool {
	return s.Status == StatusFrozen
}

// SyncDue tracks the ratio-adjusted total while the cart is still
// editable. Once frozen, the balance is fixed and only tenders move it.
func (s *State) SyncDue(due decimal.Decimal) {
	if s.Status == StatusIdle || s.Status == StatusAwaitingTender {
		s.Remaining = money.Round2(due)
	}
}

// Begin opens the payment view against the amount owed.
func (s *State) Begin(due decimal.Decimal) {
	if s.Status == StatusIdle {
		s.Status = StatusAwaitingTender
		s.Remaining = money.Round2(due)
	}
}

// Outcome describes the effect of an accepted tender.
type Outcome struct {
	Completed bool
	Frozen    bool
	Remaining decimal.Decimal
}

// ApplyTender runs one tender through the state machine. The amount must
// already be parsed and positive. On rejection the state is unchanged.
func (s *State) ApplyTender(amount decimal.Decimal, cartEmpty bool) (Outcome, error) {
	if s.Status == StatusCompleted {
		return Outcome{}, pkgerrors.New(pkgerrors.CodeStateConflict, "sale already completed")
	}
	if !amount.IsPositive() {
		return Outcome{}, pkgerrors.New(pkgerrors.CodeValidation, "tender amount must be positive")
	}

	// An empty cart owes nothing: any positive tender closes the sale.
	if cartEmpty {
		s.Status = StatusCompleted
		s.Remaining = decimal.Zero
		return Outcome{Completed: true, Remaining: decimal.Zero}, nil
	}

	if amount.GreaterThan(s.Remaining) {
		return Outcome{}, pkgerrors.New(pkgerrors.CodeValidation, "tender exceeds remaining balance")
	}

	if amount.Equal(s.Remaining) {
		s.Status = StatusCompleted
		s.Remaining = decimal.Zero
		return Outcome{Completed: true, Remaining: decimal.Zero}, nil
	}

	s.Status = StatusFrozen
	s.Remaining = money.Round2(s.Remaining.Sub(amount))
	return Outcome{Frozen: true, Remaining: s.Remaining}, nil
}
