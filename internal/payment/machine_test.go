package payment

import (
	"testing"

	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExactTenderCompletes(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Begin(dec("4.80"))
	if state.Status != StatusAwaitingTender {
		t.Fatalf("expected awaiting tender, got %s", state.Status)
	}

	outcome, err := state.ApplyTender(dec("4.80"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Completed || state.Status != StatusCompleted {
		t.Fatalf("expected completion, got %+v state=%s", outcome, state.Status)
	}
	if !state.Remaining.IsZero() {
		t.Fatalf("expected zero balance, got %s", state.Remaining)
	}
}

func TestPartialTenderFreezesAndShrinksBalance(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Begin(dec("4.80"))

	outcome, err := state.ApplyTender(dec("2.00"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Frozen || !state.Frozen() {
		t.Fatalf("expected frozen state, got %+v", outcome)
	}
	if !dec("2.80").Equal(state.Remaining) {
		t.Fatalf("expected remaining 2.80, got %s", state.Remaining)
	}
}

func TestOverTenderRejectedWithoutStateChange(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Begin(dec("4.80"))
	if _, err := state.ApplyTender(dec("2.00"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := state.ApplyTender(dec("3.00"), false)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if state.Status != StatusFrozen || !dec("2.80").Equal(state.Remaining) {
		t.Fatalf("rejection must not change state: %s %s", state.Status, state.Remaining)
	}
}

func TestPartialTendersUntilZero(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Begin(dec("4.80"))

	if _, err := state.ApplyTender(dec("2.00"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := state.ApplyTender(dec("1.30"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outcome, err := state.ApplyTender(dec("1.50"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Completed {
		t.Fatalf("expected completion, got %+v", outcome)
	}
}

func TestEmptyCartCompletesOnAnyPositiveTender(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Begin(decimal.Zero)

	outcome, err := state.ApplyTender(dec("1.00"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Completed {
		t.Fatalf("expected completion on empty cart, got %+v", outcome)
	}
}

func TestTenderAfterCompletionIsStateConflict(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.Begin(dec("1.00"))
	if _, err := state.ApplyTender(dec("1.00"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := state.ApplyTender(dec("1.00"), false)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestSyncDueTracksWhileEditable(t *testing.T) {
	t.Parallel()

	state := NewState()
	state.SyncDue(dec("8.00"))
	if !dec("8.00").Equal(state.Remaining) {
		t.Fatalf("expected idle sync, got %s", state.Remaining)
	}

	state.Begin(dec("8.00"))
	state.SyncDue(dec("4.80"))
	if !dec("4.80").Equal(state.Remaining) {
		t.Fatalf("expected awaiting sync, got %s", state.Remaining)
	}

	if _, err := state.ApplyTender(dec("1.00"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state.SyncDue(dec("9.99"))
	if !dec("3.80").Equal(state.Remaining) {
		t.Fatalf("frozen balance must not track due, got %s", state.Remaining)
	}
}
