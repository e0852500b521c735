package session

import (
	"sync"
	"time"

	"github.com/galleypos/galleypos-backend/internal/cart"
	"github.com/galleypos/galleypos-backend/internal/payment"
	"github.com/galleypos/galleypos-backend/internal/pricing"
	"github.com/galleypos/galleypos-backend/internal/seat"
	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/galleypos/galleypos-backend/pkg/money"
	"github.com/google/uuid"
)

// Session is one crew member's POS state: the cart being built plus the
// currency, pricing tier, seat and payment progress around it.
type Session struct {
	ID         uuid.UUID
	Cart       *cart.Cart
	Currency   money.Currency
	SaleType   string
	Seat       seat.Seat
	Payment    payment.State
	FinalPrice money.Price
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func newSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Cart:      cart.New(),
		Currency:  money.EUR,
		SaleType:  pricing.DefaultSaleType,
		Seat:      seat.Default(),
		Payment:   payment.NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// reset returns the session to a fresh sale after completion, keeping
// the seat so the crew member stays positioned in the cabin.
func (s *Session) reset() {
	s.Cart.Clear()
	s.Currency = money.EUR
	s.SaleType = pricing.DefaultSaleType
	s.Payment = payment.NewState()
	s.FinalPrice = money.Zero()
}

// Store holds every live session in process memory. Mutations run under
// a single lock, which serializes state transitions the way the
// single-threaded UI event loop did.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewStore builds an empty session store.
func NewStore() *Store {
	return &Store{sessions: map[uuid.UUID]*Session{}}
}

// Create registers a fresh session and returns it through fn.
func (st *Store) Create(fn func(*Session) error) (uuid.UUID, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := newSession()
	st.sessions[s.ID] = s
	if fn != nil {
		if err := fn(s); err != nil {
			delete(st.sessions, s.ID)
			return uuid.Nil, err
		}
	}
	return s.ID, nil
}

// Update runs fn against the session under the store lock. The session
// pointer must not escape fn.
func (st *Store) Update(id uuid.UUID, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	if err := fn(s); err != nil {
		return err
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete drops a session; no-op when absent.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
