package payment

import (
	"strings"

	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Method is how the customer pays. Both routes to the same stub
// processor today; the split exists for receipts and metrics.
type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

// ParseMethod validates a payment method value.
func ParseMethod(value string) (Method, error) {
	switch Method(value) {
	case MethodCash, MethodCard:
		return Method(value), nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "payment method must be cash or card")
}

// ParseTender parses a cashier-keyed amount. The keypad emits either a
// comma or a dot as decimal separator; both are accepted. The amount
// must be strictly positive.
func ParseTender(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "tender amount is required")
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "tender amount is not a number")
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "tender amount must be positive")
	}
	return amount, nil
}
