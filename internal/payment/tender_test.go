package payment

import (
	"testing"

	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
)

func TestParseTenderAcceptsCommaAndDot(t *testing.T) {
	t.Parallel()

	got, err := ParseTender("4,80")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec("4.80").Equal(got) {
		t.Fatalf("expected 4.80, got %s", got)
	}

	got, err = ParseTender(" 2.00 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec("2.00").Equal(got) {
		t.Fatalf("expected 2.00, got %s", got)
	}
}

func TestParseTenderRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "abc", "-1", "0", "0,00", "1,2,3"} {
		_, err := ParseTender(raw)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}
	}
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	if _, err := ParseMethod("cash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseMethod("card"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseMethod("cheque"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
