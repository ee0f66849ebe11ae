package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPaymentService_CreateOrder(t *testing.T) {
	svc := NewPaymentService(slog.Default())

	order, err := svc.CreateOrder(context.Background(), 50000)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if !strings.HasPrefix(order.ID, "order_") {
		t.Fatalf("expected order_ prefixed id, got %q", order.ID)
	}
	if order.Amount != 50000 {
		t.Fatalf("amount must pass through in minor units, got %d", order.Amount)
	}
	if order.Currency != "INR" {
		t.Fatalf("expected INR, got %q", order.Currency)
	}
}

func TestPaymentService_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewPaymentService(slog.Default())

	for _, amount := range []int64{0, -100} {
		if _, err := svc.CreateOrder(context.Background(), amount); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}
