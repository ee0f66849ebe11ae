package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ssfi-digital/federation-portal/models"
)

// PaymentService creates payment orders for the external checkout widget.
// Opening the widget and verifying the captured payment happen outside this
// service; it only mints the order.
type PaymentService interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64) (*models.PaymentOrder, error)
}

type paymentService struct {
	logger *slog.Logger
}

func NewPaymentService(logger *slog.Logger) PaymentService {
	return &paymentService{logger: logger}
}

// CreateOrder mints an order for the given amount in minor units (paise).
func (s *paymentService) CreateOrder(ctx context.Context, amountMinorUnits int64) (*models.PaymentOrder, error) {
	if amountMinorUnits <= 0 {
		return nil, ErrInvalidAmount
	}

	order := &models.PaymentOrder{
		ID:       fmt.Sprintf("order_%d", time.Now().UnixMilli()),
		Amount:   amountMinorUnits,
		Currency: "INR",
	}

	s.logger.Info("payment order created",
		slog.String("order_id", order.ID),
		slog.Int64("amount", order.Amount),
		slog.String("currency", order.Currency),
	)
	return order, nil
}
