package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/processor"
	"bistro/internal/repository"
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

// MaxMinorUnits is the largest amount the processor accepts for a single charge.
const MaxMinorUnits int64 = 99999999

// RecordPaymentInput is a checkout as reported by the client after the processor confirmed it.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	Date          *time.Time
	Status        string
	CartIDs       []string
	MenuItemIDs   []string
}

// PaymentRecordResult pairs the payment insert with the cart cleanup it triggered.
type PaymentRecordResult struct {
	PaymentResult *model.InsertResult `json:"paymentResult"`
	DeleteResult  *model.DeleteResult `json:"deleteResult"`
}

// PaymentService handles payment intents and payment records.
type PaymentService interface {
	CreateIntent(ctx context.Context, price *float64) (*processor.Intent, error)
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*PaymentRecordResult, error)
	ListPayments(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	processor   processor.IntentCreator
	log         *zap.Logger
	now         func() time.Time
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	intents processor.IntentCreator,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		processor:   intents,
		log:         log,
		now:         time.Now,
	}
}

// ToMinorUnits truncates price*100 toward zero. It reports false when the
// result does not fit in an int64 or price is not a finite number.
func ToMinorUnits(price float64) (int64, bool) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	units := decimal.NewFromFloat(price).Mul(minorUnitsPerMajor).Truncate(0).BigInt()
	if !units.IsInt64() {
		return 0, false
	}
	return units.Int64(), true
}

// CreateIntent rejects a missing price, one worth less than a cent, or one above
// MaxMinorUnits before calling the processor.
func (s *paymentService) CreateIntent(ctx context.Context, price *float64) (*processor.Intent, error) {
	if price == nil {
		return nil, errors.ErrInvalidAmount
	}
	amount, ok := ToMinorUnits(*price)
	if !ok || amount < 1 || amount > MaxMinorUnits {
		return nil, errors.ErrInvalidAmount
	}

	intent, err := s.processor.CreateIntent(ctx, amount)
	if err != nil {
		s.log.Error("payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrProcessor, err)
	}
	return intent, nil
}

// RecordPayment stores the payment, then deletes exactly the listed cart entries.
// The two writes are not atomic: a failed cleanup leaves the payment in place.
func (s *paymentService) RecordPayment(ctx context.Context, in RecordPaymentInput) (*PaymentRecordResult, error) {
	cartIDs, err := repository.ParseIDs(in.CartIDs)
	if err != nil {
		return nil, err
	}
	menuItemIDs, err := repository.ParseIDs(in.MenuItemIDs)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		Date:          s.now().UTC(),
		CartIDs:       cartIDs,
		MenuItemIDs:   menuItemIDs,
		Status:        in.Status,
	}
	if in.Date != nil && !in.Date.IsZero() {
		payment.Date = in.Date.UTC()
	}
	if payment.Status == "" {
		payment.Status = model.PaymentStatusPending
	}

	insertRes, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	deleteRes, err := s.cartRepo.DeleteMany(ctx, cartIDs)
	if err != nil {
		s.log.Error("payment recorded but cart cleanup failed",
			zap.String("payment_id", payment.ID.Hex()),
			zap.String("email", payment.Email),
			zap.Int("cart_entries", len(cartIDs)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("clear cart after payment %s: %w", payment.ID.Hex(), err)
	}

	return &PaymentRecordResult{PaymentResult: insertRes, DeleteResult: deleteRes}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, email string) ([]model.Payment, error) {
	return s.paymentRepo.ListByEmail(ctx, email)
}
