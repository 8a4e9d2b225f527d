package order

import (
	"context"
	"errors"
	"math"
	"strings"

	"methakadai-be/internal/logger"

	"go.uber.org/zap"
)

// totalTolerance absorbs float rounding between client and server arithmetic.
const totalTolerance = 0.01

type Service interface {
	Create(ctx context.Context, userID string, input CreateOrderInput) (Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)
	Cancel(ctx context.Context, id, userID string) (Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, input CreateOrderInput) (Order, error) {
	log := logger.FromCtx(ctx)

	if userID == "" {
		return Order{}, errors.New("unauthorized")
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		return Order{}, ErrMissingFields
	}
	if len(input.Items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	switch input.PaymentMethod {
	case PaymentCOD:
	case PaymentUPI:
		if strings.TrimSpace(input.TransactionID) == "" {
			return Order{}, ErrMissingTransaction
		}
	default:
		return Order{}, ErrInvalidPayment
	}

	// The client's arithmetic is not trusted: recompute from line items and
	// reject a mismatch.
	var total float64
	for _, item := range input.Items {
		if item.Quantity < 1 || item.Price < 0 {
			return Order{}, ErrInvalidItem
		}
		total += item.Price * float64(item.Quantity)
	}
	if math.Abs(total-input.TotalAmount) > totalTolerance {
		log.Warn("order total mismatch",
			zap.Float64("client_total", input.TotalAmount),
			zap.Float64("computed_total", total),
		)
		return Order{}, ErrTotalMismatch
	}

	txnID := input.TransactionID
	if input.PaymentMethod == PaymentCOD {
		txnID = ""
	}

	created, err := s.repo.Create(ctx, Order{
		UserID:        userID,
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		TransactionID: txnID,
		Items:         input.Items,
		TotalAmount:   total,
		Status:        StatusOrdered,
	})
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return Order{}, err
	}

	log.Info("order placed",
		zap.String("order_id", created.ID),
		zap.String("user_id", userID),
		zap.Float64("total", created.TotalAmount),
		zap.Int("items", len(created.Items)),
	)
	return created, nil
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, errors.New("unauthorized")
	}
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, id string) (Order, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an order along the state machine. Any step outside the
// transition table is rejected, including for admins.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	log := logger.FromCtx(ctx)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}

	if !o.Status.CanTransitionTo(status) {
		log.Info("status transition rejected",
			zap.String("order_id", id),
			zap.String("from", string(o.Status)),
			zap.String("to", string(status)),
		)
		return Order{}, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return Order{}, err
	}

	log.Info("order status updated",
		zap.String("order_id", id),
		zap.String("from", string(o.Status)),
		zap.String("to", string(status)),
	)

	o.Status = status
	return o, nil
}

// Cancel is the customer-side transition: legal only while the order is
// still Ordered.
func (s *service) Cancel(ctx context.Context, id, userID string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}

	if o.UserID != userID {
		return Order{}, ErrNotOwner
	}

	switch o.Status {
	case StatusOrdered:
		// the one legal case
	case StatusCancelled:
		return Order{}, ErrAlreadyCancelled
	default:
		return Order{}, ErrCannotCancel
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return Order{}, err
	}

	logger.FromCtx(ctx).Info("order cancelled by customer",
		zap.String("order_id", id),
		zap.String("user_id", userID),
	)

	o.Status = StatusCancelled
	return o, nil
}
