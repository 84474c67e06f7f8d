package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	"github.com/anayakhandelwal/artisan-gallery-platform/pkg/stripe"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type paymentService struct {
	orderRepo           repository.OrderRepository
	stripeClient        stripe.Client
	supportedCurrencies []string
}

func NewPaymentService(orderRepo repository.OrderRepository, stripeClient stripe.Client, supportedCurrencies []string) PaymentService {
	return &paymentService{
		orderRepo:           orderRepo,
		stripeClient:        stripeClient,
		supportedCurrencies: supportedCurrencies,
	}
}

// CreatePayment implements PaymentService.
func (s *paymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {

	currency := strings.ToLower(req.Currency)
	if !slices.Contains(s.supportedCurrencies, currency) {
		return nil, errors.BadRequestError("Unsupported currency: " + req.Currency)
	}

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		return nil, errors.BadRequestError("Order is already paid")
	}

	amount := int64(math.Round(order.TotalAmount * 100))

	paymentIntent, err := s.stripeClient.CreatePaymentIntent(
		amount, currency, fmt.Sprintf("Order %s", order.ID), order.CustomerID.String())
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID, models.PaymentStatusPending, paymentIntent.ID); err != nil {
		return nil, errors.DatabaseError("Failed to record payment intent").WithError(err)
	}

	return &models.PaymentResponse{
		PaymentIntent: &models.PaymentIntent{
			ID:     paymentIntent.ID,
			Amount: order.TotalAmount,
			Status: string(paymentIntent.Status),
		},
		ClientSecret: paymentIntent.ClientSecret,
	}, nil
}

// ProcessWebhook implements PaymentService.
func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {

	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, errors.ThirdPartyError("Webhook signature verification failed").WithError(err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		intentID, err := intentIDFromObject(event.Data.Object, "id")
		if err != nil {
			return event, err
		}

		if err := s.orderRepo.UpdatePaymentStatusByIntent(ctx, intentID, models.PaymentStatusPaid); err != nil {
			return event, errors.DatabaseError("Failed to update payment status").WithError(err)
		}

	case "payment_intent.payment_failed":
		intentID, err := intentIDFromObject(event.Data.Object, "id")
		if err != nil {
			return event, err
		}

		if err := s.orderRepo.UpdatePaymentStatusByIntent(ctx, intentID, models.PaymentStatusFailed); err != nil {
			return event, errors.DatabaseError("Failed to update payment status").WithError(err)
		}

	case "charge.refunded":
		intentID, err := intentIDFromObject(event.Data.Object, "payment_intent")
		if err != nil {
			return event, err
		}

		if err := s.orderRepo.UpdatePaymentStatusByIntent(ctx, intentID, models.PaymentStatusRefunded); err != nil {
			return event, errors.DatabaseError("Failed to update payment status").WithError(err)
		}
	}

	return event, nil
}

func intentIDFromObject(object map[string]any, key string) (string, error) {
	value, ok := object[key]
	if !ok {
		return "", errors.ThirdPartyError("Missing payment intent ID in webhook")
	}

	intentID, ok := value.(string)
	if !ok || intentID == "" {
		return "", errors.ThirdPartyError("Missing payment intent ID in webhook")
	}

	return intentID, nil
}
