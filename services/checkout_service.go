package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/kfaist/baroque-print-api/models"
	"github.com/kfaist/baroque-print-api/repository"
)

// CheckoutService validates a print order request, stages the uploaded image
// and opens a Stripe checkout session for it.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, productID, imageData, returnURL string) (*models.CheckoutResult, *ServiceError)
}

type checkoutServiceImpl struct {
	catalog repository.CatalogRepository
	stager  ImageStager
	gateway PaymentGateway
	logger  *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(catalog repository.CatalogRepository, stager ImageStager, gateway PaymentGateway, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{
		catalog: catalog,
		stager:  stager,
		gateway: gateway,
		logger:  logger,
	}
}

// CreateCheckout runs the checkout-initiation pipeline. Input validation
// happens before any external call; any step's failure short-circuits.
// A staged image whose session creation subsequently fails is not cleaned up.
func (s *checkoutServiceImpl) CreateCheckout(ctx context.Context, productID, imageData, returnURL string) (*models.CheckoutResult, *ServiceError) {
	entry, ok := s.catalog.Lookup(productID)
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid product"}
	}

	if imageData == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "No image data provided"}
	}

	s.logger.Info("Creating checkout",
		zap.String("product_id", productID),
		zap.Int("image_data_length", len(imageData)),
	)

	ref, err := s.stager.Stage(ctx, imageData)
	if err != nil {
		s.logger.Error("Image staging failed", zap.String("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to prepare image for printing"}
	}

	result, err := s.gateway.CreateCheckoutSession(ctx, entry, ref, returnURL)
	if err != nil {
		s.logger.Error("Checkout session creation failed", zap.String("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create checkout session"}
	}

	s.logger.Info("Checkout created",
		zap.String("session_id", result.SessionID),
		zap.String("image_ref", string(ref.Kind)+":"+ref.Value),
	)

	return result, nil
}
