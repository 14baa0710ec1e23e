package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/kfaist/baroque-print-api/models"
	"github.com/kfaist/baroque-print-api/providers"
	"github.com/kfaist/baroque-print-api/repository"
)

// Terminal fulfillment failures. None of these are retried; the paying
// customer never observes them.
var (
	ErrMissingImageRef    = errors.New("no image reference in session metadata")
	ErrUnknownProduct     = errors.New("unknown product in session metadata")
	ErrMissingShipping    = errors.New("no shipping details on session")
	ErrStagedImageExpired = errors.New("staged image no longer available")
)

// FulfillmentService reconstructs a print order from a completed checkout
// session and submits it to the print provider.
type FulfillmentService interface {
	// Fulfill returns the provider's order id on success. Every failure is
	// terminal; the caller decides whether to acknowledge regardless.
	Fulfill(ctx context.Context, sess *stripe.CheckoutSession) (string, error)
}

type fulfillmentServiceImpl struct {
	catalog  repository.CatalogRepository
	stager   ImageStager
	provider providers.PrintProvider
	logger   *zap.Logger
}

// NewFulfillmentService creates a new FulfillmentService.
func NewFulfillmentService(catalog repository.CatalogRepository, stager ImageStager, provider providers.PrintProvider, logger *zap.Logger) FulfillmentService {
	return &fulfillmentServiceImpl{
		catalog:  catalog,
		stager:   stager,
		provider: provider,
		logger:   logger,
	}
}

func (s *fulfillmentServiceImpl) Fulfill(ctx context.Context, sess *stripe.CheckoutSession) (string, error) {
	productID := sess.Metadata[MetaProductID]
	assetID := sess.Metadata[MetaAssetID]
	imageKey := sess.Metadata[MetaImageKey]

	s.logger.Info("Fulfilling order",
		zap.String("session_id", sess.ID),
		zap.String("product_id", productID),
		zap.String("asset_id", assetID),
		zap.String("image_key", imageKey),
	)

	if assetID == "" && imageKey == "" {
		return "", ErrMissingImageRef
	}

	entry, ok := s.catalog.Lookup(productID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}

	recipient, err := recipientFromSession(sess)
	if err != nil {
		return "", err
	}

	// A handle reference means the image is still buffered locally; upload it
	// to Prodigi now. Absence is terminal for this order, not retryable.
	if assetID == "" {
		data, err := s.stager.Resolve(ctx, imageKey)
		if err != nil {
			if errors.Is(err, repository.ErrImageNotFound) {
				return "", fmt.Errorf("%w: %s", ErrStagedImageExpired, imageKey)
			}
			return "", fmt.Errorf("resolve staged image: %w", err)
		}
		assetID, err = s.provider.UploadAsset(ctx, data)
		if err != nil {
			return "", fmt.Errorf("upload staged image: %w", err)
		}
	}

	order := &models.FulfillmentOrder{
		SKU:        entry.FulfillmentSKU(),
		Copies:     entry.CopyCount(),
		Attributes: entry.Attributes,
		AssetID:    assetID,
		Recipient:  *recipient,
	}

	orderID, err := s.provider.CreateOrder(ctx, order)
	if err != nil {
		return "", err
	}

	if imageKey != "" {
		if err := s.stager.Discard(ctx, imageKey); err != nil {
			s.logger.Warn("Failed to discard staged image", zap.String("image_key", imageKey), zap.Error(err))
		}
	}

	s.logger.Info("Prodigi order created",
		zap.String("session_id", sess.ID),
		zap.String("order_id", orderID),
		zap.String("sku", order.SKU),
	)

	return orderID, nil
}

func recipientFromSession(sess *stripe.CheckoutSession) (*models.Recipient, error) {
	shipping := sess.ShippingDetails
	if shipping == nil || shipping.Address == nil {
		return nil, ErrMissingShipping
	}

	return &models.Recipient{
		Name: shipping.Name,
		Address: models.Address{
			Line1:      shipping.Address.Line1,
			Line2:      shipping.Address.Line2,
			City:       shipping.Address.City,
			State:      shipping.Address.State,
			PostalCode: shipping.Address.PostalCode,
			Country:    shipping.Address.Country,
		},
	}, nil
}
