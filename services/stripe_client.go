package services

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"

	"github.com/kfaist/baroque-print-api/models"
)

// Metadata keys round-tripped on the checkout session. The webhook relies on
// these to reconstruct the order after payment.
const (
	MetaProductID = "productId"
	MetaAssetID   = "prodigiAssetId"
	MetaImageKey  = "imageKey"
)

// Countries Stripe Checkout is allowed to collect shipping addresses for.
var allowedShippingCountries = []string{"US", "CA", "GB", "AU", "DE", "FR", "IT", "ES", "NL", "BE"}

const lineItemDescription = "The Mirror's Echo - AI Portrait Print"

// PaymentGateway abstracts checkout-session creation so CheckoutService can
// be tested without touching Stripe.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, entry *models.CatalogEntry, ref models.ImageRef, returnURL string) (*models.CheckoutResult, error)
}

// StripeService wraps the Stripe SDK for session creation and webhook
// signature verification.
type StripeService struct {
	SecretKey       string
	WebhookSecret   string
	ProductImageURL string
}

func NewStripeService(secretKey, webhookSecret, productImageURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey, WebhookSecret: webhookSecret, ProductImageURL: productImageURL}
}

// CreateCheckoutSession creates a hosted Stripe Checkout session for a single
// catalog entry, attaching the product id and image reference as metadata so
// the completion webhook can reconstruct the order.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, entry *models.CatalogEntry, ref models.ImageRef, returnURL string) (*models.CheckoutResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(entry.Price),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(entry.Name),
						Description: stripe.String(lineItemDescription),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedShippingCountries),
		},
		SuccessURL: stripe.String(returnURL + "?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(returnURL + "?canceled=true"),
	}
	params.Context = ctx

	if s.ProductImageURL != "" {
		params.LineItems[0].PriceData.ProductData.Images = []*string{stripe.String(s.ProductImageURL)}
	}

	params.AddMetadata(MetaProductID, entry.ID)
	switch ref.Kind {
	case models.ImageRefAsset:
		params.AddMetadata(MetaAssetID, ref.Value)
	case models.ImageRefHandle:
		params.AddMetadata(MetaImageKey, ref.Value)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutResult{SessionID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header against the raw request
// body and returns the decoded event. The body must be the exact bytes Stripe
// sent; the signature is computed over them.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookSecret)
}
