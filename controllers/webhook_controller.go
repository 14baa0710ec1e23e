package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/kfaist/baroque-print-api/services"
)

// WebhookController receives Stripe payment-completion notifications and
// dispatches fulfillment.
type WebhookController struct {
	Stripe      *services.StripeService
	Fulfillment services.FulfillmentService
	Logger      *zap.Logger
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(stripeSvc *services.StripeService, fulfillment services.FulfillmentService, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		Stripe:      stripeSvc,
		Fulfillment: fulfillment,
		Logger:      logger,
	}
}

// HandleWebhook handles POST /webhook. The signature is verified over the raw
// body; unverified notifications are dropped with a 400. Any verified event
// is acknowledged, whether or not it triggers fulfillment, and fulfillment
// failures are logged but never surfaced to Stripe.
func (wc *WebhookController) HandleWebhook(c *gin.Context) {
	event, err := wc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		wc.Logger.Warn("Webhook signature verification failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			wc.Logger.Error("Failed to unmarshal checkout session", zap.String("event_id", event.ID), zap.Error(err))
			break
		}
		if _, err := wc.Fulfillment.Fulfill(c.Request.Context(), &sess); err != nil {
			wc.Logger.Error("Fulfillment failed",
				zap.String("session_id", sess.ID),
				zap.Error(err),
			)
		}
	default:
		wc.Logger.Info("Ignoring webhook event type", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
