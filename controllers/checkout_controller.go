package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kfaist/baroque-print-api/repository"
	"github.com/kfaist/baroque-print-api/services"
)

// CredentialStatus reports which external credentials are configured. Only
// booleans ever leave the process, never the values.
type CredentialStatus struct {
	Stripe  bool `json:"stripe"`
	Webhook bool `json:"webhook"`
	Prodigi bool `json:"prodigi"`
}

// CheckoutController handles the storefront-facing endpoints: service status,
// product listing and checkout initiation.
type CheckoutController struct {
	Checkout services.CheckoutService
	Catalog  repository.CatalogRepository
	Creds    CredentialStatus
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(checkout services.CheckoutService, catalog repository.CatalogRepository, creds CredentialStatus) *CheckoutController {
	return &CheckoutController{
		Checkout: checkout,
		Catalog:  catalog,
		Creds:    creds,
	}
}

// Status handles GET /
func (cc *CheckoutController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "Baroque Print API",
		"products": cc.Catalog.IDs(),
		"config":   cc.Creds,
	})
}

// ListProducts handles GET /products
func (cc *CheckoutController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.List())
}

type createCheckoutRequest struct {
	ProductID string `json:"productId"`
	ImageData string `json:"imageData"`
	ReturnURL string `json:"returnUrl"`
}

// CreateCheckout handles POST /create-checkout
func (cc *CheckoutController) CreateCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, svcErr := cc.Checkout.CreateCheckout(c.Request.Context(), req.ProductID, req.ImageData, req.ReturnURL)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}
