package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kfaist/baroque-print-api/controllers"
	"github.com/kfaist/baroque-print-api/middleware"
)

// RegisterRoutes wires the HTTP surface. The browser-facing checkout endpoint
// is rate limited per IP; the webhook is not, since Stripe authenticates via
// signature and throttling it would drop payment notifications. The webhook
// handler reads the raw body itself, so no body-parsing middleware runs
// before it.
func RegisterRoutes(r *gin.Engine, cc *controllers.CheckoutController, wc *controllers.WebhookController) {
	r.GET("/", cc.Status)
	r.GET("/products", cc.ListProducts)

	r.POST("/create-checkout", middleware.RateLimitMiddleware(), middleware.BodyLimit(middleware.MaxImageBodyBytes), cc.CreateCheckout)
	r.POST("/webhook", wc.HandleWebhook)
}
