package providers

import (
	"context"

	"github.com/kfaist/baroque-print-api/models"
)

// PrintProvider abstracts the print-on-demand API so services can be tested
// against mocks.
type PrintProvider interface {
	// UploadAsset ingests a base64 image payload and returns the provider's
	// asset id for later order submission.
	UploadAsset(ctx context.Context, imageData string) (string, error)
	// CreateOrder submits a fulfillment order and returns the provider's
	// order id.
	CreateOrder(ctx context.Context, order *models.FulfillmentOrder) (string, error)
}
