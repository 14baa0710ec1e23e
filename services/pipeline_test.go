package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/kfaist/baroque-print-api/models"
	"github.com/kfaist/baroque-print-api/repository"
	"github.com/kfaist/baroque-print-api/services"
)

// End-to-end path with local staging: initiate a checkout, then fulfill the
// completed session whose metadata references the staged image.
func TestCheckoutToFulfillmentPipeline(t *testing.T) {
	ctx := context.Background()
	catalog := repository.NewStaticCatalog()
	store := repository.NewMemoryImageStore(time.Hour)
	stager := services.NewLocalStager(store)
	gateway := &mockGateway{result: &models.CheckoutResult{SessionID: "cs_test_e2e", URL: "https://checkout.stripe.com/pay/cs_test_e2e"}}
	provider := &mockProvider{assetID: "ast_e2e", orderID: "ord_e2e"}

	checkout := services.NewCheckoutService(catalog, stager, gateway, zap.NewNop())
	fulfillment := services.NewFulfillmentService(catalog, stager, provider, zap.NewNop())

	result, svcErr := checkout.CreateCheckout(ctx, "standard-8x10", "aW1hZ2UtZTJl", "https://x/y")
	assert.Nil(t, svcErr)
	assert.Equal(t, "cs_test_e2e", result.SessionID)

	ref := gateway.lastRef
	assert.Equal(t, models.ImageRefHandle, ref.Kind)

	// the staged entry is retrievable by its correlation key
	staged, err := store.Get(ctx, ref.Value)
	assert.NoError(t, err)
	assert.Equal(t, "aW1hZ2UtZTJl", staged)

	sess := completedSession("standard-8x10", map[string]string{services.MetaImageKey: ref.Value})
	sess.ID = result.SessionID
	orderID, err := fulfillment.Fulfill(ctx, sess)

	assert.NoError(t, err)
	assert.Equal(t, "ord_e2e", orderID)
	assert.Equal(t, 1, provider.orderCalls)
	assert.Equal(t, "GLOBAL-CFPM-8x10-BK", provider.orders[0].SKU)
	assert.Equal(t, 1, provider.orders[0].Copies)
	assert.Equal(t, "aW1hZ2UtZTJl", provider.uploadedData[0])

	// consumed and removed
	_, err = store.Get(ctx, ref.Value)
	assert.ErrorIs(t, err, repository.ErrImageNotFound)
}
