package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kfaist/baroque-print-api/models"
	"github.com/kfaist/baroque-print-api/repository"
	"github.com/kfaist/baroque-print-api/services"
)

func TestProdigiStagerStage(t *testing.T) {
	provider := &mockProvider{assetID: "ast_9"}
	stager := services.NewProdigiStager(provider)

	ref, err := stager.Stage(context.Background(), "aW1hZ2U=")

	assert.NoError(t, err)
	assert.Equal(t, models.ImageRefAsset, ref.Kind)
	assert.Equal(t, "ast_9", ref.Value)
	assert.Equal(t, 1, provider.uploadCalls)
}

func TestProdigiStagerStageFailure(t *testing.T) {
	provider := &mockProvider{uploadErr: errors.New("bad image")}
	stager := services.NewProdigiStager(provider)

	_, err := stager.Stage(context.Background(), "aW1hZ2U=")
	assert.Error(t, err)
}

func TestLocalStagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryImageStore(time.Hour)
	stager := services.NewLocalStager(store)

	ref, err := stager.Stage(ctx, "aW1hZ2U=")
	assert.NoError(t, err)
	assert.Equal(t, models.ImageRefHandle, ref.Kind)
	assert.NotEmpty(t, ref.Value)

	data, err := stager.Resolve(ctx, ref.Value)
	assert.NoError(t, err)
	assert.Equal(t, "aW1hZ2U=", data)

	// resolve is repeatable until the handle is discarded
	data, err = stager.Resolve(ctx, ref.Value)
	assert.NoError(t, err)
	assert.Equal(t, "aW1hZ2U=", data)

	assert.NoError(t, stager.Discard(ctx, ref.Value))

	_, err = stager.Resolve(ctx, ref.Value)
	assert.ErrorIs(t, err, repository.ErrImageNotFound)
}

func TestLocalStagerUniqueKeys(t *testing.T) {
	ctx := context.Background()
	stager := services.NewLocalStager(repository.NewMemoryImageStore(time.Hour))

	a, err := stager.Stage(ctx, "first")
	assert.NoError(t, err)
	b, err := stager.Stage(ctx, "second")
	assert.NoError(t, err)

	assert.NotEqual(t, a.Value, b.Value)
}
