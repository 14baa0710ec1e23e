package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kfaist/baroque-print-api/models"
	"github.com/kfaist/baroque-print-api/providers"
	"github.com/kfaist/baroque-print-api/repository"
)

// ImageStager makes an uploaded image addressable for later retrieval at
// fulfillment time. Exactly one implementation is active per deployment.
type ImageStager interface {
	// Stage accepts a base64 image payload and returns a reference that fits
	// in checkout-session metadata. Failure aborts checkout initiation.
	Stage(ctx context.Context, imageData string) (models.ImageRef, error)
	// Resolve returns the payload for a handle reference. A key that was
	// never staged, expired, or was already discarded returns
	// repository.ErrImageNotFound.
	Resolve(ctx context.Context, key string) (string, error)
	// Discard removes a consumed handle after fulfillment has been
	// dispatched.
	Discard(ctx context.Context, key string) error
}

// prodigiStager pre-uploads images to Prodigi at checkout time; the reference
// is the Prodigi asset id and nothing is held locally.
type prodigiStager struct {
	provider providers.PrintProvider
}

func NewProdigiStager(provider providers.PrintProvider) ImageStager {
	return &prodigiStager{provider: provider}
}

func (s *prodigiStager) Stage(ctx context.Context, imageData string) (models.ImageRef, error) {
	assetID, err := s.provider.UploadAsset(ctx, imageData)
	if err != nil {
		return models.ImageRef{}, err
	}
	return models.ImageRef{Kind: models.ImageRefAsset, Value: assetID}, nil
}

func (s *prodigiStager) Resolve(ctx context.Context, key string) (string, error) {
	return "", fmt.Errorf("asset references are not locally resolvable")
}

func (s *prodigiStager) Discard(ctx context.Context, key string) error { return nil }

// localStager buffers images in an ImageStore under a generated key; the
// upload to Prodigi is deferred until fulfillment.
type localStager struct {
	store repository.ImageStore
}

func NewLocalStager(store repository.ImageStore) ImageStager {
	return &localStager{store: store}
}

func (s *localStager) Stage(ctx context.Context, imageData string) (models.ImageRef, error) {
	key := uuid.NewString()
	if err := s.store.Put(ctx, key, imageData); err != nil {
		return models.ImageRef{}, err
	}
	return models.ImageRef{Kind: models.ImageRefHandle, Value: key}, nil
}

func (s *localStager) Resolve(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, key)
}

func (s *localStager) Discard(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
