package models

// ImageRefKind tells the fulfillment path how to interpret an image reference
// carried in checkout-session metadata.
type ImageRefKind string

const (
	// ImageRefAsset references an asset already uploaded to Prodigi.
	ImageRefAsset ImageRefKind = "asset"
	// ImageRefHandle references an image held in the local image store until
	// fulfillment consumes it.
	ImageRefHandle ImageRefKind = "handle"
)

// ImageRef is the result of staging an uploaded image: either a Prodigi asset
// id or an internal store handle, depending on the configured strategy.
type ImageRef struct {
	Kind  ImageRefKind
	Value string
}
