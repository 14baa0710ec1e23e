package models

// Address is the shipping destination collected by Stripe Checkout.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Recipient is the person a print order ships to.
type Recipient struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// FulfillmentOrder is constructed on demand from a completed checkout
// session's metadata and shipping payload. It is submitted once and never
// persisted.
type FulfillmentOrder struct {
	SKU        string            `json:"sku"`
	Copies     int               `json:"copies"`
	Attributes map[string]string `json:"attributes,omitempty"`
	AssetID    string            `json:"asset_id"`
	Recipient  Recipient         `json:"recipient"`
}

// CheckoutResult is returned to the client after a checkout session has been
// created; the client redirects the browser to URL to collect payment.
type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
