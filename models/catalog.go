package models

// CatalogEntry describes a sellable print product and how it maps onto the
// Prodigi catalog. Entries are defined at process start and never mutated.
type CatalogEntry struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Price      int64             `json:"price"` // minor currency units (cents)
	ProdigiSKU string            `json:"prodigi_sku"`
	FrameSKU   string            `json:"frame_sku,omitempty"`
	Copies     int               `json:"copies,omitempty"` // 0 means 1
	Attributes map[string]string `json:"attributes,omitempty"`
}

// FulfillmentSKU returns the SKU submitted to Prodigi: the frame SKU when the
// product ships framed, otherwise the base print SKU.
func (e *CatalogEntry) FulfillmentSKU() string {
	if e.FrameSKU != "" {
		return e.FrameSKU
	}
	return e.ProdigiSKU
}

// CopyCount returns the number of copies printed per order.
func (e *CatalogEntry) CopyCount() int {
	if e.Copies > 0 {
		return e.Copies
	}
	return 1
}

// ProductSummary is the client-facing product listing shape. Price is in
// major currency units (dollars), unlike CatalogEntry.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
