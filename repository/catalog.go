package repository

import (
	"github.com/kfaist/baroque-print-api/models"
)

// CatalogRepository exposes the read-only product catalog.
type CatalogRepository interface {
	Lookup(productID string) (*models.CatalogEntry, bool)
	List() []models.ProductSummary
	IDs() []string
}

type staticCatalog struct {
	order   []string
	entries map[string]models.CatalogEntry
}

// NewStaticCatalog returns the fixed print-product catalog. Prices are in
// cents; SKUs are Prodigi catalog SKUs.
func NewStaticCatalog() CatalogRepository {
	entries := []models.CatalogEntry{
		{ID: "postcard-set", Name: "Postcard Set (6 cards)", Price: 2500, ProdigiSKU: "GLOBAL-PHO-4x6-PRO", Copies: 6},
		{ID: "mini-print", Name: "Mini Art Print 5×7\"", Price: 1800, ProdigiSKU: "GLOBAL-PHO-5x7-PRO"},
		{ID: "poster-8x10", Name: "Glossy Photo Print 8×10\"", Price: 2900, ProdigiSKU: "GLOBAL-PHO-8x10-PRO"},
		{ID: "poster-11x14", Name: "Glossy Photo Print 11×14\"", Price: 3900, ProdigiSKU: "GLOBAL-PHO-11x14-PRO"},
		{ID: "poster-18x24", Name: "Fine Art Poster 18×24\"", Price: 5500, ProdigiSKU: "GLOBAL-FAP-18x24"},
		{ID: "standard-8x10", Name: "Standard Giclée 8×10\" Framed", Price: 12500, ProdigiSKU: "GLOBAL-FAP-8x10", FrameSKU: "GLOBAL-CFPM-8x10-BK"},
		{ID: "standard-16x20", Name: "Standard Giclée 16×20\" Framed", Price: 22500, ProdigiSKU: "GLOBAL-FAP-16x20", FrameSKU: "GLOBAL-CFPM-16x20-BK"},
		{ID: "gallery-16x20", Name: "Gallery Giclée + Gold Frame 16×20\"", Price: 35000, ProdigiSKU: "GLOBAL-FAP-16x20", FrameSKU: "GLOBAL-AFPM-16x20-GD"},
		{ID: "gallery-24x36", Name: "Gallery Giclée + Gold Frame 24×36\"", Price: 55000, ProdigiSKU: "GLOBAL-FAP-24x36", FrameSKU: "GLOBAL-AFPM-24x36-GD"},
		{ID: "collector-16", Name: "Collector Metal Print 16×16\"", Price: 39500, ProdigiSKU: "GLOBAL-ALU-16x16"},
		{ID: "collector-24", Name: "Collector Metal Print 24×24\"", Price: 59500, ProdigiSKU: "GLOBAL-ALU-24x24"},
		{ID: "museum-24x36", Name: "Museum Giclée + Ornate Frame 24×36\"", Price: 85000, ProdigiSKU: "GLOBAL-FAP-24x36", FrameSKU: "GLOBAL-CFPM-24x36-GD"},
	}

	c := &staticCatalog{entries: make(map[string]models.CatalogEntry, len(entries))}
	for _, e := range entries {
		c.order = append(c.order, e.ID)
		c.entries[e.ID] = e
	}
	return c
}

func (c *staticCatalog) Lookup(productID string) (*models.CatalogEntry, bool) {
	e, ok := c.entries[productID]
	if !ok {
		return nil, false
	}
	return &e, true
}

// List returns the catalog in insertion order with prices converted to major
// currency units for client display.
func (c *staticCatalog) List() []models.ProductSummary {
	out := make([]models.ProductSummary, 0, len(c.order))
	for _, id := range c.order {
		e := c.entries[id]
		out = append(out, models.ProductSummary{
			ID:    e.ID,
			Name:  e.Name,
			Price: float64(e.Price) / 100,
		})
	}
	return out
}

func (c *staticCatalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}
