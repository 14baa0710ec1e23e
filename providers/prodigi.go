package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kfaist/baroque-print-api/models"
)

// ProdigiProvider implements PrintProvider using the Prodigi v4 API.
type ProdigiProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewProdigiProvider creates a new ProdigiProvider.
func NewProdigiProvider(apiKey, baseURL string) *ProdigiProvider {
	return &ProdigiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- Prodigi API request/response structs ----

type prodigiAssetRequest struct {
	File string `json:"file"`
}

type prodigiAssetResponse struct {
	ID string `json:"id"`
}

type prodigiRecipient struct {
	Name    string `json:"name"`
	Address struct {
		Line1           string `json:"line1"`
		Line2           string `json:"line2"`
		PostalOrZipCode string `json:"postalOrZipCode"`
		TownOrCity      string `json:"townOrCity"`
		StateOrCounty   string `json:"stateOrCounty"`
		CountryCode     string `json:"countryCode"`
	} `json:"address"`
}

type prodigiAsset struct {
	PrintArea string `json:"printArea"`
	ID        string `json:"id"`
}

type prodigiItem struct {
	SKU        string            `json:"sku"`
	Copies     int               `json:"copies"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Assets     []prodigiAsset    `json:"assets"`
}

type prodigiOrderRequest struct {
	ShippingMethod string           `json:"shippingMethod"`
	Recipient      prodigiRecipient `json:"recipient"`
	Items          []prodigiItem    `json:"items"`
}

type prodigiOrderResponse struct {
	ID string `json:"id"`
}

// ---- PrintProvider implementation ----

// UploadAsset pushes a base64 image payload to Prodigi and returns the asset
// id used to reference it in orders.
func (p *ProdigiProvider) UploadAsset(ctx context.Context, imageData string) (string, error) {
	var resp prodigiAssetResponse
	if err := p.doRequest(ctx, http.MethodPost, "/v4.0/assets", prodigiAssetRequest{File: imageData}, &resp); err != nil {
		return "", fmt.Errorf("prodigi UploadAsset: %w", err)
	}

	if resp.ID == "" {
		return "", fmt.Errorf("prodigi UploadAsset: no asset id in response")
	}
	return resp.ID, nil
}

// CreateOrder submits a standard-shipping print order referencing a
// previously uploaded asset.
func (p *ProdigiProvider) CreateOrder(ctx context.Context, order *models.FulfillmentOrder) (string, error) {
	req := prodigiOrderRequest{
		ShippingMethod: "Standard",
		Recipient:      toProdigiRecipient(order.Recipient),
		Items: []prodigiItem{
			{
				SKU:        order.SKU,
				Copies:     order.Copies,
				Attributes: order.Attributes,
				Assets: []prodigiAsset{
					{PrintArea: "default", ID: order.AssetID},
				},
			},
		},
	}

	var resp prodigiOrderResponse
	if err := p.doRequest(ctx, http.MethodPost, "/v4.0/Orders", req, &resp); err != nil {
		return "", fmt.Errorf("prodigi CreateOrder: %w", err)
	}

	if resp.ID == "" {
		return "", fmt.Errorf("prodigi CreateOrder: no order id in response")
	}
	return resp.ID, nil
}

// ---- HTTP helper ----

func (p *ProdigiProvider) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("prodigi API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ---- Conversion helper ----

func toProdigiRecipient(r models.Recipient) prodigiRecipient {
	var out prodigiRecipient
	out.Name = r.Name
	out.Address.Line1 = r.Address.Line1
	out.Address.Line2 = r.Address.Line2
	out.Address.PostalOrZipCode = r.Address.PostalCode
	out.Address.TownOrCity = r.Address.City
	out.Address.StateOrCounty = r.Address.State
	out.Address.CountryCode = r.Address.Country
	return out
}
