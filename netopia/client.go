package netopia

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// API URLs
	apiSandboxURL    = "https://secure.sandbox.netopia-payments.com"
	apiProductionURL = "https://secure.mobilpay.ro/pay"

	// API Endpoints
	endpointPaymentStart = "/payment/card/start"

	// Default Values
	defaultLanguage = "ro"
	defaultTimeout  = 30 * time.Second
)

// Config carries the construction-time settings for a Netopia client.
// APIKey, NotifyURL and RedirectURL are required. Environment lookup of these
// values belongs at the process boundary, not here.
type Config struct {
	APIKey      string
	NotifyURL   string
	RedirectURL string
	Sandbox     bool

	// BaseURL overrides the endpoint resolved from Sandbox. Primarily for tests.
	BaseURL string
	// Timeout for gateway calls. Zero means the default of 30s.
	Timeout time.Duration
}

// Netopia builds and starts card payments against the Netopia gateway.
//
// A client accumulates payment, browser and order data through its setters,
// each validated on set, and sends them as one request via StartPayment.
// Instances are not safe for concurrent use; build one per payment attempt.
type Netopia struct {
	config  Config
	baseURL string
	client  *httpClient

	payment *PaymentData
	browser *BrowserData
	order   *OrderData
}

// New creates a Netopia client for the given config.
func New(cfg Config) (*Netopia, error) {
	if cfg.APIKey == "" {
		return nil, missingField("API key")
	}
	if cfg.NotifyURL == "" {
		return nil, missingField("Notify URL")
	}
	if cfg.RedirectURL == "" {
		return nil, missingField("Redirect URL")
	}

	baseURL := apiProductionURL
	if cfg.Sandbox {
		baseURL = apiSandboxURL
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	return &Netopia{
		config:  cfg,
		baseURL: baseURL,
		client:  newHTTPClient(baseURL, cfg.APIKey, cfg.Timeout),
	}, nil
}

// SetPaymentData validates and stores the card data for the next payment.
func (n *Netopia) SetPaymentData(raw any) error {
	data, err := ParsePayment(raw)
	if err != nil {
		return err
	}
	n.payment = data
	return nil
}

// SetBrowserInfo validates and stores the browser fingerprint for the next payment.
func (n *Netopia) SetBrowserInfo(raw any) error {
	data, err := ParseBrowser(raw)
	if err != nil {
		return err
	}
	n.browser = data
	return nil
}

// SetOrderData validates and stores the order, including its billing record
// and a non-empty product list.
func (n *Netopia) SetOrderData(raw any) error {
	data, err := ParseOrder(raw)
	if err != nil {
		return err
	}
	n.order = data
	return nil
}

// SetProductsData replaces the product list of the stored order. The order
// must already be set; other order fields are preserved. The stored order is
// left untouched when any product fails validation.
func (n *Netopia) SetProductsData(raw any) error {
	if n.order == nil {
		return missingField("Order data")
	}

	var items []json.RawMessage
	if err := decode(raw, &items); err != nil {
		return invalidProducts(err.Error())
	}
	if len(items) == 0 {
		return invalidProducts("product data is required")
	}

	products := make([]ProductData, 0, len(items))
	for _, item := range items {
		product, err := ParseProduct(item)
		if err != nil {
			return err
		}
		products = append(products, *product)
	}

	n.order.Products = products
	return nil
}

type paymentConfig struct {
	NotifyURL   string `json:"notifyUrl"`
	RedirectURL string `json:"redirectUrl"`
	Language    string `json:"language"`
}

type startPaymentRequest struct {
	Config      paymentConfig `json:"config"`
	Payment     *PaymentData  `json:"payment"`
	BrowserInfo *BrowserData  `json:"browserInfo"`
	Order       *OrderData    `json:"order"`
}

// StartPayment assembles the stored payment, browser and order data into one
// gateway request and posts it. All three slots must be set; no network call
// is made otherwise. On success the gateway's response body is returned as
// parsed, without further validation. The slots are not cleared afterwards, so
// StartPayment may be called again against whatever the slots currently hold.
func (n *Netopia) StartPayment(ctx context.Context) (map[string]any, error) {
	if n.payment == nil {
		return nil, missingField("Payment data")
	}
	if n.browser == nil {
		return nil, missingField("Browser info")
	}
	if n.order == nil {
		return nil, missingField("Order data")
	}

	payload := startPaymentRequest{
		Config: paymentConfig{
			NotifyURL:   n.config.NotifyURL,
			RedirectURL: n.config.RedirectURL,
			Language:    defaultLanguage,
		},
		Payment:     n.payment,
		BrowserInfo: n.browser,
		Order:       n.order,
	}

	resp, err := n.client.postJSON(ctx, endpointPaymentStart, payload)
	if err != nil {
		return nil, failedPaymentStart(gatewayErrorMessage(resp, err))
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, failedPaymentStart(fmt.Sprintf("failed to parse response: %v", err))
	}
	return body, nil
}

// gatewayErrorMessage extracts the human-readable message from a gateway error
// body when present, falling back to the transport error.
func gatewayErrorMessage(resp *httpResponse, err error) string {
	if resp != nil && len(resp.Body) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(resp.Body, &body); jsonErr == nil && body.Message != "" {
			return body.Message
		}
	}
	return err.Error()
}
