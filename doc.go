// Package netopia provides a Go client and HTTP service for starting card
// payments through the Netopia payment gateway. Card, browser fingerprint
// and order data are validated client-side before a single payment start
// request is sent, so malformed requests are rejected without a round trip
// to the gateway.
//
// # Overview
//
// The module has two layers:
//
//   - netopia/ is the gateway client: a builder with validating setters for
//     payment, browser and order data, and a StartPayment call that submits
//     the assembled request.
//   - The service layer (cmd/, router/, handler/, infra/) exposes the client
//     over HTTP with structured logging, request sanitization and OpenSearch
//     log shipping.
//
// # Quick Start
//
// Basic library usage:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/mstgnz/netopia/netopia"
//	)
//
//	func main() {
//	    client, err := netopia.New(netopia.Config{
//	        APIKey:      "your-api-key",
//	        NotifyURL:   "https://yourapp.com/notify",
//	        RedirectURL: "https://yourapp.com/return",
//	        Sandbox:     true,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := client.SetPaymentData(map[string]any{
//	        "account":    "4111111111111111",
//	        "expMonth":   12,
//	        "expYear":    2030,
//	        "secretCode": "123",
//	    }); err != nil {
//	        log.Fatal(err)
//	    }
//	    // ... SetBrowserInfo, SetOrderData, optionally SetProductsData
//
//	    result, err := client.StartPayment(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = result
//	}
//
// # HTTP API
//
// The service exposes a REST endpoint for integrations that prefer HTTP:
//
//	# Start a payment
//	POST /v1/payment/start
//	Content-Type: application/json
//
//	{
//	    "payment":     { ... },
//	    "browserInfo": { ... },
//	    "order":       { ... }
//	}
//
//	# Health check
//	GET /health
//
// # Error Handling
//
// Validation and gateway failures carry an ErrorKind (missing field, invalid
// payment, invalid browser, invalid order, invalid products, failed payment
// start) so callers can match on the category with netopia.IsKind instead of
// parsing messages.
//
// # Configuration
//
// The service is configured via environment variables:
//
//	APP_PORT=9999
//	APP_ENV=development
//	NETOPIA_API_KEY=your-api-key
//	NETOPIA_CONFIRM_URL=https://yourapp.com/notify
//	NETOPIA_RETURN_URL=https://yourapp.com/return
//	ENABLE_OPENSEARCH_LOGGING=false
//
// The sandbox gateway is used unless APP_ENV is production.
//
// # Logging
//
// Payment request logs are sanitized before shipping: card numbers, secret
// codes and credentials are masked. When OpenSearch logging is enabled,
// payment and system logs are indexed for search and retention.
//
// For more information, visit: https://github.com/mstgnz/netopia
package netopia
