// Package netopia implements a client for starting card payments against the
// Netopia payment gateway.
//
// The client is a builder: card, browser fingerprint and order data are
// supplied through setters that validate on set, and StartPayment assembles
// the three into a single gateway request once all are present.
//
// # Basic Usage
//
//	client, err := netopia.New(netopia.Config{
//	    APIKey:      "your-api-key",
//	    NotifyURL:   "https://example.com/notify",
//	    RedirectURL: "https://example.com/return",
//	    Sandbox:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.SetPaymentData(payment); err != nil { ... }
//	if err := client.SetBrowserInfo(browser); err != nil { ... }
//	if err := client.SetOrderData(order); err != nil { ... }
//
//	result, err := client.StartPayment(ctx)
//
// # Validation
//
// Each data category has a standalone Parse function (ParsePayment,
// ParseBrowser, ParseOrder, ParseProduct) that accepts data of unknown shape,
// applies the documented defaults and returns a typed result or a category
// error. Failures carry an ErrorKind so callers can match on the category
// with IsKind without parsing messages.
//
// No state is persisted and no request is retried; a failed StartPayment is
// simply reported to the caller.
package netopia
