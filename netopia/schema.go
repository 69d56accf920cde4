package netopia

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// Default Values
	defaultCurrency        = "RON"
	defaultBillingCountry  = 642
	defaultProductCategory = "No Category"
	defaultProductCode     = "No Code"
	defaultProductName     = "Unnamed Product"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report wire field names in diagnostics instead of Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Card expiry is checked against the clock, so the bound cannot be a static tag value
	_ = v.RegisterValidation("curyear", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= int64(time.Now().Year())
	})

	return v
}

// PaymentData holds the card details for a payment. All fields are required.
type PaymentData struct {
	Account    string `json:"account" validate:"required"`
	ExpMonth   int    `json:"expMonth" validate:"required,min=1,max=12"`
	ExpYear    int    `json:"expYear" validate:"required,curyear"`
	SecretCode string `json:"secretCode" validate:"required"`
}

// BrowserData holds the browser fingerprint the gateway uses for 3DS risk
// checks. All fields are required; Mobile is a pointer so that an explicit
// false is distinguishable from a missing field.
type BrowserData struct {
	UserAgent    string `json:"userAgent" validate:"required"`
	ColorDepth   int    `json:"colorDepth" validate:"required"`
	Language     string `json:"language" validate:"required"`
	ScreenWidth  int    `json:"screenWidth" validate:"required"`
	ScreenHeight int    `json:"screenHeight" validate:"required"`
	TimeZone     string `json:"timeZone" validate:"required"`
	Mobile       *bool  `json:"mobile" validate:"required"`
}

// ProductData describes one order line. Every field is optional and defaulted,
// so parsing only fails on wrong types or negative amounts.
type ProductData struct {
	Category string  `json:"category"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" validate:"gte=0"`
	VAT      float64 `json:"vat" validate:"gte=0"`
}

// BillingData holds the buyer details attached to an order.
type BillingData struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	City      string `json:"city,omitempty"`
	Country   int    `json:"country"`
}

// OrderData describes the order a payment is taken for, including the billing
// record and a non-empty product list.
type OrderData struct {
	PosSignature string        `json:"posSignature" validate:"required"`
	Amount       float64       `json:"amount" validate:"required,gt=0"`
	Currency     string        `json:"currency"`
	OrderID      string        `json:"orderID" validate:"required"`
	Billing      BillingData   `json:"billing"`
	Products     []ProductData `json:"products" validate:"required,min=1,dive"`
}

// ParsePayment validates raw card data and returns the typed result.
func ParsePayment(raw any) (*PaymentData, error) {
	var data PaymentData
	if err := decode(raw, &data); err != nil {
		return nil, invalidPayment(err.Error())
	}
	if err := validate.Struct(&data); err != nil {
		return nil, invalidPayment(validationDetail(err))
	}
	return &data, nil
}

// ParseBrowser validates raw browser fingerprint data and returns the typed result.
func ParseBrowser(raw any) (*BrowserData, error) {
	var data BrowserData
	if err := decode(raw, &data); err != nil {
		return nil, invalidBrowser(err.Error())
	}
	if err := validate.Struct(&data); err != nil {
		return nil, invalidBrowser(validationDetail(err))
	}
	return &data, nil
}

// ParseOrder validates raw order data, recursively validating the billing
// record and every product, and applies the currency, country and product
// defaults before checking bounds.
func ParseOrder(raw any) (*OrderData, error) {
	var data OrderData
	if err := decode(raw, &data); err != nil {
		return nil, invalidOrder(err.Error())
	}
	data.applyDefaults()
	if err := validate.Struct(&data); err != nil {
		return nil, invalidOrder(validationDetail(err))
	}
	return &data, nil
}

// ParseProduct validates a single raw product and fills in defaults for every
// omitted field.
func ParseProduct(raw any) (*ProductData, error) {
	var data ProductData
	if err := decode(raw, &data); err != nil {
		return nil, invalidProducts(err.Error())
	}
	data.applyDefaults()
	if err := validate.Struct(&data); err != nil {
		return nil, invalidProducts(validationDetail(err))
	}
	return &data, nil
}

func (o *OrderData) applyDefaults() {
	if o.Currency == "" {
		o.Currency = defaultCurrency
	}
	if o.Billing.Country == 0 {
		o.Billing.Country = defaultBillingCountry
	}
	for i := range o.Products {
		o.Products[i].applyDefaults()
	}
}

func (p *ProductData) applyDefaults() {
	if p.Category == "" {
		p.Category = defaultProductCategory
	}
	if p.Code == "" {
		p.Code = defaultProductCode
	}
	if p.Name == "" {
		p.Name = defaultProductName
	}
}

// decode coerces caller-supplied data of unknown shape into dst via its JSON
// representation. Raw JSON is decoded directly; anything else is round-tripped.
func decode(raw, dst any) error {
	switch v := raw.(type) {
	case nil:
		return errors.New("no data provided")
	case json.RawMessage:
		return json.Unmarshal(v, dst)
	case []byte:
		return json.Unmarshal(v, dst)
	default:
		buf, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		return json.Unmarshal(buf, dst)
	}
}

// validationDetail flattens a validator error into a single diagnostic naming
// each failing field by its wire path.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the top-level struct name so the path matches the wire shape
		path := fe.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on '%s=%s'", path, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", path, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
