package netopia

import "errors"

// ErrorKind identifies which category of failure an Error represents.
type ErrorKind string

const (
	KindMissingField       ErrorKind = "missing_field"
	KindInvalidPayment     ErrorKind = "invalid_payment"
	KindInvalidBrowser     ErrorKind = "invalid_browser"
	KindInvalidOrder       ErrorKind = "invalid_order"
	KindInvalidProducts    ErrorKind = "invalid_products"
	KindFailedPaymentStart ErrorKind = "failed_payment_start"
)

// Error is the error type returned by all netopia operations. The message is
// safe to surface to API clients verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is a netopia *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func missingField(fieldName string) *Error {
	return &Error{Kind: KindMissingField, Message: "missing required field: " + fieldName}
}

func invalidPayment(detail string) *Error {
	return &Error{Kind: KindInvalidPayment, Message: "invalid payment data: " + detail}
}

func invalidBrowser(detail string) *Error {
	return &Error{Kind: KindInvalidBrowser, Message: "invalid browser data: " + detail}
}

func invalidOrder(detail string) *Error {
	return &Error{Kind: KindInvalidOrder, Message: "invalid order data: " + detail}
}

func invalidProducts(detail string) *Error {
	return &Error{Kind: KindInvalidProducts, Message: "invalid product data: " + detail}
}

func failedPaymentStart(detail string) *Error {
	return &Error{Kind: KindFailedPaymentStart, Message: "failed to start payment: " + detail}
}
