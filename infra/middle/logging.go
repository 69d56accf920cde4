package middle

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mstgnz/netopia/infra/opensearch"
)

// responseWriter wraps http.ResponseWriter to capture response data
type responseWriter struct {
	http.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	startTime  time.Time
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		body:           &bytes.Buffer{},
		statusCode:     http.StatusOK,
		startTime:      time.Now(),
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

// PaymentLoggingMiddleware ships a sanitized record of every payment request
// and its response to OpenSearch.
func PaymentLoggingMiddleware(logger *opensearch.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isPaymentEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
				r.Header.Set("X-Request-ID", requestID)
			}

			var requestBody []byte
			if r.Body != nil {
				requestBody, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			entry := opensearch.PaymentLog{
				Timestamp: rw.startTime,
				Method:    r.Method,
				Endpoint:  r.URL.Path,
				RequestID: requestID,
				UserAgent: r.UserAgent(),
				ClientIP:  GetClientIP(r),
				Request: opensearch.RequestLog{
					Body: sanitizeBody(requestBody),
				},
				Response: opensearch.ResponseLog{
					StatusCode:       rw.statusCode,
					Body:             rw.body.String(),
					ProcessingTimeMs: time.Since(rw.startTime).Milliseconds(),
				},
				PaymentInfo: extractPaymentInfo(requestBody),
			}

			if rw.statusCode >= 400 {
				entry.Error = extractErrorInfo(rw.body.Bytes())
			}

			// Ship asynchronously so logging never delays the response
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = logger.LogPaymentRequest(ctx, entry)
			}()
		})
	}
}

func isPaymentEndpoint(path string) bool {
	return strings.Contains(path, "/payment")
}

// sanitizeBody masks card fields before the body is logged. Bodies that do
// not decode as a JSON object are dropped rather than logged raw.
func sanitizeBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	sanitized, err := json.Marshal(opensearch.SanitizeForLog(data))
	if err != nil {
		return ""
	}
	return string(sanitized)
}

func extractPaymentInfo(requestBody []byte) opensearch.PaymentInfo {
	var req struct {
		Order struct {
			OrderID  string  `json:"orderID"`
			Amount   float64 `json:"amount"`
			Currency string  `json:"currency"`
			Billing  struct {
				Email string `json:"email"`
			} `json:"billing"`
		} `json:"order"`
	}
	if err := json.Unmarshal(requestBody, &req); err != nil {
		return opensearch.PaymentInfo{}
	}
	return opensearch.PaymentInfo{
		OrderID:       req.Order.OrderID,
		Amount:        req.Order.Amount,
		Currency:      req.Order.Currency,
		CustomerEmail: req.Order.Billing.Email,
	}
}

func extractErrorInfo(responseBody []byte) opensearch.ErrorInfo {
	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(responseBody, &resp); err != nil {
		return opensearch.ErrorInfo{}
	}
	return opensearch.ErrorInfo{
		Kind:    resp.Message,
		Message: resp.Error,
	}
}
