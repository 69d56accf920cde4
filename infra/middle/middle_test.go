package middle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for single",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			remoteAddr: "10.0.0.1:1234",
			want:       "203.0.113.5",
		},
		{
			name:       "x-forwarded-for multiple takes first",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			remoteAddr: "10.0.0.1:1234",
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:1234",
			want:       "198.51.100.7",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "192.0.2.9:5678",
			want:       "192.0.2.9",
		},
		{
			name:       "ipv6 localhost",
			remoteAddr: "[::1]:5678",
			want:       "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetClientIP(r))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRequestValidationMiddleware(t *testing.T) {
	handler := RequestValidationMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("json accepted", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/payment/start", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("form rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/payment/start", strings.NewReader("a=b"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("get passes without content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	handler := PanicRecoveryMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestSanitizeBody(t *testing.T) {
	body := []byte(`{"payment":{"account":"4111111111111111","expMonth":12}}`)

	sanitized := sanitizeBody(body)
	assert.Contains(t, sanitized, `"***"`)
	assert.NotContains(t, sanitized, "4111111111111111")

	assert.Empty(t, sanitizeBody(nil))
	assert.Empty(t, sanitizeBody([]byte("not json")))
}

func TestExtractPaymentInfo(t *testing.T) {
	body := []byte(`{"order":{"orderID":"ORD1","amount":10.5,"currency":"RON","billing":{"email":"a@b.com"}}}`)

	info := extractPaymentInfo(body)
	assert.Equal(t, "ORD1", info.OrderID)
	assert.Equal(t, 10.5, info.Amount)
	assert.Equal(t, "RON", info.Currency)
	assert.Equal(t, "a@b.com", info.CustomerEmail)

	assert.Empty(t, extractPaymentInfo([]byte("not json")).OrderID)
}

func TestIsPaymentEndpoint(t *testing.T) {
	assert.True(t, isPaymentEndpoint("/v1/payment/start"))
	assert.False(t, isPaymentEndpoint("/health"))
}
