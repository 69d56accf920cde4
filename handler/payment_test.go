package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mstgnz/netopia/infra/response"
	"github.com/mstgnz/netopia/netopia"
)

func newGatewayStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(baseURL string) netopia.Config {
	return netopia.Config{
		APIKey:      "test-api-key",
		NotifyURL:   "https://example.com/notify",
		RedirectURL: "https://example.com/return",
		Sandbox:     true,
		BaseURL:     baseURL,
	}
}

func validStartBody() string {
	expYear := time.Now().Year() + 1
	return `{
		"payment": {"account":"4111111111111111","expMonth":12,"expYear":` + jsonInt(expYear) + `,"secretCode":"123"},
		"browserInfo": {"userAgent":"UA","colorDepth":24,"language":"en","screenWidth":1920,"screenHeight":1080,"timeZone":"UTC","mobile":false},
		"order": {"posSignature":"SIG","amount":10.5,"orderID":"ORD1","billing":{"firstName":"A","lastName":"B","email":"a@b.com","phone":"123"},"products":[{"name":"Widget"}]}
	}`
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func doStartPayment(t *testing.T, h *PaymentHandler, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/v1/payment/start", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.StartPayment(w, r)

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response should be a valid envelope: %v", err)
	}
	return w, resp
}

func TestStartPaymentSuccess(t *testing.T) {
	gateway := newGatewayStub(t, http.StatusOK, `{"status":1,"payment":{"paymentURL":"https://secure.example/pay/abc"}}`)
	h := NewPaymentHandler(testConfig(gateway.URL))

	w, resp := doStartPayment(t, h, validStartBody())

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !resp.Success {
		t.Error("response should be successful")
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["status"] != float64(1) {
		t.Errorf("gateway body should pass through, got %v", resp.Data)
	}
}

func TestStartPaymentWithProductsOverlay(t *testing.T) {
	var gotBody []byte
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"status":1}`))
	}))
	defer gateway.Close()

	h := NewPaymentHandler(testConfig(gateway.URL))

	body := strings.TrimSuffix(validStartBody(), "\n\t}") + `,
		"products": [{"name":"Gadget","price":5}]
	}`
	w, _ := doStartPayment(t, h, body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Order struct {
			Products []map[string]any `json:"products"`
		} `json:"order"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("failed to decode gateway payload: %v", err)
	}
	if len(payload.Order.Products) != 1 || payload.Order.Products[0]["name"] != "Gadget" {
		t.Errorf("products section should replace order products, got %v", payload.Order.Products)
	}
}

func TestStartPaymentValidationError(t *testing.T) {
	gateway := newGatewayStub(t, http.StatusOK, `{"status":1}`)
	h := NewPaymentHandler(testConfig(gateway.URL))

	body := strings.Replace(validStartBody(), `"expMonth":12`, `"expMonth":13`, 1)
	w, resp := doStartPayment(t, h, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(resp.Error, "invalid payment data") {
		t.Errorf("error should carry the validation detail, got %q", resp.Error)
	}
}

func TestStartPaymentMissingSection(t *testing.T) {
	gateway := newGatewayStub(t, http.StatusOK, `{"status":1}`)
	h := NewPaymentHandler(testConfig(gateway.URL))

	body := `{"payment": {"account":"4111111111111111","expMonth":12,"expYear":` + jsonInt(time.Now().Year()+1) + `,"secretCode":"123"}}`
	w, resp := doStartPayment(t, h, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(resp.Error, "Browser info") {
		t.Errorf("error should name the missing category, got %q", resp.Error)
	}
}

func TestStartPaymentGatewayDecline(t *testing.T) {
	gateway := newGatewayStub(t, http.StatusPaymentRequired, `{"message":"card declined"}`)
	h := NewPaymentHandler(testConfig(gateway.URL))

	w, resp := doStartPayment(t, h, validStartBody())

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
	if resp.Error != "failed to start payment: card declined" {
		t.Errorf("error should carry the gateway message, got %q", resp.Error)
	}
}

func TestStartPaymentMalformedBody(t *testing.T) {
	gateway := newGatewayStub(t, http.StatusOK, `{"status":1}`)
	h := NewPaymentHandler(testConfig(gateway.URL))

	w, _ := doStartPayment(t, h, "not json")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestStartPaymentUnconfiguredGateway(t *testing.T) {
	h := NewPaymentHandler(netopia.Config{})

	w, _ := doStartPayment(t, h, validStartBody())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}
