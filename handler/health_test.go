package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mstgnz/netopia/infra/response"
)

func TestHealth(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	Health(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response should be a valid envelope: %v", err)
	}
	if !resp.Success {
		t.Error("health response should be successful")
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["status"] != "ok" {
		t.Errorf("expected status ok in data, got %v", resp.Data)
	}
}
