package opensearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForLog(t *testing.T) {
	input := map[string]any{
		"payment": map[string]any{
			"account":    "4111111111111111",
			"expMonth":   12,
			"secretCode": "123",
		},
		"order": map[string]any{
			"orderID": "ORD1",
			"products": []any{
				map[string]any{"name": "Widget", "price": 10.5},
			},
		},
	}

	out := SanitizeForLog(input)

	payment := out["payment"].(map[string]any)
	assert.Equal(t, "***", payment["account"])
	assert.Equal(t, "***", payment["secretCode"])
	assert.Equal(t, 12, payment["expMonth"])

	order := out["order"].(map[string]any)
	assert.Equal(t, "ORD1", order["orderID"])
	products := order["products"].([]any)
	assert.Equal(t, "Widget", products[0].(map[string]any)["name"])

	// input must not be mutated
	assert.Equal(t, "4111111111111111", input["payment"].(map[string]any)["account"])
}

func TestSanitizeForLogNil(t *testing.T) {
	assert.Nil(t, SanitizeForLog(nil))
}

func TestLoggerDisabled(t *testing.T) {
	logger := NewLogger(&Client{config: newTestConfig(false)})

	assert.NoError(t, logger.LogPaymentRequest(context.Background(), PaymentLog{}))
	assert.NoError(t, logger.IndexSystemLog(context.Background(), map[string]any{"level": "info"}))
}
