package models_test

import (
	"encoding/json"
	"testing"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSON(t *testing.T) {
	tests := []struct {
		name   string
		result models.Result
		want   string
	}{
		{
			name:   "item",
			result: models.Succeeded("ok", models.PayloadItem, map[string]any{"id": "1"}),
			want:   `{"success":true,"message":"ok","item":{"id":"1"}}`,
		},
		{
			name:   "empty items",
			result: models.Succeeded("ok", models.PayloadItems, nil),
			want:   `{"success":true,"message":"ok","items":[]}`,
		},
		{
			name:   "empty secret",
			result: models.Succeeded("ok", models.PayloadSecret, ""),
			want:   `{"success":true,"message":"ok","secret":""}`,
		},
		{
			name:   "zero days",
			result: models.Succeeded("ok", models.PayloadDaysToExpiry, 0),
			want:   `{"success":true,"message":"ok","daysToExpiry":0}`,
		},
		{
			name:   "failure drops payload",
			result: models.Result{Success: false, Message: "Failed to get item: boom", Kind: models.PayloadItem, Payload: "x"},
			want:   `{"success":false,"message":"Failed to get item: boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestResultText(t *testing.T) {
	text, err := models.Failed("nope").Text()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"success\": false,\n  \"message\": \"nope\"\n}", text)
}
