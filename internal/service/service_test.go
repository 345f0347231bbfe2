package service

import (
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://acct.documents.azure.com:443/"

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte("not-a-real-account-key"))
}

func TestMapAzureError(t *testing.T) {
	notFound := &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "NotFound"}
	err := mapAzureError(notFound, "item", "42")
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.Equal(t, `item "42": not found`, err.Error())

	forbidden := &azcore.ResponseError{StatusCode: http.StatusForbidden}
	assert.Same(t, forbidden, mapAzureError(forbidden, "secret", "x"))

	plain := errors.New("dial tcp: timeout")
	assert.Equal(t, plain, mapAzureError(plain, "item", "1"))
}

func TestNewCosmosServiceRequiresCredential(t *testing.T) {
	_, err := NewCosmosService(CosmosConfig{Endpoint: testEndpoint, Database: "todos"})
	assert.Error(t, err)
}

func TestNewCosmosServiceWithKey(t *testing.T) {
	svc, err := NewCosmosService(CosmosConfig{
		Endpoint:          testEndpoint,
		Key:               testKey(),
		Database:          "todos",
		DefaultContainer:  "tasks",
		PartitionKeyField: "id",
	})
	require.NoError(t, err)
	assert.Equal(t, "todos", svc.Database())

	c, err := svc.container("")
	require.NoError(t, err)
	assert.Equal(t, "tasks", c.ID())
}

func TestItemPartitionKey(t *testing.T) {
	svc := &CosmosService{partitionKeyField: "tenant"}

	tests := []struct {
		name     string
		explicit string
		item     map[string]any
		want     azcosmos.PartitionKey
		wantErr  bool
	}{
		{name: "explicit wins", explicit: "t1", item: map[string]any{"tenant": "t2"}, want: azcosmos.NewPartitionKeyString("t1")},
		{name: "string field", item: map[string]any{"tenant": "t2"}, want: azcosmos.NewPartitionKeyString("t2")},
		{name: "number field", item: map[string]any{"tenant": float64(7)}, want: azcosmos.NewPartitionKeyNumber(7)},
		{name: "bool field", item: map[string]any{"tenant": true}, want: azcosmos.NewPartitionKeyBool(true)},
		{name: "missing field", item: map[string]any{"id": "1"}, wantErr: true},
		{name: "object field", item: map[string]any{"tenant": map[string]any{}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.itemPartitionKey(tt.explicit, tt.item)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidArguments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyOrID(t *testing.T) {
	assert.Equal(t, azcosmos.NewPartitionKeyString("pk"), keyOrID("pk", "id"))
	assert.Equal(t, azcosmos.NewPartitionKeyString("id"), keyOrID("", "id"))
}

func TestDecodeItem(t *testing.T) {
	item, err := decodeItem([]byte(`{"id":"1","n":2}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "1", "n": float64(2)}, item)

	item, err = decodeItem(nil)
	require.NoError(t, err)
	assert.Nil(t, item)

	_, err = decodeItem([]byte(`[`))
	assert.Error(t, err)
}
