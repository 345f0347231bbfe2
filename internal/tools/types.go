// Package tools defines the tool catalog exposed over MCP, the six tool
// handlers, and the dispatcher that routes calls to them.
package tools

import (
	"context"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
)

// Param is one entry of a tool's input shape
type Param struct {
	Name        string
	Type        string // JSON Schema type
	Description string
	Required    bool
}

// Descriptor is the static, advertised part of a tool
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
}

// InputSchema renders the params as a JSON Schema object
func (d Descriptor) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Params))
	required := make([]string, 0, len(d.Params))

	for _, p := range d.Params {
		properties[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// RequiredParams lists the names of required params in declaration order
func (d Descriptor) RequiredParams() []string {
	var names []string
	for _, p := range d.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Tool binds a descriptor to the handler that serves it. Execute never
// returns an error: failures come back as a failed models.Result.
type Tool struct {
	Descriptor
	Execute func(ctx context.Context, input map[string]any) models.Result
}

// DocumentStore is the slice of Cosmos DB container operations the item tools need.
type DocumentStore interface {
	ReadItem(ctx context.Context, containerName, id, partitionKey string) (map[string]any, error)
	ReplaceItem(ctx context.Context, containerName, id, partitionKey string, item map[string]any) (map[string]any, error)
	CreateItem(ctx context.Context, containerName, partitionKey string, item map[string]any) (map[string]any, error)
	QueryItems(ctx context.Context, containerName, query string, params []models.QueryParameter, partitionKey string) ([]any, error)
}

// SecretStore fetches secret values by name.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// CertificateStore fetches certificate expiry timestamps by name.
type CertificateStore interface {
	GetCertificateExpiry(ctx context.Context, name string) (*time.Time, error)
}
