package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cortexai/cosmosdb-mcp/internal/models"
)

// CosmosConfig selects the account, database and defaults used by CosmosService.
type CosmosConfig struct {
	Endpoint          string
	Key               string // empty means Azure AD auth through Credential
	Credential        azcore.TokenCredential
	Database          string
	DefaultContainer  string
	PartitionKeyField string
}

// CosmosService wraps the azcosmos client for a single database
type CosmosService struct {
	client            *azcosmos.Client
	database          string
	defaultContainer  string
	partitionKeyField string
}

// NewCosmosService creates a Cosmos DB client with key auth when a key is
// configured and token auth otherwise.
func NewCosmosService(cfg CosmosConfig) (*CosmosService, error) {
	opts := &azcosmos.ClientOptions{ClientOptions: clientOptions()}

	var (
		client *azcosmos.Client
		err    error
	)
	if cfg.Key != "" {
		keyCred, kerr := azcosmos.NewKeyCredential(cfg.Key)
		if kerr != nil {
			return nil, fmt.Errorf("azcosmos.NewKeyCredential: %w", kerr)
		}
		client, err = azcosmos.NewClientWithKey(cfg.Endpoint, keyCred, opts)
	} else {
		if cfg.Credential == nil {
			return nil, fmt.Errorf("cosmos: no account key and no token credential")
		}
		client, err = azcosmos.NewClient(cfg.Endpoint, cfg.Credential, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("azcosmos.NewClient: %w", err)
	}

	return &CosmosService{
		client:            client,
		database:          cfg.Database,
		defaultContainer:  cfg.DefaultContainer,
		partitionKeyField: cfg.PartitionKeyField,
	}, nil
}

// Database returns the configured database name
func (s *CosmosService) Database() string {
	return s.database
}

// TestConnection reads the configured database
func (s *CosmosService) TestConnection(ctx context.Context) error {
	db, err := s.client.NewDatabase(s.database)
	if err != nil {
		return err
	}
	if _, err := db.Read(ctx, nil); err != nil {
		return mapAzureError(err, "database", s.database)
	}
	return nil
}

func (s *CosmosService) container(name string) (*azcosmos.ContainerClient, error) {
	if name == "" {
		name = s.defaultContainer
	}
	c, err := s.client.NewContainer(s.database, name)
	if err != nil {
		return nil, fmt.Errorf("container %s/%s: %w", s.database, name, err)
	}
	return c, nil
}

// ReadItem reads one item by id. A missing item yields models.ErrNotFound.
func (s *CosmosService) ReadItem(ctx context.Context, containerName, id, partitionKey string) (map[string]any, error) {
	c, err := s.container(containerName)
	if err != nil {
		return nil, err
	}

	resp, err := c.ReadItem(ctx, keyOrID(partitionKey, id), id, nil)
	if err != nil {
		return nil, mapAzureError(err, "item", id)
	}
	return decodeItem(resp.Value)
}

// ReplaceItem replaces the item stored under id and returns the stored body.
func (s *CosmosService) ReplaceItem(ctx context.Context, containerName, id, partitionKey string, item map[string]any) (map[string]any, error) {
	c, err := s.container(containerName)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal item: %w", err)
	}

	resp, err := c.ReplaceItem(ctx, keyOrID(partitionKey, id), id, body, &azcosmos.ItemOptions{
		EnableContentResponseOnWrite: true,
	})
	if err != nil {
		return nil, mapAzureError(err, "item", id)
	}
	return decodeItem(resp.Value)
}

// CreateItem inserts item as-is. The partition key comes from partitionKey
// when set, otherwise from the item's configured partition key field.
func (s *CosmosService) CreateItem(ctx context.Context, containerName, partitionKey string, item map[string]any) (map[string]any, error) {
	c, err := s.container(containerName)
	if err != nil {
		return nil, err
	}

	pk, err := s.itemPartitionKey(partitionKey, item)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal item: %w", err)
	}

	resp, err := c.CreateItem(ctx, pk, body, &azcosmos.ItemOptions{
		EnableContentResponseOnWrite: true,
	})
	if err != nil {
		return nil, err
	}
	return decodeItem(resp.Value)
}

// QueryItems runs a parameterised query and drains every page. Without a
// partition key the query runs across partitions.
func (s *CosmosService) QueryItems(ctx context.Context, containerName, query string, params []models.QueryParameter, partitionKey string) ([]any, error) {
	c, err := s.container(containerName)
	if err != nil {
		return nil, err
	}

	pk := azcosmos.NewPartitionKey()
	if partitionKey != "" {
		pk = azcosmos.NewPartitionKeyString(partitionKey)
	}

	opts := &azcosmos.QueryOptions{}
	for _, p := range params {
		opts.QueryParameters = append(opts.QueryParameters, azcosmos.QueryParameter{Name: p.Name, Value: p.Value})
	}

	items := make([]any, 0)
	pager := c.NewQueryItemsPager(query, pk, opts)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("decode query result: %w", err)
			}
			items = append(items, v)
		}
	}
	return items, nil
}

func (s *CosmosService) itemPartitionKey(explicit string, item map[string]any) (azcosmos.PartitionKey, error) {
	if explicit != "" {
		return azcosmos.NewPartitionKeyString(explicit), nil
	}

	switch v := item[s.partitionKeyField].(type) {
	case string:
		return azcosmos.NewPartitionKeyString(v), nil
	case float64:
		return azcosmos.NewPartitionKeyNumber(v), nil
	case bool:
		return azcosmos.NewPartitionKeyBool(v), nil
	case nil:
		return azcosmos.PartitionKey{}, fmt.Errorf("%w: item has no %q field and no partitionKey was given", models.ErrInvalidArguments, s.partitionKeyField)
	default:
		return azcosmos.PartitionKey{}, fmt.Errorf("%w: partition key field %q has unsupported type %T", models.ErrInvalidArguments, s.partitionKeyField, v)
	}
}

func keyOrID(partitionKey, id string) azcosmos.PartitionKey {
	if partitionKey != "" {
		return azcosmos.NewPartitionKeyString(partitionKey)
	}
	return azcosmos.NewPartitionKeyString(id)
}

func decodeItem(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var item map[string]any
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}
