package tools

import (
	"context"
	"fmt"
	"maps"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/rs/zerolog/log"
)

var (
	containerNameParam = Param{Name: "containerName", Type: "string", Description: "Name of the container", Required: true}
	partitionKeyParam  = Param{Name: "partitionKey", Type: "string", Description: "Partition key value of the item (defaults to the item id)"}
)

func updateItemDescriptor() Descriptor {
	return Descriptor{
		Name:        "update_item",
		Description: "Updates specific attributes of an item in an Azure Cosmos DB container",
		Params: []Param{
			containerNameParam,
			{Name: "id", Type: "string", Description: "ID of the item to update", Required: true},
			{Name: "updates", Type: "object", Description: "The updated attributes of the item", Required: true},
			partitionKeyParam,
		},
	}
}

func putItemDescriptor() Descriptor {
	return Descriptor{
		Name:        "put_item",
		Description: "Inserts or replaces an item in an Azure Cosmos DB container",
		Params: []Param{
			containerNameParam,
			{Name: "item", Type: "object", Description: "Item to insert into the container", Required: true},
			partitionKeyParam,
		},
	}
}

func getItemDescriptor() Descriptor {
	return Descriptor{
		Name:        "get_item",
		Description: "Retrieves an item from an Azure Cosmos DB container by its ID",
		Params: []Param{
			containerNameParam,
			{Name: "id", Type: "string", Description: "ID of the item to retrieve", Required: true},
			partitionKeyParam,
		},
	}
}

// UpdateItemTool reads an item, shallow-merges the updates over it and
// replaces it.
func UpdateItemTool(docs DocumentStore) Tool {
	return Tool{
		Descriptor: updateItemDescriptor(),
		Execute: func(ctx context.Context, input map[string]any) models.Result {
			item, err := updateItem(ctx, docs, input)
			if err != nil {
				log.Error().Err(err).Str("tool", "update_item").Msg("Error updating item")
				return models.Failed(fmt.Sprintf("Failed to update item: %v", err))
			}
			return models.Succeeded("Item updated successfully", models.PayloadItem, item)
		},
	}
}

func updateItem(ctx context.Context, docs DocumentStore, input map[string]any) (map[string]any, error) {
	id, err := requireString(input, "id")
	if err != nil {
		return nil, err
	}
	updates, err := requireObject(input, "updates")
	if err != nil {
		return nil, err
	}
	container := optionalString(input, "containerName")
	pk := optionalString(input, "partitionKey")

	current, err := docs.ReadItem(ctx, container, id, pk)
	if err != nil {
		return nil, fmt.Errorf("read item: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("item %q: %w", id, models.ErrNotFound)
	}

	merged := make(map[string]any, len(current)+len(updates))
	maps.Copy(merged, current)
	maps.Copy(merged, updates)

	stored, err := docs.ReplaceItem(ctx, container, id, pk, merged)
	if err != nil {
		return nil, fmt.Errorf("replace item: %w", err)
	}
	return stored, nil
}

// PutItemTool creates the supplied item verbatim
func PutItemTool(docs DocumentStore) Tool {
	return Tool{
		Descriptor: putItemDescriptor(),
		Execute: func(ctx context.Context, input map[string]any) models.Result {
			item, err := requireObject(input, "item")
			if err == nil {
				item, err = docs.CreateItem(ctx, optionalString(input, "containerName"), optionalString(input, "partitionKey"), item)
			}
			if err != nil {
				log.Error().Err(err).Str("tool", "put_item").Msg("Error putting item")
				return models.Failed(fmt.Sprintf("Failed to put item: %v", err))
			}
			return models.Succeeded("Item added successfully to container", models.PayloadItem, item)
		},
	}
}

// GetItemTool reads one item by id. A missing item is a failure.
func GetItemTool(docs DocumentStore) Tool {
	return Tool{
		Descriptor: getItemDescriptor(),
		Execute: func(ctx context.Context, input map[string]any) models.Result {
			item, err := getItem(ctx, docs, input)
			if err != nil {
				log.Error().Err(err).Str("tool", "get_item").Msg("Error getting item")
				return models.Failed(fmt.Sprintf("Failed to get item: %v", err))
			}
			return models.Succeeded("Item retrieved successfully", models.PayloadItem, item)
		},
	}
}

func getItem(ctx context.Context, docs DocumentStore, input map[string]any) (map[string]any, error) {
	id, err := requireString(input, "id")
	if err != nil {
		return nil, err
	}

	item, err := docs.ReadItem(ctx, optionalString(input, "containerName"), id, optionalString(input, "partitionKey"))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item %q: %w", id, models.ErrNotFound)
	}
	return item, nil
}
