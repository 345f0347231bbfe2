package tools

import (
	"context"
	"fmt"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/rs/zerolog/log"
)

func queryContainerDescriptor() Descriptor {
	return Descriptor{
		Name:        "query_container",
		Description: "Queries an Azure Cosmos DB container using SQL-like syntax",
		Params: []Param{
			containerNameParam,
			{Name: "query", Type: "string", Description: "SQL query string", Required: true},
			{Name: "parameters", Type: "array", Description: "Query parameters as [{\"name\": \"@param\", \"value\": ...}]"},
			{Name: "partitionKey", Type: "string", Description: "Restrict the query to one partition (defaults to a cross-partition query)"},
		},
	}
}

// QueryContainerTool runs a parameterised query and returns every match
func QueryContainerTool(docs DocumentStore) Tool {
	return Tool{
		Descriptor: queryContainerDescriptor(),
		Execute: func(ctx context.Context, input map[string]any) models.Result {
			items, err := queryContainer(ctx, docs, input)
			if err != nil {
				log.Error().Err(err).Str("tool", "query_container").Msg("Error querying container")
				return models.Failed(fmt.Sprintf("Failed to query container: %v", err))
			}
			return models.Succeeded("Query executed successfully", models.PayloadItems, items)
		},
	}
}

func queryContainer(ctx context.Context, docs DocumentStore, input map[string]any) ([]any, error) {
	query, err := requireString(input, "query")
	if err != nil {
		return nil, err
	}
	params, err := queryParameters(input)
	if err != nil {
		return nil, err
	}

	items, err := docs.QueryItems(ctx, optionalString(input, "containerName"), query, params, optionalString(input, "partitionKey"))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []any{}
	}
	return items, nil
}
