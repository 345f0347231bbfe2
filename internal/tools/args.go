package tools

import (
	"encoding/json"
	"fmt"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
)

func requireString(input map[string]any, key string) (string, error) {
	s, _ := input[key].(string)
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", models.ErrInvalidArguments, key)
	}
	return s, nil
}

func optionalString(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

func requireObject(input map[string]any, key string) (map[string]any, error) {
	obj, ok := input[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", models.ErrInvalidArguments, key)
	}
	return obj, nil
}

// queryParameters accepts [{"name": "@x", "value": ...}, ...]
func queryParameters(input map[string]any) ([]models.QueryParameter, error) {
	raw, ok := input["parameters"]
	if !ok || raw == nil {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: parameters must be an array", models.ErrInvalidArguments)
	}

	params := make([]models.QueryParameter, 0, len(list))
	for i, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: parameters[%d] must be an object", models.ErrInvalidArguments, i)
		}
		name, _ := obj["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("%w: parameters[%d].name is required", models.ErrInvalidArguments, i)
		}
		params = append(params, models.QueryParameter{Name: name, Value: obj["value"]})
	}
	return params, nil
}

// normalizeArguments round-trips the bag through JSON so every value has the
// shape encoding/json produces (float64 numbers, []any, map[string]any).
func normalizeArguments(input map[string]any) (map[string]any, error) {
	if input == nil {
		return map[string]any{}, nil
	}

	b, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidArguments, err)
	}

	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidArguments, err)
	}
	return out, nil
}
