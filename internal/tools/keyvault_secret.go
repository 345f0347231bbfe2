package tools

import (
	"context"
	"fmt"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/rs/zerolog/log"
)

func getSecretDescriptor() Descriptor {
	return Descriptor{
		Name:        "get_secret",
		Description: "Retrieves a secret value from Azure Key Vault",
		Params: []Param{
			{Name: "secretName", Type: "string", Description: "Name of the secret", Required: true},
		},
	}
}

// GetSecretTool fetches the current value of a named secret
func GetSecretTool(secrets SecretStore) Tool {
	return Tool{
		Descriptor: getSecretDescriptor(),
		Execute: func(ctx context.Context, input map[string]any) models.Result {
			name, err := requireString(input, "secretName")
			var value string
			if err == nil {
				value, err = secrets.GetSecret(ctx, name)
			}
			if err != nil {
				// the secret name is not logged
				log.Error().Err(err).Str("tool", "get_secret").Msg("Error getting secret")
				return models.Failed(fmt.Sprintf("Failed to get secret: %v", err))
			}
			return models.Succeeded("Secret retrieved successfully", models.PayloadSecret, value)
		},
	}
}
