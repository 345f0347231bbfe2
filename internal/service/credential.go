package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/cortexai/cosmosdb-mcp/internal/models"
)

// ApplicationID is sent in the User-Agent of every Azure request.
const ApplicationID = "cosmosdb-mcp"

// NewCredential resolves the ambient Azure credential chain (environment,
// workload identity, managed identity, Azure CLI, ...).
func NewCredential() (azcore.TokenCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("azidentity.NewDefaultAzureCredential: %w", err)
	}
	return cred, nil
}

func clientOptions() policy.ClientOptions {
	return policy.ClientOptions{
		Telemetry: policy.TelemetryOptions{ApplicationID: ApplicationID},
	}
}

// mapAzureError turns a 404 from any Azure service into models.ErrNotFound.
func mapAzureError(err error, kind, name string) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %q: %w", kind, name, models.ErrNotFound)
	}
	return err
}
