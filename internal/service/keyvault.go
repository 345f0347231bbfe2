package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azcertificates"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// KeyVaultService wraps the secret and certificate clients of one vault
type KeyVaultService struct {
	vaultURI string
	secrets  *azsecrets.Client
	certs    *azcertificates.Client
}

// NewKeyVaultService creates both Key Vault clients against vaultURI
func NewKeyVaultService(vaultURI string, cred azcore.TokenCredential) (*KeyVaultService, error) {
	secrets, err := azsecrets.NewClient(vaultURI, cred, &azsecrets.ClientOptions{ClientOptions: clientOptions()})
	if err != nil {
		return nil, fmt.Errorf("azsecrets.NewClient: %w", err)
	}

	certs, err := azcertificates.NewClient(vaultURI, cred, &azcertificates.ClientOptions{ClientOptions: clientOptions()})
	if err != nil {
		return nil, fmt.Errorf("azcertificates.NewClient: %w", err)
	}

	return &KeyVaultService{vaultURI: vaultURI, secrets: secrets, certs: certs}, nil
}

// VaultURI returns the vault this service talks to
func (s *KeyVaultService) VaultURI() string {
	return s.vaultURI
}

// TestConnection fetches the first page of secret properties
func (s *KeyVaultService) TestConnection(ctx context.Context) error {
	pager := s.secrets.NewListSecretPropertiesPager(nil)
	if !pager.More() {
		return nil
	}
	_, err := pager.NextPage(ctx)
	return err
}

// GetSecret returns the current value of the named secret
func (s *KeyVaultService) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := s.secrets.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", mapAzureError(err, "secret", name)
	}
	if resp.Value == nil {
		return "", nil
	}
	return *resp.Value, nil
}

// GetCertificateExpiry returns the expiry of the current certificate
// version, or nil when the vault reports none.
func (s *KeyVaultService) GetCertificateExpiry(ctx context.Context, name string) (*time.Time, error) {
	resp, err := s.certs.GetCertificate(ctx, name, "", nil)
	if err != nil {
		return nil, mapAzureError(err, "certificate", name)
	}
	if resp.Attributes == nil {
		return nil, nil
	}
	return resp.Attributes.Expires, nil
}
