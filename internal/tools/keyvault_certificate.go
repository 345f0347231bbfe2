package tools

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/rs/zerolog/log"
)

const day = 24 * time.Hour

func checkCertificateExpiryDescriptor() Descriptor {
	return Descriptor{
		Name:        "check_certificate_expiry",
		Description: "Checks whether a certificate in Azure Key Vault is nearly expired",
		Params: []Param{
			{Name: "certificateName", Type: "string", Description: "Name of the certificate", Required: true},
		},
	}
}

// CheckCertificateExpiryTool reports the whole days left until a certificate
// expires. now is the clock used for the comparison; nil means time.Now.
func CheckCertificateExpiryTool(certs CertificateStore, now func() time.Time) Tool {
	if now == nil {
		now = time.Now
	}
	return Tool{
		Descriptor: checkCertificateExpiryDescriptor(),
		Execute: func(ctx context.Context, input map[string]any) models.Result {
			days, err := checkCertificateExpiry(ctx, certs, now, input)
			if err != nil {
				log.Error().Err(err).Str("tool", "check_certificate_expiry").Msg("Error checking certificate expiry")
				return models.Failed(fmt.Sprintf("Failed to check certificate expiry: %v", err))
			}
			return models.Succeeded("Certificate expiry checked successfully", models.PayloadDaysToExpiry, days)
		},
	}
}

func checkCertificateExpiry(ctx context.Context, certs CertificateStore, now func() time.Time, input map[string]any) (int, error) {
	name, err := requireString(input, "certificateName")
	if err != nil {
		return 0, err
	}

	expires, err := certs.GetCertificateExpiry(ctx, name)
	if err != nil {
		return 0, err
	}
	if expires == nil {
		return 0, models.ErrExpiryUndefined
	}
	return DaysUntil(*expires, now()), nil
}

// DaysUntil returns the days from now to t, rounded up. Past instants give
// zero or negative values.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(float64(t.Sub(now)) / float64(day)))
}
