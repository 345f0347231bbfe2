package tools

import "time"

// Catalog returns the six tool descriptors in the order they are advertised.
// Each call builds a fresh copy.
func Catalog() []Descriptor {
	return []Descriptor{
		putItemDescriptor(),
		getItemDescriptor(),
		queryContainerDescriptor(),
		updateItemDescriptor(),
		getSecretDescriptor(),
		checkCertificateExpiryDescriptor(),
	}
}

// All binds every catalog entry to its handler, in catalog order.
func All(docs DocumentStore, secrets SecretStore, certs CertificateStore, now func() time.Time) []Tool {
	return []Tool{
		PutItemTool(docs),
		GetItemTool(docs),
		QueryContainerTool(docs),
		UpdateItemTool(docs),
		GetSecretTool(secrets),
		CheckCertificateExpiryTool(certs, now),
	}
}
