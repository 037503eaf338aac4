// Package certificate issues and revokes the TLS certificate of a domain,
// validating domain control through DNS records in the domain's hosted zone.
package certificate

import (
	"context"
	"launcher/pkg/domain"
)

//go:generate mockgen -package mockcertificate -source=interface.go -destination=mock/mockcertificate.go *
type Manager interface {
	// Issue requests a certificate for domainName and www.domainName, publishes
	// its validation records in the hosted zone and blocks until it is issued.
	// When the certificate was requested but never issued, the returned
	// reference is still set together with the error.
	Issue(ctx context.Context, domainName, hostedZoneRef string) (domain.CertificateRef, error)
	// Revoke deletes the validation records and the certificate. A certificate
	// that no longer exists is not an error.
	Revoke(ctx context.Context, ref domain.CertificateRef, hostedZoneRef string) error
}
