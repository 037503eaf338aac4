// Package ownership checks that a domain is delegated to the hosted zone the
// launcher manages before any resource is provisioned for it.
package ownership

import "context"

//go:generate mockgen -package mockownership -source=interface.go -destination=mock/mockownership.go *
type Verifier interface {
	// Verify fails with serrors.ErrOwnership unless every nameserver the
	// domain resolves to belongs to hostedZoneNameservers. Resolution failures
	// are reported as serrors.ErrResolution.
	Verify(ctx context.Context, domainName string, hostedZoneNameservers []string) error
}
