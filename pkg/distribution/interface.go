// Package distribution creates and tears down the CDN distribution that serves
// a domain's static content from the object storage origin.
package distribution

import (
	"context"
	"launcher/pkg/domain"
)

// OriginConfig describes where a distribution fetches content from and how it
// caches it. It is shared by every domain.
type OriginConfig struct {
	// DomainName is the bucket REST or website endpoint hostname.
	DomainName string
	// PathPrefix is prepended to the domain name to form the origin path.
	PathPrefix string
	// DefaultRootObject is served for requests to "/".
	DefaultRootObject string
	PriceClass        string
	CachePolicyID     string
}

//go:generate mockgen -package mockdistribution -source=interface.go -destination=mock/mockdistribution.go *
type Manager interface {
	// Create provisions a distribution serving domainName over TLS with the
	// given certificate.
	Create(ctx context.Context, domainName string, certificateRef domain.CertificateRef,
		origin OriginConfig) (domain.DistributionRef, error)
	// Destroy disables the distribution, waits for the change to deploy and
	// deletes it. A distribution that no longer exists is not an error.
	Destroy(ctx context.Context, ref domain.DistributionRef) error
}
