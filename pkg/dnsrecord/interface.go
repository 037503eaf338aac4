// Package dnsrecord manages the records of a domain's hosted zone: the alias
// record that points the domain at its distribution and the CNAME record the
// certificate authority uses to validate domain control.
package dnsrecord

import (
	"context"
	"launcher/pkg/domain"
)

// AliasTarget is what an alias record resolves to. Exactly one of the fields
// must be set.
type AliasTarget struct {
	// Address is a literal IPv4 address.
	Address string
	// EndpointHostname is a CDN distribution hostname.
	EndpointHostname string
}

// Record is a record set as listed from the hosted zone.
type Record struct {
	Name   string
	Type   string
	TTL    int64
	Values []string
	// Alias is the alias target DNS name, empty for plain records.
	Alias string
}

// Manager upserts and deletes the records of a hosted zone. Deletes are
// idempotent: a record that is already absent is not an error.
//
//go:generate mockgen -package mockdnsrecord -source=interface.go -destination=mock/mockdnsrecord.go *
type Manager interface {
	// Nameservers returns the nameservers the hosted zone is delegated to.
	Nameservers(ctx context.Context, hostedZoneRef string) ([]string, error)
	// ListRecords returns every record set in the hosted zone.
	ListRecords(ctx context.Context, hostedZoneRef string) ([]Record, error)
	// UpsertAlias creates or replaces the record for name pointing at target.
	UpsertAlias(ctx context.Context, hostedZoneRef, name string, target AliasTarget) error
	// DeleteAlias removes the record for name pointing at target.
	DeleteAlias(ctx context.Context, hostedZoneRef, name string, target AliasTarget) error
	// UpsertValidationRecord creates or replaces a certificate validation record.
	UpsertValidationRecord(ctx context.Context, hostedZoneRef string, record domain.ValidationRecord) error
	// DeleteValidationRecord removes a certificate validation record.
	DeleteValidationRecord(ctx context.Context, hostedZoneRef string, record domain.ValidationRecord) error
}
