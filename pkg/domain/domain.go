package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a domain record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DomainID uuid.UUID

// String returns the canonical textual form of the id.
func (id DomainID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical textual form so it appears as a
// string in JSON job arguments.
func (id DomainID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes the textual form produced by MarshalText.
func (id *DomainID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// ParseDomainID parses the textual form of a DomainID.
func ParseDomainID(s string) (DomainID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return DomainID{}, fmt.Errorf("could not parse domain id: %w", err)
	}

	return DomainID(id), nil
}

// Status represents the lifecycle state of a hosted site.
// LAUNCHING and DELAUNCHING are transient and only exist while an operation runs.
type Status string

const (
	// StatusIdle means no certificate, distribution or alias is provisioned.
	StatusIdle Status = "IDLE"
	// StatusLaunching means a launch operation is in flight.
	StatusLaunching Status = "LAUNCHING"
	// StatusActive means the site is served through its distribution.
	StatusActive Status = "ACTIVE"
	// StatusDelaunching means a teardown operation is in flight.
	StatusDelaunching Status = "DELAUNCHING"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusIdle, StatusLaunching, StatusActive, StatusDelaunching:
		return true
	default:
		return false
	}
}

// Transient reports whether s only exists while an operation is running.
func (s Status) Transient() bool {
	return s == StatusLaunching || s == StatusDelaunching
}

// CertificateRef references an issued TLS certificate (an ACM ARN).
type CertificateRef string

// DistributionRef references a CDN distribution and the hostname it serves from.
type DistributionRef struct {
	// ID is the distribution identifier assigned by the CDN.
	ID string `json:"id"`
	// EndpointHostname is the CDN hostname the alias record points at.
	EndpointHostname string `json:"endpointHostname"`
}

// DomainRecord is the unit of orchestration: a customer domain together with
// the resources provisioned for it.
type DomainRecord struct {
	// ID is owned by the record store.
	ID DomainID `json:"id"`
	// Name is the fully-qualified domain name without a trailing dot.
	Name string `json:"name"`
	// HostedZoneRef is the DNS hosted zone that holds the domain's records.
	HostedZoneRef string `json:"hostedZoneRef"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`
	// Available is false while a lifecycle operation is in flight.
	Available bool `json:"available"`

	// CertificateRef is set while the domain is active or mid-teardown.
	CertificateRef *CertificateRef `json:"certificateRef,omitempty"`
	// DistributionRef is set while the domain is active or mid-teardown.
	DistributionRef *DistributionRef `json:"distributionRef,omitempty"`

	// LastError holds the message of the most recent failed operation.
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the record invariants.
func (d *DomainRecord) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("domain name is empty")
	}
	if strings.HasSuffix(d.Name, ".") {
		return fmt.Errorf("domain name %q must not have a trailing dot", d.Name)
	}
	if d.HostedZoneRef == "" {
		return fmt.Errorf("hosted zone of %q is empty", d.Name)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("unknown status %q", d.Status)
	}
	if d.Status.Transient() && d.Available {
		return fmt.Errorf("status %s requires available=false", d.Status)
	}

	return nil
}

// ValidationRecord is a DNS record the certificate authority requires before
// it issues a certificate. It is never persisted.
type ValidationRecord struct {
	Name  string
	Type  string
	Value string
}
