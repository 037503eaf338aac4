package storage

import (
	"context"
	"launcher/pkg/domain"
)

// DomainState is the status and availability pair a conditional transition
// requires the stored record to be in.
type DomainState struct {
	Status    domain.Status
	Available bool
}

// DomainUpdates describes the target state of a transition. Status and
// Available are always written; the remaining fields only when set.
type DomainUpdates struct {
	Status    domain.Status
	Available bool
	// CertificateRef and DistributionRef, when provided, replace the stored
	// references.
	CertificateRef  *domain.CertificateRef
	DistributionRef *domain.DistributionRef
	// ClearRefs sets both references to NULL. It takes precedence over the
	// reference fields.
	ClearRefs bool
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
}

// DomainStorage persists domain records. The lifecycle controller is the only
// writer of status, availability and resource references.
type DomainStorage interface {
	// StoreDomain inserts a new record and returns it as stored. A duplicate
	// name is reported as serrors.ErrConflict.
	StoreDomain(ctx context.Context, record domain.DomainRecord) (*domain.DomainRecord, error)
	// DomainByID returns the record with the given ID, or nil when not found.
	DomainByID(ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error)
	// DomainByName returns the record with the given name, or nil when not found.
	DomainByName(ctx context.Context, name string) (*domain.DomainRecord, error)
	// ListDomains returns records ordered by name. If statuses is non-empty,
	// only records in one of them are returned.
	ListDomains(ctx context.Context, statuses ...domain.Status) ([]domain.DomainRecord, error)
	// TransitionDomain atomically applies updates to the record only if it is
	// currently in the from state, and returns the updated record. It returns
	// nil when the record does not exist or is in another state; nothing is
	// written in that case.
	TransitionDomain(ctx context.Context,
		id domain.DomainID,
		from DomainState,
		updates DomainUpdates) (*domain.DomainRecord, error)
}
