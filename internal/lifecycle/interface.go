// Package lifecycle drives a domain through IDLE, LAUNCHING, ACTIVE and
// DELAUNCHING. It sequences the ownership verifier and the certificate,
// distribution and DNS record managers, and is the only writer of a domain
// record's status, availability and resource references.
package lifecycle

import (
	"context"
	"launcher/pkg/domain"
)

//go:generate mockgen -package mocklifecycle -source=interface.go -destination=mock/mocklifecycle.go *
type Controller interface {
	// Launch provisions the certificate, distribution and alias of an idle
	// domain. It returns the record as persisted when the operation ended,
	// together with the error that made it fail, if any.
	Launch(ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error)
	// Unlaunch tears down the resources of an active domain.
	Unlaunch(ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error)
	// EnqueueLaunch schedules Launch on the worker pool.
	EnqueueLaunch(ctx context.Context, id domain.DomainID) error
	// EnqueueUnlaunch schedules Unlaunch on the worker pool.
	EnqueueUnlaunch(ctx context.Context, id domain.DomainID) error
}
