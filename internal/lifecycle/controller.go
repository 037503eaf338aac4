package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"launcher/internal/config"
	"launcher/pkg/certificate"
	"launcher/pkg/distribution"
	"launcher/pkg/dnsrecord"
	"launcher/pkg/domain"
	"launcher/pkg/logger"
	"launcher/pkg/metrics"
	"launcher/pkg/ownership"
	"launcher/pkg/serrors"
	"launcher/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "launcher/internal/lifecycle"

// DefaultRevertTimeout bounds the final write of an operation when no other
// value is configured.
const DefaultRevertTimeout = 30 * time.Second

const (
	operationLaunch   = "launch"
	operationUnlaunch = "unlaunch"

	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeRejected  = "rejected"
)

// Options configure how the controller provisions and releases domains.
type Options struct {
	// Origin is the content origin shared by every distribution.
	Origin distribution.OriginConfig
	// RollbackOnFailure deletes the resources a failed launch created. When
	// false they are left in place and logged as orphaned.
	RollbackOnFailure bool
	// RevertTimeout bounds the write that records the outcome of an
	// operation. The write is detached from the operation's context so a
	// cancelled operation still releases the domain.
	RevertTimeout time.Duration
	// MeterProvider and TracerProvider default to the global providers.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Origin: distribution.OriginConfig{
			DomainName:        cfg.Distribution.OriginDomain,
			PathPrefix:        cfg.Distribution.PathPrefix,
			DefaultRootObject: cfg.Distribution.DefaultRootObject,
			PriceClass:        cfg.Distribution.PriceClass,
			CachePolicyID:     cfg.Distribution.CachePolicyID,
		},
		RollbackOnFailure: cfg.Lifecycle.RollbackOnFailure,
		RevertTimeout:     cfg.Lifecycle.RevertTimeout,
	}
}

// Managers groups the collaborators a lifecycle operation drives.
type Managers struct {
	Verifier     ownership.Verifier
	Certificate  certificate.Manager
	Distribution distribution.Manager
	DNS          dnsrecord.Manager
}

// controller is the concrete implementation of the Controller interface.
type controller struct {
	storage  storage.AllStorage
	managers Managers
	options  Options

	tracer     trace.Tracer
	operations metric.Int64Counter
	duration   metric.Float64Histogram
}

var _ Controller = (*controller)(nil)

// New creates a Controller persisting through storage and provisioning through
// managers.
func New(storage storage.AllStorage, managers Managers, options Options) (Controller, error) {
	if options.RevertTimeout <= 0 {
		options.RevertTimeout = DefaultRevertTimeout
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}

	meter := options.MeterProvider.Meter(instrumentationName)
	operations, err := meter.Int64Counter("lifecycle.operations",
		metric.WithDescription("Number of finished lifecycle operations by operation and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("lifecycle.operation.duration",
		metric.WithDescription("Duration of lifecycle operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.OperationBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &controller{
		storage:    storage,
		managers:   managers,
		options:    options,
		tracer:     options.TracerProvider.Tracer(instrumentationName),
		operations: operations,
		duration:   duration,
	}, nil
}

// Launch verifies the domain is delegated to its hosted zone, then issues a
// certificate, creates a distribution and points the domain's alias at it.
//
// The domain is claimed with a conditional transition from IDLE/available to
// LAUNCHING, so concurrent operations on the same domain are rejected with
// serrors.ErrConflict before any manager is called. A failure reverts the
// domain to IDLE/available with the error recorded in last_error; references
// of resources created before the failure are not recorded.
func (c *controller) Launch(ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error) {
	ctx, span := c.tracer.Start(ctx, "lifecycle.Launch", trace.WithAttributes(attribute.String("domain.id", id.String())))
	defer span.End()
	start := time.Now()

	claimed := storage.DomainState{Status: domain.StatusLaunching, Available: false}
	record, err := c.storage.TransitionDomain(ctx, id,
		storage.DomainState{Status: domain.StatusIdle, Available: true},
		storage.DomainUpdates{Status: claimed.Status, Available: claimed.Available})
	if err != nil {
		err = fmt.Errorf("could not mark domain as launching: %w", err)
		c.observe(ctx, span, operationLaunch, outcomeFailed, start, err)

		return nil, err
	}
	if record == nil {
		err = c.rejection(ctx, id, "launched")
		c.observe(ctx, span, operationLaunch, outcomeRejected, start, err)

		return nil, err
	}

	ctx = logger.WithDomain(ctx, record)
	span.SetAttributes(attribute.String("domain.name", record.Name))
	logger.Info(ctx, "launching domain")

	var undo compensations
	certRef, distRef, err := c.launch(ctx, record, &undo)
	if err == nil {
		var updated *domain.DomainRecord
		updated, err = c.writeBack(ctx, id, claimed, storage.DomainUpdates{
			Status:          domain.StatusActive,
			Available:       true,
			CertificateRef:  &certRef,
			DistributionRef: &distRef,
			LastError:       lo.ToPtr(""),
		})
		if err == nil {
			logger.Info(ctx, "domain launched",
				zap.String("certificate", string(certRef)),
				zap.String("distribution", distRef.ID),
				zap.String("endpoint", distRef.EndpointHostname))
			c.observe(ctx, span, operationLaunch, outcomeSucceeded, start, nil)

			return updated, nil
		}
	}

	logger.Error(ctx, "launch failed", zap.Error(err))
	if c.options.RollbackOnFailure {
		if orphaned := undo.run(ctx); len(orphaned) > 0 {
			logger.Warn(ctx, "rollback left orphaned resources", zap.Strings("orphaned", orphaned))
		}
	} else if len(undo) > 0 {
		logger.Warn(ctx, "failed launch left orphaned resources", zap.Strings("orphaned", undo.descriptions()))
	}

	reverted, revertErr := c.writeBack(ctx, id, claimed, storage.DomainUpdates{
		Status:    domain.StatusIdle,
		Available: true,
		LastError: lo.ToPtr(err.Error()),
	})
	if revertErr != nil {
		logger.Error(ctx, "could not revert domain after failed launch", zap.Error(revertErr))
		err = errors.Join(err, revertErr)
	}
	c.observe(ctx, span, operationLaunch, outcomeFailed, start, err)

	return reverted, err
}

// launch runs the provisioning steps in order and records an undo action for
// every resource it creates.
func (c *controller) launch(ctx context.Context,
	record *domain.DomainRecord,
	undo *compensations) (domain.CertificateRef, domain.DistributionRef, error) {
	nameservers, err := step(ctx, c.tracer, "get hosted zone nameservers", func(ctx context.Context) ([]string, error) {
		return c.managers.DNS.Nameservers(ctx, record.HostedZoneRef)
	})
	if err != nil {
		return "", domain.DistributionRef{}, err
	}

	if _, err := step(ctx, c.tracer, "verify ownership", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.managers.Verifier.Verify(ctx, record.Name, nameservers)
	}); err != nil {
		return "", domain.DistributionRef{}, err
	}

	certRef, err := step(ctx, c.tracer, "issue certificate", func(ctx context.Context) (domain.CertificateRef, error) {
		return c.managers.Certificate.Issue(ctx, record.Name, record.HostedZoneRef)
	})
	// a certificate that was requested but never issued still exists
	if certRef != "" {
		undo.push("certificate "+string(certRef), func(ctx context.Context) error {
			return c.managers.Certificate.Revoke(ctx, certRef, record.HostedZoneRef)
		})
	}
	if err != nil {
		return "", domain.DistributionRef{}, err
	}

	distRef, err := step(ctx, c.tracer, "create distribution", func(ctx context.Context) (domain.DistributionRef, error) {
		return c.managers.Distribution.Create(ctx, record.Name, certRef, c.options.Origin)
	})
	if err != nil {
		return "", domain.DistributionRef{}, err
	}
	undo.push("distribution "+distRef.ID, func(ctx context.Context) error {
		return c.managers.Distribution.Destroy(ctx, distRef)
	})

	target := dnsrecord.AliasTarget{EndpointHostname: distRef.EndpointHostname}
	if _, err := step(ctx, c.tracer, "upsert alias", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.managers.DNS.UpsertAlias(ctx, record.HostedZoneRef, record.Name, target)
	}); err != nil {
		return "", domain.DistributionRef{}, err
	}
	undo.push("alias "+record.Name, func(ctx context.Context) error {
		return c.managers.DNS.DeleteAlias(ctx, record.HostedZoneRef, record.Name, target)
	})

	return certRef, distRef, nil
}

// Unlaunch destroys the distribution, revokes the certificate and deletes the
// alias of an active domain. Resources that are already gone do not fail the
// operation. On success the domain becomes IDLE with its references cleared;
// on failure it returns to ACTIVE with its references untouched.
func (c *controller) Unlaunch(ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error) {
	ctx, span := c.tracer.Start(ctx, "lifecycle.Unlaunch", trace.WithAttributes(attribute.String("domain.id", id.String())))
	defer span.End()
	start := time.Now()

	claimed := storage.DomainState{Status: domain.StatusDelaunching, Available: false}
	record, err := c.storage.TransitionDomain(ctx, id,
		storage.DomainState{Status: domain.StatusActive, Available: true},
		storage.DomainUpdates{Status: claimed.Status, Available: claimed.Available})
	if err != nil {
		err = fmt.Errorf("could not mark domain as delaunching: %w", err)
		c.observe(ctx, span, operationUnlaunch, outcomeFailed, start, err)

		return nil, err
	}
	if record == nil {
		err = c.rejection(ctx, id, "unlaunched")
		c.observe(ctx, span, operationUnlaunch, outcomeRejected, start, err)

		return nil, err
	}

	ctx = logger.WithDomain(ctx, record)
	span.SetAttributes(attribute.String("domain.name", record.Name))
	logger.Info(ctx, "unlaunching domain")

	err = c.unlaunch(ctx, record)
	if err == nil {
		var updated *domain.DomainRecord
		updated, err = c.writeBack(ctx, id, claimed, storage.DomainUpdates{
			Status:    domain.StatusIdle,
			Available: true,
			ClearRefs: true,
			LastError: lo.ToPtr(""),
		})
		if err == nil {
			logger.Info(ctx, "domain unlaunched")
			c.observe(ctx, span, operationUnlaunch, outcomeSucceeded, start, nil)

			return updated, nil
		}
	}

	logger.Error(ctx, "unlaunch failed", zap.Error(err))
	reverted, revertErr := c.writeBack(ctx, id, claimed, storage.DomainUpdates{
		Status:    domain.StatusActive,
		Available: true,
		LastError: lo.ToPtr(err.Error()),
	})
	if revertErr != nil {
		logger.Error(ctx, "could not revert domain after failed unlaunch", zap.Error(revertErr))
		err = errors.Join(err, revertErr)
	}
	c.observe(ctx, span, operationUnlaunch, outcomeFailed, start, err)

	return reverted, err
}

func (c *controller) unlaunch(ctx context.Context, record *domain.DomainRecord) error {
	if record.DistributionRef != nil {
		ref := *record.DistributionRef
		if _, err := step(ctx, c.tracer, "destroy distribution", func(ctx context.Context) (struct{}, error) {
			return struct{}{}, absentOK(c.managers.Distribution.Destroy(ctx, ref))
		}); err != nil {
			return err
		}
	}

	if record.CertificateRef != nil {
		ref := *record.CertificateRef
		if _, err := step(ctx, c.tracer, "revoke certificate", func(ctx context.Context) (struct{}, error) {
			return struct{}{}, absentOK(c.managers.Certificate.Revoke(ctx, ref, record.HostedZoneRef))
		}); err != nil {
			return err
		}
	}

	// the alias can only be matched for deletion through the endpoint it points at
	if record.DistributionRef != nil {
		target := dnsrecord.AliasTarget{EndpointHostname: record.DistributionRef.EndpointHostname}
		if _, err := step(ctx, c.tracer, "delete alias", func(ctx context.Context) (struct{}, error) {
			return struct{}{}, absentOK(c.managers.DNS.DeleteAlias(ctx, record.HostedZoneRef, record.Name, target))
		}); err != nil {
			return err
		}
	}

	return nil
}

// EnqueueLaunch schedules a launch job for an idle domain.
func (c *controller) EnqueueLaunch(ctx context.Context, id domain.DomainID) error {
	return c.enqueue(ctx, id, domain.StatusIdle, LaunchJobArgs{DomainID: id})
}

// EnqueueUnlaunch schedules an unlaunch job for an active domain.
func (c *controller) EnqueueUnlaunch(ctx context.Context, id domain.DomainID) error {
	return c.enqueue(ctx, id, domain.StatusActive, UnlaunchJobArgs{DomainID: id})
}

func (c *controller) enqueue(ctx context.Context, id domain.DomainID, want domain.Status, args river.JobArgs) error {
	record, err := c.storage.DomainByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get domain: %w", err)
	}
	if record == nil {
		return serrors.With(serrors.ErrNotFound, "domain %s not found", id)
	}
	if record.Status != want || !record.Available {
		return serrors.With(serrors.ErrConflict, "domain %s is %s", record.Name, describe(record))
	}

	added, err := c.storage.AddJob(ctx, args, nil)
	if err != nil {
		return fmt.Errorf("could not add job: %w", err)
	}
	// river unique jobs prevent queueing the same operation twice
	if !added {
		return serrors.With(serrors.ErrConflict, "%s of domain %s is already queued", args.Kind(), record.Name)
	}

	logger.Info(logger.WithDomain(ctx, record), "job enqueued", zap.String("kind", args.Kind()))

	return nil
}

// rejection explains why a conditional transition did not apply.
func (c *controller) rejection(ctx context.Context, id domain.DomainID, action string) error {
	record, err := c.storage.DomainByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get domain: %w", err)
	}
	if record == nil {
		return serrors.With(serrors.ErrNotFound, "domain %s not found", id)
	}

	return serrors.With(serrors.ErrConflict, "domain %s is %s and cannot be %s", record.Name, describe(record), action)
}

// writeBack records the outcome of an operation that holds the domain in the
// from state.
func (c *controller) writeBack(ctx context.Context,
	id domain.DomainID,
	from storage.DomainState,
	updates storage.DomainUpdates) (*domain.DomainRecord, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.options.RevertTimeout)
	defer cancel()

	record, err := c.storage.TransitionDomain(ctx, id, from, updates)
	if err != nil {
		return nil, fmt.Errorf("could not mark domain as %s: %w", updates.Status, err)
	}
	if record == nil {
		return nil, serrors.With(serrors.ErrInternal, "domain %s left %s while the operation was running", id, from.Status)
	}

	return record, nil
}

func (c *controller) observe(ctx context.Context,
	span trace.Span,
	operation, outcome string,
	start time.Time,
	err error) {
	attrs := metric.WithAttributes(attribute.String("operation", operation), attribute.String("outcome", outcome))
	c.operations.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// step runs a single provisioning step in its own span.
func step[T any](ctx context.Context, tracer trace.Tracer, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	logger.Debug(ctx, "running step", zap.String("step", name))
	res, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return res, fmt.Errorf("could not %s: %w", name, err)
	}

	return res, nil
}

func absentOK(err error) error {
	if errors.Is(err, serrors.ErrNotFound) {
		return nil
	}

	return err
}

func describe(record *domain.DomainRecord) string {
	if !record.Available {
		return string(record.Status) + " (busy)"
	}

	return string(record.Status)
}

type compensation struct {
	description string
	undo        func(ctx context.Context) error
}

// compensations is a stack of undo actions for resources created by a launch.
type compensations []compensation

func (s *compensations) push(description string, undo func(ctx context.Context) error) {
	*s = append(*s, compensation{description: description, undo: undo})
}

func (s compensations) descriptions() []string {
	return lo.Map(s, func(c compensation, _ int) string { return c.description })
}

// run executes the undo actions in reverse order and returns the resources it
// could not remove.
func (s compensations) run(ctx context.Context) []string {
	var orphaned []string
	for i := len(s) - 1; i >= 0; i-- {
		logger.Info(ctx, "rolling back", zap.String("resource", s[i].description))
		if err := s[i].undo(ctx); err != nil {
			logger.Error(ctx, "could not roll back", zap.String("resource", s[i].description), zap.Error(err))
			orphaned = append(orphaned, s[i].description)
		}
	}

	return orphaned
}
