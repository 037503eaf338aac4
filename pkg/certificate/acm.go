package certificate

import (
	"context"
	"launcher/pkg/awserr"
	"launcher/pkg/dnsrecord"
	"launcher/pkg/domain"
	"launcher/pkg/logger"
	"launcher/pkg/poll"
	"launcher/pkg/serrors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	"github.com/aws/aws-sdk-go-v2/service/acm/types"
	"github.com/go-faster/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ACMAPI is the subset of *acm.Client used by the manager. The client must be
// bound to us-east-1 for the certificate to be usable by CloudFront.
type ACMAPI interface {
	RequestCertificate(ctx context.Context,
		params *acm.RequestCertificateInput,
		optFns ...func(*acm.Options)) (*acm.RequestCertificateOutput, error)
	DescribeCertificate(ctx context.Context,
		params *acm.DescribeCertificateInput,
		optFns ...func(*acm.Options)) (*acm.DescribeCertificateOutput, error)
	DeleteCertificate(ctx context.Context,
		params *acm.DeleteCertificateInput,
		optFns ...func(*acm.Options)) (*acm.DeleteCertificateOutput, error)
}

const (
	DefaultPollInterval      = 10 * time.Second
	DefaultValidationTimeout = 5 * time.Minute
	DefaultIssueTimeout      = 45 * time.Minute
)

var acmCodes = awserr.Codes{ //nolint: gochecknoglobals
	"ResourceNotFoundException":               serrors.ErrNotFound,
	"ResourceInUseException":                  serrors.ErrConflict,
	"InvalidArnException":                     serrors.ErrBadRequest,
	"InvalidDomainValidationOptionsException": serrors.ErrBadRequest,
	"LimitExceededException":                  serrors.ErrRateLimited,
}

type Options struct {
	PollInterval time.Duration
	// ValidationTimeout bounds the wait for the validation records to appear.
	ValidationTimeout time.Duration
	// IssueTimeout bounds the wait for the certificate to be issued.
	IssueTimeout time.Duration
}

type acmManager struct {
	client  ACMAPI
	dns     dnsrecord.Manager
	options Options
}

var _ Manager = (*acmManager)(nil)

func New(client ACMAPI, dns dnsrecord.Manager, options Options) Manager {
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if options.ValidationTimeout <= 0 {
		options.ValidationTimeout = DefaultValidationTimeout
	}
	if options.IssueTimeout <= 0 {
		options.IssueTimeout = DefaultIssueTimeout
	}

	return &acmManager{
		client:  client,
		dns:     dns,
		options: options,
	}
}

func (m *acmManager) Issue(ctx context.Context, domainName, hostedZoneRef string) (domain.CertificateRef, error) {
	out, err := m.client.RequestCertificate(ctx, &acm.RequestCertificateInput{
		DomainName:              aws.String(domainName),
		SubjectAlternativeNames: []string{"www." + domainName},
		ValidationMethod:        types.ValidationMethodDns,
	})
	if err != nil {
		return "", awserr.Classify(err, acmCodes, "could not request certificate for %s", domainName)
	}

	ref := domain.CertificateRef(aws.ToString(out.CertificateArn))
	ctx = logger.WithFields(ctx, zap.String("certificate", string(ref)))
	logger.Info(ctx, "requested certificate")

	records, err := poll.Until(ctx, poll.Options{
		Interval:    m.options.PollInterval,
		Timeout:     m.options.ValidationTimeout,
		Description: "certificate validation records",
	}, func(ctx context.Context) ([]domain.ValidationRecord, bool, error) {
		cert, err := m.describe(ctx, ref)
		if err != nil {
			return nil, false, err
		}

		records, complete := validationRecords(cert)

		return records, complete, nil
	})
	if err != nil {
		return ref, err
	}

	for _, record := range records {
		if err := m.dns.UpsertValidationRecord(ctx, hostedZoneRef, record); err != nil {
			return ref, errors.Wrap(err, "could not publish certificate validation record")
		}
	}
	logger.Info(ctx, "published certificate validation records", zap.Int("count", len(records)))

	_, err = poll.Until(ctx, poll.Options{
		Interval:    m.options.PollInterval,
		Timeout:     m.options.IssueTimeout,
		Description: "certificate issuance",
	}, func(ctx context.Context) (types.CertificateStatus, bool, error) {
		cert, err := m.describe(ctx, ref)
		if err != nil {
			return "", false, err
		}

		switch cert.Status {
		case types.CertificateStatusIssued:
			return cert.Status, true, nil
		case types.CertificateStatusFailed,
			types.CertificateStatusValidationTimedOut,
			types.CertificateStatusRevoked,
			types.CertificateStatusExpired,
			types.CertificateStatusInactive:
			return cert.Status, false, serrors.With(serrors.ErrInternal,
				"certificate %s ended in status %s (%s)", ref, cert.Status, cert.FailureReason)
		default:
			return cert.Status, false, nil
		}
	})
	if err != nil {
		return ref, err
	}

	logger.Info(ctx, "certificate issued")

	return ref, nil
}

func (m *acmManager) Revoke(ctx context.Context, ref domain.CertificateRef, hostedZoneRef string) error {
	cert, err := m.describe(ctx, ref)
	if serrors.IsAbsent(err) {
		logger.Info(ctx, "certificate already deleted", zap.String("certificate", string(ref)))

		return nil
	}
	if err != nil {
		return err
	}

	records, _ := validationRecords(cert)
	for _, record := range records {
		if err := m.dns.DeleteValidationRecord(ctx, hostedZoneRef, record); err != nil {
			return errors.Wrap(err, "could not delete certificate validation record")
		}
	}

	_, err = m.client.DeleteCertificate(ctx, &acm.DeleteCertificateInput{CertificateArn: aws.String(string(ref))})
	err = awserr.Classify(err, acmCodes, "could not delete certificate %s", ref)
	if err != nil && !serrors.IsAbsent(err) {
		return err
	}

	logger.Info(ctx, "certificate deleted", zap.String("certificate", string(ref)))

	return nil
}

func (m *acmManager) describe(ctx context.Context, ref domain.CertificateRef) (*types.CertificateDetail, error) {
	out, err := m.client.DescribeCertificate(ctx, &acm.DescribeCertificateInput{
		CertificateArn: aws.String(string(ref)),
	})
	if err != nil {
		return nil, awserr.Classify(err, acmCodes, "could not describe certificate %s", ref)
	}
	if out.Certificate == nil {
		return nil, serrors.With(serrors.ErrNotFound, "certificate %s has no detail", ref)
	}

	return out.Certificate, nil
}

// validationRecords returns the distinct DNS validation records of cert and
// whether every validation option already carries its record.
func validationRecords(cert *types.CertificateDetail) ([]domain.ValidationRecord, bool) {
	complete := len(cert.DomainValidationOptions) > 0

	records := make([]domain.ValidationRecord, 0, len(cert.DomainValidationOptions))
	for _, option := range cert.DomainValidationOptions {
		if option.ResourceRecord == nil {
			complete = false

			continue
		}
		records = append(records, domain.ValidationRecord{
			Name:  aws.ToString(option.ResourceRecord.Name),
			Type:  string(option.ResourceRecord.Type),
			Value: aws.ToString(option.ResourceRecord.Value),
		})
	}

	return lo.Uniq(records), complete
}
