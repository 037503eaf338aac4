package dnsrecord

import (
	"context"
	"launcher/pkg/awserr"
	"launcher/pkg/domain"
	"launcher/pkg/logger"
	"launcher/pkg/serrors"
	"net/netip"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Route53API is the subset of *route53.Client used by the manager.
type Route53API interface {
	GetHostedZone(ctx context.Context,
		params *route53.GetHostedZoneInput,
		optFns ...func(*route53.Options)) (*route53.GetHostedZoneOutput, error)
	ChangeResourceRecordSets(ctx context.Context,
		params *route53.ChangeResourceRecordSetsInput,
		optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
	ListResourceRecordSets(ctx context.Context,
		params *route53.ListResourceRecordSetsInput,
		optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
}

// CloudFrontHostedZoneID is the fixed hosted zone of every CloudFront
// distribution endpoint, used as the alias target zone.
const CloudFrontHostedZoneID = "Z2FDTNDATAQYW2"

const (
	DefaultRecordTTL = 300
	DefaultRateLimit = 5
)

var route53Codes = awserr.Codes{ //nolint: gochecknoglobals
	"InvalidChangeBatch": serrors.ErrConflict,
	"NoSuchHostedZone":   serrors.ErrNotFound,
	"InvalidInput":       serrors.ErrBadRequest,
}

type Options struct {
	// RateLimit is the number of Route53 requests per second.
	RateLimit float64
	// RecordTTL is the TTL of non-alias records.
	RecordTTL int64
}

type route53Manager struct {
	client  Route53API
	limiter *rate.Limiter
	ttl     int64
}

var _ Manager = (*route53Manager)(nil)

// New creates a Route53 backed Manager.
func New(client Route53API, options Options) Manager {
	if options.RateLimit <= 0 {
		options.RateLimit = DefaultRateLimit
	}
	if options.RecordTTL <= 0 {
		options.RecordTTL = DefaultRecordTTL
	}

	return &route53Manager{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(options.RateLimit), 1),
		ttl:     options.RecordTTL,
	}
}

func (m *route53Manager) wait(ctx context.Context) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "could not wait for route53 rate limiter")
	}

	return nil
}

func (m *route53Manager) Nameservers(ctx context.Context, hostedZoneRef string) ([]string, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	out, err := m.client.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(hostedZoneRef)})
	if err != nil {
		return nil, awserr.Classify(err, route53Codes, "could not get hosted zone %s", hostedZoneRef)
	}
	if out.DelegationSet == nil || len(out.DelegationSet.NameServers) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "hosted zone %s has no delegation set", hostedZoneRef)
	}

	return out.DelegationSet.NameServers, nil
}

func (m *route53Manager) ListRecords(ctx context.Context, hostedZoneRef string) ([]Record, error) {
	input := &route53.ListResourceRecordSetsInput{HostedZoneId: aws.String(hostedZoneRef)}

	var records []Record
	for {
		if err := m.wait(ctx); err != nil {
			return nil, err
		}

		out, err := m.client.ListResourceRecordSets(ctx, input)
		if err != nil {
			return nil, awserr.Classify(err, route53Codes, "could not list records of hosted zone %s", hostedZoneRef)
		}

		for _, set := range out.ResourceRecordSets {
			records = append(records, toRecord(set))
		}

		if !out.IsTruncated {
			return records, nil
		}

		input.StartRecordName = out.NextRecordName
		input.StartRecordType = out.NextRecordType
		input.StartRecordIdentifier = out.NextRecordIdentifier
	}
}

func toRecord(set types.ResourceRecordSet) Record {
	record := Record{
		Name: aws.ToString(set.Name),
		Type: string(set.Type),
		TTL:  aws.ToInt64(set.TTL),
	}
	for _, rr := range set.ResourceRecords {
		record.Values = append(record.Values, aws.ToString(rr.Value))
	}
	if set.AliasTarget != nil {
		record.Alias = aws.ToString(set.AliasTarget.DNSName)
	}

	return record
}

func (m *route53Manager) UpsertAlias(ctx context.Context, hostedZoneRef, name string, target AliasTarget) error {
	set, err := m.aliasRecordSet(name, target)
	if err != nil {
		return err
	}

	return m.change(ctx, hostedZoneRef, types.ChangeActionUpsert, set)
}

func (m *route53Manager) DeleteAlias(ctx context.Context, hostedZoneRef, name string, target AliasTarget) error {
	set, err := m.aliasRecordSet(name, target)
	if err != nil {
		return err
	}

	return m.remove(ctx, hostedZoneRef, set)
}

func (m *route53Manager) UpsertValidationRecord(
	ctx context.Context,
	hostedZoneRef string,
	record domain.ValidationRecord,
) error {
	return m.change(ctx, hostedZoneRef, types.ChangeActionUpsert, m.validationRecordSet(record))
}

func (m *route53Manager) DeleteValidationRecord(
	ctx context.Context,
	hostedZoneRef string,
	record domain.ValidationRecord,
) error {
	return m.remove(ctx, hostedZoneRef, m.validationRecordSet(record))
}

// remove deletes set and treats an already absent record or zone as success.
func (m *route53Manager) remove(ctx context.Context, hostedZoneRef string, set *types.ResourceRecordSet) error {
	err := m.change(ctx, hostedZoneRef, types.ChangeActionDelete, set)
	if err != nil && (errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound)) {
		logger.Debug(ctx, "record already absent",
			zap.String("record", aws.ToString(set.Name)),
			zap.String("type", string(set.Type)),
			zap.Error(err))

		return nil
	}

	return err
}

func (m *route53Manager) change(
	ctx context.Context,
	hostedZoneRef string,
	action types.ChangeAction,
	set *types.ResourceRecordSet,
) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	_, err := m.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(hostedZoneRef),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{{Action: action, ResourceRecordSet: set}},
		},
	})
	if err != nil {
		return awserr.Classify(err, route53Codes, "could not %s %s record %s in hosted zone %s",
			strings.ToLower(string(action)), set.Type, aws.ToString(set.Name), hostedZoneRef)
	}

	logger.Debug(ctx, "changed record",
		zap.String("action", string(action)),
		zap.String("record", aws.ToString(set.Name)),
		zap.String("type", string(set.Type)),
		zap.String("hostedZone", hostedZoneRef))

	return nil
}

func (m *route53Manager) aliasRecordSet(name string, target AliasTarget) (*types.ResourceRecordSet, error) {
	switch {
	case target.Address != "" && target.EndpointHostname != "":
		return nil, serrors.With(serrors.ErrBadRequest, "alias target must be either an address or an endpoint")
	case target.Address != "":
		addr, err := netip.ParseAddr(target.Address)
		if err != nil || !addr.Is4() {
			return nil, serrors.With(serrors.ErrBadRequest, "alias address %q is not an IPv4 address", target.Address)
		}

		return &types.ResourceRecordSet{
			Name:            aws.String(FQDN(name)),
			Type:            types.RRTypeA,
			TTL:             aws.Int64(m.ttl),
			ResourceRecords: []types.ResourceRecord{{Value: aws.String(addr.String())}},
		}, nil
	case target.EndpointHostname != "":
		return &types.ResourceRecordSet{
			Name: aws.String(FQDN(name)),
			Type: types.RRTypeA,
			AliasTarget: &types.AliasTarget{
				DNSName:              aws.String(FQDN(target.EndpointHostname)),
				HostedZoneId:         aws.String(CloudFrontHostedZoneID),
				EvaluateTargetHealth: false,
			},
		}, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "alias target is empty")
	}
}

func (m *route53Manager) validationRecordSet(record domain.ValidationRecord) *types.ResourceRecordSet {
	recordType := types.RRType(record.Type)
	if recordType == "" {
		recordType = types.RRTypeCname
	}

	return &types.ResourceRecordSet{
		Name:            aws.String(FQDN(record.Name)),
		Type:            recordType,
		TTL:             aws.Int64(m.ttl),
		ResourceRecords: []types.ResourceRecord{{Value: aws.String(record.Value)}},
	}
}

// FQDN returns name with exactly one trailing dot.
func FQDN(name string) string {
	return strings.TrimSuffix(name, ".") + "."
}
