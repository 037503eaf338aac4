package dnsrecord_test

import (
	"context"
	"launcher/pkg/dnsrecord"
	"launcher/pkg/domain"
	"launcher/pkg/serrors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

type fakeRoute53 struct {
	zone      *route53.GetHostedZoneOutput
	zoneErr   error
	changes   []*route53.ChangeResourceRecordSetsInput
	changeErr error
	pages     []*route53.ListResourceRecordSetsOutput
	listCalls []*route53.ListResourceRecordSetsInput
}

func (f *fakeRoute53) GetHostedZone(
	_ context.Context,
	_ *route53.GetHostedZoneInput,
	_ ...func(*route53.Options),
) (*route53.GetHostedZoneOutput, error) {
	return f.zone, f.zoneErr
}

func (f *fakeRoute53) ChangeResourceRecordSets(
	_ context.Context,
	params *route53.ChangeResourceRecordSetsInput,
	_ ...func(*route53.Options),
) (*route53.ChangeResourceRecordSetsOutput, error) {
	f.changes = append(f.changes, params)
	if f.changeErr != nil {
		return nil, f.changeErr
	}

	return &route53.ChangeResourceRecordSetsOutput{}, nil
}

func (f *fakeRoute53) ListResourceRecordSets(
	_ context.Context,
	params *route53.ListResourceRecordSetsInput,
	_ ...func(*route53.Options),
) (*route53.ListResourceRecordSetsOutput, error) {
	copied := *params
	f.listCalls = append(f.listCalls, &copied)
	page := f.pages[0]
	f.pages = f.pages[1:]

	return page, nil
}

func newManager(client dnsrecord.Route53API) dnsrecord.Manager {
	return dnsrecord.New(client, dnsrecord.Options{RateLimit: 1000, RecordTTL: 60})
}

func TestUpsertAlias_Endpoint(t *testing.T) {
	fake := &fakeRoute53{}
	m := newManager(fake)

	err := m.UpsertAlias(context.Background(), "Z1", "example.com",
		dnsrecord.AliasTarget{EndpointHostname: "d111.cloudfront.net"})
	require.NoError(t, err)

	require.Len(t, fake.changes, 1)
	input := fake.changes[0]
	require.Equal(t, "Z1", aws.ToString(input.HostedZoneId))
	change := input.ChangeBatch.Changes[0]
	require.Equal(t, types.ChangeActionUpsert, change.Action)
	set := change.ResourceRecordSet
	require.Equal(t, "example.com.", aws.ToString(set.Name))
	require.Equal(t, types.RRTypeA, set.Type)
	require.Nil(t, set.TTL)
	require.Equal(t, "d111.cloudfront.net.", aws.ToString(set.AliasTarget.DNSName))
	require.Equal(t, dnsrecord.CloudFrontHostedZoneID, aws.ToString(set.AliasTarget.HostedZoneId))
}

func TestUpsertAlias_Address(t *testing.T) {
	fake := &fakeRoute53{}
	m := newManager(fake)

	err := m.UpsertAlias(context.Background(), "Z1", "example.com.", dnsrecord.AliasTarget{Address: "192.0.2.10"})
	require.NoError(t, err)

	set := fake.changes[0].ChangeBatch.Changes[0].ResourceRecordSet
	require.Equal(t, "example.com.", aws.ToString(set.Name))
	require.Nil(t, set.AliasTarget)
	require.Equal(t, int64(60), aws.ToInt64(set.TTL))
	require.Equal(t, "192.0.2.10", aws.ToString(set.ResourceRecords[0].Value))
}

func TestUpsertAlias_InvalidTarget(t *testing.T) {
	tests := []struct {
		name   string
		target dnsrecord.AliasTarget
	}{
		{name: "empty", target: dnsrecord.AliasTarget{}},
		{name: "both", target: dnsrecord.AliasTarget{Address: "192.0.2.1", EndpointHostname: "d.cloudfront.net"}},
		{name: "not an address", target: dnsrecord.AliasTarget{Address: "example.org"}},
		{name: "ipv6", target: dnsrecord.AliasTarget{Address: "2001:db8::1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRoute53{}
			err := newManager(fake).UpsertAlias(context.Background(), "Z1", "example.com", tt.target)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Empty(t, fake.changes)
		})
	}
}

func TestUpsertAlias_ProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		kind serrors.Kind
	}{
		{name: "invalid change batch", code: "InvalidChangeBatch", kind: serrors.ErrConflict},
		{name: "missing zone", code: "NoSuchHostedZone", kind: serrors.ErrNotFound},
		{name: "throttled", code: "Throttling", kind: serrors.ErrRateLimited},
		{name: "unknown", code: "ServiceUnavailable", kind: serrors.ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRoute53{changeErr: &smithy.GenericAPIError{Code: tt.code}}
			err := newManager(fake).UpsertAlias(context.Background(), "Z1", "example.com",
				dnsrecord.AliasTarget{EndpointHostname: "d.cloudfront.net"})
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestDeleteAlias_AbsentIsSuccess(t *testing.T) {
	for _, code := range []string{"InvalidChangeBatch", "NoSuchHostedZone"} {
		t.Run(code, func(t *testing.T) {
			fake := &fakeRoute53{changeErr: &smithy.GenericAPIError{Code: code}}
			err := newManager(fake).DeleteAlias(context.Background(), "Z1", "example.com",
				dnsrecord.AliasTarget{EndpointHostname: "d.cloudfront.net"})
			require.NoError(t, err)
			require.Equal(t, types.ChangeActionDelete, fake.changes[0].ChangeBatch.Changes[0].Action)
		})
	}
}

func TestDeleteAlias_OtherErrorsSurface(t *testing.T) {
	fake := &fakeRoute53{changeErr: &smithy.GenericAPIError{Code: "AccessDenied"}}
	err := newManager(fake).DeleteAlias(context.Background(), "Z1", "example.com",
		dnsrecord.AliasTarget{EndpointHostname: "d.cloudfront.net"})
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestValidationRecord(t *testing.T) {
	fake := &fakeRoute53{}
	m := newManager(fake)
	record := domain.ValidationRecord{
		Name:  "_abc.example.com.",
		Type:  "CNAME",
		Value: "_xyz.acm-validations.aws.",
	}

	require.NoError(t, m.UpsertValidationRecord(context.Background(), "Z1", record))
	require.NoError(t, m.DeleteValidationRecord(context.Background(), "Z1", record))

	require.Len(t, fake.changes, 2)
	upsert := fake.changes[0].ChangeBatch.Changes[0]
	del := fake.changes[1].ChangeBatch.Changes[0]
	require.Equal(t, types.ChangeActionUpsert, upsert.Action)
	require.Equal(t, types.ChangeActionDelete, del.Action)
	require.Equal(t, upsert.ResourceRecordSet, del.ResourceRecordSet, "delete must match the upserted record")
	require.Equal(t, types.RRTypeCname, upsert.ResourceRecordSet.Type)
	require.Equal(t, "_xyz.acm-validations.aws.", aws.ToString(upsert.ResourceRecordSet.ResourceRecords[0].Value))
}

func TestNameservers(t *testing.T) {
	fake := &fakeRoute53{zone: &route53.GetHostedZoneOutput{
		DelegationSet: &types.DelegationSet{NameServers: []string{"ns-1.awsdns-01.org", "ns-2.awsdns-02.com"}},
	}}

	ns, err := newManager(fake).Nameservers(context.Background(), "Z1")
	require.NoError(t, err)
	require.Equal(t, []string{"ns-1.awsdns-01.org", "ns-2.awsdns-02.com"}, ns)
}

func TestNameservers_Errors(t *testing.T) {
	_, err := newManager(&fakeRoute53{zone: &route53.GetHostedZoneOutput{}}).Nameservers(context.Background(), "Z1")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = newManager(&fakeRoute53{zoneErr: &smithy.GenericAPIError{Code: "NoSuchHostedZone"}}).
		Nameservers(context.Background(), "Z1")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestListRecords_Paginates(t *testing.T) {
	fake := &fakeRoute53{pages: []*route53.ListResourceRecordSetsOutput{
		{
			ResourceRecordSets: []types.ResourceRecordSet{{
				Name:            aws.String("example.com."),
				Type:            types.RRTypeNs,
				TTL:             aws.Int64(172800),
				ResourceRecords: []types.ResourceRecord{{Value: aws.String("ns-1.awsdns-01.org.")}},
			}},
			IsTruncated:    true,
			NextRecordName: aws.String("example.com."),
			NextRecordType: types.RRTypeA,
		},
		{
			ResourceRecordSets: []types.ResourceRecordSet{{
				Name:        aws.String("example.com."),
				Type:        types.RRTypeA,
				AliasTarget: &types.AliasTarget{DNSName: aws.String("d.cloudfront.net.")},
			}},
		},
	}}

	records, err := newManager(fake).ListRecords(context.Background(), "Z1")
	require.NoError(t, err)
	require.Equal(t, []dnsrecord.Record{
		{Name: "example.com.", Type: "NS", TTL: 172800, Values: []string{"ns-1.awsdns-01.org."}},
		{Name: "example.com.", Type: "A", Alias: "d.cloudfront.net."},
	}, records)

	require.Len(t, fake.listCalls, 2)
	require.Nil(t, fake.listCalls[0].StartRecordName)
	require.Equal(t, "example.com.", aws.ToString(fake.listCalls[1].StartRecordName))
	require.Equal(t, types.RRTypeA, fake.listCalls[1].StartRecordType)
}

func TestRateLimiterHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := dnsrecord.New(&fakeRoute53{}, dnsrecord.Options{RateLimit: 0.001})
	err := m.UpsertAlias(ctx, "Z1", "example.com", dnsrecord.AliasTarget{EndpointHostname: "d.cloudfront.net"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFQDN(t *testing.T) {
	require.Equal(t, "example.com.", dnsrecord.FQDN("example.com"))
	require.Equal(t, "example.com.", dnsrecord.FQDN("example.com."))
}
