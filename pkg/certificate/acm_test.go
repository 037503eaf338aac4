package certificate_test

import (
	"context"
	"launcher/pkg/certificate"
	mockdnsrecord "launcher/pkg/dnsrecord/mock"
	"launcher/pkg/domain"
	"launcher/pkg/serrors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	"github.com/aws/aws-sdk-go-v2/service/acm/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const certARN = "arn:aws:acm:us-east-1:123456789012:certificate/abc"

type fakeACM struct {
	requested   *acm.RequestCertificateInput
	requestErr  error
	describes   []*types.CertificateDetail
	describeErr error
	deleted     []string
	deleteErr   error
}

func (f *fakeACM) RequestCertificate(
	_ context.Context,
	params *acm.RequestCertificateInput,
	_ ...func(*acm.Options),
) (*acm.RequestCertificateOutput, error) {
	f.requested = params
	if f.requestErr != nil {
		return nil, f.requestErr
	}

	return &acm.RequestCertificateOutput{CertificateArn: aws.String(certARN)}, nil
}

// DescribeCertificate returns the queued details in order and keeps repeating
// the last one.
func (f *fakeACM) DescribeCertificate(
	_ context.Context,
	_ *acm.DescribeCertificateInput,
	_ ...func(*acm.Options),
) (*acm.DescribeCertificateOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	detail := f.describes[0]
	if len(f.describes) > 1 {
		f.describes = f.describes[1:]
	}

	return &acm.DescribeCertificateOutput{Certificate: detail}, nil
}

func (f *fakeACM) DeleteCertificate(
	_ context.Context,
	params *acm.DeleteCertificateInput,
	_ ...func(*acm.Options),
) (*acm.DeleteCertificateOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.CertificateArn))

	return &acm.DeleteCertificateOutput{}, f.deleteErr
}

func validationOption(domainName, name string) types.DomainValidation {
	return types.DomainValidation{
		DomainName: aws.String(domainName),
		ResourceRecord: &types.ResourceRecord{
			Name:  aws.String(name),
			Type:  types.RecordTypeCname,
			Value: aws.String(name + "acm-validations.aws."),
		},
	}
}

func pendingWithRecords() *types.CertificateDetail {
	return &types.CertificateDetail{
		Status: types.CertificateStatusPendingValidation,
		DomainValidationOptions: []types.DomainValidation{
			validationOption("example.com", "_a.example.com."),
			validationOption("www.example.com", "_b.www.example.com."),
		},
	}
}

func withStatus(detail *types.CertificateDetail, status types.CertificateStatus) *types.CertificateDetail {
	copied := *detail
	copied.Status = status

	return &copied
}

var fastOptions = certificate.Options{ //nolint: gochecknoglobals
	PollInterval:      time.Millisecond,
	ValidationTimeout: time.Second,
	IssueTimeout:      time.Second,
}

func TestIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)

	fake := &fakeACM{describes: []*types.CertificateDetail{
		{
			Status:                  types.CertificateStatusPendingValidation,
			DomainValidationOptions: []types.DomainValidation{{DomainName: aws.String("example.com")}},
		},
		pendingWithRecords(),
		withStatus(pendingWithRecords(), types.CertificateStatusPendingValidation),
		withStatus(pendingWithRecords(), types.CertificateStatusIssued),
	}}

	dns.EXPECT().UpsertValidationRecord(gomock.Any(), "Z1", domain.ValidationRecord{
		Name: "_a.example.com.", Type: "CNAME", Value: "_a.example.com.acm-validations.aws.",
	}).Return(nil)
	dns.EXPECT().UpsertValidationRecord(gomock.Any(), "Z1", domain.ValidationRecord{
		Name: "_b.www.example.com.", Type: "CNAME", Value: "_b.www.example.com.acm-validations.aws.",
	}).Return(nil)

	ref, err := certificate.New(fake, dns, fastOptions).Issue(context.Background(), "example.com", "Z1")
	require.NoError(t, err)
	require.Equal(t, domain.CertificateRef(certARN), ref)

	require.Equal(t, "example.com", aws.ToString(fake.requested.DomainName))
	require.Equal(t, []string{"www.example.com"}, fake.requested.SubjectAlternativeNames)
	require.Equal(t, types.ValidationMethodDns, fake.requested.ValidationMethod)
}

func TestIssue_DuplicateValidationRecordsPublishedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)

	detail := &types.CertificateDetail{
		Status: types.CertificateStatusIssued,
		DomainValidationOptions: []types.DomainValidation{
			validationOption("example.com", "_a.example.com."),
			validationOption("www.example.com", "_a.example.com."),
		},
	}
	fake := &fakeACM{describes: []*types.CertificateDetail{detail}}

	dns.EXPECT().UpsertValidationRecord(gomock.Any(), "Z1", gomock.Any()).Return(nil).Times(1)

	_, err := certificate.New(fake, dns, fastOptions).Issue(context.Background(), "example.com", "Z1")
	require.NoError(t, err)
}

func TestIssue_RequestFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{requestErr: &smithy.GenericAPIError{Code: "LimitExceededException"}}

	ref, err := certificate.New(fake, dns, fastOptions).Issue(context.Background(), "example.com", "Z1")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Empty(t, ref)
}

func TestIssue_FailedStatusAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	failed := withStatus(pendingWithRecords(), types.CertificateStatusFailed)
	failed.FailureReason = types.FailureReason("CAA_ERROR")
	fake := &fakeACM{describes: []*types.CertificateDetail{pendingWithRecords(), failed}}

	dns.EXPECT().UpsertValidationRecord(gomock.Any(), "Z1", gomock.Any()).Return(nil).Times(2)

	ref, err := certificate.New(fake, dns, fastOptions).Issue(context.Background(), "example.com", "Z1")
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Contains(t, err.Error(), "FAILED")
	require.Equal(t, domain.CertificateRef(certARN), ref, "requested certificate is reported for cleanup")
}

func TestIssue_ValidationRecordsNeverAppear(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{describes: []*types.CertificateDetail{{Status: types.CertificateStatusPendingValidation}}}

	options := fastOptions
	options.ValidationTimeout = 20 * time.Millisecond

	ref, err := certificate.New(fake, dns, options).Issue(context.Background(), "example.com", "Z1")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, domain.CertificateRef(certARN), ref)
}

func TestIssue_IssuanceTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{describes: []*types.CertificateDetail{pendingWithRecords()}}

	dns.EXPECT().UpsertValidationRecord(gomock.Any(), "Z1", gomock.Any()).Return(nil).Times(2)

	options := fastOptions
	options.IssueTimeout = 20 * time.Millisecond

	_, err := certificate.New(fake, dns, options).Issue(context.Background(), "example.com", "Z1")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestIssue_PublishFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{describes: []*types.CertificateDetail{pendingWithRecords()}}

	dns.EXPECT().UpsertValidationRecord(gomock.Any(), "Z1", gomock.Any()).
		Return(serrors.With(serrors.ErrTransient, "route53 down"))

	_, err := certificate.New(fake, dns, fastOptions).Issue(context.Background(), "example.com", "Z1")
	require.ErrorIs(t, err, serrors.ErrTransient)
}

func TestRevoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{describes: []*types.CertificateDetail{withStatus(pendingWithRecords(), types.CertificateStatusIssued)}}

	dns.EXPECT().DeleteValidationRecord(gomock.Any(), "Z1", gomock.Any()).Return(nil).Times(2)

	err := certificate.New(fake, dns, fastOptions).Revoke(context.Background(), certARN, "Z1")
	require.NoError(t, err)
	require.Equal(t, []string{certARN}, fake.deleted)
}

func TestRevoke_AlreadyGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{describeErr: &smithy.GenericAPIError{Code: "ResourceNotFoundException"}}

	err := certificate.New(fake, dns, fastOptions).Revoke(context.Background(), certARN, "Z1")
	require.NoError(t, err)
	require.Empty(t, fake.deleted)
}

func TestRevoke_DeletedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{
		describes: []*types.CertificateDetail{withStatus(pendingWithRecords(), types.CertificateStatusIssued)},
		deleteErr: &smithy.GenericAPIError{Code: "ResourceNotFoundException"},
	}

	dns.EXPECT().DeleteValidationRecord(gomock.Any(), "Z1", gomock.Any()).Return(nil).Times(2)

	err := certificate.New(fake, dns, fastOptions).Revoke(context.Background(), certARN, "Z1")
	require.NoError(t, err)
}

func TestRevoke_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsrecord.NewMockManager(ctrl)
	fake := &fakeACM{
		describes: []*types.CertificateDetail{withStatus(pendingWithRecords(), types.CertificateStatusIssued)},
		deleteErr: &smithy.GenericAPIError{Code: "ResourceInUseException"},
	}

	dns.EXPECT().DeleteValidationRecord(gomock.Any(), "Z1", gomock.Any()).Return(nil).Times(2)

	err := certificate.New(fake, dns, fastOptions).Revoke(context.Background(), certARN, "Z1")
	require.ErrorIs(t, err, serrors.ErrConflict)
}
