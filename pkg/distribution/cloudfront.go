package distribution

import (
	"context"
	"launcher/pkg/awserr"
	"launcher/pkg/domain"
	"launcher/pkg/logger"
	"launcher/pkg/poll"
	"launcher/pkg/serrors"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CloudFrontAPI is the subset of *cloudfront.Client used by the manager.
type CloudFrontAPI interface {
	CreateDistribution(ctx context.Context,
		params *cloudfront.CreateDistributionInput,
		optFns ...func(*cloudfront.Options)) (*cloudfront.CreateDistributionOutput, error)
	GetDistribution(ctx context.Context,
		params *cloudfront.GetDistributionInput,
		optFns ...func(*cloudfront.Options)) (*cloudfront.GetDistributionOutput, error)
	GetDistributionConfig(ctx context.Context,
		params *cloudfront.GetDistributionConfigInput,
		optFns ...func(*cloudfront.Options)) (*cloudfront.GetDistributionConfigOutput, error)
	UpdateDistribution(ctx context.Context,
		params *cloudfront.UpdateDistributionInput,
		optFns ...func(*cloudfront.Options)) (*cloudfront.UpdateDistributionOutput, error)
	DeleteDistribution(ctx context.Context,
		params *cloudfront.DeleteDistributionInput,
		optFns ...func(*cloudfront.Options)) (*cloudfront.DeleteDistributionOutput, error)
}

const (
	// StatusDeployed is reported once a configuration change reached every edge.
	StatusDeployed = "Deployed"

	DefaultRootObject = "index.html"
	// DefaultCachePolicyID is the managed CachingOptimized policy.
	DefaultCachePolicyID = "658327ea-f89d-4fab-a63d-7e88639e58f6"
	DefaultPriceClass    = string(types.PriceClassPriceClass100)

	DefaultPollInterval  = 30 * time.Second
	DefaultDeployTimeout = 40 * time.Minute

	originID = "site-origin"
)

var cloudFrontCodes = awserr.Codes{ //nolint: gochecknoglobals
	"NoSuchDistribution":       serrors.ErrNotFound,
	"PreconditionFailed":       serrors.ErrConflict,
	"InvalidIfMatchVersion":    serrors.ErrConflict,
	"DistributionNotDisabled":  serrors.ErrConflict,
	"CNAMEAlreadyExists":       serrors.ErrConflict,
	"IllegalUpdate":            serrors.ErrBadRequest,
	"InvalidViewerCertificate": serrors.ErrBadRequest,
	"InvalidArgument":          serrors.ErrBadRequest,
}

type Options struct {
	PollInterval time.Duration
	// DeployTimeout bounds the wait for a disabled distribution to deploy.
	DeployTimeout time.Duration
}

type cloudFrontManager struct {
	client  CloudFrontAPI
	options Options
}

var _ Manager = (*cloudFrontManager)(nil)

func New(client CloudFrontAPI, options Options) Manager {
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if options.DeployTimeout <= 0 {
		options.DeployTimeout = DefaultDeployTimeout
	}

	return &cloudFrontManager{
		client:  client,
		options: options,
	}
}

// OriginPath returns the path under the origin that holds domainName's content.
func OriginPath(prefix, domainName string) string {
	return path.Join("/", prefix, domainName)
}

func (m *cloudFrontManager) Create(
	ctx context.Context,
	domainName string,
	certificateRef domain.CertificateRef,
	origin OriginConfig,
) (domain.DistributionRef, error) {
	out, err := m.client.CreateDistribution(ctx, &cloudfront.CreateDistributionInput{
		DistributionConfig: distributionConfig(domainName, certificateRef, origin),
	})
	if err != nil {
		return domain.DistributionRef{}, awserr.Classify(err, cloudFrontCodes,
			"could not create distribution for %s", domainName)
	}
	if out.Distribution == nil {
		return domain.DistributionRef{}, serrors.With(serrors.ErrInternal,
			"distribution for %s was created without details", domainName)
	}

	ref := domain.DistributionRef{
		ID:               aws.ToString(out.Distribution.Id),
		EndpointHostname: aws.ToString(out.Distribution.DomainName),
	}
	logger.Info(ctx, "created distribution",
		zap.String("distribution", ref.ID),
		zap.String("endpoint", ref.EndpointHostname))

	return ref, nil
}

func distributionConfig(
	domainName string,
	certificateRef domain.CertificateRef,
	origin OriginConfig,
) *types.DistributionConfig {
	rootObject := origin.DefaultRootObject
	if rootObject == "" {
		rootObject = DefaultRootObject
	}
	cachePolicyID := origin.CachePolicyID
	if cachePolicyID == "" {
		cachePolicyID = DefaultCachePolicyID
	}
	priceClass := origin.PriceClass
	if priceClass == "" {
		priceClass = DefaultPriceClass
	}

	o := types.Origin{
		Id:         aws.String(originID),
		DomainName: aws.String(origin.DomainName),
		OriginPath: aws.String(OriginPath(origin.PathPrefix, domainName)),
	}
	// Website endpoints only speak plain HTTP and must be configured as custom origins.
	if strings.Contains(origin.DomainName, ".s3-website") {
		o.CustomOriginConfig = &types.CustomOriginConfig{
			HTTPPort:             aws.Int32(80),
			HTTPSPort:            aws.Int32(443),
			OriginProtocolPolicy: types.OriginProtocolPolicyHttpOnly,
		}
	} else {
		o.S3OriginConfig = &types.S3OriginConfig{OriginAccessIdentity: aws.String("")}
	}

	return &types.DistributionConfig{
		CallerReference:   aws.String(uuid.NewString()),
		Comment:           aws.String(domainName),
		Enabled:           aws.Bool(true),
		DefaultRootObject: aws.String(rootObject),
		Aliases: &types.Aliases{
			Quantity: aws.Int32(1),
			Items:    []string{domainName},
		},
		Origins: &types.Origins{
			Quantity: aws.Int32(1),
			Items:    []types.Origin{o},
		},
		DefaultCacheBehavior: &types.DefaultCacheBehavior{
			TargetOriginId:       aws.String(originID),
			ViewerProtocolPolicy: types.ViewerProtocolPolicyRedirectToHttps,
			CachePolicyId:        aws.String(cachePolicyID),
			Compress:             aws.Bool(true),
		},
		ViewerCertificate: &types.ViewerCertificate{
			ACMCertificateArn:      aws.String(string(certificateRef)),
			SSLSupportMethod:       types.SSLSupportMethodSniOnly,
			MinimumProtocolVersion: types.MinimumProtocolVersionTLSv122021,
		},
		PriceClass:  types.PriceClass(priceClass),
		HttpVersion: types.HttpVersionHttp2,
	}
}

func (m *cloudFrontManager) Destroy(ctx context.Context, ref domain.DistributionRef) error {
	ctx = logger.WithFields(ctx, zap.String("distribution", ref.ID))

	err := m.destroy(ctx, ref)
	if serrors.IsAbsent(err) {
		logger.Info(ctx, "distribution already deleted")

		return nil
	}

	return err
}

func (m *cloudFrontManager) destroy(ctx context.Context, ref domain.DistributionRef) error {
	current, err := m.client.GetDistributionConfig(ctx, &cloudfront.GetDistributionConfigInput{
		Id: aws.String(ref.ID),
	})
	if err != nil {
		return awserr.Classify(err, cloudFrontCodes, "could not get distribution %s", ref.ID)
	}

	if current.DistributionConfig != nil && aws.ToBool(current.DistributionConfig.Enabled) {
		cfg := current.DistributionConfig
		cfg.Enabled = aws.Bool(false)

		_, err := m.client.UpdateDistribution(ctx, &cloudfront.UpdateDistributionInput{
			Id:                 aws.String(ref.ID),
			IfMatch:            current.ETag,
			DistributionConfig: cfg,
		})
		if err != nil {
			return awserr.Classify(err, cloudFrontCodes, "could not disable distribution %s", ref.ID)
		}
		logger.Info(ctx, "disabled distribution")
	}

	etag, err := poll.Until(ctx, poll.Options{
		Interval:    m.options.PollInterval,
		Timeout:     m.options.DeployTimeout,
		Description: "distribution to be disabled and deployed",
	}, func(ctx context.Context) (*string, bool, error) {
		out, err := m.client.GetDistribution(ctx, &cloudfront.GetDistributionInput{Id: aws.String(ref.ID)})
		if err != nil {
			return nil, false, awserr.Classify(err, cloudFrontCodes, "could not get distribution %s", ref.ID)
		}

		d := out.Distribution
		done := d != nil &&
			aws.ToString(d.Status) == StatusDeployed &&
			d.DistributionConfig != nil && !aws.ToBool(d.DistributionConfig.Enabled)

		return out.ETag, done, nil
	})
	if err != nil {
		return err
	}

	_, err = m.client.DeleteDistribution(ctx, &cloudfront.DeleteDistributionInput{
		Id:      aws.String(ref.ID),
		IfMatch: etag,
	})
	if err != nil {
		return awserr.Classify(err, cloudFrontCodes, "could not delete distribution %s", ref.ID)
	}

	logger.Info(ctx, "deleted distribution")

	return nil
}
