package main

import (
	"context"
	"launcher/internal/config"
	"launcher/internal/lifecycle"
	"launcher/pkg/certificate"
	"launcher/pkg/distribution"
	"launcher/pkg/dnsrecord"
	"launcher/pkg/logger"
	"launcher/pkg/ownership"
	"launcher/pkg/storage"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getManagers builds the provider-backed managers from the default AWS
// credential chain. Certificates are requested in the certificate region,
// where CloudFront looks them up.
func getManagers(ctx context.Context, cfg *config.Config) lifecycle.Managers {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Fatal(ctx, "could not load aws config", zap.Error(err))
	}

	dns := dnsrecord.New(route53.NewFromConfig(awsCfg), dnsrecord.Options{
		RateLimit: cfg.AWS.Route53RateLimit,
		RecordTTL: cfg.AWS.RecordTTL,
	})

	acmClient := acm.NewFromConfig(awsCfg, func(o *acm.Options) {
		o.Region = cfg.AWS.CertificateRegion
	})

	return lifecycle.Managers{
		Verifier: ownership.New(ownership.NewPublicResolver(cfg.Resolver.Nameservers, cfg.Resolver.Timeout)),
		Certificate: certificate.New(acmClient, dns, certificate.Options{
			PollInterval:      cfg.Lifecycle.CertificatePollInterval,
			ValidationTimeout: cfg.Lifecycle.ValidationRecordTimeout,
			IssueTimeout:      cfg.Lifecycle.CertificateTimeout,
		}),
		Distribution: distribution.New(cloudfront.NewFromConfig(awsCfg), distribution.Options{
			PollInterval:  cfg.Lifecycle.DistributionPollInterval,
			DeployTimeout: cfg.Lifecycle.DistributionTimeout,
		}),
		DNS: dns,
	}
}

// getController creates the lifecycle controller. A nil meterProvider uses
// the global one.
func getController(ctx context.Context,
	cfg *config.Config,
	strg storage.AllStorage,
	meterProvider metric.MeterProvider) lifecycle.Controller {
	options := lifecycle.NewOptions(cfg)
	options.MeterProvider = meterProvider

	controller, err := lifecycle.New(strg, getManagers(ctx, cfg), options)
	if err != nil {
		logger.Fatal(ctx, "could not create lifecycle controller", zap.Error(err))
	}

	return controller
}
