package config_test

import (
	"launcher/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
distribution:
  originDomain: sites.s3.amazonaws.com
`))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "us-east-1", cfg.AWS.CertificateRegion)
	require.Equal(t, []string{"1.1.1.1:53", "8.8.8.8:53"}, cfg.Resolver.Nameservers)
	require.Equal(t, "sites", cfg.Distribution.PathPrefix)
	require.Equal(t, "PriceClass_100", cfg.Distribution.PriceClass)
	require.Equal(t, 10*time.Second, cfg.Lifecycle.CertificatePollInterval)
	require.False(t, cfg.Lifecycle.RollbackOnFailure)
	require.Equal(t, 10, cfg.Worker.MaxWorkers)
	require.Equal(t, 2*time.Hour, cfg.Worker.JobTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: production
resolver:
  nameservers: ["9.9.9.9:53"]
distribution:
  originDomain: sites.s3-website-eu-west-1.amazonaws.com
  priceClass: PriceClass_All
lifecycle:
  rollbackOnFailure: true
  certificateTimeout: 10m
worker:
  maxWorkers: 3
`))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, []string{"9.9.9.9:53"}, cfg.Resolver.Nameservers)
	require.Equal(t, "PriceClass_All", cfg.Distribution.PriceClass)
	require.True(t, cfg.Lifecycle.RollbackOnFailure)
	require.Equal(t, 10*time.Minute, cfg.Lifecycle.CertificateTimeout)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing origin", content: "environment: development\n"},
		{name: "certificate region", content: `
aws:
  certificateRegion: eu-west-1
distribution:
  originDomain: sites.s3.amazonaws.com
`},
		{name: "price class", content: `
distribution:
  originDomain: sites.s3.amazonaws.com
  priceClass: PriceClass_Cheap
`},
		{name: "nameserver without port", content: `
resolver:
  nameservers: ["1.1.1.1"]
distribution:
  originDomain: sites.s3.amazonaws.com
`},
		{name: "no workers", content: `
worker:
  maxWorkers: -1
distribution:
  originDomain: sites.s3.amazonaws.com
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
