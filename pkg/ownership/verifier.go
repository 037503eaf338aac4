package ownership

import (
	"context"
	"launcher/pkg/logger"
	"launcher/pkg/serrors"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// NSResolver looks up the live nameservers of a domain. *net.Resolver
// satisfies it.
type NSResolver interface {
	LookupNS(ctx context.Context, name string) ([]*net.NS, error)
}

type verifier struct {
	resolver NSResolver
}

var _ Verifier = (*verifier)(nil)

func New(resolver NSResolver) Verifier {
	return &verifier{resolver: resolver}
}

func (v *verifier) Verify(ctx context.Context, domainName string, hostedZoneNameservers []string) error {
	records, err := v.resolver.LookupNS(ctx, domainName)
	if err != nil {
		return serrors.Wrap(serrors.ErrResolution, err, "could not resolve nameservers of %s", domainName)
	}

	live := lo.Uniq(lo.FilterMap(records, func(ns *net.NS, _ int) (string, bool) {
		if ns == nil || ns.Host == "" {
			return "", false
		}

		return normalize(ns.Host), true
	}))
	if len(live) == 0 {
		return serrors.With(serrors.ErrOwnership, "%s has no nameservers", domainName)
	}

	expected := lo.Map(hostedZoneNameservers, func(ns string, _ int) string { return normalize(ns) })
	if missing := lo.Without(live, expected...); len(missing) > 0 {
		return serrors.With(serrors.ErrOwnership,
			"%s is not delegated to its hosted zone: nameservers %s are not part of it",
			domainName, strings.Join(missing, ", "))
	}

	logger.Debug(ctx, "domain delegation verified",
		zap.String("domain", domainName),
		zap.Strings("nameservers", live))

	return nil
}

func normalize(host string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), ".")) + "."
}

// NewPublicResolver returns a resolver that queries the given public DNS
// servers (host:port) in turn instead of the system configuration.
func NewPublicResolver(servers []string, timeout time.Duration) *net.Resolver {
	var next atomic.Uint32
	dialer := &net.Dialer{Timeout: timeout}

	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			server := servers[int(next.Add(1)-1)%len(servers)]

			return dialer.DialContext(ctx, network, server)
		},
	}
}
