package postgres

import (
	"context"
	"errors"
	"fmt"
	"launcher/pkg/domain"
	"launcher/pkg/serrors"
	"launcher/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	domainsTable = "domains"

	uniqueViolation = "23505"
)

// StoreDomain inserts a domain record and returns the stored row including
// the generated id and timestamps.
func (p *PgSQL) StoreDomain(ctx context.Context, record domain.DomainRecord) (*domain.DomainRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain record")
	}

	var row PgDomain
	row.FromDomain(record)

	var stored PgDomain
	if _, err := p.Builder.Insert(domainsTable).
		Rows(row).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "domain %s already exists", record.Name)
		}

		return nil, fmt.Errorf("could not store domain into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) DomainByID(ctx context.Context, id domain.DomainID) (*domain.DomainRecord, error) {
	return p.domainWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) DomainByName(ctx context.Context, name string) (*domain.DomainRecord, error) {
	return p.domainWhere(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) domainWhere(ctx context.Context, where exp.Expression) (*domain.DomainRecord, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ListDomains returns domain records ordered by name, optionally filtered by status.
func (p *PgSQL) ListDomains(ctx context.Context, statuses ...domain.Status) ([]domain.DomainRecord, error) {
	ds := p.Builder.From(domainsTable).Order(goqu.I("name").Asc())
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		ds = ds.Where(goqu.I("status").In(values))
	}

	var rows []PgDomain
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list domains from pg: %w", err)
	}

	return pgDomainsToDomain(rows), nil
}

// TransitionDomain updates the record in a single conditional statement so
// that concurrent callers can never both observe the from state.
func (p *PgSQL) TransitionDomain(ctx context.Context,
	id domain.DomainID,
	from storage.DomainState,
	updates storage.DomainUpdates) (*domain.DomainRecord, error) {
	if !updates.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", updates.Status)
	}
	if updates.Status.Transient() && updates.Available {
		return nil, serrors.With(serrors.ErrBadRequest, "status %s requires available=false", updates.Status)
	}

	rec := goqu.Record{
		"status":     string(updates.Status),
		"available":  updates.Available,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	switch {
	case updates.ClearRefs:
		rec["certificate_ref"] = goqu.L("NULL")
		rec["distribution_id"] = goqu.L("NULL")
		rec["distribution_endpoint"] = goqu.L("NULL")
	default:
		if updates.CertificateRef != nil {
			rec["certificate_ref"] = string(*updates.CertificateRef)
		}
		if updates.DistributionRef != nil {
			rec["distribution_id"] = updates.DistributionRef.ID
			rec["distribution_endpoint"] = updates.DistributionRef.EndpointHostname
		}
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgDomain
	found, err := p.Builder.Update(domainsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(from.Status)),
		goqu.I("available").Eq(from.Available),
	).Returning(&PgDomain{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not transition domain in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
