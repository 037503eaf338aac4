package postgres

import (
	"database/sql"
	"launcher/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgDomain struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name          string `db:"name"`
	HostedZoneRef string `db:"hosted_zone_ref"`
	Status        string `db:"status"`
	Available     bool   `db:"available"`

	CertificateRef       sql.NullString `db:"certificate_ref"`
	DistributionID       sql.NullString `db:"distribution_id"`
	DistributionEndpoint sql.NullString `db:"distribution_endpoint"`

	LastError sql.NullString `db:"last_error"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() *domain.DomainRecord {
	record := &domain.DomainRecord{
		ID:            domain.DomainID(p.ID),
		Name:          p.Name,
		HostedZoneRef: p.HostedZoneRef,
		Status:        domain.Status(p.Status),
		Available:     p.Available,
		LastError:     p.LastError.String,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
	if p.CertificateRef.Valid {
		ref := domain.CertificateRef(p.CertificateRef.String)
		record.CertificateRef = &ref
	}
	if p.DistributionID.Valid {
		record.DistributionRef = &domain.DistributionRef{
			ID:               p.DistributionID.String,
			EndpointHostname: p.DistributionEndpoint.String,
		}
	}

	return record
}

func (p *PgDomain) FromDomain(record domain.DomainRecord) {
	*p = PgDomain{
		ID:            uuid.UUID(record.ID),
		Name:          record.Name,
		HostedZoneRef: record.HostedZoneRef,
		Status:        string(record.Status),
		Available:     record.Available,
		LastError: sql.NullString{
			String: record.LastError,
			Valid:  record.LastError != "",
		},
		CreatedAt: record.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  record.UpdatedAt,
			Valid: !record.UpdatedAt.IsZero(),
		},
	}
	if record.CertificateRef != nil {
		p.CertificateRef = sql.NullString{String: string(*record.CertificateRef), Valid: true}
	}
	if record.DistributionRef != nil {
		p.DistributionID = sql.NullString{String: record.DistributionRef.ID, Valid: true}
		p.DistributionEndpoint = sql.NullString{String: record.DistributionRef.EndpointHostname, Valid: true}
	}
}

func pgDomainsToDomain(rows []PgDomain) []domain.DomainRecord {
	out := make([]domain.DomainRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}
