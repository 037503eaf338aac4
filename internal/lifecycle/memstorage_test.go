package lifecycle_test

import (
	"context"
	"launcher/pkg/domain"
	"launcher/pkg/storage"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"github.com/samber/lo"
)

// memStorage is an in-memory storage.AllStorage applying transitions under a
// lock, with the same precondition semantics as the postgres store.
type memStorage struct {
	mu      sync.Mutex
	records map[domain.DomainID]domain.DomainRecord
	jobs    []river.JobArgs
}

var _ storage.AllStorage = (*memStorage)(nil)

func newMemStorage(records ...domain.DomainRecord) *memStorage {
	s := &memStorage{records: map[domain.DomainID]domain.DomainRecord{}}
	for _, r := range records {
		s.records[r.ID] = r
	}

	return s
}

func (s *memStorage) get(id domain.DomainID) domain.DomainRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records[id]
}

func (s *memStorage) StoreDomain(_ context.Context, record domain.DomainRecord) (*domain.DomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.ID] = record

	return &record, nil
}

func (s *memStorage) DomainByID(_ context.Context, id domain.DomainID) (*domain.DomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}

	return &record, nil
}

func (s *memStorage) DomainByName(_ context.Context, name string) (*domain.DomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Name == name {
			return &record, nil
		}
	}

	return nil, nil
}

func (s *memStorage) ListDomains(_ context.Context, statuses ...domain.Status) ([]domain.DomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Filter(lo.Values(s.records), func(r domain.DomainRecord, _ int) bool {
		return len(statuses) == 0 || lo.Contains(statuses, r.Status)
	}), nil
}

func (s *memStorage) TransitionDomain(_ context.Context,
	id domain.DomainID,
	from storage.DomainState,
	updates storage.DomainUpdates) (*domain.DomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok || record.Status != from.Status || record.Available != from.Available {
		return nil, nil
	}

	record.Status = updates.Status
	record.Available = updates.Available
	if updates.ClearRefs {
		record.CertificateRef = nil
		record.DistributionRef = nil
	} else {
		if updates.CertificateRef != nil {
			record.CertificateRef = lo.ToPtr(*updates.CertificateRef)
		}
		if updates.DistributionRef != nil {
			record.DistributionRef = lo.ToPtr(*updates.DistributionRef)
		}
	}
	if updates.LastError != nil {
		record.LastError = *updates.LastError
	}
	record.UpdatedAt = time.Now()
	s.records[id] = record

	return &record, nil
}

func (s *memStorage) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, args)

	return true, nil
}
