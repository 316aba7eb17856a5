package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maiunguwa377/caseflow/internal/api/metrics"
	"github.com/maiunguwa377/caseflow/internal/core/domain"
	"github.com/maiunguwa377/caseflow/internal/core/ports"
)

// CaseService proxies case reads and writes to the repository, with a
// read-through cache on the list path. Cache failures degrade to the
// database and never fail the request.
type CaseService struct {
	repo   ports.CaseRepository
	cache  ports.CaseCache
	logger zerolog.Logger
}

// NewCaseService creates a CaseService. cache may be nil to disable caching.
func NewCaseService(repo ports.CaseRepository, cache ports.CaseCache, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, cache: cache, logger: logger}
}

func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	if s.cache != nil {
		cases, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("case cache read failed")
		} else if ok {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cases, nil
		} else {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	cases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cases); err != nil {
			s.logger.Warn().Err(err).Msg("case cache write failed")
		}
	}
	return cases, nil
}

func (s *CaseService) Create(ctx context.Context, input ports.CaseInput) (*domain.Case, error) {
	c := &domain.Case{
		CaseNumber:       input.CaseNumber,
		Parties:          input.Parties,
		RegistrationDate: input.RegistrationDate,
		Status:           input.Status,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Str("case_number", input.CaseNumber).Msg("failed to create case")
		return nil, err
	}

	metrics.CaseMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().
		Int64("case_id", created.ID).
		Str("case_number", created.CaseNumber).
		Int64("actor_id", input.ActorID).
		Msg("case created")

	s.invalidate(ctx)
	return created, nil
}

func (s *CaseService) Update(ctx context.Context, id int64, input ports.CaseInput) error {
	c := &domain.Case{
		ID:               id,
		CaseNumber:       input.CaseNumber,
		Parties:          input.Parties,
		RegistrationDate: input.RegistrationDate,
		Status:           input.Status,
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}

	metrics.CaseMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Int64("case_id", id).Int64("actor_id", input.ActorID).Msg("case updated")

	s.invalidate(ctx)
	return nil
}

func (s *CaseService) Delete(ctx context.Context, id int64, actorID int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.CaseMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Int64("case_id", id).Int64("actor_id", actorID).Msg("case deleted")

	s.invalidate(ctx)
	return nil
}

func (s *CaseService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("case cache invalidation failed")
	}
}
