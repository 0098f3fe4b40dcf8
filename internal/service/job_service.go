package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobs-api/internal/domain"
	"jobs-api/internal/repository"
)

// JobService coordina el CRUD de ofertas. Las ofertas no tienen campos
// secretos, así que no hay sanitización que aplicar.
type JobService struct {
	logger *zap.Logger
	jobs   repository.JobRepository
}

func NewJobService(logger *zap.Logger, jobs repository.JobRepository) *JobService {
	return &JobService{
		logger: logger,
		jobs:   jobs,
	}
}

type CreateJobInput struct {
	Title          string
	CompanyName    string
	CompanyWebsite string
	About          string
	Location       string
	LocationType   string
	Seniority      string
	Type           string
}

type UpdateJobInput struct {
	Title          *string
	CompanyName    *string
	CompanyWebsite *string
	About          *string
	Location       *string
	LocationType   *string
	Seniority      *string
	Type           *string
}

func (s *JobService) Create(ctx context.Context, input CreateJobInput) (domain.Job, error) {
	now := time.Now().UTC()
	job := domain.Job{
		ID:             uuid.NewString(),
		Title:          input.Title,
		CompanyName:    input.CompanyName,
		CompanyWebsite: input.CompanyWebsite,
		About:          input.About,
		Location:       input.Location,
		LocationType:   input.LocationType,
		Seniority:      input.Seniority,
		Type:           input.Type,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.logger.Error("create job failed", zap.Error(err))
		return domain.Job{}, domain.Unavailablef(err, "job creation on database failed")
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		s.logger.Error("list jobs failed", zap.Error(err))
		return nil, domain.Unavailablef(err, "fetching jobs from database failed")
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, domain.NotFoundf("job with id %s not found", id)
		}
		s.logger.Error("get job failed", zap.Error(err), zap.String("job_id", id))
		return domain.Job{}, domain.Unavailablef(err, "fetching job from database failed")
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id string, input UpdateJobInput) (domain.Job, error) {
	job, err := s.jobs.Update(ctx, id, repository.JobPatch{
		Title:          input.Title,
		CompanyName:    input.CompanyName,
		CompanyWebsite: input.CompanyWebsite,
		About:          input.About,
		Location:       input.Location,
		LocationType:   input.LocationType,
		Seniority:      input.Seniority,
		Type:           input.Type,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, domain.NotFoundf("job with id %s not found", id)
		}
		s.logger.Error("update job failed", zap.Error(err), zap.String("job_id", id))
		return domain.Job{}, domain.Unavailablef(err, "updating job on database failed")
	}
	return job, nil
}

func (s *JobService) Remove(ctx context.Context, id string) (domain.Job, error) {
	job, err := s.jobs.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, domain.NotFoundf("job with id %s not found", id)
		}
		s.logger.Error("remove job failed", zap.Error(err), zap.String("job_id", id))
		return domain.Job{}, domain.Unavailablef(err, "removing job on database failed")
	}
	return job, nil
}
