package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskconnect/internal/auth"
	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
)

// JobService handles jobs created by clients against listed services.
type JobService interface {
	Create(ctx context.Context, caller *model.User, job *model.Job) error
	List(ctx context.Context, caller *model.User, offset, limit int) ([]model.Job, error)
	Get(ctx context.Context, caller *model.User, id uint) (*model.Job, error)
	UpdateStatus(ctx context.Context, caller *model.User, id uint, status model.JobStatus) (*model.Job, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type jobService struct {
	jobs     repository.JobRepository
	services repository.ServiceRepository
}

// NewJobService creates a new job service.
func NewJobService(jobs repository.JobRepository, services repository.ServiceRepository) JobService {
	return &jobService{
		jobs:     jobs,
		services: services,
	}
}

// Create persists a new pending job for the caller. The referenced service
// must exist; the client is always the resolved caller identity.
func (s *jobService) Create(ctx context.Context, caller *model.User, job *model.Job) error {
	if _, err := s.services.FindByID(ctx, job.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return fmt.Errorf("find service: %w", err)
	}

	job.ClientID = caller.ID
	job.Status = model.JobStatusPending
	if err := s.jobs.Create(ctx, job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// List returns the caller's own jobs. This is a filter, not a gate: other
// identities' jobs are simply absent from the result.
func (s *jobService) List(ctx context.Context, caller *model.User, offset, limit int) ([]model.Job, error) {
	jobs, err := s.jobs.ListByClient(ctx, caller.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Get returns a single job iff the caller is its client.
func (s *jobService) Get(ctx context.Context, caller *model.User, id uint) (*model.Job, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(caller, job.ClientID); err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateStatus moves the job to a new state iff the caller is its client.
// The status is checked against the closed enum before anything else;
// arbitrary strings are never persisted.
func (s *jobService) UpdateStatus(ctx context.Context, caller *model.User, id uint, status model.JobStatus) (*model.Job, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(caller, job.ClientID); err != nil {
		return nil, err
	}

	job.Status = status
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Delete removes the job and its messages iff the caller is its client.
// The deletes run in one transaction; a failure rolls everything back.
func (s *jobService) Delete(ctx context.Context, caller *model.User, id uint) error {
	job, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(caller, job.ClientID); err != nil {
		return err
	}

	if err := s.jobs.DeleteWithMessages(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func (s *jobService) find(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return job, nil
}
