package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// JobUseCase contractor job management. Creation is capped by the
// subscription tier.
type JobUseCase struct {
	jobRepo      repository.JobRepository
	customerRepo repository.CustomerRepository
	entitlements *EntitlementService
}

// NewJobUseCase builds the use case.
func NewJobUseCase(jobRepo repository.JobRepository, customerRepo repository.CustomerRepository, entitlements *EntitlementService) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, customerRepo: customerRepo, entitlements: entitlements}
}

func validJobStatus(s string) bool {
	switch s {
	case entity.JobQuoted, entity.JobScheduled, entity.JobInProgress, entity.JobDone, entity.JobCanceled:
		return true
	}
	return false
}

// Create opens a job for one of the contractor's customers.
// Returns ErrLimitExceeded when the tier's job cap is reached.
func (uc *JobUseCase) Create(ctx context.Context, contractorID string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if in.CustomerID == "" || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.ContractorID != contractorID {
		return nil, domain.ErrForbidden
	}

	limits, err := uc.entitlements.LimitsFor(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	count, err := uc.jobRepo.CountByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	if !limits.Allows(limits.Jobs, count) {
		return nil, domain.ErrLimitExceeded
	}

	var scheduledAt *time.Time
	if in.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, in.ScheduledAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		scheduledAt = &t
	}
	now := time.Now()
	job := &entity.Job{
		ID:           uuid.New().String(),
		ContractorID: contractorID,
		CustomerID:   in.CustomerID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       entity.JobQuoted,
		ScheduledAt:  scheduledAt,
		QuotedAmount: in.QuotedAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if job.ScheduledAt != nil {
		job.Status = entity.JobScheduled
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Get returns a job owned by the contractor.
func (uc *JobUseCase) Get(contractorID, id string) (*dto.JobResponse, error) {
	job, err := uc.owned(contractorID, id)
	if err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// List returns the contractor's jobs, optionally filtered by status.
func (uc *JobUseCase) List(contractorID, status string, limit, offset int) ([]*dto.JobResponse, error) {
	if status != "" && !validJobStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.jobRepo.ListByContractor(contractorID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, toJobResponse(j))
	}
	return out, nil
}

// Update edits or advances a job. Done and canceled are terminal.
func (uc *JobUseCase) Update(contractorID, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.owned(contractorID, id)
	if err != nil {
		return nil, err
	}
	if job.Status == entity.JobDone || job.Status == entity.JobCanceled {
		return nil, domain.ErrConflict
	}
	if in.Title != "" {
		job.Title = in.Title
	}
	if in.Description != "" {
		job.Description = in.Description
	}
	if in.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, in.ScheduledAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		job.ScheduledAt = &t
	}
	if in.QuotedAmount.IsPositive() {
		job.QuotedAmount = in.QuotedAmount
	}
	if in.FinalAmount.IsPositive() {
		job.FinalAmount = in.FinalAmount
	}
	if in.Status != "" {
		if !validJobStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		job.Status = in.Status
	}
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Delete removes a quoted or canceled job; work in flight must be canceled first.
func (uc *JobUseCase) Delete(contractorID, id string) error {
	job, err := uc.owned(contractorID, id)
	if err != nil {
		return err
	}
	if job.Status != entity.JobQuoted && job.Status != entity.JobCanceled {
		return domain.ErrConflict
	}
	return uc.jobRepo.Delete(id)
}

func (uc *JobUseCase) owned(contractorID, id string) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.ContractorID != contractorID {
		return nil, domain.ErrForbidden
	}
	return job, nil
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:           j.ID,
		CustomerID:   j.CustomerID,
		Title:        j.Title,
		Description:  j.Description,
		Status:       j.Status,
		ScheduledAt:  j.ScheduledAt,
		QuotedAmount: j.QuotedAmount,
		FinalAmount:  j.FinalAmount,
		CreatedAt:    j.CreatedAt,
	}
}
