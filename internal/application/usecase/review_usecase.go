package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// ReviewUseCase customer reviews of contractors. The profile keeps a running
// aggregate recomputed from the reviews table after each post.
type ReviewUseCase struct {
	reviewRepo     repository.ReviewRepository
	contractorRepo repository.ContractorRepository
}

// NewReviewUseCase builds the use case.
func NewReviewUseCase(reviewRepo repository.ReviewRepository, contractorRepo repository.ContractorRepository) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo, contractorRepo: contractorRepo}
}

// Create posts a review for a contractor and refreshes the aggregate.
func (uc *ReviewUseCase) Create(contractorProfileID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.contractorRepo.GetByID(contractorProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	r := &entity.Review{
		ID:           uuid.New().String(),
		ContractorID: contractorProfileID,
		CustomerID:   in.CustomerID,
		JobID:        in.JobID,
		Rating:       in.Rating,
		Comment:      in.Comment,
		CreatedAt:    time.Now(),
	}
	if err := uc.reviewRepo.Create(r); err != nil {
		return nil, err
	}
	// Aggregate refresh is best-effort: a failed recompute leaves a stale
	// average, not a lost review.
	if avg, count, err := uc.reviewRepo.Aggregate(contractorProfileID); err == nil {
		_ = uc.contractorRepo.UpdateRating(contractorProfileID, avg, count)
	}
	return &dto.ReviewResponse{ID: r.ID, Rating: r.Rating, Comment: r.Comment, CreatedAt: r.CreatedAt}, nil
}

// List returns a contractor's reviews, newest first.
func (uc *ReviewUseCase) List(contractorProfileID string, limit, offset int) ([]*dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.ListByContractor(contractorProfileID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, &dto.ReviewResponse{ID: r.ID, Rating: r.Rating, Comment: r.Comment, CreatedAt: r.CreatedAt})
	}
	return out, nil
}
