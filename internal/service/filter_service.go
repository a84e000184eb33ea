package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/opsdesk/backend/internal/apperror"
	"github.com/opsdesk/backend/internal/model"
	"github.com/opsdesk/backend/internal/repository"
	"github.com/opsdesk/backend/pkg/daterange"
	"github.com/opsdesk/backend/pkg/datetime"
)

const maxFilterKeyLength = 64

// FilterRepositoryInterface defines the contract for stored filter ranges.
// Implementations must be safe for concurrent use.
type FilterRepositoryInterface interface {
	Upsert(ctx context.Context, f *model.RangeFilter) error
	GetByKey(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.RangeFilter, error)
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}

// SaveFilterInput is the range to store under a filter key.
type SaveFilterInput struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Preset    *string `json:"preset,omitempty"`
}

// FilterService keeps the date range each user last applied per filter panel.
type FilterService struct {
	repo FilterRepositoryInterface
	loc  *time.Location
}

// NewFilterService creates a FilterService validating dates in loc.
func NewFilterService(repo FilterRepositoryInterface, loc *time.Location) *FilterService {
	if loc == nil {
		loc = time.Local
	}
	return &FilterService{repo: repo, loc: loc}
}

// ValidateFilterKey checks that key is a short lowercase slug such as "expense-report".
func ValidateFilterKey(key string) error {
	if key == "" {
		return apperror.ValidationError("key", "is required")
	}
	if len(key) > maxFilterKeyLength || !slug.IsSlug(key) {
		return apperror.ValidationError("key", "must be a lowercase slug of at most 64 characters")
	}
	return nil
}

// Save validates and stores the range. Bounds given in reverse order are swapped.
func (s *FilterService) Save(ctx context.Context, userID uuid.UUID, key string, input SaveFilterInput) (*model.RangeFilter, error) {
	if err := ValidateFilterKey(key); err != nil {
		return nil, err
	}
	start, err := datetime.ParseCanonical(input.StartDate, s.loc)
	if err != nil {
		return nil, apperror.InvalidDate("startDate")
	}
	end, err := datetime.ParseCanonical(input.EndDate, s.loc)
	if err != nil {
		return nil, apperror.InvalidDate("endDate")
	}
	if input.Preset != nil {
		if _, ok := daterange.LookupPreset(*input.Preset); !ok {
			return nil, apperror.ValidationError("preset", "unknown preset")
		}
	}

	r := daterange.NewRange(start, end).Canonical()
	f := &model.RangeFilter{
		UserID:    userID,
		Key:       key,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Preset:    input.Preset,
	}
	if err := s.repo.Upsert(ctx, f); err != nil {
		return nil, apperror.Internal(err)
	}
	return f, nil
}

// Get returns the stored filter for key.
func (s *FilterService) Get(ctx context.Context, userID uuid.UUID, key string) (*model.RangeFilter, error) {
	if err := ValidateFilterKey(key); err != nil {
		return nil, err
	}
	f, err := s.repo.GetByKey(ctx, userID, key)
	if errors.Is(err, repository.ErrFilterNotFound) {
		return nil, apperror.NotFound("filter")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return f, nil
}

// List returns all stored filters of a user ordered by key.
func (s *FilterService) List(ctx context.Context, userID uuid.UUID) ([]model.RangeFilter, error) {
	filters, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if filters == nil {
		filters = []model.RangeFilter{}
	}
	return filters, nil
}

// Delete removes the stored filter for key.
func (s *FilterService) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	if err := ValidateFilterKey(key); err != nil {
		return err
	}
	err := s.repo.Delete(ctx, userID, key)
	if errors.Is(err, repository.ErrFilterNotFound) {
		return apperror.NotFound("filter")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
