package requestmock

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "wayfarer-backend/internal/domain/request"
)

// Repo is a function-backed mock satisfying request.Repository. Only the
// methods a test cares about need funcs; the rest default to not-found/empty.
type Repo struct {
	CreateFn                   func(ctx context.Context, r *domain.TravelRequest) error
	GetByIDFn                  func(ctx context.Context, id uint) (*domain.TravelRequest, error)
	GetByIDWithParticipantsFn  func(ctx context.Context, id uint) (*domain.TravelRequest, error)
	ListByRequesterFn          func(ctx context.Context, requesterID uint) ([]domain.TravelRequest, error)
	ListByRequesterAndStatusFn func(ctx context.Context, requesterID uint, status domain.Status) ([]domain.TravelRequest, error)
	ListByManagerAndStatusFn   func(ctx context.Context, managerID uint, status domain.Status) ([]domain.TravelRequest, error)
	ListByTimeframeFn          func(ctx context.Context, requesterID uint, start, end time.Time) ([]domain.TravelRequest, error)
	SearchFn                   func(ctx context.Context, requesterID uint, key, value string) ([]domain.TravelRequest, error)
	SaveFn                     func(ctx context.Context, r *domain.TravelRequest) error
	UpdatesFn                  func(ctx context.Context, id uint, fields map[string]any) (*domain.TravelRequest, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.TravelRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.TravelRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDWithParticipants(ctx context.Context, id uint) (*domain.TravelRequest, error) {
	if m.GetByIDWithParticipantsFn != nil {
		return m.GetByIDWithParticipantsFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByRequester(ctx context.Context, requesterID uint) ([]domain.TravelRequest, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, requesterID)
	}
	return nil, nil
}

func (m *Repo) ListByRequesterAndStatus(ctx context.Context, requesterID uint, status domain.Status) ([]domain.TravelRequest, error) {
	if m.ListByRequesterAndStatusFn != nil {
		return m.ListByRequesterAndStatusFn(ctx, requesterID, status)
	}
	return nil, nil
}

func (m *Repo) ListByManagerAndStatus(ctx context.Context, managerID uint, status domain.Status) ([]domain.TravelRequest, error) {
	if m.ListByManagerAndStatusFn != nil {
		return m.ListByManagerAndStatusFn(ctx, managerID, status)
	}
	return nil, nil
}

func (m *Repo) ListByTimeframe(ctx context.Context, requesterID uint, start, end time.Time) ([]domain.TravelRequest, error) {
	if m.ListByTimeframeFn != nil {
		return m.ListByTimeframeFn(ctx, requesterID, start, end)
	}
	return nil, nil
}

func (m *Repo) Search(ctx context.Context, requesterID uint, key, value string) ([]domain.TravelRequest, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, requesterID, key, value)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, r *domain.TravelRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Updates(ctx context.Context, id uint, fields map[string]any) (*domain.TravelRequest, error) {
	if m.UpdatesFn != nil {
		return m.UpdatesFn(ctx, id, fields)
	}
	return nil, gorm.ErrRecordNotFound
}
