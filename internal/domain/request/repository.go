package request

import (
	"context"
	"time"
)

// SearchKeys is the allow-list for the free-form search endpoint.
var SearchKeys = map[string]bool{
	"origin":      true,
	"destination": true,
	"purpose":     true,
}

type Repository interface {
	Create(ctx context.Context, r *TravelRequest) error
	GetByID(ctx context.Context, id uint) (*TravelRequest, error)
	// GetByIDWithParticipants preloads Requester and Manager for authorization
	// and notification targeting.
	GetByIDWithParticipants(ctx context.Context, id uint) (*TravelRequest, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]TravelRequest, error)
	ListByRequesterAndStatus(ctx context.Context, requesterID uint, status Status) ([]TravelRequest, error)
	ListByManagerAndStatus(ctx context.Context, managerID uint, status Status) ([]TravelRequest, error)
	ListByTimeframe(ctx context.Context, requesterID uint, start, end time.Time) ([]TravelRequest, error)
	Search(ctx context.Context, requesterID uint, key, value string) ([]TravelRequest, error)
	Save(ctx context.Context, r *TravelRequest) error
	Updates(ctx context.Context, id uint, fields map[string]any) (*TravelRequest, error)
}
