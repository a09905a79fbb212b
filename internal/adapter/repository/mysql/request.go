package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	requestDomain "wayfarer-backend/internal/domain/request"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *requestDomain.TravelRequest) error {
	// Legs are created through the association in the same statement batch;
	// inside a transaction this is the all-or-nothing compound write.
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*requestDomain.TravelRequest, error) {
	var out requestDomain.TravelRequest
	res := r.db.WithContext(ctx).Preload("TripDetails").First(&out, id)
	return &out, res.Error
}

func (r *RequestRepository) GetByIDWithParticipants(ctx context.Context, id uint) (*requestDomain.TravelRequest, error) {
	var out requestDomain.TravelRequest
	res := r.db.WithContext(ctx).
		Preload("TripDetails").
		Preload("Requester").
		Preload("Manager").
		First(&out, id)
	return &out, res.Error
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID uint) ([]requestDomain.TravelRequest, error) {
	var list []requestDomain.TravelRequest
	err := r.db.WithContext(ctx).
		Preload("TripDetails").
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *RequestRepository) ListByRequesterAndStatus(ctx context.Context, requesterID uint, status requestDomain.Status) ([]requestDomain.TravelRequest, error) {
	var list []requestDomain.TravelRequest
	err := r.db.WithContext(ctx).
		Preload("TripDetails").
		Where("requester_id = ? AND status_id = ?", requesterID, status).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *RequestRepository) ListByManagerAndStatus(ctx context.Context, managerID uint, status requestDomain.Status) ([]requestDomain.TravelRequest, error) {
	var list []requestDomain.TravelRequest
	err := r.db.WithContext(ctx).
		Preload("TripDetails").
		Where("manager_id = ? AND status_id = ?", managerID, status).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *RequestRepository) ListByTimeframe(ctx context.Context, requesterID uint, start, end time.Time) ([]requestDomain.TravelRequest, error) {
	var list []requestDomain.TravelRequest
	err := r.db.WithContext(ctx).
		Preload("TripDetails").
		Joins("JOIN trip_details ON trip_details.request_id = travel_requests.id").
		Where("travel_requests.requester_id = ?", requesterID).
		Where("trip_details.departure_date BETWEEN ? AND ?", start, end).
		Group("travel_requests.id").
		Order("travel_requests.created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *RequestRepository) Search(ctx context.Context, requesterID uint, key, value string) ([]requestDomain.TravelRequest, error) {
	q := r.db.WithContext(ctx).
		Preload("TripDetails").
		Where("travel_requests.requester_id = ?", requesterID)
	switch key {
	case "origin", "destination":
		q = q.Joins("JOIN trip_details ON trip_details.request_id = travel_requests.id").
			Where("trip_details."+key+" = ?", value).
			Group("travel_requests.id")
	case "purpose":
		q = q.Where("travel_requests.purpose LIKE ?", "%"+value+"%")
	}
	var list []requestDomain.TravelRequest
	err := q.Order("travel_requests.created_at DESC").Find(&list).Error
	return list, err
}

func (r *RequestRepository) Save(ctx context.Context, req *requestDomain.TravelRequest) error {
	return r.db.WithContext(ctx).Omit("TripDetails", "Requester", "Manager").Save(req).Error
}

func (r *RequestRepository) Updates(ctx context.Context, id uint, fields map[string]any) (*requestDomain.TravelRequest, error) {
	if err := r.db.WithContext(ctx).
		Model(&requestDomain.TravelRequest{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

var _ requestDomain.Repository = (*RequestRepository)(nil)
