package request

import (
	"time"

	"gorm.io/gorm"

	"wayfarer-backend/internal/domain/user"
)

// Status is the lifecycle state of a travel request. The numeric values are
// part of the API contract (path params and payloads carry them).
type Status uint

const (
	StatusApproved Status = 1
	StatusPending  Status = 2
	StatusRejected Status = 3
)

func (s Status) Valid() bool {
	return s == StatusApproved || s == StatusPending || s == StatusRejected
}

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusPending:
		return "pending"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Trip types accepted by the API; literal spellings are part of the contract.
const (
	TripOneWay    = "One-way"
	TripRoundTrip = "Round-Trip"
	TripMultiLeg  = "Multi-leg"
)

type TravelRequest struct {
	ID          uint           `gorm:"primaryKey;column:id" json:"id"`
	RequesterID uint           `gorm:"column:requester_id;index;not null" json:"requesterId"`
	ManagerID   uint           `gorm:"column:manager_id;index;not null" json:"managerId"`
	Purpose     string         `gorm:"size:250;not null" json:"purpose"`
	TripType    string         `gorm:"size:20;not null" json:"tripType"`
	ExtraInfo   string         `gorm:"size:1000" json:"extraInfo,omitempty"`
	StatusID    Status         `gorm:"column:status_id;default:2" json:"statusId"`
	RememberMe  bool           `gorm:"column:remember_me;default:false" json:"rememberMe"`
	TripDetails []TripDetail   `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"tripDetails"`
	Requester   *user.User     `gorm:"foreignKey:RequesterID" json:"-"`
	Manager     *user.User     `gorm:"foreignKey:ManagerID" json:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TravelRequest) TableName() string { return "travel_requests" }

// TripDetail is one leg of a travel request; its lifecycle is tied to the
// parent row (created with it, removed with it).
type TripDetail struct {
	ID            uint       `gorm:"primaryKey;column:id" json:"id"`
	RequestID     uint       `gorm:"column:request_id;index;not null" json:"requestId"`
	Origin        string     `gorm:"size:25;not null" json:"origin"`
	Destination   string     `gorm:"size:25;not null" json:"destination"`
	DepartureDate time.Time  `gorm:"column:departure_date;type:date;not null" json:"departureDate"`
	ReturnDate    *time.Time `gorm:"column:return_date;type:date" json:"returnDate,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TripDetail) TableName() string { return "trip_details" }
