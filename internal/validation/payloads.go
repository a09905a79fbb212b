package validation

import "time"

// TripRequestPayload is the raw body of POST /api/trip/request. Dates arrive
// as YYYY-MM-DD strings and are parsed during validation.
type TripRequestPayload struct {
	ManagerID   uint             `json:"managerId"`
	Purpose     string           `json:"purpose"`
	TripType    string           `json:"tripType"`
	ExtraInfo   string           `json:"extraInfo"`
	RememberMe  bool             `json:"rememberMe"`
	TripDetails []TripLegPayload `json:"tripDetails"`
}

type TripLegPayload struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
}

// ParsedLeg is a leg whose dates passed validation.
type ParsedLeg struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
}

// CommentPayload is the raw body of POST /api/comments.
type CommentPayload struct {
	RequestID uint   `json:"requestId"`
	Body      string `json:"comment"`
}
