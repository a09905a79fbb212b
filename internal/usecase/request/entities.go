package request

import (
	domain "wayfarer-backend/internal/domain/request"
)

// CreatedRequest is the creation response: the persisted request plus the
// requester's display name for the client.
type CreatedRequest struct {
	domain.TravelRequest
	RequesterName string `json:"requesterName"`
}

// StatsResult aggregates the requests falling inside a timeframe.
type StatsResult struct {
	Total    int                    `json:"total"`
	Requests []domain.TravelRequest `json:"requests"`
}

// Literal API contract messages for request lifecycle failures.
const (
	msgInvalidStatus  = "Request statusId can only be values 1, 2, 3 - approved, pending, rejected"
	msgInvalidID      = "Request Id can only be a number"
	msgNoSuchRequest  = "No such request"
	msgNoRequests     = "No requests available"
	msgNoRequestsYet  = "You have made no request yet"
	msgForbiddenField = "You can not edit this field"
	msgCreateFailed   = "Failed to create request"
	msgInvalidManager = "Please input a valid manager id"
	msgInvalidSearch  = "Please specify a valid search key"
)
