// Package authz holds the authorization gate: pure policy checks over the
// caller's identity and role plus the target resource's stored participants.
package authz

import (
	"fmt"

	"wayfarer-backend/internal/apperr"
	"wayfarer-backend/internal/domain/comment"
	"wayfarer-backend/internal/domain/request"
	"wayfarer-backend/internal/domain/user"
)

// Actor is the authenticated caller, as resolved by the auth middleware.
type Actor struct {
	ID    uint
	Role  string
	Email string
}

// Policy carries the configured role capabilities. The set of roles with
// company-wide request visibility comes from config, not code.
type Policy struct {
	adminRoles map[string]bool
}

func NewPolicy(adminRoles []string) *Policy {
	m := make(map[string]bool, len(adminRoles))
	for _, r := range adminRoles {
		m[r] = true
	}
	return &Policy{adminRoles: m}
}

// IsAdmin reports whether the role may act on requests company-wide
// (approve/reject, filter by status, view any request).
func (p *Policy) IsAdmin(role string) bool { return p.adminRoles[role] }

// RequireManager allows the request's assigned manager or any admin role to
// act on a request administratively.
func (p *Policy) RequireManager(a Actor, r *request.TravelRequest) error {
	if a.ID == r.ManagerID || p.IsAdmin(a.Role) {
		return nil
	}
	return apperr.Forbidden("You are not allowed to manage this request")
}

// RequireProfileComplete gates request creation on the requester having
// gender, line manager and passport number on file. Checked in that order,
// first missing attribute wins.
func RequireProfileComplete(u *user.User) error {
	if u.Gender == "" {
		return profileError("Gender")
	}
	if u.LineManagerID == nil {
		return profileError("Line Manager")
	}
	if u.PassportNo == "" {
		return profileError("PassportNo")
	}
	return nil
}

func profileError(attr string) error {
	return apperr.State(fmt.Sprintf("Please update your profile with your %s", attr))
}

// RequireRequestOwner gates read-for-edit and user updates on ownership.
func RequireRequestOwner(actorID uint, r *request.TravelRequest) error {
	if r.RequesterID != actorID {
		return apperr.Authorization("You have no permission to edit this request")
	}
	return nil
}

// RequirePending gates requester edits on the lifecycle state.
func RequirePending(r *request.TravelRequest) error {
	if r.StatusID != request.StatusPending {
		return apperr.State("You can only edit a request that is still pending")
	}
	return nil
}

// RequireEditableFields rejects requester payloads touching immutable fields.
func RequireEditableFields(fields map[string]any) error {
	for _, immutable := range []string{"statusId", "requesterId"} {
		if _, ok := fields[immutable]; ok {
			return apperr.Authorization("You can not edit this field")
		}
	}
	return nil
}

// RequireParticipant allows only the request's requester or manager to
// comment; it returns the counterpart to notify and whether the actor is the
// manager side of the exchange.
func RequireParticipant(actorID uint, r *request.TravelRequest) (counterpartID uint, actorIsManager bool, err error) {
	switch actorID {
	case r.ManagerID:
		return r.RequesterID, true, nil
	case r.RequesterID:
		return r.ManagerID, false, nil
	default:
		return 0, false, apperr.Forbidden("You are an unauthorized author")
	}
}

// RequireCommentAuthor allows only the author to delete a comment.
func RequireCommentAuthor(actorID uint, c *comment.Comment) error {
	if c.UserID != actorID {
		return apperr.Forbidden("You are not authorized to delete this comment")
	}
	return nil
}
