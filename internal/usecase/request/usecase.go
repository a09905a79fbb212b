package request

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"wayfarer-backend/internal/apperr"
	"wayfarer-backend/internal/authz"
	domain "wayfarer-backend/internal/domain/request"
	"wayfarer-backend/internal/domain/uow"
	"wayfarer-backend/internal/domain/user"
	"wayfarer-backend/internal/usecase/notification"
	"wayfarer-backend/internal/validation"
)

// Usecase owns the travel-request lifecycle: creation, reads, requester and
// manager updates, search and stats.
type Usecase struct {
	users    user.Repository
	requests domain.Repository
	uow      uow.UnitOfWork
	policy   *authz.Policy
	notifier notification.Dispatcher
	baseURL  string
	now      func() time.Time
}

func NewUsecase(users user.Repository, requests domain.Repository, tx uow.UnitOfWork,
	policy *authz.Policy, notifier notification.Dispatcher, baseURL string) *Usecase {
	return &Usecase{
		users:    users,
		requests: requests,
		uow:      tx,
		policy:   policy,
		notifier: notifier,
		baseURL:  baseURL,
		now:      time.Now,
	}
}

// WithClock overrides the validation clock ("today" for departure dates).
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Create validates the payload, gates on the requester's profile, persists
// the request with all its legs in one transaction and notifies the manager.
func (u *Usecase) Create(ctx context.Context, actor authz.Actor, p *validation.TripRequestPayload) (*CreatedRequest, error) {
	legs, err := validation.TripRequest(p, u.now())
	if err != nil {
		return nil, err
	}

	requester, err := u.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, apperr.Internal(msgCreateFailed)
	}
	if err := authz.RequireProfileComplete(requester); err != nil {
		return nil, err
	}
	manager, err := u.users.GetByID(ctx, p.ManagerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation(msgInvalidManager)
		}
		return nil, apperr.Internal(msgCreateFailed)
	}

	req := &domain.TravelRequest{
		RequesterID: actor.ID,
		ManagerID:   manager.ID,
		Purpose:     p.Purpose,
		TripType:    p.TripType,
		ExtraInfo:   p.ExtraInfo,
		RememberMe:  p.RememberMe,
		StatusID:    domain.StatusPending,
	}
	for _, leg := range legs {
		req.TripDetails = append(req.TripDetails, domain.TripDetail{
			Origin:        leg.Origin,
			Destination:   leg.Destination,
			DepartureDate: leg.DepartureDate,
			ReturnDate:    leg.ReturnDate,
		})
	}

	// Parent row and all legs commit together or not at all.
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Requests.Create(ctx, req)
	})
	if err != nil {
		return nil, apperr.Internal(msgCreateFailed)
	}

	u.dispatch(ctx, notification.Notification{
		Message: fmt.Sprintf("%s created a new travel request", requester.FullName()),
		URL:     fmt.Sprintf("%s/api/users/requests/%d/edit", u.baseURL, req.ID),
	}, []user.User{*manager})

	return &CreatedRequest{TravelRequest: *req, RequesterName: requester.FullName()}, nil
}

// ListForUser returns all requests the user created, newest first.
func (u *Usecase) ListForUser(ctx context.Context, userID uint) ([]domain.TravelRequest, error) {
	list, err := u.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperr.NotFound(msgNoRequestsYet)
	}
	return list, nil
}

// GetByStatus filters requests by lifecycle state. Admin-capable callers see
// the requests assigned to them as manager; everyone else sees their own.
func (u *Usecase) GetByStatus(ctx context.Context, actor authz.Actor, statusParam string) ([]domain.TravelRequest, error) {
	status, err := parseStatusParam(statusParam)
	if err != nil {
		return nil, err
	}
	if u.policy.IsAdmin(actor.Role) {
		return u.requests.ListByManagerAndStatus(ctx, actor.ID, status)
	}
	return u.requests.ListByRequesterAndStatus(ctx, actor.ID, status)
}

// GetForEdit returns a request for its owner to edit, only while pending.
func (u *Usecase) GetForEdit(ctx context.Context, actorID uint, requestIDParam string) (*domain.TravelRequest, error) {
	req, err := u.fetch(ctx, requestIDParam, msgNoRequests)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRequestOwner(actorID, req); err != nil {
		return nil, err
	}
	if err := authz.RequirePending(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Requester-editable columns, payload key → column.
var userEditableFields = map[string]string{
	"purpose":    "purpose",
	"extraInfo":  "extra_info",
	"rememberMe": "remember_me",
}

// UpdateByUser lets the requester change non-immutable fields of a pending
// request. Touching statusId or requesterId is rejected outright.
func (u *Usecase) UpdateByUser(ctx context.Context, actorID uint, requestIDParam string, fields map[string]any) (*domain.TravelRequest, error) {
	if err := authz.RequireEditableFields(fields); err != nil {
		return nil, err
	}
	req, err := u.fetch(ctx, requestIDParam, msgNoRequests)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRequestOwner(actorID, req); err != nil {
		return nil, err
	}
	if err := authz.RequirePending(req); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for key, column := range userEditableFields {
		if v, ok := fields[key]; ok {
			updates[column] = v
		}
	}
	if len(updates) == 0 {
		return req, nil
	}
	return u.requests.Updates(ctx, req.ID, updates)
}

// UpdateByManager lets the assigned manager (or an admin role) move a request
// between approved, pending and rejected. The requester is notified of the
// decision.
func (u *Usecase) UpdateByManager(ctx context.Context, actor authz.Actor, requestIDParam string, fields map[string]any) (*domain.TravelRequest, error) {
	id, err := parseRequestID(requestIDParam)
	if err != nil {
		return nil, err
	}

	var status domain.Status
	if raw, ok := fields["statusId"]; ok {
		status, err = coerceStatus(raw)
		if err != nil {
			return nil, err
		}
	}

	req, err := u.requests.GetByIDWithParticipants(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgNoSuchRequest)
		}
		return nil, err
	}
	if err := u.policy.RequireManager(actor, req); err != nil {
		return nil, err
	}

	if status != 0 {
		req.StatusID = status
	}
	if v, ok := fields["purpose"].(string); ok {
		req.Purpose = v
	}
	if err := u.requests.Save(ctx, req); err != nil {
		return nil, err
	}

	if status != 0 && req.Requester != nil {
		u.dispatch(ctx, notification.Notification{
			Message: fmt.Sprintf("Your travel request has been %s", status),
			URL:     fmt.Sprintf("%s/api/users/requests/%d/edit", u.baseURL, req.ID),
		}, []user.User{*req.Requester})
	}
	return req, nil
}

// Stats returns the caller's requests whose departure falls inside
// [startDate, endDate].
func (u *Usecase) Stats(ctx context.Context, actorID uint, startDate, endDate string) (*StatsResult, error) {
	start, end, err := validation.Stats(startDate, endDate)
	if err != nil {
		return nil, err
	}
	list, err := u.requests.ListByTimeframe(ctx, actorID, start, end)
	if err != nil {
		return nil, err
	}
	return &StatsResult{Total: len(list), Requests: list}, nil
}

// Search looks up the caller's requests by one of the allow-listed keys
// (origin, destination, purpose).
func (u *Usecase) Search(ctx context.Context, actorID uint, key, value string) ([]domain.TravelRequest, error) {
	if !domain.SearchKeys[key] {
		return nil, apperr.Validation(msgInvalidSearch)
	}
	return u.requests.Search(ctx, actorID, key, value)
}

func (u *Usecase) fetch(ctx context.Context, requestIDParam, notFoundMsg string) (*domain.TravelRequest, error) {
	id, err := parseRequestID(requestIDParam)
	if err != nil {
		return nil, err
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(notFoundMsg)
		}
		return nil, err
	}
	return req, nil
}

func (u *Usecase) dispatch(ctx context.Context, n notification.Notification, targets []user.User) {
	// Best-effort: a delivery failure never fails the committed operation.
	if err := u.notifier.Notify(ctx, n, targets); err != nil {
		log.Printf("request: notification dispatch failed: %v", err)
	}
}

func parseRequestID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, apperr.Validation(msgInvalidID)
	}
	return uint(id), nil
}

func parseStatusParam(param string) (domain.Status, error) {
	n, err := strconv.ParseUint(param, 10, 64)
	if err != nil || !domain.Status(n).Valid() {
		return 0, apperr.Validation(msgInvalidStatus)
	}
	return domain.Status(n), nil
}

// coerceStatus accepts the statusId as a JSON number or numeric string, the
// shapes clients actually send.
func coerceStatus(raw any) (domain.Status, error) {
	var n uint64
	switch v := raw.(type) {
	case float64:
		n = uint64(v)
	case int:
		n = uint64(v)
	case uint:
		n = uint64(v)
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, apperr.Validation(msgInvalidStatus)
		}
		n = parsed
	default:
		return 0, apperr.Validation(msgInvalidStatus)
	}
	if !domain.Status(n).Valid() {
		return 0, apperr.Validation(msgInvalidStatus)
	}
	return domain.Status(n), nil
}
