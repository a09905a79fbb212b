package comment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"wayfarer-backend/internal/apperr"
	"wayfarer-backend/internal/authz"
	domain "wayfarer-backend/internal/domain/comment"
	"wayfarer-backend/internal/domain/request"
	"wayfarer-backend/internal/domain/uow"
	"wayfarer-backend/internal/domain/user"
	"wayfarer-backend/internal/usecase/notification"
	"wayfarer-backend/internal/validation"
)

// Usecase owns comment creation and deletion on travel requests.
type Usecase struct {
	comments   domain.Repository
	requests   request.Repository
	uow        uow.UnitOfWork
	notifier   notification.Dispatcher
	baseURL    string
	maxBodyLen int
}

func NewUsecase(comments domain.Repository, requests request.Repository, tx uow.UnitOfWork,
	notifier notification.Dispatcher, baseURL string, maxBodyLen int) *Usecase {
	return &Usecase{
		comments:   comments,
		requests:   requests,
		uow:        tx,
		notifier:   notifier,
		baseURL:    baseURL,
		maxBodyLen: maxBodyLen,
	}
}

// CreatedComment is the creation response: the stored comment plus the
// author's display name.
type CreatedComment struct {
	domain.Comment
	AuthorName string `json:"author"`
}

// Create adds a comment to a request. Only the request's requester or manager
// may comment; the other party is notified after the comment is committed.
func (u *Usecase) Create(ctx context.Context, actorID uint, p *validation.CommentPayload) (*CreatedComment, error) {
	if err := validation.Comment(p.Body, u.maxBodyLen); err != nil {
		return nil, err
	}

	req, err := u.requests.GetByIDWithParticipants(ctx, p.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Travel Request of id: %d doesn't exist", p.RequestID))
		}
		return nil, err
	}
	counterpartID, actorIsManager, err := authz.RequireParticipant(actorID, req)
	if err != nil {
		return nil, err
	}

	// The comment row and the author lookup for the notification payload are
	// one unit: either both happen or neither does.
	var created *CreatedComment
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c := &domain.Comment{RequestID: p.RequestID, UserID: actorID, Body: p.Body}
		if err := r.Comments.Create(ctx, c); err != nil {
			return err
		}
		withAuthor, err := r.Comments.GetByIDWithAuthor(ctx, c.ID)
		if err != nil {
			return err
		}
		name := ""
		if withAuthor.Author != nil {
			name = withAuthor.Author.FullName()
		}
		created = &CreatedComment{Comment: *withAuthor, AuthorName: name}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal("comment was not created")
	}

	message := fmt.Sprintf("%s just added a new comment to his/her travel request", created.AuthorName)
	if actorIsManager {
		message = fmt.Sprintf("%s just added a new comment to your travel request", created.AuthorName)
	}
	n := notification.Notification{
		Message: message,
		URL:     fmt.Sprintf("%s/api/requests/%d", u.baseURL, p.RequestID),
	}
	if err := u.notifier.Notify(ctx, n, []user.User{{ID: counterpartID}}); err != nil {
		log.Printf("comment: notification dispatch failed: %v", err)
	}
	return created, nil
}

// Delete removes a comment; only its author may do so. Returns the deleted id
// so the handler can echo it back. A second delete of the same id is a 404.
func (u *Usecase) Delete(ctx context.Context, actorID uint, commentIDParam string) (uint, error) {
	id64, err := strconv.ParseUint(commentIDParam, 10, 64)
	if err != nil {
		return 0, apperr.NotFound(fmt.Sprintf("comment with the id: %s doesn't exist", commentIDParam))
	}
	id := uint(id64)

	c, err := u.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound(fmt.Sprintf("comment with the id: %d doesn't exist", id))
		}
		return 0, err
	}
	if err := authz.RequireCommentAuthor(actorID, c); err != nil {
		return 0, err
	}
	if err := u.comments.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}
