package http

import (
	"context"
	"net/http"
	"testing"

	"gorm.io/gorm"

	domain "wayfarer-backend/internal/domain/comment"
	"wayfarer-backend/internal/domain/request"
	"wayfarer-backend/internal/domain/uow"
	"wayfarer-backend/internal/domain/user"
	"wayfarer-backend/internal/testutil/commentmock"
	"wayfarer-backend/internal/testutil/notifymock"
	"wayfarer-backend/internal/testutil/requestmock"
	"wayfarer-backend/internal/testutil/uowmock"
	commentUC "wayfarer-backend/internal/usecase/comment"
)

func newCommentHandler(comments *commentmock.Repo, requests *requestmock.Repo) *CommentHandler {
	tx := &uowmock.UoW{Repos: uow.Repos{Comments: comments, Requests: requests}}
	uc := commentUC.NewUsecase(comments, requests, tx, &notifymock.Dispatcher{}, "http://localhost:8080", 1000)
	return NewCommentHandler(uc)
}

func participantRequests() *requestmock.Repo {
	return &requestmock.Repo{
		GetByIDWithParticipantsFn: func(_ context.Context, id uint) (*request.TravelRequest, error) {
			if id != 1 {
				return nil, gorm.ErrRecordNotFound
			}
			return &request.TravelRequest{ID: 1, RequesterID: 3, ManagerID: 7}, nil
		},
	}
}

func TestCreateComment_Success(t *testing.T) {
	comments := &commentmock.Repo{}
	var stored domain.Comment
	comments.CreateFn = func(_ context.Context, c *domain.Comment) error {
		c.ID = 5
		stored = *c
		return nil
	}
	comments.GetByIDWithAuthorFn = func(_ context.Context, id uint) (*domain.Comment, error) {
		c := stored
		c.Author = &user.User{ID: 3, FirstName: "Bola", LastName: "Mark"}
		return &c, nil
	}
	h := newCommentHandler(comments, participantRequests())

	rec, envelope := doRequest(t, http.MethodPost, "/api/comments",
		`{"requestId": 1, "comment": "any update on this?"}`, staffActor(), nil, h.CreateComment)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := envelope["data"].(map[string]any)
	if data["comment"] != "any update on this?" {
		t.Fatalf("data = %v", data)
	}
	if data["author"] != "Bola Mark" {
		t.Fatalf("author = %v", data["author"])
	}
}

func TestCreateComment_EmptyBody(t *testing.T) {
	h := newCommentHandler(&commentmock.Repo{}, participantRequests())
	rec, envelope := doRequest(t, http.MethodPost, "/api/comments",
		`{"requestId": 1, "comment": "   "}`, staffActor(), nil, h.CreateComment)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := failMessage(t, envelope); got != "Please enter a valid comment" {
		t.Fatalf("message = %q", got)
	}
}

func TestCreateComment_UnknownRequest(t *testing.T) {
	h := newCommentHandler(&commentmock.Repo{}, participantRequests())
	rec, envelope := doRequest(t, http.MethodPost, "/api/comments",
		`{"requestId": 777, "comment": "hello"}`, staffActor(), nil, h.CreateComment)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := failMessage(t, envelope); got != "Travel Request of id: 777 doesn't exist" {
		t.Fatalf("message = %q", got)
	}
}

func TestCreateComment_Outsider(t *testing.T) {
	h := newCommentHandler(&commentmock.Repo{}, participantRequests())
	outsider := staffActor()
	outsider.ID = 99
	rec, envelope := doRequest(t, http.MethodPost, "/api/comments",
		`{"requestId": 1, "comment": "hello"}`, outsider, nil, h.CreateComment)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := failMessage(t, envelope); got != "You are an unauthorized author" {
		t.Fatalf("message = %q", got)
	}
}

func TestDeleteComment_Success(t *testing.T) {
	comments := &commentmock.Repo{
		GetByIDFn: func(_ context.Context, id uint) (*domain.Comment, error) {
			return &domain.Comment{ID: id, UserID: 3}, nil
		},
	}
	h := newCommentHandler(comments, participantRequests())
	rec, envelope := doRequest(t, http.MethodDelete, "/api/comments/5", "", staffActor(),
		map[string]string{"commentId": "5"}, h.DeleteComment)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	data := envelope["data"].(map[string]any)
	if data["id"].(float64) != 5 {
		t.Fatalf("data = %v", data)
	}
}

func TestDeleteComment_AlreadyGone(t *testing.T) {
	h := newCommentHandler(&commentmock.Repo{}, participantRequests())
	rec, envelope := doRequest(t, http.MethodDelete, "/api/comments/5", "", staffActor(),
		map[string]string{"commentId": "5"}, h.DeleteComment)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := failMessage(t, envelope); got != "comment with the id: 5 doesn't exist" {
		t.Fatalf("message = %q", got)
	}
}
