// Package notification defines the dispatch boundary for telling the other
// participant of a request about a change. Delivery is best-effort: callers
// log failures and never fail the parent operation on them.
package notification

import (
	"context"
	"log"

	"wayfarer-backend/internal/domain/user"
)

type Notification struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type Dispatcher interface {
	Notify(ctx context.Context, n Notification, targets []user.User) error
}

// Fanout delivers through every channel, collecting nothing: a failed channel
// is logged and the rest still run.
type Fanout []Dispatcher

func (f Fanout) Notify(ctx context.Context, n Notification, targets []user.User) error {
	for _, d := range f {
		if err := d.Notify(ctx, n, targets); err != nil {
			log.Printf("notification: dispatch failed: %v", err)
		}
	}
	return nil
}

// LogDispatcher stands in for the in-app/push provider boundary.
type LogDispatcher struct{}

func (LogDispatcher) Notify(_ context.Context, n Notification, targets []user.User) error {
	for _, t := range targets {
		log.Printf("notification: to user %d: %s (%s)", t.ID, n.Message, n.URL)
	}
	return nil
}
