package notifymock

import (
	"context"

	"wayfarer-backend/internal/domain/user"
	"wayfarer-backend/internal/usecase/notification"
)

// Dispatcher records every dispatch; set Err to simulate delivery failure.
type Dispatcher struct {
	Err   error
	Sent  []notification.Notification
	Users [][]user.User
}

func (m *Dispatcher) Notify(_ context.Context, n notification.Notification, targets []user.User) error {
	m.Sent = append(m.Sent, n)
	m.Users = append(m.Users, targets)
	return m.Err
}
