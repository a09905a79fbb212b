// Package mail delivers notification emails over SMTP. It is one channel of
// the notification fanout; the EmailNotify flag on each target is honored
// here so callers don't have to filter.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"wayfarer-backend/internal/domain/user"
	"wayfarer-backend/internal/usecase/notification"
)

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type Dispatcher struct {
	cfg  Config
	send func(m ...*gomail.Message) error
}

func NewDispatcher(cfg Config) *Dispatcher {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return &Dispatcher{cfg: cfg, send: d.DialAndSend}
}

func (d *Dispatcher) Notify(_ context.Context, n notification.Notification, targets []user.User) error {
	var firstErr error
	for _, t := range targets {
		if !t.EmailNotify || t.Email == "" {
			continue
		}
		m := gomail.NewMessage()
		m.SetHeader("From", d.cfg.From)
		m.SetHeader("To", t.Email)
		m.SetHeader("Subject", "Travel request update")
		m.SetBody("text/html", fmt.Sprintf(
			"<p>Hi %s,</p><p>%s</p><p><a href=%q>View the request</a></p>",
			t.FirstName, n.Message, n.URL,
		))
		if err := d.send(m); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
