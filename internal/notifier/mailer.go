package notifier

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"bus-depot-backend/internal/model"
)

// Mailer pushes a copy of each emergency alert to the depot master's inbox.
// Delivery is best effort; a failed send is logged and never blocks the
// alert from being stored.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(host string, port int, user, password, to string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
		to:     to,
	}
}

func (m *Mailer) SendAlert(alert *model.Alert) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Emergency alert: bus %s on route %s", alert.BusNo, alert.Route))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Bus %s (%s -> %s)\nLocation: %s\nTime: %s\n\n%s\n",
		alert.BusNo, alert.Source, alert.Destination, alert.Location, alert.Time, alert.Message))

	if err := m.dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("bus_no", alert.BusNo).Error("alert mail delivery failed")
	}
}
