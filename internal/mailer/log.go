package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// logDispatcher swallows notifications and logs them instead. Used for local
// runs where no mail API key is configured.
type logDispatcher struct{}

func NewLogDispatcher() Dispatcher {
	return logDispatcher{}
}

func (logDispatcher) Send(_ context.Context, to []string, subject string, _ string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("mail dispatch suppressed, no api key configured")
	return nil
}
