package services

import (
	"github.com/reviewhub-api/logger"
)

// Mailer delivers confirmation codes. Transport is external to this
// service; the default implementation only logs.
type Mailer interface {
	SendConfirmationCode(email, code string) error
}

// LogMailer writes the code to the log instead of sending mail. Useful for
// development and as the default until an SMTP mailer is plugged in.
type LogMailer struct{}

// SendConfirmationCode logs the confirmation code for the given address
func (LogMailer) SendConfirmationCode(email, code string) error {
	logger.Infof("confirmation code for %s: %s", email, code)
	return nil
}

var mailer Mailer = LogMailer{}

// SetMailer swaps the confirmation-code delivery backend
func SetMailer(m Mailer) {
	mailer = m
}
