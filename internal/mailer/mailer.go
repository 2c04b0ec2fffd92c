package mailer

import "context"

// Dispatcher delivers a rendered notification to a set of recipients. The
// caller never retries - a failure is surfaced once and state already
// committed stays committed. Implementations must be safe for concurrent use.
type Dispatcher interface {
	Send(ctx context.Context, to []string, subject string, body string) error
}
