package notifier

import (
	"context"
	"log"
)

// Notifier delivers assessment reports.
type Notifier interface {
	Send(text string) error
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// LogNotifier writes reports to the process log. Used when Telegram is
// not configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Send(text string) error {
	log.Printf("[INFO] report:\n%s", text)
	return nil
}

// SendWithRetry logs directly; there is no transport to retry.
func (n *LogNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	return n.Send(text)
}
