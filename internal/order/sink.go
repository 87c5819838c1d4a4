package order

import (
	"context"
	"log"
)

// LogSink acknowledges orders locally with a log line. This is the
// default sink when no notification channel is configured: the
// restaurant confirms orders by phone, nothing is persisted server-side.
type LogSink struct{}

// Submit logs the order and acknowledges it.
func (LogSink) Submit(ctx context.Context, o Order) error {
	log.Printf("LogSink - order %s: %s / %s, pickup %s, %d lines, total %.2f",
		o.Number, o.Name, o.Phone, o.PickupTime, len(o.Lines), o.Total)
	return nil
}
