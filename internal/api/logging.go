package api

import (
	"log"

	"github.com/iyzisub/client-go/internal/apierrors"
)

// Logger receives structured client events: one call per retry decision and
// one per terminal failure. Fields are redacted before delivery.
type Logger func(event string, fields map[string]interface{})

// stdLogger is the fallback sink when debug mode is enabled without a
// custom logger.
func stdLogger(event string, fields map[string]interface{}) {
	log.Printf("iyzico client: %s %v", event, fields)
}

// logEvent delivers an event to the configured sink. Events are dropped
// unless debug mode is enabled.
func (c *Client) logEvent(event string, fields map[string]interface{}) {
	if !c.debug || c.logger == nil {
		return
	}
	c.logger(event, apierrors.Redact(fields))
}
