// Package notify publishes run reports to interested subscribers.
package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/mode-7/moddocs/internal/patch"
)

// Publisher delivers run reports somewhere external. The zero-value Noop
// implementation is used when notification is not configured.
type Publisher interface {
	Publish(report *patch.Report) error
	Close()
}

// Noop is a Publisher that does nothing.
type Noop struct{}

func (Noop) Publish(*patch.Report) error { return nil }
func (Noop) Close()                      {}

// NATSPublisher publishes JSON-encoded run reports to a NATS subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the NATS server and returns a publisher for
// the given subject.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("moddocs"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	slog.Info("NATS publisher initialized", "url", url, "subject", subject)
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// Publish sends the report as JSON.
func (p *NATSPublisher) Publish(report *patch.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
