// Package analytics sends product analytics and workflow events to PostHog.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is used when no endpoint is configured.
const DefaultEndpoint = "https://eu.i.posthog.com"

// enqueuer is the subset of posthog.Client used here.
type enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// Client wraps a posthog client so callers need not care whether analytics is
// configured. A Client without an API key drops every event.
type Client struct {
	posthogClient enqueuer
	logger        *slog.Logger
}

// NewClient creates a client. An empty apiKey yields a disabled client.
func NewClient(apiKey, endpoint string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &Client{logger: logger}, nil
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	pc, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &Client{posthogClient: pc, logger: logger}, nil
}

func (c *Client) IsInitialized() bool {
	return c != nil && c.posthogClient != nil
}

// Enqueue queues an event. Delivery happens in the background; failures are
// logged and never returned.
func (c *Client) Enqueue(distinctID string, event string, properties map[string]any) {
	if !c.IsInitialized() {
		return
	}
	err := c.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && c.logger != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (c *Client) Close() {
	if !c.IsInitialized() {
		return
	}
	if err := c.posthogClient.Close(); err != nil && c.logger != nil {
		c.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
