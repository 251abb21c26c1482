package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/ports"
)

const (
	collectPath    = "/collect"
	sessionTTL     = 30 * time.Minute
	defaultQueue   = 256
	defaultTimeout = 5 * time.Second
)

var (
	// ErrQueueFull is returned when the buffer cannot take another event.
	ErrQueueFull = errors.New("telemetry queue full")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("telemetry client closed")
)

// Client ships interaction events to a collector without blocking callers.
// Delivery is best effort: failures are logged and the event is dropped.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
	clock    func() time.Time
	newID    func() string

	queue chan domain.Event
	wg    sync.WaitGroup

	mu       sync.RWMutex
	closed   bool
	started  bool
	session  string
	lastSeen time.Time
}

var _ ports.Tracker = (*Client)(nil)

// NewClient creates a tracker posting to endpoint. An empty endpoint yields
// a client that accepts and discards everything.
func NewClient(endpoint string, queueSize int, timeout time.Duration, logger *slog.Logger) *Client {
	if queueSize <= 0 {
		queueSize = defaultQueue
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
		clock:    time.Now,
		newID:    func() string { return uuid.NewString() },
		queue:    make(chan domain.Event, queueSize),
	}
}

// Start launches the delivery worker. It is a no-op without an endpoint or
// when already started.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.endpoint == "" || c.started || c.closed {
		return
	}
	c.started = true

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for event := range c.queue {
			if err := c.post(ctx, collectPath, event); err != nil {
				c.logger.Warn("telemetry delivery failed", "event", event.Name, "type", event.Type, "error", err)
			}
		}
	}()
}

// Close stops accepting events and waits for queued ones to be delivered.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.queue)
	c.mu.Unlock()

	c.wg.Wait()
	return nil
}

// Track records an interaction event. Errors are swallowed.
func (c *Client) Track(name string, props map[string]any) {
	err := c.Enqueue(domain.Event{Type: domain.EventAction, Name: name, Props: props})
	if err != nil && !errors.Is(err, ErrClosed) {
		c.logger.Debug("telemetry event dropped", "event", name, "error", err)
	}
}

// TrackPageView records a page view for path.
func (c *Client) TrackPageView(path, title, referrer string) {
	err := c.Enqueue(domain.Event{Type: domain.EventPageView, Path: path, Title: title, Referrer: referrer})
	if err != nil && !errors.Is(err, ErrClosed) {
		c.logger.Debug("telemetry page view dropped", "path", path, "error", err)
	}
}

// Enqueue stamps the session and buffers the event.
func (c *Client) Enqueue(event domain.Event) error {
	if c.endpoint == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	if event.SessionID == "" {
		event.SessionID = c.touchSessionLocked()
	}

	select {
	case c.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// SessionID returns the current session, rotating it after 30 minutes of
// inactivity.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touchSessionLocked()
}

func (c *Client) touchSessionLocked() string {
	now := c.clock()
	if c.session == "" || now.Sub(c.lastSeen) > sessionTTL {
		c.session = c.newID()
	}
	c.lastSeen = now
	return c.session
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return fmt.Errorf("unexpected status %s, close body: %v", resp.Status, closeErr)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}
	return nil
}
