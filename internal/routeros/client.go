// Package routeros talks to MikroTik devices over the RouterOS API.
package routeros

import (
	"crypto/tls"
	"errors"
	"fmt"
	"sync"

	api "github.com/go-routeros/routeros/v3"
	"github.com/rs/zerolog"

	"routerdash/internal/config"
	"routerdash/internal/models"
)

// ErrNotConnected is returned when a query is attempted before a successful
// Connect, or after the connection dropped.
var ErrNotConnected = errors.New("routeros: not connected")

// Session runs read-only commands against one device and returns the raw
// records verbatim.
type Session interface {
	Query(command string) ([]models.RawRecord, error)
}

// Client wraps a single RouterOS API connection. It reconnects lazily: a
// failed query drops the connection so the next Connect dials again.
type Client struct {
	mu     sync.Mutex
	device config.Device
	conn   *api.Client
	log    zerolog.Logger
}

// NewClient creates an unconnected client for the given device.
func NewClient(device config.Device, log zerolog.Logger) *Client {
	return &Client{
		device: device,
		log:    log.With().Int("device_id", device.ID).Str("host", device.Host).Logger(),
	}
}

// Connect dials and logs in. Calling Connect on an already connected client
// is a no-op.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	addr := fmt.Sprintf("%s:%d", c.device.Host, c.device.Port)

	var (
		conn *api.Client
		err  error
	)
	if c.device.UseTLS {
		// Routers ship with a self-signed API-SSL certificate.
		conn, err = api.DialTLS(addr, c.device.Username, c.device.Password, &tls.Config{
			InsecureSkipVerify: true,
		})
	} else {
		conn, err = api.Dial(addr, c.device.Username, c.device.Password)
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	c.conn = conn
	c.log.Info().Str("addr", addr).Msg("connected to router")
	return nil
}

// Connected reports whether the client currently holds a live connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Close drops the connection if one is open.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// Query runs a print command and converts the reply sentences into raw
// records. A transport error invalidates the connection.
func (c *Client) Query(command string) ([]models.RawRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	reply, err := c.conn.Run(command)
	if err != nil {
		c.conn.Close()
		c.conn = nil
		return nil, fmt.Errorf("query %s: %w", command, err)
	}

	records := make([]models.RawRecord, 0, len(reply.Re))
	for _, sentence := range reply.Re {
		records = append(records, models.RawRecord(sentence.Map))
	}
	return records, nil
}
