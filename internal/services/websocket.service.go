package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"routerdash/internal/models"
)

// WebSocketMessage is the envelope for every message on the live channel.
type WebSocketMessage struct {
	Type      string      `json:"type"` // "stats", "pong", "error"
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// DeviceStats is one device's slice of a live stats broadcast. Families the
// device could not serve are omitted rather than zeroed.
type DeviceStats struct {
	DeviceID    int                       `json:"device_id"`
	Connections *models.ConnectionSummary `json:"connections,omitempty"`
	DHCP        *models.LeaseSummary      `json:"dhcp,omitempty"`
	Bandwidth   *models.BandwidthSummary  `json:"bandwidth,omitempty"`
}

// ClientConnection represents a connected WebSocket client.
type ClientConnection struct {
	ID   string
	Send chan WebSocketMessage
	Done chan struct{}
}

var clientSeq atomic.Uint64

// NewClientConnection allocates a client whose ID is unique even when the
// same peer connects twice, so unregistering one connection never tears
// down another.
func NewClientConnection(prefix string) *ClientConnection {
	return &ClientConnection{
		ID:   fmt.Sprintf("%s-%d", prefix, clientSeq.Add(1)),
		Send: make(chan WebSocketMessage, 256),
		Done: make(chan struct{}),
	}
}

// WebSocketHub fans the periodically refreshed summaries out to every
// connected dashboard, replacing client-side polling. Reads go through the
// stats services, so broadcasts inside the freshness window are served from
// cache.
type WebSocketHub struct {
	devices     []int
	connections *ConnectionStatsService
	dhcp        *DHCPStatsService
	bandwidth   *BandwidthStatsService

	clients    map[string]*ClientConnection
	broadcast  chan WebSocketMessage
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	interval   time.Duration
	done       chan struct{}
	log        zerolog.Logger
}

var wsHub *WebSocketHub

// InitWebSocketHub initializes and starts the hub.
func InitWebSocketHub(devices []int, connections *ConnectionStatsService, dhcp *DHCPStatsService, bandwidth *BandwidthStatsService, interval time.Duration, log zerolog.Logger) *WebSocketHub {
	wsHub = &WebSocketHub{
		devices:     devices,
		connections: connections,
		dhcp:        dhcp,
		bandwidth:   bandwidth,
		clients:     make(map[string]*ClientConnection),
		broadcast:   make(chan WebSocketMessage, 256),
		register:    make(chan *ClientConnection),
		unregister:  make(chan string),
		interval:    interval,
		done:        make(chan struct{}),
		log:         log.With().Str("component", "websocket-hub").Logger(),
	}

	go wsHub.run()
	return wsHub
}

// run manages the hub's event loop.
func (h *WebSocketHub) run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Str("client", client.ID).Int("total", total).Msg("client connected")

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Str("client", clientID).Int("total", total).Msg("client disconnected")

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Client's send channel is full, skip this message.
				}
			}
			h.mu.RUnlock()

		case <-ticker.C:
			h.mu.RLock()
			idle := len(h.clients) == 0
			h.mu.RUnlock()
			if idle {
				continue
			}

			stats := h.gatherStats()
			data, err := json.Marshal(stats)
			if err != nil {
				h.log.Warn().Err(err).Msg("marshal stats broadcast failed")
				continue
			}

			msg := WebSocketMessage{
				Type:      "stats",
				Timestamp: time.Now(),
				Data:      json.RawMessage(data),
			}
			select {
			case h.broadcast <- msg:
			default:
				// Channel full, skip this broadcast.
			}
		}
	}
}

// gatherStats collects the current summaries for every configured device.
func (h *WebSocketHub) gatherStats() []DeviceStats {
	stats := make([]DeviceStats, 0, len(h.devices))
	for _, deviceID := range h.devices {
		ds := DeviceStats{DeviceID: deviceID}

		if summary, ok := h.connections.Stats(deviceID); ok {
			ds.Connections = &summary
		}
		if summary, ok := h.dhcp.Stats(deviceID); ok {
			ds.DHCP = &summary
		}
		if summary, ok := h.bandwidth.Stats(deviceID); ok {
			ds.Bandwidth = &summary
		}
		stats = append(stats, ds)
	}
	return stats
}

// Register adds a new client to the hub.
func (h *WebSocketHub) Register(client *ClientConnection) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *WebSocketHub) Unregister(clientID string) {
	h.unregister <- clientID
}

// GetWebSocketHub returns the hub, or nil before InitWebSocketHub.
func GetWebSocketHub() *WebSocketHub {
	return wsHub
}

// StopWebSocketHub gracefully stops the hub.
func StopWebSocketHub() {
	if wsHub != nil {
		close(wsHub.done)
	}
}
