package routeros

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"routerdash/internal/config"
)

// Manager owns one client per configured device and hands out sessions by
// device ID.
type Manager struct {
	mu      sync.RWMutex
	clients map[int]*Client
	log     zerolog.Logger
}

// NewManager creates clients for every configured device. No connection is
// made until the first Connect.
func NewManager(devices []config.Device, log zerolog.Logger) *Manager {
	m := &Manager{
		clients: make(map[int]*Client, len(devices)),
		log:     log,
	}
	for _, d := range devices {
		m.clients[d.ID] = NewClient(d, log)
	}
	return m
}

// Connect ensures the device's client is connected, dialing if necessary.
func (m *Manager) Connect(deviceID int) error {
	m.mu.RLock()
	client, ok := m.clients[deviceID]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown device %d", deviceID)
	}
	return client.Connect()
}

// Session returns the device's session when a live connection exists.
func (m *Manager) Session(deviceID int) (Session, bool) {
	m.mu.RLock()
	client, ok := m.clients[deviceID]
	m.mu.RUnlock()

	if !ok || !client.Connected() {
		return nil, false
	}
	return client, true
}

// CloseAll drops every open connection.
func (m *Manager) CloseAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, client := range m.clients {
		client.Close()
	}
}
