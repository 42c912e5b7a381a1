package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConnectionUniqueIDs(t *testing.T) {
	first := NewClientConnection("10.0.0.1-dashboard")
	second := NewClientConnection("10.0.0.1-dashboard")

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotNil(t, first.Send)
	assert.NotNil(t, first.Done)
}

func TestWebSocketHubUnregisterLeavesOtherClientsAlive(t *testing.T) {
	hub := InitWebSocketHub(nil, nil, nil, nil, time.Hour, testLogger())
	defer StopWebSocketHub()

	// Same peer reconnecting: two live clients with the same prefix.
	first := NewClientConnection("10.0.0.1-dashboard")
	second := NewClientConnection("10.0.0.1-dashboard")
	hub.Register(first)
	hub.Register(second)

	hub.Unregister(first.ID)

	// A further register round-trips the event loop, so the unregister
	// above has been processed once it returns.
	sync := NewClientConnection("sync")
	hub.Register(sync)

	_, open := <-first.Send
	assert.False(t, open)

	select {
	case _, open := <-second.Send:
		require.True(t, open, "second client's channel was closed")
	default:
	}
}
