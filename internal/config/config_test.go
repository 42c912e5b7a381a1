package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDevices(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "devices.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDevices(t *testing.T) {
	path := writeDevices(t, `[
		{"id": 1, "name": "office", "host": "192.168.88.1", "username": "admin", "password": "secret"},
		{"id": 2, "host": "10.0.0.1", "port": 8999, "use_tls": true}
	]`)

	devices, err := loadDevices(path)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, 8728, devices[0].Port, "plain API port default")
	assert.Equal(t, "office", devices[0].Name)

	assert.Equal(t, 8999, devices[1].Port, "explicit port wins over default")
	assert.Equal(t, "10.0.0.1", devices[1].Name, "name falls back to host")
}

func TestLoadDevicesTLSPortDefault(t *testing.T) {
	path := writeDevices(t, `[{"id": 1, "host": "10.0.0.1", "use_tls": true}]`)

	devices, err := loadDevices(path)
	require.NoError(t, err)
	assert.Equal(t, 8729, devices[0].Port)
}

func TestLoadDevicesRejectsDuplicateIDs(t *testing.T) {
	path := writeDevices(t, `[
		{"id": 1, "host": "10.0.0.1"},
		{"id": 1, "host": "10.0.0.2"}
	]`)

	_, err := loadDevices(path)
	assert.Error(t, err)
}

func TestLoadDevicesRejectsMissingHost(t *testing.T) {
	path := writeDevices(t, `[{"id": 1}]`)

	_, err := loadDevices(path)
	assert.Error(t, err)
}

func TestDeviceLookup(t *testing.T) {
	cfg := &Config{Devices: []Device{{ID: 3, Host: "10.0.0.3", Name: "lab"}}}

	d, ok := cfg.Device(3)
	require.True(t, ok)
	assert.Equal(t, "lab", d.Name)

	_, ok = cfg.Device(99)
	assert.False(t, ok)
}

func TestDeviceInfosOmitCredentials(t *testing.T) {
	cfg := &Config{Devices: []Device{{
		ID: 1, Name: "office", Host: "192.168.88.1", Port: 8728,
		Username: "admin", Password: "secret",
	}}}

	infos := cfg.DeviceInfos()
	require.Len(t, infos, 1)
	assert.Equal(t, "office", infos[0].Name)
}
