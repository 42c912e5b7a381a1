package services

import (
	"github.com/rs/zerolog"

	"routerdash/internal/models"
	"routerdash/internal/routeros"
)

// Print commands the stats services run against a device. The command
// strings belong to the RouterOS command language; this package only treats
// the results as opaque records.
const (
	connectionQuery = "/ip/firewall/connection/print"
	leaseQuery      = "/ip/dhcp-server/lease/print"
	poolQuery       = "/ip/pool/print"
	interfaceQuery  = "/interface/print"
	resourceQuery   = "/system/resource/print"
)

// SessionProvider is the transport surface the stats services consume.
// routeros.Manager implements it.
type SessionProvider interface {
	Connect(deviceID int) error
	Session(deviceID int) (routeros.Session, bool)
}

// fetch acquires a session for the device and runs a single query. Any
// transport failure resolves to "statistics unavailable": a warning with the
// device ID and cause, never a propagated fault.
func fetch(sessions SessionProvider, log zerolog.Logger, deviceID int, command string) ([]models.RawRecord, bool) {
	if err := sessions.Connect(deviceID); err != nil {
		log.Warn().Err(err).Int("device_id", deviceID).Msg("session acquisition failed")
		return nil, false
	}

	session, ok := sessions.Session(deviceID)
	if !ok {
		log.Warn().Int("device_id", deviceID).Msg("no session for device")
		return nil, false
	}

	records, err := session.Query(command)
	if err != nil {
		log.Warn().Err(err).Int("device_id", deviceID).Str("command", command).Msg("device query failed")
		return nil, false
	}
	return records, true
}
