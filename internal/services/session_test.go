package services

import (
	"github.com/rs/zerolog"

	"routerdash/internal/models"
	"routerdash/internal/routeros"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// fakeSession serves canned records per command and counts queries.
type fakeSession struct {
	records map[string][]models.RawRecord
	err     error
	queries []string
}

func (f *fakeSession) Query(command string) ([]models.RawRecord, error) {
	f.queries = append(f.queries, command)
	if f.err != nil {
		return nil, f.err
	}
	return f.records[command], nil
}

// fakeProvider hands out a fakeSession for any device ID.
type fakeProvider struct {
	session    *fakeSession
	connectErr error
	connects   int
}

func (f *fakeProvider) Connect(deviceID int) error {
	f.connects++
	return f.connectErr
}

func (f *fakeProvider) Session(deviceID int) (routeros.Session, bool) {
	if f.session == nil {
		return nil, false
	}
	return f.session, true
}
