// Package storage persists traffic, bandwidth and connection-count samples
// so the dashboard can chart usage over time windows longer than the cache
// TTL.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"routerdash/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS ip_traffic (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id INTEGER NOT NULL,
	address TEXT NOT NULL,
	tx_bytes INTEGER NOT NULL,
	rx_bytes INTEGER NOT NULL,
	total_bytes INTEGER NOT NULL,
	connections INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ip_traffic_ts ON ip_traffic(timestamp);

CREATE TABLE IF NOT EXISTS bandwidth_usage (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id INTEGER NOT NULL,
	interface TEXT NOT NULL,
	tx_bytes INTEGER NOT NULL,
	rx_bytes INTEGER NOT NULL,
	tx_packets INTEGER NOT NULL,
	rx_packets INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bandwidth_ts ON bandwidth_usage(timestamp);

CREATE TABLE IF NOT EXISTS active_connections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id INTEGER NOT NULL,
	total INTEGER NOT NULL,
	tcp INTEGER NOT NULL,
	udp INTEGER NOT NULL,
	icmp INTEGER NOT NULL,
	other INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_active_connections_ts ON active_connections(timestamp);
`

// Store is the SQLite-backed history store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// StoreTraffic persists one traffic-by-IP sample batch in a single
// transaction.
func (s *Store) StoreTraffic(deviceID int, rows []models.IPTraffic, ts time.Time) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO ip_traffic (device_id, address, tx_bytes, rx_bytes, total_bytes, connections, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(deviceID, r.Address, r.TxBytes, r.RxBytes, r.TotalBytes, r.Connections, ts.Unix()); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// StoreBandwidth persists one interface-counter sample batch in a single
// transaction.
func (s *Store) StoreBandwidth(deviceID int, ifaces []models.InterfaceBandwidth, ts time.Time) error {
	if len(ifaces) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bandwidth_usage (device_id, interface, tx_bytes, rx_bytes, tx_packets, rx_packets, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, iface := range ifaces {
		if _, err := stmt.Exec(deviceID, iface.Name, iface.TxBytes, iface.RxBytes, iface.TxPackets, iface.RxPackets, ts.Unix()); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// StoreConnections persists one connection-count sample.
func (s *Store) StoreConnections(deviceID int, summary models.ConnectionSummary, ts time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO active_connections (device_id, total, tcp, udp, icmp, other, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, deviceID, summary.TotalConnections, summary.TCPConnections, summary.UDPConnections,
		summary.ICMPConnections, summary.OtherConnections, ts.Unix())
	return err
}

// ConnectionHistory returns the persisted connection-count samples inside
// the window, oldest first. A deviceID of 0 matches all devices.
func (s *Store) ConnectionHistory(deviceID int, window time.Duration) ([]models.ConnectionSampleRow, error) {
	since := time.Now().Add(-window).Unix()

	query := `
		SELECT device_id, total, tcp, udp, icmp, other, timestamp
		FROM active_connections
		WHERE timestamp >= ?
	`
	args := []any{since}
	if deviceID != 0 {
		query += " AND device_id = ?"
		args = append(args, deviceID)
	}
	query += " ORDER BY timestamp"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ConnectionSampleRow
	for rows.Next() {
		var r models.ConnectionSampleRow
		var ts int64
		if err := rows.Scan(&r.DeviceID, &r.Total, &r.TCP, &r.UDP, &r.ICMP, &r.Other, &ts); err != nil {
			return nil, err
		}
		r.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// TopTalkers returns the addresses with the most persisted traffic inside
// the window, summed across samples and devices.
func (s *Store) TopTalkers(limit int, window time.Duration) ([]models.TopTalkerRow, error) {
	since := time.Now().Add(-window).Unix()

	rows, err := s.db.Query(`
		SELECT address,
		       SUM(tx_bytes),
		       SUM(rx_bytes),
		       SUM(total_bytes),
		       MAX(timestamp)
		FROM ip_traffic
		WHERE timestamp >= ?
		GROUP BY address
		ORDER BY SUM(total_bytes) DESC
		LIMIT ?
	`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TopTalkerRow
	for rows.Next() {
		var r models.TopTalkerRow
		var lastSeen int64
		if err := rows.Scan(&r.Address, &r.TxBytes, &r.RxBytes, &r.TotalBytes, &lastSeen); err != nil {
			return nil, err
		}
		r.LastSeen = time.Unix(lastSeen, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// BandwidthHistory returns the persisted interface samples inside the
// window, oldest first. An empty iface matches all interfaces.
func (s *Store) BandwidthHistory(iface string, window time.Duration) ([]models.BandwidthRow, error) {
	since := time.Now().Add(-window).Unix()

	query := `
		SELECT device_id, interface, tx_bytes, rx_bytes, tx_packets, rx_packets, timestamp
		FROM bandwidth_usage
		WHERE timestamp >= ?
	`
	args := []any{since}
	if iface != "" {
		query += " AND interface = ?"
		args = append(args, iface)
	}
	query += " ORDER BY timestamp"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BandwidthRow
	for rows.Next() {
		var r models.BandwidthRow
		var ts int64
		if err := rows.Scan(&r.DeviceID, &r.Interface, &r.TxBytes, &r.RxBytes, &r.TxPackets, &r.RxPackets, &ts); err != nil {
			return nil, err
		}
		r.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}
