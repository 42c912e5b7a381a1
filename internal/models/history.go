package models

import "time"

// BandwidthRow is one persisted interface-counter sample.
type BandwidthRow struct {
	DeviceID  int       `json:"device_id"`
	Interface string    `json:"interface"`
	TxBytes   int64     `json:"tx_bytes"`
	RxBytes   int64     `json:"rx_bytes"`
	TxPackets int64     `json:"tx_packets"`
	RxPackets int64     `json:"rx_packets"`
	Timestamp time.Time `json:"timestamp"`
}

// ConnectionSampleRow is one persisted connection-count sample.
type ConnectionSampleRow struct {
	DeviceID  int       `json:"device_id"`
	Total     int       `json:"total"`
	TCP       int       `json:"tcp"`
	UDP       int       `json:"udp"`
	ICMP      int       `json:"icmp"`
	Other     int       `json:"other"`
	Timestamp time.Time `json:"timestamp"`
}

// TopTalkerRow aggregates persisted traffic for one address over a window.
type TopTalkerRow struct {
	Address    string    `json:"address"`
	TxBytes    int64     `json:"tx_bytes"`
	RxBytes    int64     `json:"rx_bytes"`
	TotalBytes int64     `json:"total_bytes"`
	LastSeen   time.Time `json:"last_seen"`
}
