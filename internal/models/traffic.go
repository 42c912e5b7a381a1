package models

import "time"

// IPTraffic accumulates the byte counters of one address across the
// connection snapshot: tx from the connections it originated, rx from the
// connections that targeted it.
type IPTraffic struct {
	Address     string `json:"address"`
	TxBytes     int64  `json:"tx_bytes"`
	RxBytes     int64  `json:"rx_bytes"`
	TotalBytes  int64  `json:"total_bytes"`
	Connections int    `json:"connections"`
}

// TrafficSummary ranks addresses by total transferred bytes.
type TrafficSummary struct {
	TopTalkers  []IPTraffic `json:"top_talkers"`
	Addresses   int         `json:"addresses"`
	LastUpdated time.Time   `json:"last_updated"`
}
