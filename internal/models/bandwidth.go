package models

import "time"

// InterfaceBandwidth holds the transfer counters of one router interface.
type InterfaceBandwidth struct {
	Name      string `json:"name"`
	Running   bool   `json:"running"`
	TxBytes   int64  `json:"tx_bytes"`
	RxBytes   int64  `json:"rx_bytes"`
	TxPackets int64  `json:"tx_packets"`
	RxPackets int64  `json:"rx_packets"`
}

// BandwidthSummary is the aggregated view of the device's interface list.
type BandwidthSummary struct {
	Interfaces        []InterfaceBandwidth `json:"interfaces"`
	RunningInterfaces int                  `json:"running_interfaces"`
	TotalTxBytes      int64                `json:"total_tx_bytes"`
	TotalRxBytes      int64                `json:"total_rx_bytes"`
	LastUpdated       time.Time            `json:"last_updated"`
}
