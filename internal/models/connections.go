package models

import "time"

// AddressCount is one row of a top-N address ranking.
type AddressCount struct {
	Address    string  `json:"address"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PortCount is one row of a top-N destination-port ranking. Service is the
// well-known service name when the registry resolves one for the port and
// protocol, otherwise empty.
type PortCount struct {
	Port       int     `json:"port"`
	Protocol   string  `json:"protocol"`
	Service    string  `json:"service,omitempty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ConnectionSummary is the aggregated view of the device's connection
// tracking table. The tracking table only lists currently-tracked flows, so
// ActiveConnections always equals TotalConnections.
type ConnectionSummary struct {
	TotalConnections  int `json:"total_connections"`
	ActiveConnections int `json:"active_connections"`

	TCPConnections   int `json:"tcp_connections"`
	UDPConnections   int `json:"udp_connections"`
	ICMPConnections  int `json:"icmp_connections"`
	OtherConnections int `json:"other_connections"`

	TopSources      []AddressCount `json:"top_sources"`
	TopDestinations []AddressCount `json:"top_destinations"`
	TopPorts        []PortCount    `json:"top_ports"`

	InternalConnections int `json:"internal_connections"`
	ExternalConnections int `json:"external_connections"`

	LastUpdated time.Time `json:"last_updated"`
}
