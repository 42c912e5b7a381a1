package models

import "time"

// PoolStats describes one configured DHCP address pool.
type PoolStats struct {
	Name         string  `json:"name"`
	Ranges       string  `json:"ranges"`
	Size         int     `json:"size"`
	Used         int     `json:"used"`
	Available    int     `json:"available"`
	UsagePercent float64 `json:"usage_percent"`
}

// LeaseSummary is the aggregated view of the device's DHCP lease table.
// Leases whose address falls outside every configured pool still count in
// the top-level totals but are not attributed to any pool row.
type LeaseSummary struct {
	TotalLeases  int         `json:"total_leases"`
	ActiveLeases int         `json:"active_leases"`
	PoolSize     int         `json:"pool_size"`
	AvailableIPs int         `json:"available_ips"`
	UsagePercent float64     `json:"usage_percent"`
	Pools        []PoolStats `json:"pools"`
	LastUpdated  time.Time   `json:"last_updated"`
}
