package models

import "time"

// HostHealth reports the monitor host's own load, so operators can tell
// monitor trouble from router trouble.
type HostHealth struct {
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	MemoryUsedGB  float64   `json:"memory_used_gb"`
	MemoryTotalGB float64   `json:"memory_total_gb"`
	Timestamp     time.Time `json:"timestamp"`
}
