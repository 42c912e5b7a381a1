package models

import "time"

// RouterResources mirrors the device's /system/resource record.
type RouterResources struct {
	Uptime       string    `json:"uptime"`
	Version      string    `json:"version"`
	BoardName    string    `json:"board_name"`
	Architecture string    `json:"architecture"`
	CPULoad      int       `json:"cpu_load"`
	FreeMemory   int64     `json:"free_memory"`
	TotalMemory  int64     `json:"total_memory"`
	FreeHDDSpace int64     `json:"free_hdd_space"`
	LastUpdated  time.Time `json:"last_updated"`
}
