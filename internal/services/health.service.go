package services

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"routerdash/internal/models"
)

const gb = 1024 * 1024 * 1024

// HostHealth returns the monitor host's own CPU and memory load, so a
// struggling dashboard can be told apart from a struggling router.
func HostHealth() (*models.HostHealth, error) {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		return nil, err
	}

	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	return &models.HostHealth{
		CPUPercent:    percentage[0],
		MemoryPercent: virtualMemory.UsedPercent,
		MemoryUsedGB:  float64(virtualMemory.Used) / gb,
		MemoryTotalGB: float64(virtualMemory.Total) / gb,
		Timestamp:     time.Now(),
	}, nil
}
