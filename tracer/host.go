package tracer

import (
	"runtime"

	"github.com/achilleasa/go-mctrace/log"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Clock speed (in GHz) that maps to a speed estimate of 1.
const baselineClockGHz = 1.0

// Host information used to size the tracer pool.
type HostInfo struct {
	CPUModel     string
	LogicalCores int
	ClockGHz     float64
	TotalMemory  uint64
	FreeMemory   uint64
}

// Probe the host CPU and memory. Fields that cannot be probed fall back
// to values reported by the go runtime or are left zeroed.
func ProbeHost() HostInfo {
	logger := log.New("host")
	info := HostInfo{LogicalCores: runtime.NumCPU()}

	if cores, err := cpu.Counts(true); err == nil && cores > 0 {
		info.LogicalCores = cores
	} else if err != nil {
		logger.Warningf("could not detect logical core count: %v", err)
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.ClockGHz = cpuInfo[0].Mhz / 1000
	} else if err != nil {
		logger.Warningf("could not probe cpu info: %v", err)
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = memInfo.Total
		info.FreeMemory = memInfo.Available
	} else {
		logger.Warningf("could not probe memory info: %v", err)
	}

	return info
}

// Speed estimate for a single cpu tracer running on this host.
func (h HostInfo) SpeedEstimate() float32 {
	if h.ClockGHz <= 0 {
		return 1
	}
	return float32(h.ClockGHz / baselineClockGHz)
}
