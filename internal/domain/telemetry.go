package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Unavailable is the placeholder rendered for a metric that could not be read.
const Unavailable = "Unavailable"

var (
	ErrUnavailable       = errors.New("metric unavailable")
	ErrInterfaceNotFound = errors.New("interface not found")
	ErrProbeTimeout      = errors.New("probe timed out")
)

// Snapshot is the full set of metric values gathered for one request.
type Snapshot struct {
	Uptime      string
	Memory      MemoryReport
	CPUSpeedMHz *uint32
	CPUSpeed    string
	DiskSpace   string
	Volumes     []VolumeReport
	Interfaces  []InterfaceStat
	CollectedAt time.Time
}

// MemoryReport holds physical memory in MiB. UsedMB <= TotalMB whenever Available is set.
type MemoryReport struct {
	TotalMB   uint64
	UsedMB    uint64
	Available bool
}

func (m MemoryReport) String() string {
	if !m.Available {
		return Unavailable
	}
	return fmt.Sprintf("%d MB used / %d MB total", m.UsedMB, m.TotalMB)
}

type InterfaceStat struct {
	Index      uint32
	Name       string
	BytesIn    uint64
	BytesOut   uint64
	StatsFound bool
}

type VolumeReport struct {
	Device     string
	Mountpoint string
	Filesystem string
	UsedGB     uint64
	TotalGB    uint64
}

func (v VolumeReport) String() string {
	return fmt.Sprintf("%d GB used / %d GB total", v.UsedGB, v.TotalGB)
}

type MemoryStatus struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

type NetInterface struct {
	Index uint32
	Name  string
}

type InterfaceCounters struct {
	BytesIn  uint64
	BytesOut uint64
}

type VolumeUsage struct {
	Device     string
	Mountpoint string
	Filesystem string
	TotalBytes uint64
	UsedBytes  uint64
}

// HostProvider is the narrow capability every probe reads the operating system through.
// InterfaceStats returns ErrInterfaceNotFound when index is no longer in the table.
type HostProvider interface {
	Uptime(ctx context.Context) (uint64, error)
	MemoryStatus(ctx context.Context) (MemoryStatus, error)
	CPUFrequency(ctx context.Context) (uint32, error)
	ListInterfaces(ctx context.Context) ([]NetInterface, error)
	InterfaceStats(ctx context.Context, index uint32) (InterfaceCounters, error)
	DiskUsage(ctx context.Context) ([]VolumeUsage, error)
}
