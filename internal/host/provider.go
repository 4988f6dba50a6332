// Package host reads live operating system state for the telemetry probes.
package host

import (
	"context"
	"fmt"

	"hostpulse/internal/domain"
	"hostpulse/internal/logger"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type interfaceSource interface {
	List(ctx context.Context) ([]domain.NetInterface, error)
	StatsFor(ctx context.Context, index uint32) (domain.InterfaceCounters, error)
}

type Provider struct {
	log  logger.Logger
	nics interfaceSource
}

var _ domain.HostProvider = (*Provider)(nil)

func NewProvider(log logger.Logger) *Provider {
	return &Provider{
		log:  log,
		nics: newInterfaceSource(log),
	}
}

// Uptime returns milliseconds since boot.
func (p *Provider) Uptime(ctx context.Context) (uint64, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read uptime: %w", err)
	}

	return secs * 1000, nil
}

func (p *Provider) MemoryStatus(ctx context.Context) (domain.MemoryStatus, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.MemoryStatus{}, fmt.Errorf("read memory status: %w", err)
	}

	return domain.MemoryStatus{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
	}, nil
}

func (p *Provider) CPUFrequency(ctx context.Context) (uint32, error) {
	return p.cpuFrequency(ctx)
}

func (p *Provider) ListInterfaces(ctx context.Context) ([]domain.NetInterface, error) {
	return p.nics.List(ctx)
}

func (p *Provider) InterfaceStats(ctx context.Context, index uint32) (domain.InterfaceCounters, error) {
	return p.nics.StatsFor(ctx, index)
}
