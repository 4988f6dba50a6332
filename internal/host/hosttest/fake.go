// Package hosttest provides an in-memory domain.HostProvider.
package hosttest

import (
	"context"
	"sync/atomic"
	"time"

	"hostpulse/internal/domain"
)

// Provider returns the configured values. A non-nil *Err field makes the
// matching method fail; Delay makes every method block until it elapses or
// ctx is done, StatsDelay does the same for InterfaceStats only.
type Provider struct {
	UptimeMS   uint64
	Memory     domain.MemoryStatus
	CPUMHz     uint32
	Interfaces []domain.NetInterface
	Counters   map[uint32]domain.InterfaceCounters
	Volumes    []domain.VolumeUsage

	UptimeErr     error
	MemoryErr     error
	CPUErr        error
	InterfacesErr error
	StatsErr      error
	DiskErr       error

	Delay      time.Duration
	StatsDelay time.Duration

	StatsCalls atomic.Int32
}

var _ domain.HostProvider = (*Provider)(nil)

// Available is a host where every probe succeeds.
func Available() *Provider {
	return &Provider{
		UptimeMS: 5*3600_000 + 3*60_000,
		Memory: domain.MemoryStatus{
			TotalBytes:     16 * 1024 * 1024 * 1024,
			AvailableBytes: 6 * 1024 * 1024 * 1024,
		},
		CPUMHz: 3600,
		Interfaces: []domain.NetInterface{
			{Index: 1, Name: "lo"},
			{Index: 2, Name: "eth0"},
		},
		Counters: map[uint32]domain.InterfaceCounters{
			1: {BytesIn: 512, BytesOut: 512},
			2: {BytesIn: 123456, BytesOut: 654321},
		},
		Volumes: []domain.VolumeUsage{
			{Device: "/dev/sda1", Mountpoint: "/", Filesystem: "ext4", TotalBytes: 500 << 30, UsedBytes: 100 << 30},
			{Device: "/dev/sdb1", Mountpoint: "/data", Filesystem: "xfs", TotalBytes: 1000 << 30, UsedBytes: 250 << 30},
		},
	}
}

// Unavailable is a host where every probe fails.
func Unavailable() *Provider {
	return &Provider{
		UptimeErr:     domain.ErrUnavailable,
		MemoryErr:     domain.ErrUnavailable,
		CPUErr:        domain.ErrUnavailable,
		InterfacesErr: domain.ErrUnavailable,
		StatsErr:      domain.ErrUnavailable,
		DiskErr:       domain.ErrUnavailable,
	}
}

func (p *Provider) wait(ctx context.Context) error {
	return sleep(ctx, p.Delay)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Provider) Uptime(ctx context.Context) (uint64, error) {
	if err := p.wait(ctx); err != nil {
		return 0, err
	}
	return p.UptimeMS, p.UptimeErr
}

func (p *Provider) MemoryStatus(ctx context.Context) (domain.MemoryStatus, error) {
	if err := p.wait(ctx); err != nil {
		return domain.MemoryStatus{}, err
	}
	return p.Memory, p.MemoryErr
}

func (p *Provider) CPUFrequency(ctx context.Context) (uint32, error) {
	if err := p.wait(ctx); err != nil {
		return 0, err
	}
	return p.CPUMHz, p.CPUErr
}

func (p *Provider) ListInterfaces(ctx context.Context) ([]domain.NetInterface, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.InterfacesErr != nil {
		return nil, p.InterfacesErr
	}
	return p.Interfaces, nil
}

func (p *Provider) InterfaceStats(ctx context.Context, index uint32) (domain.InterfaceCounters, error) {
	p.StatsCalls.Add(1)

	if err := p.wait(ctx); err != nil {
		return domain.InterfaceCounters{}, err
	}
	if err := sleep(ctx, p.StatsDelay); err != nil {
		return domain.InterfaceCounters{}, err
	}
	if p.StatsErr != nil {
		return domain.InterfaceCounters{}, p.StatsErr
	}
	c, ok := p.Counters[index]
	if !ok {
		return domain.InterfaceCounters{}, domain.ErrInterfaceNotFound
	}
	return c, nil
}

func (p *Provider) DiskUsage(ctx context.Context) ([]domain.VolumeUsage, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.DiskErr != nil {
		return nil, p.DiskErr
	}
	return p.Volumes, nil
}
