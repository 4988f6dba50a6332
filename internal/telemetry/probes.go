package telemetry

import (
	"context"
	"errors"
	"fmt"

	"hostpulse/internal/domain"
	"hostpulse/internal/pkg"
)

func (b *Builder) unavailable(probe string, err error) {
	b.log.Warn("probe unavailable", "probe", probe, "error", err)
}

func (b *Builder) probeUptime(ctx context.Context) string {
	ms, err := bounded(ctx, b.timeout, b.host.Uptime)
	if err != nil {
		b.unavailable("uptime", err)
		return domain.Unavailable
	}

	return pkg.FormatUptime(ms)
}

func (b *Builder) probeMemory(ctx context.Context) domain.MemoryReport {
	status, err := bounded(ctx, b.timeout, b.host.MemoryStatus)
	if err != nil {
		b.unavailable("memory", err)
		return domain.MemoryReport{}
	}

	total := pkg.MBFromBytes(status.TotalBytes)
	avail := pkg.MBFromBytes(status.AvailableBytes)
	if avail > total {
		b.unavailable("memory", fmt.Errorf("available %d MB exceeds total %d MB", avail, total))
		return domain.MemoryReport{}
	}

	return domain.MemoryReport{
		TotalMB:   total,
		UsedMB:    total - avail,
		Available: true,
	}
}

func (b *Builder) probeCPU(ctx context.Context) (*uint32, string) {
	mhz, err := bounded(ctx, b.timeout, b.host.CPUFrequency)
	if err != nil {
		// a missing registry key is a normal outcome on some hosts
		if errors.Is(err, domain.ErrUnavailable) {
			b.log.Debug("probe unavailable", "probe", "cpu_speed", "error", err)
		} else {
			b.unavailable("cpu_speed", err)
		}
		return nil, domain.Unavailable
	}

	return &mhz, fmt.Sprintf("%d MHz", mhz)
}

func (b *Builder) probeDisk(ctx context.Context) (string, []domain.VolumeReport) {
	volumes, err := bounded(ctx, b.timeout, b.host.DiskUsage)
	if err != nil {
		b.unavailable("disk_space", err)
		return domain.Unavailable, nil
	}

	var used, total uint64
	reports := make([]domain.VolumeReport, 0, len(volumes))

	for _, v := range volumes {
		if v.UsedBytes > v.TotalBytes {
			b.log.Warn("skipping volume", "mountpoint", v.Mountpoint, "used", v.UsedBytes, "total", v.TotalBytes)
			continue
		}

		used += v.UsedBytes
		total += v.TotalBytes

		reports = append(reports, domain.VolumeReport{
			Device:     v.Device,
			Mountpoint: v.Mountpoint,
			Filesystem: v.Filesystem,
			UsedGB:     pkg.GBFromBytes(v.UsedBytes),
			TotalGB:    pkg.GBFromBytes(v.TotalBytes),
		})
	}

	if len(reports) == 0 {
		b.unavailable("disk_space", errors.New("no usable volumes"))
		return domain.Unavailable, nil
	}

	return fmt.Sprintf("%d GB used / %d GB total", pkg.GBFromBytes(used), pkg.GBFromBytes(total)), reports
}

func (b *Builder) probeInterfaces(ctx context.Context) []domain.InterfaceStat {
	ifaces, err := bounded(ctx, b.timeout, b.host.ListInterfaces)
	if err != nil {
		b.log.Error("interface enumeration failed", "error", err)
		return []domain.InterfaceStat{}
	}

	stats := make([]domain.InterfaceStat, 0, len(ifaces))
	stalled := false
	for _, iface := range ifaces {
		stat := domain.InterfaceStat{Index: iface.Index, Name: iface.Name}

		// every lookup goes through the same driver, so one stall means all would stall
		if stalled {
			stats = append(stats, stat)
			continue
		}

		counters, err := bounded(ctx, b.timeout, func(ctx context.Context) (domain.InterfaceCounters, error) {
			return b.host.InterfaceStats(ctx, iface.Index)
		})
		switch {
		case err == nil:
			stat.BytesIn = counters.BytesIn
			stat.BytesOut = counters.BytesOut
			stat.StatsFound = true
		case errors.Is(err, domain.ErrProbeTimeout):
			stalled = true
			b.log.Warn("interface stats timed out, skipping remaining lookups",
				"index", iface.Index,
				"remaining", len(ifaces)-len(stats)-1,
				"error", err,
			)
		case errors.Is(err, domain.ErrInterfaceNotFound):
			b.log.Debug("interface vanished before stats lookup", "index", iface.Index, "name", iface.Name)
		default:
			b.log.Warn("interface stats unavailable", "index", iface.Index, "name", iface.Name, "error", err)
		}

		stats = append(stats, stat)
	}

	return stats
}
