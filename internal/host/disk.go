package host

import (
	"context"
	"fmt"

	"hostpulse/internal/domain"
	"hostpulse/internal/logger"
	"hostpulse/internal/pkg"

	"github.com/shirou/gopsutil/v4/disk"
)

var pseudoFilesystems = []string{
	"tmpfs",
	"devtmpfs",
	"overlay",
	"squashfs",
	"proc",
	"sysfs",
	"cgroup*",
	"nsfs",
	"autofs",
	"devfs",
}

func (p *Provider) DiskUsage(ctx context.Context) ([]domain.VolumeUsage, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	volumes := collectVolumes(parts, func(path string) (*disk.UsageStat, error) {
		return disk.UsageWithContext(ctx, path)
	}, p.log)
	if len(volumes) == 0 {
		return nil, fmt.Errorf("no mounted volumes: %w", domain.ErrUnavailable)
	}

	return volumes, nil
}

// collectVolumes reports each device once, at its first mount with usable
// figures. A mount whose usage lookup fails or reports zero size does not
// claim the device, so a later mount of it can still count.
func collectVolumes(parts []disk.PartitionStat, usage func(path string) (*disk.UsageStat, error), log logger.Logger) []domain.VolumeUsage {
	var volumes []domain.VolumeUsage
	seen := make(map[string]bool)

	for _, part := range mountedVolumes(parts) {
		if seen[part.Device] {
			continue
		}

		u, err := usage(part.Mountpoint)
		if err != nil {
			log.Debug("skipping volume", "mountpoint", part.Mountpoint, "error", err)
			continue
		}
		if u.Total == 0 {
			continue
		}
		seen[part.Device] = true

		volumes = append(volumes, domain.VolumeUsage{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Filesystem: part.Fstype,
			TotalBytes: u.Total,
			UsedBytes:  u.Used,
		})
	}

	return volumes
}

// mountedVolumes drops pseudo filesystems, keeping partition order.
func mountedVolumes(parts []disk.PartitionStat) []disk.PartitionStat {
	out := make([]disk.PartitionStat, 0, len(parts))
	for _, part := range parts {
		if part.Mountpoint == "" || pkg.ContainsAny(part.Fstype, pseudoFilesystems) {
			continue
		}
		out = append(out, part)
	}
	return out
}
