// Package telemetry turns raw host readings into a display-ready snapshot.
package telemetry

import (
	"context"
	"time"

	"hostpulse/internal/domain"
	"hostpulse/internal/logger"

	"golang.org/x/sync/errgroup"
)

type Builder struct {
	host    domain.HostProvider
	log     logger.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewBuilder(host domain.HostProvider, log logger.Logger, timeout time.Duration) *Builder {
	return &Builder{
		host:    host,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

// Build gathers a fresh snapshot. Probes run concurrently, each writing only
// its own fields, and Build returns once all of them have finished. A failed
// probe leaves a placeholder and never fails the snapshot.
func (b *Builder) Build(ctx context.Context) domain.Snapshot {
	snap := domain.Snapshot{CollectedAt: b.now().UTC()}

	var g errgroup.Group

	g.Go(func() error {
		snap.Uptime = b.probeUptime(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Memory = b.probeMemory(ctx)
		return nil
	})
	g.Go(func() error {
		snap.CPUSpeedMHz, snap.CPUSpeed = b.probeCPU(ctx)
		return nil
	})
	g.Go(func() error {
		snap.DiskSpace, snap.Volumes = b.probeDisk(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Interfaces = b.probeInterfaces(ctx)
		return nil
	})

	_ = g.Wait()

	b.log.Debug("snapshot built",
		"interfaces", len(snap.Interfaces),
		"volumes", len(snap.Volumes),
		"took", b.now().UTC().Sub(snap.CollectedAt),
	)

	return snap
}
