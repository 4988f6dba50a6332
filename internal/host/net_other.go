//go:build !windows

package host

import (
	"context"
	"fmt"

	"hostpulse/internal/domain"
	"hostpulse/internal/logger"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// psutilInterfaces pairs the kernel interface index with the per-NIC byte
// counters. Neither source answers by index, so every lookup re-enumerates.
type psutilInterfaces struct {
	log logger.Logger
}

func newInterfaceSource(log logger.Logger) interfaceSource {
	return &psutilInterfaces{log: log}
}

func (s *psutilInterfaces) List(ctx context.Context) ([]domain.NetInterface, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return []domain.NetInterface{}, fmt.Errorf("list interfaces: %w", err)
	}

	out := make([]domain.NetInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		out = append(out, domain.NetInterface{Index: uint32(iface.Index), Name: iface.Name})
	}

	return out, nil
}

func (s *psutilInterfaces) StatsFor(ctx context.Context, index uint32) (domain.InterfaceCounters, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return domain.InterfaceCounters{}, fmt.Errorf("list interfaces: %w", err)
	}

	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return domain.InterfaceCounters{}, fmt.Errorf("read io counters: %w", err)
	}

	return countersFor(ifaces, counters, index)
}

func countersFor(ifaces []psnet.InterfaceStat, counters []psnet.IOCountersStat, index uint32) (domain.InterfaceCounters, error) {
	name := ""
	for _, iface := range ifaces {
		if uint32(iface.Index) == index {
			name = iface.Name
			break
		}
	}
	if name == "" {
		return domain.InterfaceCounters{}, domain.ErrInterfaceNotFound
	}

	for _, c := range counters {
		if c.Name == name {
			return domain.InterfaceCounters{BytesIn: c.BytesRecv, BytesOut: c.BytesSent}, nil
		}
	}

	return domain.InterfaceCounters{}, domain.ErrInterfaceNotFound
}
