//go:build windows

package host

import (
	"context"
	"errors"
	"fmt"

	"hostpulse/internal/domain"

	"golang.org/x/sys/windows/registry"
)

const (
	cpuKeyPath   = `HARDWARE\DESCRIPTION\System\CentralProcessor\0`
	cpuValueName = "~MHz"
)

func (p *Provider) cpuFrequency(ctx context.Context) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, cpuKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, fmt.Errorf("open %s: %w", cpuKeyPath, domain.ErrUnavailable)
		}
		return 0, fmt.Errorf("open %s: %w", cpuKeyPath, err)
	}
	defer k.Close()

	mhz, _, err := k.GetIntegerValue(cpuValueName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, fmt.Errorf("read %s: %w", cpuValueName, domain.ErrUnavailable)
		}
		return 0, fmt.Errorf("read %s: %w", cpuValueName, err)
	}

	return uint32(mhz), nil
}
