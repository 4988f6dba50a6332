//go:build !windows

package host

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hostpulse/internal/domain"

	"github.com/shirou/gopsutil/v4/cpu"
)

var scalingCurFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"

func (p *Provider) cpuFrequency(ctx context.Context) (uint32, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		return uint32(infos[0].Mhz), nil
	}
	if err != nil {
		p.log.Debug("cpu info unavailable, trying cpufreq", "error", err)
	}

	return readScalingFreq(scalingCurFreqPath)
}

// readScalingFreq reads a cpufreq value in kHz and returns MHz.
func readScalingFreq(path string) (uint32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, domain.ErrUnavailable)
	}

	khz, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil || khz == 0 {
		return 0, fmt.Errorf("parse %s: %w", path, domain.ErrUnavailable)
	}

	return uint32(khz / 1000), nil
}
