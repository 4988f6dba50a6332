//go:build !windows

package host

import (
	"testing"

	"hostpulse/internal/domain"

	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersFor(t *testing.T) {
	ifaces := []psnet.InterfaceStat{
		{Index: 1, Name: "lo"},
		{Index: 2, Name: "eth0"},
		{Index: 3, Name: "wg0"},
	}
	counters := []psnet.IOCountersStat{
		{Name: "lo", BytesRecv: 10, BytesSent: 10},
		{Name: "eth0", BytesRecv: 4096, BytesSent: 1024},
	}

	got, err := countersFor(ifaces, counters, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.InterfaceCounters{BytesIn: 4096, BytesOut: 1024}, got)

	_, err = countersFor(ifaces, counters, 3)
	require.ErrorIs(t, err, domain.ErrInterfaceNotFound)

	_, err = countersFor(ifaces, counters, 99)
	require.ErrorIs(t, err, domain.ErrInterfaceNotFound)
}
