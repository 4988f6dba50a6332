//go:build windows

package host

import (
	"hostpulse/internal/iftable"
	"hostpulse/internal/logger"
)

func newInterfaceSource(log logger.Logger) interfaceSource {
	return iftable.NewEnumerator(iftable.SystemCaller())
}
