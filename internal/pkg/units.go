// Package pkg
package pkg

import "fmt"

const (
	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024
)

// FormatUptime renders milliseconds since boot as "HHh:MMm". Hours are not wrapped at 24.
func FormatUptime(ms uint64) string {
	seconds := ms / 1000
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02dh:%02dm", hours, minutes)
}

func MBFromBytes(b uint64) uint64 {
	return b / bytesPerMB
}

func GBFromBytes(b uint64) uint64 {
	return b / bytesPerGB
}
