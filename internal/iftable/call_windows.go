//go:build windows

package iftable

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	iphlpapi       = windows.NewLazySystemDLL("iphlpapi.dll")
	procGetIfTable = iphlpapi.NewProc("GetIfTable")
)

// SystemCaller binds Caller to iphlpapi!GetIfTable.
func SystemCaller() Caller {
	return getIfTable
}

func getIfTable(buf []byte, size *uint32) error {
	if err := procGetIfTable.Find(); err != nil {
		return fmt.Errorf("load GetIfTable: %w", err)
	}

	var table uintptr
	if len(buf) > 0 {
		table = uintptr(unsafe.Pointer(&buf[0]))
	}
	*size = uint32(len(buf))

	r1, _, _ := procGetIfTable.Call(table, uintptr(unsafe.Pointer(size)), 0)

	switch errno := syscall.Errno(r1); {
	case errno == 0:
		return nil
	case errors.Is(errno, windows.ERROR_INSUFFICIENT_BUFFER):
		return fmt.Errorf("GetIfTable: %w", ErrInsufficientBuffer)
	default:
		return fmt.Errorf("GetIfTable: %w", errno)
	}
}
