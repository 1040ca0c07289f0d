//go:build windows

package memory

import (
	"syscall"
	"unsafe"
)

var (
	modkernel32           = syscall.NewLazyDLL("kernel32.dll")
	procReadProcessMemory = modkernel32.NewProc("ReadProcessMemory")
)

// kernel32Direct is the user-mode transport backed by ReadProcessMemory.
type kernel32Direct struct{}

func (kernel32Direct) ReadVirtual(handle Handle, address Address, dst Pointer, size uintptr) (uintptr, bool) {
	var transferred uintptr
	ret, _, _ := procReadProcessMemory.Call(
		uintptr(handle),
		uintptr(address),
		uintptr(dst),
		size,
		uintptr(unsafe.Pointer(&transferred)),
	)
	return transferred, ret != 0
}

func init() {
	Direct = kernel32Direct{}
}
