// Package bypass provides the driver-backed read transport. A signed
// helper driver exposes a read-virtual-memory primitive over a device
// IOCTL interface; this package wraps it behind the
// memory.BypassTransport contract. The driver identifies the target
// process by its own handle, resolved at attach time, independent of
// any user-mode process handle.
package bypass

// Device control codes, CTL_CODE(FILE_DEVICE_UNKNOWN, fn, METHOD_BUFFERED,
// FILE_ANY_ACCESS).
const (
	fileDeviceUnknown = 0x22
	methodBuffered    = 0
	fileAnyAccess     = 0

	ioctlAttach = fileDeviceUnknown<<16 | fileAnyAccess<<14 | 0x800<<2 | methodBuffered
	ioctlDetach = fileDeviceUnknown<<16 | fileAnyAccess<<14 | 0x801<<2 | methodBuffered
	ioctlRWVM   = fileDeviceUnknown<<16 | fileAnyAccess<<14 | 0x802<<2 | methodBuffered
)

// attachFrame is exchanged on ioctlAttach. The driver fills Target with
// its internal handle for the process.
type attachFrame struct {
	PID    uint64
	Target uint64
}

// rwvmFrame is the buffered request/response for one read. Address is
// remote, Buffer local. The driver writes Transferred and Status.
type rwvmFrame struct {
	Target      uint64
	Address     uint64
	Buffer      uint64
	Size        uint64
	Transferred uint64
	Status      int32
	_           uint32
}
