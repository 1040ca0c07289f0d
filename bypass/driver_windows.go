//go:build windows

package bypass

import (
	"fmt"
	"unsafe"

	"nativecore/coloransi"
	"nativecore/memory"

	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

// statusUnsuccessful is reported when the device call itself fails and
// no driver status is available.
const statusUnsuccessful memory.NTStatus = -1073741823 // STATUS_UNSUCCESSFUL

// Driver is an attached bypass transport. It satisfies
// memory.BypassTransport.
type Driver struct {
	device windows.Handle
	target uintptr
	log    *logger.Logger
}

// Open opens the driver's device interface (e.g. `\\.\BypaPH`) and
// attaches it to pid. The returned Driver holds the driver-internal
// target identifier used for all subsequent reads.
func Open(device string, pid uint32) (*Driver, error) {
	path, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return nil, err
	}

	handle, err := windows.CreateFile(path,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0, nil, windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, fmt.Errorf("opening device %s failed: %w", device, err)
	}

	frame := attachFrame{PID: uint64(pid)}
	var returned uint32
	err = windows.DeviceIoControl(handle, ioctlAttach,
		(*byte)(unsafe.Pointer(&frame)), uint32(unsafe.Sizeof(frame)),
		(*byte)(unsafe.Pointer(&frame)), uint32(unsafe.Sizeof(frame)),
		&returned, nil)
	if err != nil {
		windows.CloseHandle(handle)
		return nil, fmt.Errorf("attach to pid %d failed: %w", pid, err)
	}

	d := &Driver{
		device: handle,
		target: uintptr(frame.Target),
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorTeal, coloransi.ColorOrange, fmt.Sprintf("bypass-%d", pid))),
	}
	d.log.Infoln("Bypass transport attached, target", fmt.Sprintf("%#x", d.target))
	return d, nil
}

// TargetID returns the driver-internal identifier of the attached
// process.
func (d *Driver) TargetID() uintptr {
	return d.target
}

// RWVM issues one read through the driver. The status and transferred
// count come back verbatim; callers decide what a short or failed read
// means.
func (d *Driver) RWVM(target uintptr, address memory.Address, dst memory.Pointer, size uintptr) (memory.NTStatus, uintptr) {
	frame := rwvmFrame{
		Target:  uint64(target),
		Address: uint64(address),
		Buffer:  uint64(dst),
		Size:    uint64(size),
	}

	var returned uint32
	err := windows.DeviceIoControl(d.device, ioctlRWVM,
		(*byte)(unsafe.Pointer(&frame)), uint32(unsafe.Sizeof(frame)),
		(*byte)(unsafe.Pointer(&frame)), uint32(unsafe.Sizeof(frame)),
		&returned, nil)
	if err != nil {
		return statusUnsuccessful, 0
	}

	return memory.NTStatus(frame.Status), uintptr(frame.Transferred)
}

// Close detaches from the target and releases the device handle. A
// detach failure still closes the handle.
func (d *Driver) Close() error {
	if d.device == 0 {
		return nil
	}

	frame := attachFrame{Target: uint64(d.target)}
	var returned uint32
	ioctlErr := windows.DeviceIoControl(d.device, ioctlDetach,
		(*byte)(unsafe.Pointer(&frame)), uint32(unsafe.Sizeof(frame)),
		nil, 0, &returned, nil)

	closeErr := windows.CloseHandle(d.device)
	d.device = 0

	if ioctlErr != nil {
		return fmt.Errorf("detach failed: %w", ioctlErr)
	}
	if closeErr != nil {
		return fmt.Errorf("CloseHandle failed: %w", closeErr)
	}
	d.log.Infoln("Bypass transport detached")
	return nil
}

// Install makes d the process-wide bypass transport and switches reads
// to kernel mode. Must not race with in-flight reads.
func Install(d *Driver) {
	memory.ByPass = d
	memory.UseKernel = true
}

// Uninstall switches reads back to the direct transport and clears the
// bypass reference.
func Uninstall() {
	memory.UseKernel = false
	memory.ByPass = nil
}
