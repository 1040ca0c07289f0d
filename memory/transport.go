// Package memory implements the remote-read dispatch core: a single
// entry point that copies bytes out of another process's address space
// through one of two transports, selected by a process-wide mode flag.
package memory

// Handle is an opaque process token as handed out by the host OS.
type Handle uintptr

// Address is a virtual address inside the target process.
type Address uintptr

// Pointer is a writable address inside the calling process.
type Pointer uintptr

// NTStatus is a signed kernel status code. Zero means success; every
// non-zero value is folded to failure by the dispatcher.
type NTStatus int32

const StatusSuccess NTStatus = 0

// DirectTransport is the user-mode cross-process read primitive. It may
// report ok with transferred < size on partial copies; the dispatcher
// treats such short reads as failure.
type DirectTransport interface {
	ReadVirtual(handle Handle, address Address, dst Pointer, size uintptr) (transferred uintptr, ok bool)
}

// BypassTransport reads target memory through a privileged side channel.
// It is keyed by its own target identifier, not the user-mode handle.
type BypassTransport interface {
	// TargetID returns the transport-internal identifier of the target
	// process, passed back verbatim into RWVM.
	TargetID() uintptr

	RWVM(target uintptr, address Address, dst Pointer, size uintptr) (status NTStatus, transferred uintptr)
}

// Process-wide transport state. The dispatcher only reads these; whoever
// initializes the session owns them and must not mutate them while reads
// are in flight.
var (
	// UseKernel selects the transport: false routes reads through
	// Direct, true through ByPass.
	UseKernel bool

	// ByPass is the installed bypass transport, or nil when none is
	// loaded. Reads in bypass mode fail while it is nil.
	ByPass BypassTransport

	// Direct is the user-mode transport. On windows it is installed at
	// init from kernel32; elsewhere it stays nil until installed.
	Direct DirectTransport
)
