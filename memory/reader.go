package memory

// ReadRemoteMemory copies size bytes starting at address in the target
// process into the caller's buffer at buffer+offset. The active mode flag
// picks the transport; there is no fallback from one to the other within
// a call. It returns true only when the transport reports success and
// transferred exactly equals size. On false the destination window
// [buffer+offset, buffer+offset+size) is indeterminate: the transport may
// have written a prefix.
//
// The caller guarantees the destination window is writable and that the
// transport state is not mutated concurrently. Nothing is validated here
// and the call never panics; every failure collapses to false.
func ReadRemoteMemory(handle Handle, address Address, buffer Pointer, offset, size int32) bool {
	// Signed offset sign-extends, then the add wraps at machine width.
	dst := buffer + Pointer(offset)
	want := uintptr(size)

	if !UseKernel {
		if Direct == nil {
			return false
		}
		transferred, ok := Direct.ReadVirtual(handle, address, dst, want)
		return ok && transferred == want
	}

	if ByPass == nil {
		return false
	}
	status, transferred := ByPass.RWVM(ByPass.TargetID(), address, dst, want)
	return status == StatusSuccess && transferred == want
}
