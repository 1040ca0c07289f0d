package memory

import (
	"bytes"
	"testing"
	"unsafe"
)

// stubDirect records its invocation and optionally copies src into the
// destination window, mimicking a user-mode transport.
type stubDirect struct {
	src         []byte
	transferred uintptr
	ok          bool

	calls      int
	gotHandle  Handle
	gotAddress Address
	gotDst     Pointer
	gotSize    uintptr
}

func (s *stubDirect) ReadVirtual(handle Handle, address Address, dst Pointer, size uintptr) (uintptr, bool) {
	s.calls++
	s.gotHandle, s.gotAddress, s.gotDst, s.gotSize = handle, address, dst, size
	if len(s.src) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(s.src)), s.src)
	}
	return s.transferred, s.ok
}

type stubBypass struct {
	target      uintptr
	src         []byte
	status      NTStatus
	transferred uintptr

	calls      int
	gotTarget  uintptr
	gotAddress Address
	gotDst     Pointer
	gotSize    uintptr
}

func (s *stubBypass) TargetID() uintptr { return s.target }

func (s *stubBypass) RWVM(target uintptr, address Address, dst Pointer, size uintptr) (NTStatus, uintptr) {
	s.calls++
	s.gotTarget, s.gotAddress, s.gotDst, s.gotSize = target, address, dst, size
	if len(s.src) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(s.src)), s.src)
	}
	return s.status, s.transferred
}

// setTransports swaps the package transport state for one test and
// restores it afterwards.
func setTransports(t *testing.T, useKernel bool, direct DirectTransport, bypass BypassTransport) {
	t.Helper()
	prevMode, prevDirect, prevBypass := UseKernel, Direct, ByPass
	UseKernel, Direct, ByPass = useKernel, direct, bypass
	t.Cleanup(func() {
		UseKernel, Direct, ByPass = prevMode, prevDirect, prevBypass
	})
}

func bufferPointer(buf []byte, index int) Pointer {
	return Pointer(uintptr(unsafe.Pointer(&buf[index])))
}

func TestDirectReadFull(t *testing.T) {
	src := []byte("0123456789abcdef")
	direct := &stubDirect{src: src, transferred: 16, ok: true}
	bypass := &stubBypass{}
	setTransports(t, false, direct, bypass)

	buf := make([]byte, 64)
	got := ReadRemoteMemory(Handle(0x44), Address(0x7ff600001000), bufferPointer(buf, 0), 0, 16)
	if !got {
		t.Fatal("expected read to succeed")
	}
	if !bytes.Equal(buf[:16], src) {
		t.Errorf("destination mismatch: got %x want %x", buf[:16], src)
	}
	if direct.calls != 1 {
		t.Errorf("direct transport called %d times, want 1", direct.calls)
	}
	if bypass.calls != 0 {
		t.Errorf("bypass transport called %d times in direct mode", bypass.calls)
	}
	if direct.gotHandle != Handle(0x44) || direct.gotAddress != Address(0x7ff600001000) {
		t.Errorf("transport received handle=%#x address=%#x", direct.gotHandle, direct.gotAddress)
	}
	if direct.gotSize != 16 {
		t.Errorf("transport received size %d, want 16", direct.gotSize)
	}
}

func TestDirectShortRead(t *testing.T) {
	direct := &stubDirect{transferred: 15, ok: true}
	setTransports(t, false, direct, nil)

	buf := make([]byte, 16)
	if ReadRemoteMemory(1, 0x1000, bufferPointer(buf, 0), 0, 16) {
		t.Error("short read must report failure")
	}
}

func TestDirectFailure(t *testing.T) {
	direct := &stubDirect{transferred: 0, ok: false}
	setTransports(t, false, direct, nil)

	buf := make([]byte, 4)
	if ReadRemoteMemory(1, 0x1000, bufferPointer(buf, 0), 0, 4) {
		t.Error("transport failure must report failure")
	}
}

func TestBypassNilReference(t *testing.T) {
	direct := &stubDirect{transferred: 8, ok: true}
	setTransports(t, true, direct, nil)

	buf := make([]byte, 8)
	if ReadRemoteMemory(1, 0x1000, bufferPointer(buf, 0), 0, 8) {
		t.Error("bypass mode without a transport must report failure")
	}
	if direct.calls != 0 {
		t.Errorf("direct transport called %d times, want 0", direct.calls)
	}
}

func TestBypassReadWithOffset(t *testing.T) {
	src := bytes.Repeat([]byte{0xAB}, 32)
	bypass := &stubBypass{target: 0xBEEF, src: src, status: StatusSuccess, transferred: 32}
	setTransports(t, true, nil, bypass)

	buf := make([]byte, 64)
	got := ReadRemoteMemory(Handle(0x44), Address(0x2000), bufferPointer(buf, 0), 8, 32)
	if !got {
		t.Fatal("expected bypass read to succeed")
	}
	if bypass.gotDst != bufferPointer(buf, 8) {
		t.Errorf("bypass received dst %#x, want buffer+8 %#x", bypass.gotDst, bufferPointer(buf, 8))
	}
	if bypass.gotTarget != 0xBEEF {
		t.Errorf("bypass received target %#x, want its own target id", bypass.gotTarget)
	}
	if !bytes.Equal(buf[8:40], src) {
		t.Error("destination window does not match source bytes")
	}
	for _, i := range []int{0, 7, 40, 63} {
		if buf[i] != 0 {
			t.Errorf("byte outside destination window touched at %d", i)
		}
	}
}

func TestBypassStatusFailure(t *testing.T) {
	// STATUS_ACCESS_DENIED; transferred count is irrelevant on failure.
	bypass := &stubBypass{status: -1073741790, transferred: 32}
	setTransports(t, true, nil, bypass)

	buf := make([]byte, 32)
	if ReadRemoteMemory(1, 0x2000, bufferPointer(buf, 0), 0, 32) {
		t.Error("non-zero status must report failure")
	}
}

func TestBypassShortRead(t *testing.T) {
	bypass := &stubBypass{status: StatusSuccess, transferred: 31}
	setTransports(t, true, nil, bypass)

	buf := make([]byte, 32)
	if ReadRemoteMemory(1, 0x2000, bufferPointer(buf, 0), 0, 32) {
		t.Error("bypass short read must report failure")
	}
}

func TestModeExclusivity(t *testing.T) {
	direct := &stubDirect{transferred: 4, ok: true}
	bypass := &stubBypass{status: StatusSuccess, transferred: 4}
	buf := make([]byte, 4)

	setTransports(t, false, direct, bypass)
	if !ReadRemoteMemory(1, 0x1000, bufferPointer(buf, 0), 0, 4) {
		t.Fatal("direct read failed")
	}
	if bypass.calls != 0 {
		t.Error("bypass invoked in direct mode")
	}

	UseKernel = true
	if !ReadRemoteMemory(1, 0x1000, bufferPointer(buf, 0), 0, 4) {
		t.Fatal("bypass read failed")
	}
	if direct.calls != 1 {
		t.Error("direct invoked again in bypass mode")
	}
	if bypass.calls != 1 {
		t.Errorf("bypass called %d times, want 1", bypass.calls)
	}
}

func TestOffsetApplication(t *testing.T) {
	direct := &stubDirect{transferred: 4, ok: true}
	setTransports(t, false, direct, nil)

	buf := make([]byte, 64)
	base := 32

	cases := []struct {
		name   string
		offset int32
		want   Pointer
	}{
		{"zero", 0, bufferPointer(buf, base)},
		{"positive", 8, bufferPointer(buf, base+8)},
		{"negative", -8, bufferPointer(buf, base-8)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !ReadRemoteMemory(1, 0x1000, bufferPointer(buf, base), tc.offset, 4) {
				t.Fatal("read failed")
			}
			if direct.gotDst != tc.want {
				t.Errorf("transport received dst %#x, want %#x", direct.gotDst, tc.want)
			}
		})
	}
}
