package bypass

import (
	"testing"
	"unsafe"
)

func TestControlCodes(t *testing.T) {
	cases := []struct {
		name string
		code uint32
		want uint32
	}{
		{"attach", ioctlAttach, 0x222000},
		{"detach", ioctlDetach, 0x222004},
		{"rwvm", ioctlRWVM, 0x222008},
	}
	for _, tc := range cases {
		if tc.code != tc.want {
			t.Errorf("%s control code = %#x, want %#x", tc.name, tc.code, tc.want)
		}
	}
}

// The frames cross the user/kernel boundary; their layout is part of the
// driver protocol and must not drift.
func TestFrameLayout(t *testing.T) {
	if size := unsafe.Sizeof(attachFrame{}); size != 16 {
		t.Errorf("attachFrame size = %d, want 16", size)
	}
	if size := unsafe.Sizeof(rwvmFrame{}); size != 48 {
		t.Errorf("rwvmFrame size = %d, want 48", size)
	}
	if off := unsafe.Offsetof(rwvmFrame{}.Transferred); off != 32 {
		t.Errorf("Transferred offset = %d, want 32", off)
	}
	if off := unsafe.Offsetof(rwvmFrame{}.Status); off != 40 {
		t.Errorf("Status offset = %d, want 40", off)
	}
}
