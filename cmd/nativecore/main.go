//go:build windows

// nativecore builds as a c-shared library exporting the stable remote
// read entry point for non-native hosts:
//
//	go build -buildmode=c-shared -o nativecore.dll ./cmd/nativecore
//
// Pointers cross the boundary as machine words and the boolean result
// is the only channel back to the caller.
package main

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"nativecore/memory"
)

//export ReadRemoteMemory
func ReadRemoteMemory(handle, address, buffer unsafe.Pointer, offset, size C.int32_t) C.bool {
	ok := memory.ReadRemoteMemory(
		memory.Handle(uintptr(handle)),
		memory.Address(uintptr(address)),
		memory.Pointer(uintptr(buffer)),
		int32(offset),
		int32(size),
	)
	return C.bool(ok)
}

func main() {}
