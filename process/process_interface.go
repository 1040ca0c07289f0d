package process

import (
	"nativecore/process/memory_map"
)

// Process is the interface that defines operations for interacting with a
// target process's memory
type Process interface {
	// Open opens a process with the given PID for memory operations
	Open(pid ProcessID) error

	// Close closes the process and releases resources
	Close() error

	// GetPID returns the process ID
	GetPID() ProcessID

	// UpdateMemoryMap refreshes the memory map for the process
	UpdateMemoryMap() error

	// IsValidAddress checks if the given memory address is valid and readable
	IsValidAddress(addr ProcessMemoryAddress) bool

	// GetMemoryMap returns a copy of the current memory map
	GetMemoryMap() ([]memory_map.MemoryMapItem, error)

	// ReadMemory reads memory from the process at the specified address
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// WriteMemory writes data to the process memory at the specified address
	WriteMemory(addr ProcessMemoryAddress, data []byte) error

	// Scan searches for a pattern across the readable regions of the process
	Scan(aob AOB) ([]ProcessMemoryAddress, error)

	// ScanFirst searches for the first occurrence of a pattern
	ScanFirst(aob AOB) (ProcessMemoryAddress, error)

	// Typed memory reading operations
	ProcessRead
}

// ProcessRead defines typed read operations for process memory
type ProcessRead interface {
	// ReadUINT8 reads an unsigned 8-bit integer from the specified address
	ReadUINT8(addr ProcessMemoryAddress) (uint8, error)

	// ReadUINT16 reads an unsigned 16-bit integer from the specified address
	ReadUINT16(addr ProcessMemoryAddress) (uint16, error)

	// ReadUINT32 reads an unsigned 32-bit integer from the specified address
	ReadUINT32(addr ProcessMemoryAddress) (uint32, error)

	// ReadUINT64 reads an unsigned 64-bit integer from the specified address
	ReadUINT64(addr ProcessMemoryAddress) (uint64, error)

	// ReadINT8 reads a signed 8-bit integer from the specified address
	ReadINT8(addr ProcessMemoryAddress) (int8, error)

	// ReadINT16 reads a signed 16-bit integer from the specified address
	ReadINT16(addr ProcessMemoryAddress) (int16, error)

	// ReadINT32 reads a signed 32-bit integer from the specified address
	ReadINT32(addr ProcessMemoryAddress) (int32, error)

	// ReadINT64 reads a signed 64-bit integer from the specified address
	ReadINT64(addr ProcessMemoryAddress) (int64, error)

	// ReadFLOAT32 reads a 32-bit floating point number from the specified address
	ReadFLOAT32(addr ProcessMemoryAddress) (float32, error)

	// ReadFLOAT64 reads a 64-bit floating point number from the specified address
	ReadFLOAT64(addr ProcessMemoryAddress) (float64, error)

	// ReadNTS reads a null-terminated string from the specified address
	// with a maximum length
	ReadNTS(addr ProcessMemoryAddress, maxLength ProcessMemorySize) (string, error)

	// ReadPOINTER reads a pointer value from the specified address
	ReadPOINTER(addr ProcessMemoryAddress) (ProcessMemoryAddress, error)
}
