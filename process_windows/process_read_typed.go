//go:build windows

package process_windows

import (
	"encoding/binary"
	"math"

	"nativecore/process"
)

// ReadUINT8 reads an unsigned 8-bit integer from the specified address
func (p *WindowsProcess) ReadUINT8(addr process.ProcessMemoryAddress) (uint8, error) {
	data, err := p.ReadMemory(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadUINT16 reads an unsigned 16-bit integer from the specified address
func (p *WindowsProcess) ReadUINT16(addr process.ProcessMemoryAddress) (uint16, error) {
	data, err := p.ReadMemory(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// ReadUINT32 reads an unsigned 32-bit integer from the specified address
func (p *WindowsProcess) ReadUINT32(addr process.ProcessMemoryAddress) (uint32, error) {
	data, err := p.ReadMemory(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUINT64 reads an unsigned 64-bit integer from the specified address
func (p *WindowsProcess) ReadUINT64(addr process.ProcessMemoryAddress) (uint64, error) {
	data, err := p.ReadMemory(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadINT8 reads a signed 8-bit integer from the specified address
func (p *WindowsProcess) ReadINT8(addr process.ProcessMemoryAddress) (int8, error) {
	v, err := p.ReadUINT8(addr)
	return int8(v), err
}

// ReadINT16 reads a signed 16-bit integer from the specified address
func (p *WindowsProcess) ReadINT16(addr process.ProcessMemoryAddress) (int16, error) {
	v, err := p.ReadUINT16(addr)
	return int16(v), err
}

// ReadINT32 reads a signed 32-bit integer from the specified address
func (p *WindowsProcess) ReadINT32(addr process.ProcessMemoryAddress) (int32, error) {
	v, err := p.ReadUINT32(addr)
	return int32(v), err
}

// ReadINT64 reads a signed 64-bit integer from the specified address
func (p *WindowsProcess) ReadINT64(addr process.ProcessMemoryAddress) (int64, error) {
	v, err := p.ReadUINT64(addr)
	return int64(v), err
}

// ReadFLOAT32 reads a 32-bit floating point number from the specified address
func (p *WindowsProcess) ReadFLOAT32(addr process.ProcessMemoryAddress) (float32, error) {
	v, err := p.ReadUINT32(addr)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFLOAT64 reads a 64-bit floating point number from the specified address
func (p *WindowsProcess) ReadFLOAT64(addr process.ProcessMemoryAddress) (float64, error) {
	v, err := p.ReadUINT64(addr)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadNTS reads a null-terminated string from the specified address with
// a maximum length
func (p *WindowsProcess) ReadNTS(addr process.ProcessMemoryAddress, maxLength process.ProcessMemorySize) (string, error) {
	data, err := p.ReadMemory(addr, maxLength)
	if err != nil {
		return "", err
	}
	for i, b := range data {
		if b == 0 {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}

// ReadPOINTER reads a pointer value from the specified address
func (p *WindowsProcess) ReadPOINTER(addr process.ProcessMemoryAddress) (process.ProcessMemoryAddress, error) {
	v, err := p.ReadUINT64(addr)
	return process.ProcessMemoryAddress(v), err
}
