//go:build windows

package process_windows

import (
	"bytes"
	"fmt"

	"nativecore/process"
)

// Scan searches for the given pattern in the readable regions of the
// process and returns all matching addresses
func (p *WindowsProcess) Scan(aob process.AOB) ([]process.ProcessMemoryAddress, error) {
	if len(aob.Pattern) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}

	// If no mask is provided, create a mask of all 0xFF (exact match)
	if len(aob.Mask) == 0 {
		aob.Mask = bytes.Repeat([]byte{0xFF}, len(aob.Pattern))
	} else if len(aob.Mask) != len(aob.Pattern) {
		return nil, fmt.Errorf("mask length (%d) doesn't match pattern length (%d)",
			len(aob.Mask), len(aob.Pattern))
	}

	memMap, err := p.GetMemoryMap()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory map: %w", err)
	}

	p.log.Infoln("Starting memory scan for pattern of length", len(aob.Pattern))

	var results []process.ProcessMemoryAddress
	for _, region := range memMap {
		if !region.IsReadable() {
			continue
		}

		data, err := p.ReadMemory(process.ProcessMemoryAddress(region.Address), process.ProcessMemorySize(region.Size))
		if err != nil {
			// Regions can disappear or lose read access between the
			// snapshot and the read.
			p.log.Debugln("Failed to read memory region at", fmt.Sprintf("%x", region.Address), err)
			continue
		}

		for _, offset := range findPatternMatches(data, aob.Pattern, aob.Mask) {
			results = append(results, process.ProcessMemoryAddress(region.Address+uint64(offset)))
		}
	}

	p.log.Infoln("Scan complete, found", len(results), "matches")
	return results, nil
}

// ScanFirst searches for the first occurrence of a pattern
func (p *WindowsProcess) ScanFirst(aob process.AOB) (process.ProcessMemoryAddress, error) {
	results, err := p.Scan(aob)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("pattern not found")
	}
	return results[0], nil
}

// findPatternMatches returns the offsets of every masked match of
// pattern within data.
func findPatternMatches(data, pattern, mask []byte) []int {
	var matches []int
	if len(pattern) == 0 || len(data) < len(pattern) {
		return matches
	}

	for i := 0; i <= len(data)-len(pattern); i++ {
		found := true
		for j := range pattern {
			if data[i+j]&mask[j] != pattern[j]&mask[j] {
				found = false
				break
			}
		}
		if found {
			matches = append(matches, i)
		}
	}
	return matches
}
