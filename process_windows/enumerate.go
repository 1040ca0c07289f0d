//go:build windows

package process_windows

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"nativecore/process"

	"golang.org/x/sys/windows"
)

// EnumerateProcesses returns a snapshot of all running processes taken
// with the Toolhelp API.
func EnumerateProcesses() ([]process.ProcessInfo, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("CreateToolhelp32Snapshot failed: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	var infos []process.ProcessInfo
	err = windows.Process32First(snapshot, &entry)
	for err == nil {
		infos = append(infos, process.ProcessInfo{
			PID:     process.ProcessID(entry.ProcessID),
			PPID:    process.ProcessID(entry.ParentProcessID),
			Name:    windows.UTF16ToString(entry.ExeFile[:]),
			Threads: int(entry.Threads),
		})
		err = windows.Process32Next(snapshot, &entry)
	}
	if !errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return nil, fmt.Errorf("process snapshot walk failed: %w", err)
	}

	return infos, nil
}

// FindProcessByName returns every process whose image name matches name,
// case-insensitively.
func FindProcessByName(name string) ([]process.ProcessInfo, error) {
	infos, err := EnumerateProcesses()
	if err != nil {
		return nil, err
	}

	var matches []process.ProcessInfo
	for _, info := range infos {
		if strings.EqualFold(info.Name, name) {
			matches = append(matches, info)
		}
	}
	return matches, nil
}

// OpenProcessByName opens the first process whose image name matches name.
func OpenProcessByName(name string) (process.Process, error) {
	matches, err := FindProcessByName(name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no process named %q", name)
	}
	return NewWithPID(matches[0].PID)
}
