//go:build windows

// readmem inspects another process's memory: list processes, dump a
// range, read typed values, or scan for byte patterns. The -kernel flag
// routes every read through the driver-backed bypass transport instead
// of ReadProcessMemory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nativecore/bypass"
	"nativecore/hexdump"
	"nativecore/process"
	"nativecore/process_windows"
)

func main() {
	listFlag := flag.Bool("list", false, "List running processes")
	pidFlag := flag.Int("pid", 0, "Process ID to attach to")
	nameFlag := flag.String("name", "", "Process image name to attach to (alternative to -pid)")
	addrFlag := flag.String("addr", "", "Address to read from (hex)")
	sizeFlag := flag.Uint("size", 256, "Number of bytes to read")
	fmtFlag := flag.String("fmt", "", "Interpret the value at -addr: u32, u64, f32, f64, str")
	aobFlag := flag.String("aob", "", "Array of bytes to scan for (e.g. '48,8b,??,f0')")
	kernelFlag := flag.Bool("kernel", false, "Read through the bypass driver instead of ReadProcessMemory")
	deviceFlag := flag.String("device", `\\.\BypaPH`, "Bypass driver device path")
	flag.Parse()

	if *listFlag {
		listProcesses()
		return
	}

	if err := process_windows.EnableDebugPrivilege(); err != nil {
		fmt.Printf("Warning: SeDebugPrivilege not enabled: %v\n", err)
	}

	proc, err := openTarget(*pidFlag, *nameFlag)
	if err != nil {
		fmt.Printf("Error attaching to target: %v\n", err)
		os.Exit(1)
	}
	defer proc.Close()

	if *kernelFlag {
		driver, err := bypass.Open(*deviceFlag, uint32(proc.GetPID()))
		if err != nil {
			fmt.Printf("Error opening bypass driver: %v\n", err)
			os.Exit(1)
		}
		bypass.Install(driver)
		defer func() {
			bypass.Uninstall()
			driver.Close()
		}()
	}

	if *aobFlag != "" {
		scanPattern(proc, *aobFlag)
		return
	}

	if *addrFlag == "" {
		fmt.Println("Error: -addr or -aob is required")
		flag.Usage()
		os.Exit(1)
	}

	addr, err := parseAddress(*addrFlag)
	if err != nil {
		fmt.Printf("Error parsing address: %v\n", err)
		os.Exit(1)
	}

	if *fmtFlag != "" {
		printTyped(proc, addr, *fmtFlag)
		return
	}

	data, err := proc.ReadMemory(addr, process.ProcessMemorySize(*sizeFlag))
	if err != nil {
		fmt.Printf("Error reading %d bytes at %s: %v\n", *sizeFlag, addr.ToString(), err)
		os.Exit(1)
	}
	fmt.Print(hexdump.HexdumpBasic(data, uint64(addr)))
}

func listProcesses() {
	infos, err := process_windows.EnumerateProcesses()
	if err != nil {
		fmt.Printf("Error enumerating processes: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%8s %8s %8s  %s\n", "PID", "PPID", "THREADS", "NAME")
	for _, info := range infos {
		fmt.Printf("%8d %8d %8d  %s\n", info.PID, info.PPID, info.Threads, info.Name)
	}
}

func openTarget(pid int, name string) (process.Process, error) {
	switch {
	case pid != 0:
		return process_windows.NewWithPID(process.ProcessID(pid))
	case name != "":
		return process_windows.OpenProcessByName(name)
	default:
		return nil, fmt.Errorf("-pid or -name is required")
	}
}

func parseAddress(s string) (process.ProcessMemoryAddress, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex address %q", s)
	}
	return process.ProcessMemoryAddress(v), nil
}

func printTyped(proc process.Process, addr process.ProcessMemoryAddress, kind string) {
	var value interface{}
	var err error

	switch kind {
	case "u32":
		value, err = proc.ReadUINT32(addr)
	case "u64":
		value, err = proc.ReadUINT64(addr)
	case "f32":
		value, err = proc.ReadFLOAT32(addr)
	case "f64":
		value, err = proc.ReadFLOAT64(addr)
	case "str":
		value, err = proc.ReadNTS(addr, 256)
	default:
		fmt.Printf("Error: unknown format %q\n", kind)
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error reading %s at %s: %v\n", kind, addr.ToString(), err)
		os.Exit(1)
	}
	fmt.Printf("%s = %v\n", addr.ToString(), value)
}

func scanPattern(proc process.Process, input string) {
	aob, err := parseAOB(input)
	if err != nil {
		fmt.Printf("Error parsing AOB: %v\n", err)
		os.Exit(1)
	}

	matches, err := proc.Scan(aob)
	if err != nil {
		fmt.Printf("Error scanning memory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d matches:\n", len(matches))
	for _, match := range matches {
		size := process.ProcessMemorySize(len(aob.Pattern) + 32)
		data, err := proc.ReadMemory(match, size)
		if err != nil {
			fmt.Printf("Match at %s (context unreadable)\n", match.ToString())
			continue
		}
		fmt.Printf("Match at %s:\n", match.ToString())
		fmt.Print(hexdump.HexdumpBasic(data, uint64(match)))
	}
}

// parseAOB parses a comma or space separated hex pattern where ?? marks
// a wildcard byte.
func parseAOB(input string) (process.AOB, error) {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) == 0 {
		return process.AOB{}, fmt.Errorf("empty pattern")
	}

	pattern := make([]byte, 0, len(parts))
	mask := make([]byte, 0, len(parts))
	for _, part := range parts {
		if part == "??" || part == "?" {
			pattern = append(pattern, 0)
			mask = append(mask, 0)
			continue
		}
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return process.AOB{}, fmt.Errorf("invalid hex byte: %s", part)
		}
		pattern = append(pattern, byte(v))
		mask = append(mask, 0xFF)
	}

	return process.NewAOB(pattern, mask)
}
