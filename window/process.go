package window

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

type processEntry struct {
	pid  int32
	name string
}

// FindPIDByName returns the pid of the first process whose executable name
// matches name case-insensitively, e.g. "notepad.exe".
func FindPIDByName(name string) (uint32, error) {
	procs, err := process.Processes()
	if err != nil {
		return 0, fmt.Errorf("list processes: %w", err)
	}

	entries := make([]processEntry, 0, len(procs))
	for _, p := range procs {
		n, err := p.Name()
		if err != nil || n == "" {
			continue
		}
		entries = append(entries, processEntry{pid: p.Pid, name: n})
	}
	return matchProcess(entries, name)
}

func matchProcess(entries []processEntry, name string) (uint32, error) {
	want := strings.TrimSpace(name)
	if want == "" {
		return 0, fmt.Errorf("%w: empty process name", ErrWindowNotFound)
	}
	for _, e := range entries {
		if strings.EqualFold(e.name, want) && e.pid > 0 {
			return uint32(e.pid), nil
		}
	}
	return 0, fmt.Errorf("%w: process %q", ErrWindowNotFound, name)
}

// FindByProcessName returns the top-level windows of the process named name.
func FindByProcessName(name string) ([]uintptr, error) {
	pid, err := FindPIDByName(name)
	if err != nil {
		return nil, err
	}
	return FindByPID(pid)
}
