//go:build windows

package window

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	ntdll    = windows.NewLazySystemDLL("ntdll.dll")
	shcore   = windows.NewLazySystemDLL("shcore.dll")

	procIsWindow    = user32.NewProc("IsWindow")
	procEnumWindows = user32.NewProc("EnumWindows")

	procSetWindowDisplayAffinity = user32.NewProc("SetWindowDisplayAffinity")
	procGetWindowDisplayAffinity = user32.NewProc("GetWindowDisplayAffinity")

	procSetProcessDpiAwarenessCtx = user32.NewProc("SetProcessDpiAwarenessContext") // Win10 1703+
	procGetDpiForMonitor          = shcore.NewProc("GetDpiForMonitor")              // Win8.1+

	procSetLastError = kernel32.NewProc("SetLastError")

	procRtlGetVersion = ntdll.NewProc("RtlGetVersion")
)
