package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	"github.com/rpdg/capguard/window"
)

var (
	hwndFlag    uint64
	titleFlag   string
	classFlag   string
	pidFlag     uint32
	processFlag string
	enableFlag  bool
)

var supportedCmd = &cobra.Command{
	Use:   "supported",
	Short: "Report whether this OS build honors capture exclusion",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Exclusion supported: %t\n", newManager().IsExclusionSupported())

		info, err := host.Info()
		if err != nil {
			logger.Debug("host info unavailable")
			return nil
		}
		fmt.Fprintf(out, "Host: %s\n", info.Hostname)
		fmt.Fprintf(out, "Platform: %s %s\n", info.Platform, info.PlatformVersion)
		fmt.Fprintf(out, "Kernel: %s (%s)\n", info.KernelVersion, info.KernelArch)
		return nil
	},
}

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Exclude a window from screen capture, or include it again",
	RunE: func(cmd *cobra.Command, args []string) error {
		hwnds, err := resolveWindows(cmd)
		if err != nil {
			return err
		}

		m := newManager()
		if len(hwnds) == 1 {
			res := m.SetExcludedFromCapture(hwnds[0], enableFlag)
			if err := printJSON(cmd, res); err != nil {
				return err
			}
			if !res.Succeeded {
				return fmt.Errorf("set display affinity on %#x failed with code %d", hwnds[0], res.ErrorCode)
			}
			return nil
		}

		results := make([]windowResult, len(hwnds))
		failed := 0
		for i, h := range hwnds {
			results[i] = windowResult{HWND: fmt.Sprintf("%#x", h), ExclusionResult: m.SetExcludedFromCapture(h, enableFlag)}
			if !results[i].Succeeded {
				failed++
			}
		}
		if err := printJSON(cmd, results); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("set display affinity failed on %d of %d windows", failed, len(hwnds))
		}
		return nil
	},
}

var affinityCmd = &cobra.Command{
	Use:   "affinity",
	Short: "Print the current display affinity of a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		hwnds, err := resolveWindows(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		m := newManager()
		for _, h := range hwnds {
			aff, err := m.DisplayAffinity(h)
			if err != nil {
				return fmt.Errorf("%#x: %w", h, err)
			}
			fmt.Fprintf(out, "%#x %s\n", aff, affinityName(aff))
			fmt.Fprintf(out, "  window: %#x visible: %t\n", h, window.IsVisible(h))
			if dpi, err := window.GetDPI(h); err == nil {
				fmt.Fprintf(out, "  dpi: %d\n", dpi)
			}
		}
		return nil
	},
}

// windowResult tags an ExclusionResult with its window when a lookup matched several.
type windowResult struct {
	HWND string `json:"hwnd"`
	window.ExclusionResult
}

var windowFlags = []string{"hwnd", "title", "class", "pid", "process"}

func init() {
	for _, c := range []*cobra.Command{excludeCmd, affinityCmd} {
		c.Flags().Uint64Var(&hwndFlag, "hwnd", 0, "window handle (0 is reported as an invalid handle)")
		c.Flags().StringVar(&titleFlag, "title", "", "find the window by exact title")
		c.Flags().StringVar(&classFlag, "class", "", "find the window by class name")
		c.Flags().Uint32Var(&pidFlag, "pid", 0, "every top-level window of this process id")
		c.Flags().StringVar(&processFlag, "process", "", "every top-level window of this executable, e.g. notepad.exe")
		c.MarkFlagsMutuallyExclusive(windowFlags...)
		c.MarkFlagsOneRequired(windowFlags...)
	}
	excludeCmd.Flags().BoolVar(&enableFlag, "enable", true, "true to exclude, false to include again")
}

var newManager = func() *window.Manager {
	return window.Default(window.WithLogger(logger))
}

// resolveWindows maps the window selector flags to handles. An explicit --hwnd
// is passed through unchanged, including 0.
func resolveWindows(cmd *cobra.Command) ([]uintptr, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("hwnd"):
		return []uintptr{uintptr(hwndFlag)}, nil
	case flags.Changed("title"):
		h, err := window.FindByTitle(titleFlag)
		if err != nil {
			return nil, err
		}
		return []uintptr{h}, nil
	case flags.Changed("class"):
		h, err := window.FindByClass(classFlag)
		if err != nil {
			return nil, err
		}
		return []uintptr{h}, nil
	case flags.Changed("pid"):
		return window.FindByPID(pidFlag)
	case flags.Changed("process"):
		return window.FindByProcessName(processFlag)
	default:
		return nil, errors.New("one of --hwnd, --title, --class, --pid or --process is required")
	}
}

func affinityName(aff uint32) string {
	switch aff {
	case window.AffinityNone:
		return "none"
	case window.AffinityMonitor:
		return "monitor"
	case window.AffinityExcludeFromCapture:
		return "exclude-from-capture"
	default:
		return "unknown"
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	return printJSONTo(cmd.OutOrStdout(), v)
}

func printJSONTo(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
