package capguard

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"

	"go.uber.org/zap"

	"github.com/rpdg/capguard/screen"
	"github.com/rpdg/capguard/window"
)

// Bridge method names.
const (
	MethodIsExclusionSupported   = "isExclusionSupported"
	MethodSetExcludedFromCapture = "setExcludedFromCapture"
	MethodListMonitors           = "listMonitors"
	MethodCaptureMonitorByIndex  = "captureMonitorByIndex"
)

type (
	ExclusionResult   = window.ExclusionResult
	MonitorDescriptor = screen.Monitor
	PixelBuffer       = screen.PixelBuffer
)

// Bridge is the host boundary. It accepts loosely typed arguments as a host
// runtime delivers them, validates their shape, normalizes window handles to
// uintptr and runs the operation synchronously.
type Bridge struct {
	win *window.Manager
	scr *screen.Screen
	log *zap.Logger
}

// NewBridge returns a Bridge over win and scr. A nil logger disables logging.
func NewBridge(win *window.Manager, scr *screen.Screen, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{win: win, scr: scr, log: log}
}

// DefaultBridge returns a Bridge over the native platform.
func DefaultBridge(log *zap.Logger) *Bridge {
	return NewBridge(
		window.Default(window.WithLogger(log)),
		screen.Default(screen.WithLogger(log)),
		log,
	)
}

// Call runs method with args. Shape violations return *ArgumentError; platform
// failures of listMonitors and captureMonitorByIndex return a nil result and an
// error wrapping ErrEnumerationFailed or ErrCaptureFailed.
func (b *Bridge) Call(method string, args ...any) (any, error) {
	switch method {
	case MethodIsExclusionSupported:
		return b.IsExclusionSupported(), nil
	case MethodSetExcludedFromCapture:
		res, err := b.SetExcludedFromCapture(args...)
		if err != nil {
			return nil, err
		}
		return res, nil
	case MethodListMonitors:
		monitors, err := b.ListMonitors()
		if err != nil {
			return nil, err
		}
		return monitors, nil
	case MethodCaptureMonitorByIndex:
		buf, err := b.CaptureMonitorByIndex(args...)
		if err != nil {
			return nil, err
		}
		return buf, nil
	default:
		return nil, &ArgumentError{Method: method, Reason: ErrUnknownMethod.Error()}
	}
}

func (b *Bridge) IsExclusionSupported() bool {
	return b.win.IsExclusionSupported()
}

// SetExcludedFromCapture expects exactly (hwnd, enable) where hwnd is any integer
// kind, json.Number or *big.Int and enable is a bool.
func (b *Bridge) SetExcludedFromCapture(args ...any) (ExclusionResult, error) {
	if len(args) != 2 {
		return ExclusionResult{}, &ArgumentError{
			Method: MethodSetExcludedFromCapture,
			Reason: "expected (hwnd: number|bigint, enable: boolean), got " + strconv.Itoa(len(args)) + " arguments",
		}
	}
	hwnd, ok := handleArg(args[0])
	if !ok {
		return ExclusionResult{}, &ArgumentError{
			Method: MethodSetExcludedFromCapture,
			Reason: "hwnd must be a number or bigint",
		}
	}
	enable, ok := args[1].(bool)
	if !ok {
		return ExclusionResult{}, &ArgumentError{
			Method: MethodSetExcludedFromCapture,
			Reason: "enable must be a boolean",
		}
	}

	res := b.win.SetExcludedFromCapture(hwnd, enable)
	b.log.Debug("setExcludedFromCapture",
		zap.Uintptr("hwnd", hwnd),
		zap.Bool("enable", enable),
		zap.Bool("succeeded", res.Succeeded),
		zap.Uint32("errorCode", res.ErrorCode))
	return res, nil
}

func (b *Bridge) ListMonitors() ([]MonitorDescriptor, error) {
	return b.scr.Monitors()
}

// CaptureMonitorByIndex takes an optional index; a missing or non-numeric
// argument means 0.
func (b *Bridge) CaptureMonitorByIndex(args ...any) (*PixelBuffer, error) {
	index := 0
	if len(args) > 0 {
		index = indexArg(args[0])
	}
	return b.scr.CaptureMonitor(index)
}

var uint64Mask = new(big.Int).SetUint64(math.MaxUint64)

// handleArg widens a host value to a native handle. No ownership is taken.
func handleArg(v any) (uintptr, bool) {
	switch h := v.(type) {
	case int:
		return uintptr(uint64(int64(h))), true
	case int32:
		return uintptr(uint64(int64(h))), true
	case int64:
		return uintptr(uint64(h)), true
	case uint:
		return uintptr(h), true
	case uint32:
		return uintptr(h), true
	case uint64:
		return uintptr(h), true
	case uintptr:
		return h, true
	case float64:
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return 0, false
		}
		return uintptr(uint64(int64(h))), true
	case json.Number:
		if i, err := h.Int64(); err == nil {
			return uintptr(uint64(i)), true
		}
		if u, err := strconv.ParseUint(string(h), 10, 64); err == nil {
			return uintptr(u), true
		}
		return 0, false
	case *big.Int:
		if h == nil {
			return 0, false
		}
		// Wrap modulo 2^64 so negative values sign-extend like the integer kinds.
		return uintptr(new(big.Int).And(h, uint64Mask).Uint64()), true
	default:
		return 0, false
	}
}

func indexArg(v any) int {
	switch i := v.(type) {
	case int:
		return i
	case int32:
		return int(i)
	case int64:
		return int(i)
	case float64:
		if math.IsNaN(i) || math.IsInf(i, 0) {
			return 0
		}
		return int(int32(i))
	case json.Number:
		if n, err := i.Int64(); err == nil {
			return int(n)
		}
		if f, err := i.Float64(); err == nil {
			return indexArg(f)
		}
		return 0
	default:
		return 0
	}
}
