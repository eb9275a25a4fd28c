package window

import (
	"go.uber.org/zap"
)

// ExclusionResult is the in-band outcome of a capture-exclusion toggle.
type ExclusionResult struct {
	Succeeded bool   `json:"succeeded"`
	ErrorCode uint32 `json:"errorCode"`
}

// SetExcludedFromCapture excludes hwnd from screen capture when enable is true and
// restores the default affinity otherwise. An invalid handle fails with
// ErrorInvalidWindowHandle without touching the window.
//
// Exclusion only shows an effect while desktop composition is running.
func (m *Manager) SetExcludedFromCapture(hwnd uintptr, enable bool) ExclusionResult {
	if !m.sys.IsWindow(hwnd) {
		return ExclusionResult{ErrorCode: ErrorInvalidWindowHandle}
	}

	affinity := AffinityNone
	if enable {
		affinity = AffinityExcludeFromCapture
	}

	if err := m.sys.SetDisplayAffinity(hwnd, affinity); err != nil {
		code := errorCode(err)
		m.log.Warn("SetWindowDisplayAffinity failed",
			zap.Uintptr("hwnd", hwnd),
			zap.Bool("enable", enable),
			zap.Uint32("errorCode", code),
			zap.Error(err))
		return ExclusionResult{ErrorCode: code}
	}
	return ExclusionResult{Succeeded: true}
}

// DisplayAffinity returns the current display affinity of hwnd.
func (m *Manager) DisplayAffinity(hwnd uintptr) (uint32, error) {
	if !m.sys.IsWindow(hwnd) {
		return 0, Errno(ErrorInvalidWindowHandle)
	}
	return m.sys.DisplayAffinity(hwnd)
}
