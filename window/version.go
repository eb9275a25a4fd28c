package window

import (
	"errors"

	"go.uber.org/zap"
)

// exclusionMinBuild is Windows 10 2004, the first build honoring WDA_EXCLUDEFROMCAPTURE.
const exclusionMinBuild = 19041

// IsExclusionSupported reports whether the running OS can exclude windows from capture.
//
// The version comes from the kernel query so an application manifest cannot make the
// OS under-report itself. When that query does not exist the reported version is used,
// and any 10.x build is accepted because reported build numbers are unreliable there.
// It never fails: every error resolves to false.
func (m *Manager) IsExclusionSupported() bool {
	v, err := m.sys.KernelVersion()
	if err == nil {
		return v.Major > 10 || (v.Major == 10 && v.Build >= exclusionMinBuild)
	}
	if !errors.Is(err, ErrProcUnavailable) {
		m.log.Debug("kernel version query failed", zap.Error(err))
		return false
	}

	m.log.Debug("kernel version query unavailable, using reported version")
	rv, err := m.sys.ReportedVersion()
	if err != nil {
		m.log.Debug("reported version query failed", zap.Error(err))
		return false
	}
	return rv.Major >= 10
}
