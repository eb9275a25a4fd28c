package window

type fakeSystem struct {
	live     map[uintptr]uint32 // hwnd -> affinity
	setErr   error
	setCalls int

	kernel    Version
	kernelErr error
	reported  Version
	reportErr error
}

func newFakeSystem(hwnds ...uintptr) *fakeSystem {
	f := &fakeSystem{live: make(map[uintptr]uint32)}
	for _, h := range hwnds {
		f.live[h] = AffinityNone
	}
	return f
}

func (f *fakeSystem) IsWindow(hwnd uintptr) bool {
	_, ok := f.live[hwnd]
	return ok
}

func (f *fakeSystem) SetDisplayAffinity(hwnd uintptr, affinity uint32) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.live[hwnd] = affinity
	return nil
}

func (f *fakeSystem) DisplayAffinity(hwnd uintptr) (uint32, error) {
	return f.live[hwnd], nil
}

func (f *fakeSystem) KernelVersion() (Version, error) { return f.kernel, f.kernelErr }

func (f *fakeSystem) ReportedVersion() (Version, error) { return f.reported, f.reportErr }
