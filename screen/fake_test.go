package screen

import "errors"

// fakeDevice serves displays from memory. Grab fills pixels with a pattern whose
// fourth byte is deliberately not 255.
type fakeDevice struct {
	displays []Display
	infoErr  map[uintptr]error
	enumErr  error
	grabErr  error

	grabs    []Rect
	released int
}

func (f *fakeDevice) Displays() ([]uintptr, error) {
	if f.enumErr != nil {
		return nil, f.enumErr
	}
	handles := make([]uintptr, len(f.displays))
	for i, d := range f.displays {
		handles[i] = d.Handle
	}
	return handles, nil
}

func (f *fakeDevice) DisplayInfo(handle uintptr) (Display, error) {
	if err := f.infoErr[handle]; err != nil {
		return Display{}, err
	}
	for _, d := range f.displays {
		if d.Handle == handle {
			return d, nil
		}
	}
	return Display{}, errors.New("unknown handle")
}

func (f *fakeDevice) Grab(bounds Rect, fn func(raw []byte)) error {
	f.grabs = append(f.grabs, bounds)
	defer func() { f.released++ }()
	if f.grabErr != nil {
		return f.grabErr
	}

	n := int(bounds.Width()) * int(bounds.Height())
	raw := make([]byte, n*4)
	for i := 0; i < n; i++ {
		raw[i*4] = byte(i)
		raw[i*4+1] = byte(i >> 8)
		raw[i*4+2] = 0x7f
		raw[i*4+3] = 0x00
	}
	fn(raw)
	return nil
}

func twoDisplays() *fakeDevice {
	return &fakeDevice{displays: []Display{
		{Handle: 0xA, Name: `\\.\DISPLAY1`, Bounds: Rect{0, 0, 8, 4}, Primary: true},
		{Handle: 0xB, Name: `\\.\DISPLAY2`, Bounds: Rect{-6, -2, 0, 3}},
	}}
}
