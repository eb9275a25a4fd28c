package window

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetExcludedFromCaptureInvalidHandle(t *testing.T) {
	sys := newFakeSystem(0x1234)
	m := New(sys)

	got := m.SetExcludedFromCapture(0, true)
	want := ExclusionResult{Succeeded: false, ErrorCode: ErrorInvalidWindowHandle}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if sys.setCalls != 0 {
		t.Fatalf("expected no affinity call for invalid handle, got %d", sys.setCalls)
	}
}

func TestSetExcludedFromCaptureAppliesAffinity(t *testing.T) {
	tests := []struct {
		name   string
		enable bool
		want   uint32
	}{
		{"enable", true, AffinityExcludeFromCapture},
		{"disable", false, AffinityNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newFakeSystem(0x10)
			sys.live[0x10] = AffinityMonitor
			m := New(sys)

			res := m.SetExcludedFromCapture(0x10, tt.enable)
			if diff := cmp.Diff(ExclusionResult{Succeeded: true}, res); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
			if sys.live[0x10] != tt.want {
				t.Fatalf("affinity = %#x, want %#x", sys.live[0x10], tt.want)
			}
		})
	}
}

func TestSetExcludedFromCaptureRoundTrip(t *testing.T) {
	sys := newFakeSystem(0x20)
	m := New(sys)

	before, err := m.DisplayAffinity(0x20)
	if err != nil {
		t.Fatalf("DisplayAffinity: %v", err)
	}
	if res := m.SetExcludedFromCapture(0x20, true); !res.Succeeded {
		t.Fatalf("enable failed: %+v", res)
	}
	if res := m.SetExcludedFromCapture(0x20, true); !res.Succeeded {
		t.Fatalf("second enable failed: %+v", res)
	}
	if res := m.SetExcludedFromCapture(0x20, false); !res.Succeeded {
		t.Fatalf("disable failed: %+v", res)
	}
	after, _ := m.DisplayAffinity(0x20)
	if before != after {
		t.Fatalf("affinity not restored: before %#x, after %#x", before, after)
	}
}

func TestSetExcludedFromCaptureCarriesLastError(t *testing.T) {
	sys := newFakeSystem(0x30)
	sys.setErr = Errno(5) // ERROR_ACCESS_DENIED
	m := New(sys)

	got := m.SetExcludedFromCapture(0x30, true)
	want := ExclusionResult{ErrorCode: 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if sys.setCalls != 1 {
		t.Fatalf("expected a single attempt, got %d", sys.setCalls)
	}
}

func TestSetExcludedFromCaptureUnknownError(t *testing.T) {
	sys := newFakeSystem(0x40)
	sys.setErr = errors.New("boom")

	got := New(sys).SetExcludedFromCapture(0x40, false)
	if got.Succeeded || got.ErrorCode != 0 {
		t.Fatalf("expected failure with code 0, got %+v", got)
	}
}

func TestDisplayAffinityInvalidHandle(t *testing.T) {
	_, err := New(newFakeSystem()).DisplayAffinity(0x99)
	var errno Errno
	if !errors.As(err, &errno) || uint32(errno) != ErrorInvalidWindowHandle {
		t.Fatalf("expected ERROR_INVALID_WINDOW_HANDLE, got %v", err)
	}
}
