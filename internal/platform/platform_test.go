package platform_test

import (
	"runtime"
	"testing"

	"devinabox/internal/platform"
)

func TestDetect_MatchesHost(t *testing.T) {
	got := platform.Detect()
	if runtime.GOOS == "windows" {
		if got != platform.Windows {
			t.Errorf("Detect() = %q on windows, want %q", got, platform.Windows)
		}
		return
	}
	if got != platform.Posix {
		t.Errorf("Detect() = %q on %s, want %q", got, runtime.GOOS, platform.Posix)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   platform.Family
		want bool
	}{
		{platform.Posix, true},
		{platform.Windows, true},
		{platform.Family(""), false},
		{platform.Family("beos"), false},
	}
	for _, tc := range tests {
		if got := platform.Valid(tc.in); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
