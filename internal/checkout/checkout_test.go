package checkout_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devinabox/internal/checkout"
	"devinabox/internal/platform"

	"github.com/google/go-cmp/cmp"
)

func TestBinaryCandidates(t *testing.T) {
	tests := []struct {
		family platform.Family
		want   []string
	}{
		{platform.Posix, []string{
			filepath.Join("cpython", "python"),
			filepath.Join("cpython", "python.exe"),
		}},
		{platform.Windows, []string{
			filepath.Join("cpython", "PCBuild", "python_d.exe"),
			filepath.Join("cpython", "PCBuild", "AMD64", "python_d.exe"),
		}},
	}
	for _, tc := range tests {
		got := checkout.BinaryCandidates(tc.family)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("BinaryCandidates(%q) mismatch:\n%s", tc.family, diff)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("#!"), 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLocate_ProbeOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "cpython", "python.exe"))

	got, ok := checkout.Locate(root, platform.Posix)
	if !ok {
		t.Fatal("Locate() found nothing, want python.exe")
	}
	if !strings.HasSuffix(got, filepath.Join("cpython", "python.exe")) {
		t.Errorf("Locate() = %q, want the python.exe candidate", got)
	}

	// The plain binary outranks python.exe once it appears.
	touch(t, filepath.Join(root, "cpython", "python"))
	got, ok = checkout.Locate(root, platform.Posix)
	if !ok {
		t.Fatal("Locate() found nothing, want python")
	}
	if !strings.HasSuffix(got, filepath.Join("cpython", "python")) {
		t.Errorf("Locate() = %q, want the python candidate", got)
	}
}

func TestLocate_WindowsCandidates(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "cpython", "PCBuild", "AMD64", "python_d.exe"))

	got, ok := checkout.Locate(root, platform.Windows)
	if !ok {
		t.Fatal("Locate() found nothing, want the AMD64 debug binary")
	}
	if !strings.HasSuffix(got, filepath.Join("PCBuild", "AMD64", "python_d.exe")) {
		t.Errorf("Locate() = %q, want the AMD64 debug binary", got)
	}

	// A POSIX probe must not pick up PCBuild artifacts.
	if _, ok := checkout.Locate(root, platform.Posix); ok {
		t.Error("Locate(Posix) found a PCBuild binary")
	}
}

func TestLocate_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "cpython", "python"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, filepath.Join(root, "cpython", "python.exe"))

	got, ok := checkout.Locate(root, platform.Posix)
	if !ok {
		t.Fatal("Locate() found nothing, want python.exe")
	}
	if !strings.HasSuffix(got, "python.exe") {
		t.Errorf("Locate() = %q, want python.exe (python is a directory)", got)
	}
}

func TestLocate_Missing(t *testing.T) {
	root := t.TempDir()
	if got, ok := checkout.Locate(root, platform.Posix); ok {
		t.Errorf("Locate() on an empty box = %q, want no result", got)
	}
}

func TestLocate_ReturnsAbsolutePath(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "cpython", "python"))

	got, ok := checkout.Locate(root, platform.Posix)
	if !ok {
		t.Fatal("Locate() found nothing")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Locate() = %q, want an absolute path", got)
	}
}
