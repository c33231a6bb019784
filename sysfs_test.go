package devprop

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSysfsRoot tests environment override resolution.
func TestSysfsRoot(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unset bool
		want  string
	}{
		{name: "unset", unset: true, want: DefaultSysfsRoot},
		{name: "empty counts as unset", value: "", want: DefaultSysfsRoot},
		{name: "override", value: "/tmp/fake-sys", want: "/tmp/fake-sys"},
		{name: "relative override", value: "testdata/sys", want: "testdata/sys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(SysfsPathEnv, tt.value)
			if tt.unset {
				os.Unsetenv(SysfsPathEnv)
			}

			if got := SysfsRoot(); got != tt.want {
				t.Errorf("SysfsRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSysfsRootNotCached tests that the override is read on every call.
func TestSysfsRootNotCached(t *testing.T) {
	t.Setenv(SysfsPathEnv, "/first")
	if got := SysfsRoot(); got != "/first" {
		t.Fatalf("SysfsRoot() = %q, want %q", got, "/first")
	}

	t.Setenv(SysfsPathEnv, "/second")
	if got := SysfsRoot(); got != "/second" {
		t.Errorf("SysfsRoot() = %q after change, want %q", got, "/second")
	}
}

func TestNetClassPath(t *testing.T) {
	want := filepath.Join("/sys", "class", "net")
	if got := NetClassPath("/sys"); got != want {
		t.Errorf("NetClassPath(/sys) = %q, want %q", got, want)
	}
}
