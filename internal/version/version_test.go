package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet_Defaults(t *testing.T) {
	info := Get()
	if info.Version != "dev" || info.Commit != "unknown" || info.Go != runtime.Version() {
		t.Errorf("info = %+v", info)
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.0", Commit: "abc123", Date: "2024-06-01", Go: "go1.25", OS: "linux", Arch: "amd64"}
	want := "cmsdash v1.2.0 (commit abc123, built 2024-06-01, go1.25 linux/amd64)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Get().String(), "cmsdash dev") {
		t.Errorf("default String() = %q", Get().String())
	}
}
