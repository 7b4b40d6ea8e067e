package lrc_test

import (
	"testing"

	"github.com/magiclen/lrc"
)

func TestGetVersionInfo(t *testing.T) {
	info := lrc.GetVersionInfo()
	if info.Version != lrc.Version {
		t.Errorf("Version = %q, want %q", info.Version, lrc.Version)
	}
	// GoVersion comes from the embedded build info, which is always
	// present under go test.
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
}
