//go:build pprof

package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStart_CPU(t *testing.T) {
	dir := t.TempDir()

	New(WithMode("cpu"), WithPath(dir), WithQuiet(true)).Start().Stop()

	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("expected cpu profile: %v", err)
	}
}
