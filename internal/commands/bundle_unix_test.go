//go:build !windows

package commands_test

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/temirov/ctxbundle/internal/commands"
	"github.com/temirov/ctxbundle/internal/ignore"
)

func TestWriteBundleSkipsExplicitFifo(t *testing.T) {
	directory := t.TempDir()
	writeFiles(t, directory, map[string]string{"real.txt": "real"})
	fifoPath := filepath.Join(directory, "pipe")
	if err := syscall.Mkfifo(fifoPath, 0o600); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}
	logger, logs := newObservedLogger()

	document, summary := runBundle(t, commands.BundleOptions{
		Files:   []string{fifoPath, filepath.Join(directory, "real.txt")},
		Matcher: ignore.DefaultMatcher(nil),
		Logger:  logger,
	})
	if document != "<real.txt>\nreal\n</real.txt>\n" {
		t.Fatalf("unexpected document %q", document)
	}
	if summary.SkippedOnError != 1 {
		t.Fatalf("expected the fifo to be skipped, got %+v", summary)
	}
	if logs.FilterMessage("skipping non-regular file").Len() != 1 {
		t.Fatalf("expected a non-regular file warning")
	}
}
