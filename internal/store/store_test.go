package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilenameFor(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       string
		hashed     bool
	}{
		{name: "plain", identifier: "Chris", want: "Chris.png"},
		{name: "email", identifier: "user@example.com", want: "user@example.com.png"},
		{name: "spaces", identifier: "Jane Doe", want: "Jane Doe.png"},
		{name: "empty", identifier: "", hashed: true},
		{name: "separator", identifier: "a/b", hashed: true},
		{name: "traversal", identifier: "..", hashed: true},
		{name: "control", identifier: "a\nb", hashed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilenameFor(tt.identifier)
			if !tt.hashed {
				if got != tt.want {
					t.Errorf("FilenameFor(%q) = %q, want %q", tt.identifier, got, tt.want)
				}
				return
			}
			if len(got) != 32+len(Extension) || !strings.HasSuffix(got, Extension) {
				t.Errorf("FilenameFor(%q) = %q, want hashed name", tt.identifier, got)
			}
			if got != FilenameFor(tt.identifier) {
				t.Errorf("FilenameFor(%q) is not deterministic", tt.identifier)
			}
		})
	}
}

func TestFilePersisterSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	p := NewFilePersister(dir)

	path, err := p.Save(context.Background(), "Chris", []byte("first"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if want := filepath.Join(dir, "Chris.png"); path != want {
		t.Errorf("Save() path = %q, want %q", path, want)
	}

	// A second save with the same identifier overwrites.
	if _, err := p.Save(context.Background(), "Chris", []byte("second")); err != nil {
		t.Fatalf("Save() overwrite error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !bytes.Equal(data, []byte("second")) {
		t.Errorf("saved data = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want 1 (temp files left behind?)", len(entries))
	}
}

func TestFilePersisterLongIdentifier(t *testing.T) {
	dir := t.TempDir()
	identifier := strings.Repeat("a", 245)

	if got := FilenameFor(identifier); got != identifier+Extension {
		t.Fatalf("FilenameFor() = %q, want the identifier kept", got)
	}

	path, err := NewFilePersister(dir).Save(context.Background(), identifier, []byte("x"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Base(path) != identifier+Extension {
		t.Errorf("Save() path = %q", path)
	}
}

func TestFilePersisterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	if _, err := NewFilePersister(dir).Save(ctx, "Chris", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Chris.png")); !os.IsNotExist(err) {
		t.Error("cancelled Save() should not write a file")
	}
}

func TestFilePersisterUnwritableDir(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if _, err := NewFilePersister(blocker).Save(context.Background(), "Chris", []byte("x")); err == nil {
		t.Error("Save() into a file path expected error")
	}
}
