package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveFile_WritesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	if err := SaveFile(path, strings.NewReader("content-v1")); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "content-v1" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestSaveFile_OverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	if err := SaveFile(path, strings.NewReader("content-v1")); err != nil {
		t.Fatalf("first SaveFile: %v", err)
	}
	if err := SaveFile(path, strings.NewReader("v2")); err != nil {
		t.Fatalf("second SaveFile: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "v2" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestEnsureDir_CreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
}
