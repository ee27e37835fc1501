package utils

import (
	"fmt"
	"io"
	"os"
)

// EnsureDir creates the directory if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveFile writes the reader's content to path, replacing any existing file
// with the same name.
func SaveFile(path string, r io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
