// Package testsupport holds fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recipedocs/pkg/config"
)

// LoadMetadata reads a YAML metadata fixture. Testing helpers fail fatally
// to keep the tests themselves concise.
func LoadMetadata(t *testing.T, path string) *config.Metadata {
	t.Helper()

	m, err := LoadMetadataFromPath(path)
	if err != nil {
		t.Fatalf("load metadata: %v", err)
	}
	return m
}

// LoadMetadataFromPath returns metadata without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadMetadataFromPath(path string) (*config.Metadata, error) {
	if path == "" {
		return nil, fmt.Errorf("testsupport: metadata path is required")
	}
	return config.LoadFile(path)
}

// WriteGolden rewrites a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
