package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/theSLWayne/notebook-doc/pkg/model"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// LoadDocument reads a fixture and builds a namespace.Document using a file
// source. Testing helpers panic on failure to keep contract tests concise.
func LoadDocument(t *testing.T, path string) namespace.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (namespace.Document, error) {
	if path == "" {
		return namespace.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return namespace.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := namespace.NewDocument(namespace.SourceFromFile(path), data)
	if err != nil {
		return namespace.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadDocumentModel loads a JSON golden file into a DocumentModel.
func MustLoadDocumentModel(t *testing.T, path string) pkgmodel.DocumentModel {
	t.Helper()

	doc, err := LoadDocumentModel(path)
	if err != nil {
		t.Fatalf("load document model: %v", err)
	}
	return doc
}

// LoadDocumentModel reads a JSON fixture into a DocumentModel, returning an
// error for callers managing setup outside of *testing.T.
func LoadDocumentModel(path string) (pkgmodel.DocumentModel, error) {
	if path == "" {
		return pkgmodel.DocumentModel{}, errors.New("testsupport: document model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.DocumentModel{}, fmt.Errorf("testsupport: read document model: %w", err)
	}
	var out pkgmodel.DocumentModel
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.DocumentModel{}, fmt.Errorf("testsupport: unmarshal document model: %w", err)
	}
	return out, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is
// set. The JSON mirrors the builder output to keep snapshot diffs focused on
// behavioural changes.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
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

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}
