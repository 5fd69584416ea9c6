package loader

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/theSLWayne/notebook-doc/pkg/namespace"
	"github.com/theSLWayne/notebook-doc/pkg/testsupport"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	if err := os.WriteFile(path, []byte("package sample"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := New(namespace.NewLoaderOptions())
	doc, err := loader.Load(testsupport.Context(), namespace.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "package sample" {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pkg/sample.go": {Data: []byte("package sample")},
	}

	loader := New(namespace.NewLoaderOptions(namespace.WithFileSystem(fsys)))
	doc, err := loader.Load(testsupport.Context(), namespace.SourceFromFS("pkg/sample.go"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "package sample" {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoadFSWithoutFilesystem(t *testing.T) {
	loader := New(namespace.NewLoaderOptions())
	if _, err := loader.Load(testsupport.Context(), namespace.SourceFromFS("pkg/sample.go")); err == nil {
		t.Fatal("expected error for fs source without filesystem")
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := New(namespace.NewLoaderOptions())
	if _, err := loader.Load(testsupport.Context(), namespace.SourceFromFile("does/not/exist.go")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadNilSource(t *testing.T) {
	loader := New(namespace.NewLoaderOptions())
	if _, err := loader.Load(testsupport.Context(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
