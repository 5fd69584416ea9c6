package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/theSLWayne/notebook-doc/pkg/docstring"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

func TestBuildMergesSignatureAndDocstring(t *testing.T) {
	builder := NewBuilder()

	record := namespace.FunctionRecord{
		Name: "add",
		Params: []namespace.Param{
			{Name: "a", Type: "int"},
			{Name: "b", Type: "int"},
		},
		Results: []string{"int"},
	}
	parsed := docstring.ParsedDoc{
		ShortDescription: "Adds two numbers.",
		Params: []docstring.Param{
			{Name: "a", Description: "first"},
			{Name: "b", Description: "second"},
		},
		Returns: &docstring.Returns{Type: "integer", Description: "the sum"},
	}

	got, err := builder.Build(record, parsed)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := FunctionDoc{
		Name:             "add",
		Signature:        "add(a int, b int) int",
		ShortDescription: "Adds two numbers.",
		Params: []ParamDoc{
			{Name: "a", Type: "int", Description: "first", Declared: true},
			{Name: "b", Type: "int", Description: "second", Declared: true},
		},
		// The declared result type wins over the documented one.
		Returns: &ReturnsDoc{Type: "int", Description: "the sum"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("function doc mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAppendsDocumentedOnlyParams(t *testing.T) {
	builder := NewBuilder()

	record := namespace.FunctionRecord{
		Name:   "configure",
		Params: []namespace.Param{{Name: "path", Type: "string"}},
	}
	parsed := docstring.ParsedDoc{
		Params: []docstring.Param{
			{Name: "path", Description: "config location"},
			{Name: "legacy_mode", Type: "bool", Description: "documented but not declared"},
		},
	}

	got, err := builder.Build(record, parsed)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(got.Params) != 2 {
		t.Fatalf("expected two params, got %d", len(got.Params))
	}
	if !got.Params[0].Declared {
		t.Fatalf("declared param lost its flag: %+v", got.Params[0])
	}
	extra := got.Params[1]
	if extra.Name != "legacy_mode" || extra.Declared {
		t.Fatalf("documented-only param mismatch: %+v", extra)
	}
	if extra.Type != "bool" {
		t.Fatalf("documented type not carried: %+v", extra)
	}
}

func TestBuildDeclaredReturnsWithoutDocstring(t *testing.T) {
	builder := NewBuilder()

	record := namespace.FunctionRecord{Name: "now", Results: []string{"time.Time"}}

	got, err := builder.Build(record, docstring.ParsedDoc{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got.Returns == nil || got.Returns.Type != "time.Time" {
		t.Fatalf("expected declared return row, got %+v", got.Returns)
	}
}

func TestBuildNoReturns(t *testing.T) {
	builder := NewBuilder()

	got, err := builder.Build(namespace.FunctionRecord{Name: "reset"}, docstring.ParsedDoc{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got.Returns != nil {
		t.Fatalf("expected no return row, got %+v", got.Returns)
	}
}

func TestBuildVariadicParamType(t *testing.T) {
	builder := NewBuilder()

	record := namespace.FunctionRecord{
		Name: "sum",
		Params: []namespace.Param{
			{Name: "values", Type: "int", Variadic: true},
		},
		Results: []string{"int"},
	}

	got, err := builder.Build(record, docstring.ParsedDoc{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got.Params[0].Type != "...int" {
		t.Fatalf("variadic type mismatch: %q", got.Params[0].Type)
	}
	if got.Signature != "sum(values ...int) int" {
		t.Fatalf("signature mismatch: %q", got.Signature)
	}
}

func TestBuildRequiresName(t *testing.T) {
	builder := NewBuilder()
	if _, err := builder.Build(namespace.FunctionRecord{}, docstring.ParsedDoc{}); err == nil {
		t.Fatal("expected error for unnamed record")
	}
}

func TestBuildCarriesRaisesAndExamples(t *testing.T) {
	builder := NewBuilder()

	parsed := docstring.ParsedDoc{
		Raises:   []docstring.Raise{{Type: "ValueError", Description: "bad input"}},
		Examples: []docstring.Example{{Description: "usage", Snippet: ">>> run()"}},
	}

	got, err := builder.Build(namespace.FunctionRecord{Name: "run"}, parsed)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(got.Raises) != 1 || got.Raises[0].Type != "ValueError" {
		t.Fatalf("raises mismatch: %+v", got.Raises)
	}
	if len(got.Examples) != 1 || got.Examples[0].Snippet != ">>> run()" {
		t.Fatalf("examples mismatch: %+v", got.Examples)
	}
}
