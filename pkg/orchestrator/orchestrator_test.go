package orchestrator

import (
	"context"
	"strings"
	"testing"

	"github.com/theSLWayne/notebook-doc/pkg/model"
	"github.com/theSLWayne/notebook-doc/pkg/namespace"
	"github.com/theSLWayne/notebook-doc/pkg/render"
	"github.com/theSLWayne/notebook-doc/pkg/testsupport"
)

// sumInts sums its arguments.
func sumInts(values ...int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestGenerateFromNamespace(t *testing.T) {
	orch := New()

	ns := namespace.New()
	ns.Set("add", namespace.Func{
		Fn:  func(a, b int) int { return a + b },
		Doc: "Adds two numbers.\n\nArgs:\n    a: first\n    b: second\n\nReturns:\n    int: the sum",
	})
	ns.Set("answer", 42)

	output, err := orch.Generate(testsupport.Context(), Request{
		Namespace:  ns,
		ModuleName: "Math",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(output)
	for _, want := range []string{
		"Math - Documentation",
		"<h3>add</h3>",
		"Adds two numbers.",
		"first",
		"second",
		"the sum",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "answer") {
		t.Fatalf("non-function binding leaked into output:\n%s", html)
	}
}

func TestGenerateFromDocument(t *testing.T) {
	orch := New()

	src := `package sample

// Add adds two numbers.
//
// Args:
//	a: first operand
//	b: second operand
//
// Returns:
//	int: the sum
func Add(a, b int) int { return a + b }
`
	doc := namespace.MustNewDocument(namespace.SourceFromFile("sample.go"), []byte(src))

	output, err := orch.Generate(testsupport.Context(), Request{Document: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(output)
	for _, want := range []string{
		"Notebook - Documentation",
		"<h3>Add</h3>",
		"Add(a int, b int) int",
		"first operand",
		"the sum",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	orch := New()

	request := Request{
		Namespace: namespace.New().
			Set("sum", sumInts).
			Set("id", func(x string) string { return x }),
		ModuleName:    "Utils",
		RenderOptions: render.RenderOptions{Links: true},
	}

	first, err := orch.Generate(testsupport.Context(), request)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := orch.Generate(testsupport.Context(), request)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("repeated generation produced different output")
	}
}

func TestGenerateRequiresInput(t *testing.T) {
	orch := New()

	_, err := orch.Generate(testsupport.Context(), Request{})
	if err == nil {
		t.Fatal("expected error without namespace, document, or source")
	}
	if !strings.Contains(err.Error(), "namespace, document, or source is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateRequiresContext(t *testing.T) {
	orch := New()
	if _, err := orch.Generate(nil, Request{Namespace: namespace.New()}); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Generate(ctx, Request{Namespace: namespace.New()}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	orch := New()

	_, err := orch.Generate(testsupport.Context(), Request{
		Namespace: namespace.New(),
		Renderer:  "missing",
	})
	if err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestGenerateAssignsAnchors(t *testing.T) {
	orch := New()

	ns := namespace.New().Set("fetch_data", sumInts)
	output, err := orch.Generate(testsupport.Context(), Request{
		Namespace:     ns,
		RenderOptions: render.RenderOptions{Links: true},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `href="#fetch-data"`) {
		t.Fatalf("expected slugged anchor link:\n%s", output)
	}
}

func TestGenerateAppliesCustomDecorators(t *testing.T) {
	touched := false
	decorator := model.DecoratorFunc(func(doc *model.DocumentModel) error {
		touched = true
		for i := range doc.Functions {
			doc.Functions[i].ShortDescription = "decorated"
		}
		return nil
	})

	orch := New(WithDecorators(decorator))

	output, err := orch.Generate(testsupport.Context(), Request{
		Namespace: namespace.New().Set("sum", sumInts),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !touched {
		t.Fatal("custom decorator never ran")
	}
	if !strings.Contains(string(output), "decorated") {
		t.Fatalf("decorated content missing:\n%s", output)
	}
}

func TestGenerateEmptyNamespaceStillRenders(t *testing.T) {
	orch := New()

	output, err := orch.Generate(testsupport.Context(), Request{Namespace: namespace.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "Notebook - Documentation") {
		t.Fatalf("expected empty document shell:\n%s", output)
	}
}
