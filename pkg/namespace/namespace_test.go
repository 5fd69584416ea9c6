package namespace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromMapOrdersByName(t *testing.T) {
	ns := FromMap(map[string]any{
		"zeta":  1,
		"alpha": 2,
		"mid":   3,
	})

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, ns.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	ns := New()
	ns.Set("second", 2)
	ns.Set("first", 1)
	ns.Set("third", 3)

	want := []string{"second", "first", "third"}
	if diff := cmp.Diff(want, ns.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestSetOverwriteKeepsPosition(t *testing.T) {
	ns := New()
	ns.Set("a", 1)
	ns.Set("b", 2)
	ns.Set("a", 10)

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, ns.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	value, ok := ns.Get("a")
	if !ok || value != 10 {
		t.Fatalf("expected overwritten value 10, got %v (ok=%v)", value, ok)
	}
}

func TestSetIgnoresEmptyName(t *testing.T) {
	ns := New()
	ns.Set("", 1)
	if ns.Len() != 0 {
		t.Fatalf("expected empty namespace, got %d bindings", ns.Len())
	}
}

func TestGetMissing(t *testing.T) {
	ns := New()
	if _, ok := ns.Get("nope"); ok {
		t.Fatal("expected missing binding")
	}
}

func TestSignature(t *testing.T) {
	cases := []struct {
		name   string
		record FunctionRecord
		want   string
	}{
		{
			name:   "no params no results",
			record: FunctionRecord{Name: "ping"},
			want:   "ping()",
		},
		{
			name: "params and single result",
			record: FunctionRecord{
				Name: "add",
				Params: []Param{
					{Name: "a", Type: "int"},
					{Name: "b", Type: "int"},
				},
				Results: []string{"int"},
			},
			want: "add(a int, b int) int",
		},
		{
			name: "multiple results",
			record: FunctionRecord{
				Name:    "open",
				Params:  []Param{{Name: "path", Type: "string"}},
				Results: []string{"*os.File", "error"},
			},
			want: "open(path string) (*os.File, error)",
		},
		{
			name: "variadic",
			record: FunctionRecord{
				Name: "sum",
				Params: []Param{
					{Name: "values", Type: "int", Variadic: true},
				},
				Results: []string{"int"},
			},
			want: "sum(values ...int) int",
		},
		{
			name: "untyped placeholder",
			record: FunctionRecord{
				Name:   "fn",
				Params: []Param{{Name: "arg0"}},
			},
			want: "fn(arg0)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.Signature(); got != tc.want {
				t.Fatalf("signature mismatch: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestReturnType(t *testing.T) {
	record := FunctionRecord{Results: []string{"int", "error"}}
	if got := record.ReturnType(); got != "int, error" {
		t.Fatalf("return type mismatch: got %q", got)
	}
	if got := (FunctionRecord{}).ReturnType(); got != "" {
		t.Fatalf("expected empty return type, got %q", got)
	}
}

func TestNewDocumentValidatesInputs(t *testing.T) {
	if _, err := NewDocument(nil, []byte("package main")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFile("main.go"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocumentRawIsACopy(t *testing.T) {
	payload := []byte("package main")
	doc := MustNewDocument(SourceFromFile("main.go"), payload)

	raw := doc.Raw()
	raw[0] = 'X'
	if string(doc.Raw()) != "package main" {
		t.Fatal("mutating the returned slice leaked into the document")
	}
	if doc.Location() != "main.go" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}
