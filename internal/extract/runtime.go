package extract

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"runtime"
	"strings"

	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// Runtime implements namespace.Extractor over live function values. Go
// reflection exposes parameter and result types but not names or doc
// comments, so the extractor optionally locates the function's declaration on
// disk (via the runtime symbol table) to recover both. Recovery is
// best-effort: closures, stripped binaries, and missing source files all
// degrade to synthesised parameter names and an empty docstring.
type Runtime struct {
	opts namespace.ExtractorOptions
}

// Ensure the implementation satisfies the public interface.
var _ namespace.Extractor = (*Runtime)(nil)

// NewRuntime constructs the reflection-backed extractor.
func NewRuntime(options namespace.ExtractorOptions) namespace.Extractor {
	return &Runtime{opts: options}
}

// Extract walks the namespace in iteration order and returns a record per
// qualifying binding. Non-function values and bound methods are skipped
// silently; an entry that panics under introspection is skipped as well and
// never fails the pass.
func (e *Runtime) Extract(ctx context.Context, ns *namespace.Namespace) ([]namespace.FunctionRecord, error) {
	if ns == nil || ns.Len() == 0 {
		return nil, nil
	}

	records := make([]namespace.FunctionRecord, 0, ns.Len())
	for _, name := range ns.Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, ok := ns.Get(name)
		if !ok {
			continue
		}
		record, ok := e.introspect(name, value)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (e *Runtime) introspect(name string, value any) (record namespace.FunctionRecord, ok bool) {
	// Opaque callables can panic under reflection; treat them as
	// unintrospectable rather than failing the whole pass.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	doc := ""
	fn := value
	if wrapped, isWrapped := value.(namespace.Func); isWrapped {
		fn = wrapped.Fn
		doc = wrapped.Doc
	}

	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return namespace.FunctionRecord{}, false
	}

	sym := runtime.FuncForPC(rv.Pointer())
	if sym != nil && strings.HasSuffix(sym.Name(), "-fm") {
		// Method values are bound to a receiver and are not plain functions.
		return namespace.FunctionRecord{}, false
	}

	rt := rv.Type()
	record = namespace.FunctionRecord{Name: name, Doc: doc}

	for i := 0; i < rt.NumIn(); i++ {
		in := rt.In(i)
		param := namespace.Param{Name: placeholderName(i)}
		if rt.IsVariadic() && i == rt.NumIn()-1 {
			param.Variadic = true
			param.Type = in.Elem().String()
		} else {
			param.Type = in.String()
		}
		record.Params = append(record.Params, param)
	}
	for i := 0; i < rt.NumOut(); i++ {
		record.Results = append(record.Results, rt.Out(i).String())
	}

	if e.opts.ResolveSource && sym != nil {
		applyDeclaration(&record, sym)
	}
	return record, true
}

// applyDeclaration parses the file that declared the function and, when a
// matching top-level declaration is found, copies its parameter names, its
// type annotations as written, and its doc comment (unless an explicit
// docstring was already supplied). Any failure leaves the record as built
// from reflection alone.
func applyDeclaration(record *namespace.FunctionRecord, sym *runtime.Func) {
	declName := symbolBaseName(sym.Name())
	if declName == "" {
		return
	}

	file, _ := sym.FileLine(sym.Entry())
	if file == "" {
		return
	}

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
	if err != nil {
		return
	}

	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || fn.Name == nil || fn.Name.Name != declName {
			continue
		}

		params := paramsFromFields(fset, fn.Type.Params)
		if len(params) == len(record.Params) {
			record.Params = params
		}
		if results := resultsFromFields(fset, fn.Type.Results); len(results) == len(record.Results) {
			record.Results = results
		}
		if record.Doc == "" && fn.Doc != nil {
			record.Doc = strings.TrimRight(fn.Doc.Text(), "\n")
		}
		return
	}
}

// symbolBaseName reduces a runtime symbol ("pkg/path.Add", "pkg.Add.func1",
// "pkg.Add[...]") to the declared identifier, or "" when the symbol does not
// name a top-level function.
func symbolBaseName(symbol string) string {
	if symbol == "" {
		return ""
	}
	if idx := strings.LastIndex(symbol, "/"); idx >= 0 {
		symbol = symbol[idx+1:]
	}
	parts := strings.Split(symbol, ".")
	if len(parts) < 2 {
		return ""
	}
	name := parts[1]
	if len(parts) > 2 {
		// pkg.Parent.funcN style symbols belong to closures; there is no
		// matching top-level declaration to recover.
		return ""
	}
	name = strings.TrimSuffix(name, "[...]")
	return name
}
