package extract

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"github.com/theSLWayne/notebook-doc/pkg/namespace"
)

// recordFromDecl converts a top-level function declaration into a
// FunctionRecord, expanding grouped parameters (a, b int) into individual
// entries so declaration order is preserved.
func recordFromDecl(fset *token.FileSet, decl *ast.FuncDecl) namespace.FunctionRecord {
	record := namespace.FunctionRecord{Name: decl.Name.Name}
	if decl.Doc != nil {
		record.Doc = strings.TrimRight(decl.Doc.Text(), "\n")
	}
	if decl.Type == nil {
		return record
	}

	record.Params = paramsFromFields(fset, decl.Type.Params)
	record.Results = resultsFromFields(fset, decl.Type.Results)
	return record
}

func paramsFromFields(fset *token.FileSet, fields *ast.FieldList) []namespace.Param {
	if fields == nil || len(fields.List) == 0 {
		return nil
	}

	var params []namespace.Param
	for _, field := range fields.List {
		typeExpr := field.Type
		variadic := false
		if ellipsis, ok := typeExpr.(*ast.Ellipsis); ok {
			typeExpr = ellipsis.Elt
			variadic = true
		}
		typeName := typeText(fset, typeExpr)

		if len(field.Names) == 0 {
			params = append(params, namespace.Param{Type: typeName, Variadic: variadic})
			continue
		}
		for _, name := range field.Names {
			params = append(params, namespace.Param{
				Name:     name.Name,
				Type:     typeName,
				Variadic: variadic,
			})
		}
	}

	for i := range params {
		if params[i].Name == "" {
			params[i].Name = placeholderName(i)
		}
	}
	return params
}

func resultsFromFields(fset *token.FileSet, fields *ast.FieldList) []string {
	if fields == nil || len(fields.List) == 0 {
		return nil
	}

	var results []string
	for _, field := range fields.List {
		typeName := typeText(fset, field.Type)
		count := len(field.Names)
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			results = append(results, typeName)
		}
	}
	return results
}

// placeholderName fills in for parameters whose declared name is unavailable
// (anonymous parameters, or runtime values without a resolvable declaration).
func placeholderName(index int) string {
	return "arg" + strconv.Itoa(index)
}

// typeText renders a type expression the way it was written in source.
func typeText(fset *token.FileSet, expr ast.Expr) string {
	if expr == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}
