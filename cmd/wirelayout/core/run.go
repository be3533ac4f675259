// Package core implements wirelayout's source scan: it walks a Go file's
// AST looking for `wire.NewRecord(...)` call expressions assigned to a
// package-level var, and replays the same padding/size arithmetic
// wire.NewRecord applies at runtime so a reviewer can see a record's byte
// layout without running any code. It does not type-check the file —
// like cborgen, it works directly off the parsed AST.
package core

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Field is one statically-resolved field within a scanned Record.
type Field struct {
	Kind       string // "Field", "BitField", "ConstBitField", "Nested"
	Expr       string // source text of the constructor call
	Bits       uint   // 0 if the width could not be resolved statically
	PadsBefore bool
	Unresolved bool
}

// Record is one `wire.NewRecord(...)` declaration found in a file.
type Record struct {
	Name      string
	Fields    []Field
	TotalBits uint
}

// Offset is a field's computed position within its Record.
type Offset struct {
	Field     Field
	BitOffset uint
}

// Offsets replays wire.NewRecord's padding rule over r.Fields and returns
// each field's starting bit offset.
func (r Record) Offsets() []Offset {
	offsets := make([]Offset, 0, len(r.Fields))
	cursor := uint(0)
	for _, f := range r.Fields {
		if f.PadsBefore {
			cursor = nextByteBoundary(cursor)
		}
		offsets = append(offsets, Offset{Field: f, BitOffset: cursor})
		cursor += f.Bits
	}
	return offsets
}

func nextByteBoundary(n uint) uint { return ((n + 7) / 8) * 8 }

// carrierBits maps the primitive type names wire.Primitive accepts to
// their bit width.
var carrierBits = map[string]uint{
	"bool": 8,
	"int8": 8, "uint8": 8,
	"int16": 16, "uint16": 16,
	"int32": 32, "uint32": 32, "float32": 32,
	"int64": 64, "uint64": 64, "float64": 64, "uintptr": 64,
}

// Scan parses the Go source file at path and returns every top-level
// `wire.NewRecord` declaration it can find.
func Scan(path string) ([]Record, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	byName := map[string]Record{}
	var order []string

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				if i >= len(vs.Values) {
					continue
				}
				call, ok := vs.Values[i].(*ast.CallExpr)
				if !ok || !isRecordCall(call) {
					continue
				}
				rec := Record{Name: name.Name}
				for _, arg := range call.Args {
					rec.Fields = append(rec.Fields, resolveField(arg, byName))
				}
				for _, f := range rec.Fields {
					if f.PadsBefore {
						rec.TotalBits = nextByteBoundary(rec.TotalBits)
					}
					rec.TotalBits += f.Bits
				}
				rec.TotalBits = nextByteBoundary(rec.TotalBits)
				byName[name.Name] = rec
				order = append(order, name.Name)
			}
		}
	}

	records := make([]Record, 0, len(order))
	for _, n := range order {
		records = append(records, byName[n])
	}
	return records, nil
}

func isRecordCall(call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "wire" && sel.Sel.Name == "NewRecord"
}

func resolveField(arg ast.Expr, known map[string]Record) Field {
	expr := exprString(arg)

	call, ok := arg.(*ast.CallExpr)
	if !ok {
		if ident, ok := arg.(*ast.Ident); ok {
			if rec, ok := known[ident.Name]; ok {
				return Field{Kind: "Nested", Expr: expr, Bits: rec.TotalBits, PadsBefore: true}
			}
		}
		return Field{Kind: "?", Expr: expr, Unresolved: true}
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return Field{Kind: "?", Expr: expr, Unresolved: true}
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != "wire" {
		return Field{Kind: "?", Expr: expr, Unresolved: true}
	}

	switch fn := sel.Sel.Name; {
	case fn == "NewField":
		bits, ok := primitiveBitsFromArg(call.Args)
		return Field{Kind: "Field", Expr: expr, Bits: bits, PadsBefore: true, Unresolved: !ok}

	case fn == "NewNested":
		if len(call.Args) == 1 {
			if ident, ok := call.Args[0].(*ast.Ident); ok {
				if rec, ok := known[ident.Name]; ok {
					return Field{Kind: "Nested", Expr: expr, Bits: rec.TotalBits, PadsBefore: true}
				}
			}
		}
		return Field{Kind: "Nested", Expr: expr, PadsBefore: true, Unresolved: true}

	case fn == "Bit":
		return Field{Kind: "BitField", Expr: expr, Bits: 1}

	case fn == "ConstBit":
		return Field{Kind: "ConstBitField", Expr: expr, Bits: 1}

	case strings.HasPrefix(fn, "Bits") || strings.HasPrefix(fn, "ConstBits"):
		kind := "BitField"
		if strings.HasPrefix(fn, "ConstBits") {
			kind = "ConstBitField"
		}
		bits, ok := literalUint(call.Args, 0)
		return Field{Kind: kind, Expr: expr, Bits: bits, Unresolved: !ok}

	default:
		return Field{Kind: "?", Expr: expr, Unresolved: true}
	}
}

// primitiveBitsFromArg inspects a single-argument call like
// `uint32(v)` or a typed literal to find the wrapped Primitive's bit
// width.
func primitiveBitsFromArg(args []ast.Expr) (uint, bool) {
	if len(args) != 1 {
		return 0, false
	}
	if call, ok := args[0].(*ast.CallExpr); ok {
		if ident, ok := call.Fun.(*ast.Ident); ok {
			if bits, ok := carrierBits[ident.Name]; ok {
				return bits, true
			}
		}
	}
	if ident, ok := args[0].(*ast.Ident); ok && (ident.Name == "true" || ident.Name == "false") {
		return carrierBits["bool"], true
	}
	return 0, false
}

func literalUint(args []ast.Expr, idx int) (uint, bool) {
	if idx >= len(args) {
		return 0, false
	}
	lit, ok := args[idx].(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, false
	}
	n, err := strconv.ParseUint(lit.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func exprString(e ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), e); err != nil {
		return "<expr>"
	}
	return buf.String()
}

// Print renders a Record's field-by-field layout to w.
func Print(w io.Writer, r Record) {
	fmt.Fprintf(w, "%s (%d bits, %d bytes)\n", r.Name, r.TotalBits, r.TotalBits/8)
	for i, off := range r.Offsets() {
		mark := ""
		if off.Field.Unresolved {
			mark = " (width unresolved)"
		}
		fmt.Fprintf(w, "  [%d] %-14s bit %-4d width %-3d  %s%s\n",
			i, off.Field.Kind, off.BitOffset, off.Field.Bits, off.Field.Expr, mark)
	}
}

const companionTemplate = `// Code generated by wirelayout from {{.Source}}. DO NOT EDIT.

package {{.Package}}

{{range .Records}}// {{.Name}} layout: {{.TotalBits}} bits ({{.TotalBitsBytes}} bytes)
{{range .Lines}}// {{.}}
{{end}}
{{end}}`

type companionRecord struct {
	Name           string
	TotalBits      uint
	TotalBitsBytes uint
	Lines          []string
}

// WriteCompanion renders the layout of records found in sourcePath as a
// formatted "*_layout.go" companion file at outputPath, using the same
// goimports-quality formatting pass the code generator uses.
func WriteCompanion(outputPath, sourcePath string, records []Record) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, sourcePath, nil, parser.PackageClauseOnly)
	if err != nil {
		return err
	}

	data := struct {
		Source  string
		Package string
		Records []companionRecord
	}{Source: sourcePath, Package: file.Name.Name}

	for _, r := range records {
		cr := companionRecord{Name: r.Name, TotalBits: r.TotalBits, TotalBitsBytes: r.TotalBits / 8}
		for i, off := range r.Offsets() {
			cr.Lines = append(cr.Lines, fmt.Sprintf("[%d] %s bit %d width %d", i, off.Field.Kind, off.BitOffset, off.Field.Bits))
		}
		data.Records = append(data.Records, cr)
	}

	tmpl, err := template.New("companion").Parse(companionTemplate)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	formatted, err := imports.Process(outputPath, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format companion: %w", err)
	}

	return os.WriteFile(outputPath, formatted, 0o644)
}
