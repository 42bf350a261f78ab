package emit

import (
	"fmt"
	"strings"

	"github.com/tickc/tickc/internal/ast"
	"github.com/tickc/tickc/internal/diag"
	"github.com/tickc/tickc/internal/runtime"
)

// sinks bundles the header and implementation contexts the driver
// routes declarations between (spec.md §4.8).
type sinks struct {
	header *Context
	impl   *Context
}

// buildDeclVis walks the module once, before any emission, recording
// every struct/enum/union declaration's own Visibility so that a later
// *reference* to the type name can apply the private-prefix rule of its
// declaration rather than of whatever references it (spec.md §4.1,
// §4.2; see internal/emit/naming.go).
func buildDeclVis(mod *ast.Module) map[string]ast.Visibility {
	vis := make(map[string]ast.Visibility, len(mod.Decls))
	for _, d := range mod.Decls {
		switch decl := d.(type) {
		case *ast.StructDecl:
			vis[decl.Name] = decl.Vis
		case *ast.EnumDecl:
			vis[decl.Name] = decl.Vis
		case *ast.UnionDecl:
			vis[decl.Name] = decl.Vis
		}
	}
	return vis
}

// emitPreamble writes the header's `#pragma once` plus the bundled
// runtime header, and the implementation's single `#include` of the
// header basename (spec.md §6.2).
func emitPreamble(s sinks, headerBasename string) {
	s.header.W.PrintfNoIndent("// Generated by tick compiler")
	s.header.W.PrintfNoIndent("#pragma once")
	s.header.W.WriteString(string(runtime.Header))
	s.header.W.PrintfNoIndent("")

	s.impl.W.PrintfNoIndent("#include %q", headerBasename)
	s.impl.W.PrintfNoIndent("")
}

// emitModule routes every top-level declaration to the header and/or
// implementation sink in source order (spec.md §4.8).
func emitModule(mod *ast.Module, s sinks) {
	for _, d := range mod.Decls {
		switch decl := d.(type) {
		case *ast.EnumDecl:
			emitEnumDecl(s, decl)
		case *ast.StructDecl:
			emitStructDecl(s, decl)
		case *ast.UnionDecl:
			emitUnionDecl(s, decl)
		case *ast.FuncDecl:
			emitFuncDecl(s, decl)
		case *ast.VarDecl:
			emitVarDecl(s, decl)
		default:
			unreachable(fmt.Sprintf("%T", d), d.Span())
		}
	}
}

// targetFor returns the single sink a declaration routes to: the header
// for pub declarations, the implementation otherwise. Functions and
// variables (other than bare function prototypes), which get entries in
// both sinks when pub, write their header entry directly instead
// (§4.8's per-kind rules in each emitXxxDecl below).
func targetFor(s sinks, pub bool) *Context {
	if pub {
		return s.header
	}
	return s.impl
}

func emitEnumDecl(s sinks, d *ast.EnumDecl) {
	target := targetFor(s, d.Vis.Pub)
	name := symbolName(d.Name, d.Vis)
	target.W.Printf("typedef %s %s;", target.emitType(d.Underlying), name)
	for _, v := range d.Values {
		target.W.Printf("static const %s %s_%s = %d;", name, name, v.Name, v.Value)
	}
	target.W.Printf("")
}

func emitStructDecl(s sinks, d *ast.StructDecl) {
	name := symbolName(d.Name, d.Vis)

	if d.Vis.ForwardDecl {
		target := targetFor(s, d.Vis.Pub)
		target.W.Printf("typedef struct %s %s;", name, name)
		target.W.Printf("")
		return
	}

	target := targetFor(s, d.Vis.Pub)
	attrs := structAttrs(d.IsPacked, d.Alignment)
	target.W.Printf("typedef struct%s {", attrs)
	target.W.Indent()
	for _, f := range d.Fields {
		target.emitStructField(f)
	}
	target.W.Dedent()
	target.W.Printf("} %s;", name)
	target.W.Printf("")
}

// structAttrs renders the struct-level packed/aligned attribute suffix,
// empty when neither applies.
func structAttrs(packed bool, alignment int) string {
	var b strings.Builder
	if packed {
		b.WriteString(" __attribute__((packed))")
	}
	if alignment > 0 {
		fmt.Fprintf(&b, " __attribute__((aligned(%d)))", alignment)
	}
	return b.String()
}

// emitStructField renders one field declarator with an optional
// per-field alignment attribute (spec.md §4.8 "Struct").
func (ctx *Context) emitStructField(f ast.Field) {
	declarator := ctx.synthesizeDeclarator(f.Type, f.Name)
	if f.Alignment > 0 {
		ctx.W.Printf("%s __attribute__((aligned(%d)));", declarator, f.Alignment)
		return
	}
	ctx.W.Printf("%s;", declarator)
}

// emitUnionDecl renders a tagged union as a struct holding a `tag`
// field of the synthesized tag-enum type followed by an anonymous
// union of the payload fields (spec.md §4.8 "Union").
func emitUnionDecl(s sinks, d *ast.UnionDecl) {
	if d.TagType == nil {
		fail(diag.CodeMissingUnionTag, "union declaration missing synthesized tag type", d.Span())
	}
	emitEnumDecl(s, d.TagType)

	target := targetFor(s, d.Vis.Pub)
	name := symbolName(d.Name, d.Vis)
	tagName := symbolName(d.TagType.Name, d.TagType.Vis)

	target.W.Printf("typedef struct {")
	target.W.Indent()
	target.W.Printf("%s tag;", tagName)
	target.W.Printf("union {")
	target.W.Indent()
	for _, f := range d.Fields {
		target.emitStructField(f)
	}
	target.W.Dedent()
	target.W.Printf("};")
	target.W.Dedent()
	target.W.Printf("} %s;", name)
	target.W.Printf("")
}

// emitFuncDecl renders a function's header prototype (pub only) and its
// implementation-file definition or prototype (spec.md §4.8
// "Function").
func emitFuncDecl(s sinks, d *ast.FuncDecl) {
	name := symbolName(d.Name, d.Vis)

	if d.Vis.Pub {
		header := s.header
		signature := fmt.Sprintf("%s %s(%s)", header.emitType(d.Return), name, header.synthesizeParamList(d.Params, true))
		header.W.Printf("%s;", signature)
		header.W.Printf("")
	}

	impl := s.impl
	signature := fmt.Sprintf("%s %s(%s)", impl.emitType(d.Return), name, impl.synthesizeParamList(d.Params, false))
	if d.Body == nil {
		impl.W.Printf("%s;", signature)
		impl.W.Printf("")
		return
	}
	impl.W.WriteString(impl.W.indentPrefix())
	impl.W.Ident(signature + " ")
	impl.emitBlock(d.Body, blockStandard)
	impl.W.Printf("")
}

// emitVarDecl renders a top-level variable (spec.md §4.8 "Variable").
// A Function-typed declaration with no initializer is an extern
// prototype; everything else goes through the declarator synthesizer,
// with the pub declaration additionally getting an `extern` forward
// declaration in the header.
func emitVarDecl(s sinks, d *ast.VarDecl) {
	name := symbolName(d.Name, d.Vis)

	if fn, ok := d.Type.(*ast.FuncType); ok && d.Init == nil {
		target := targetFor(s, d.Vis.Pub)
		target.W.Printf("extern %s %s(%s);", target.emitType(fn.Return), name, target.synthesizeParamTypeList(fn.Params))
		target.W.Printf("")
		return
	}

	if d.Vis.Pub {
		header := s.header
		header.W.Printf("extern %s;", header.synthesizeDeclarator(d.Type, name))
		header.W.Printf("")
	}

	impl := s.impl
	qualifiers := ""
	if d.Vis.Extern {
		qualifiers += "extern "
	}
	if d.Vis.Static {
		qualifiers += "static "
	}
	if d.Vis.Volatile {
		qualifiers += "volatile "
	}
	declarator := qualifiers + impl.synthesizeDeclarator(d.Type, name)
	if d.Init == nil {
		impl.W.Printf("%s;", declarator)
	} else {
		impl.W.Printf("%s = %s;", declarator, impl.emitExpr(d.Init))
	}
	impl.W.Printf("")
}

// synthesizeParamTypeList renders a types-only parameter list for the
// extern prototype of a function-typed variable with no initializer.
func (ctx *Context) synthesizeParamTypeList(params []ast.Type) string {
	if len(params) == 0 {
		return "void"
	}
	return ctx.emitParamTypeList(params)
}
