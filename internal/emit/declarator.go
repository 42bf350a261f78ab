package emit

import (
	"fmt"

	"github.com/tickc/tickc/internal/ast"
)

// synthesizeDeclarator composes `<type-prefix> <name-part> <suffix>`
// for a declaration or parameter (spec.md §4.3). It is the one place
// that inverts C's context-sensitive declarator syntax: pointer-to-array
// and function-pointer shapes need the name wrapped inside the type
// instead of appended after it.
func (ctx *Context) synthesizeDeclarator(t ast.Type, name string) string {
	switch ty := t.(type) {
	case *ast.PointerType:
		if arr, ok := ty.Pointee.(*ast.ArrayType); ok {
			// Pointer-to-array: `E (*name)[N]` (spec.md §4.3, boundary
			// scenario 1).
			return fmt.Sprintf("%s (*%s)[%d]", ctx.emitType(arr.Elem), name, arr.Size)
		}
		if fn, ok := ty.Pointee.(*ast.FuncType); ok {
			// Function-pointer variable: `R (*name)(P...)` (spec.md
			// §4.3, boundary scenario 2).
			return fmt.Sprintf("%s (*%s)(%s)", ctx.emitType(fn.Return), name, ctx.emitParamTypeList(fn.Params))
		}
		return fmt.Sprintf("%s %s", ctx.emitType(t), name)

	case *ast.ArrayType:
		return fmt.Sprintf("%s %s[%d]", ctx.emitType(ty.Elem), name, ty.Size)

	case *ast.FuncType:
		// A bare function-typed declaration (no pointer) renders as a
		// prototype: `R name(P...)` (spec.md §4.8 "Function-typed
		// declarations (no initializer body, type is Function) render
		// as `extern R name(P...);`").
		return fmt.Sprintf("%s %s(%s)", ctx.emitType(ty.Return), name, ctx.emitParamTypeList(ty.Params))

	default:
		return fmt.Sprintf("%s %s", ctx.emitType(t), name)
	}
}

// synthesizeParam renders one function parameter declarator. typesOnly
// suppresses the name, for header prototypes (spec.md §4.8 "types-only
// in the header").
func (ctx *Context) synthesizeParam(p ast.Param, typesOnly bool) string {
	if typesOnly {
		return ctx.emitType(p.Type)
	}
	return ctx.synthesizeDeclarator(p.Type, p.Name)
}

// synthesizeParamList renders a full parameter list, `(void)` when
// empty (spec.md §4.3, §4.8).
func (ctx *Context) synthesizeParamList(params []ast.Param, typesOnly bool) string {
	if len(params) == 0 {
		return "void"
	}
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += ctx.synthesizeParam(p, typesOnly)
	}
	return out
}
