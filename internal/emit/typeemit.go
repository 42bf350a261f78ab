package emit

import (
	"fmt"
	"strings"

	"github.com/tickc/tickc/internal/ast"
	"github.com/tickc/tickc/internal/diag"
)

// builtinSpellings maps each closed builtin kind to the runtime header's
// type alias spelling (spec.md §4.2 "identical spellings to the runtime
// header").
var builtinSpellings = map[ast.BuiltinKind]string{
	ast.I8: "i8", ast.I16: "i16", ast.I32: "i32", ast.I64: "i64", ast.ISZ: "isz",
	ast.U8: "u8", ast.U16: "u16", ast.U32: "u32", ast.U64: "u64", ast.USZ: "usz",
	ast.Bool: "bool", ast.Void: "void",
}

// sliceRuntimeType is the fixed runtime struct name backing every
// Slice(_) type (spec.md §4.2, §6.3).
const sliceRuntimeType = "TickSlice"

// emitType renders the "leading" portion of a C type: everything before
// a declarator name (spec.md §4.2). Callers that need a full declarator
// (a name, possibly array/pointer suffixes) use synthesizeDeclarator
// instead; emitType alone is correct for contexts like a cast `(T)` or
// a struct-initializer's compound-literal type tag.
func (ctx *Context) emitType(t ast.Type) string {
	switch ty := t.(type) {
	case nil:
		// An untyped `null` literal's type position: spec.md §4.2
		// "void-typed null (untyped) -> void".
		return "void"

	case *ast.NamedType:
		if !ty.IsUserDefined() {
			spelling, ok := builtinSpellings[ty.Builtin]
			if !ok {
				fail(diag.CodeUnresolvedType, fmt.Sprintf("unknown builtin kind %q", ty.Builtin), ty.Span())
			}
			return spelling
		}
		return ctx.userTypeName(ty.Name)

	case *ast.PointerType:
		if fn, ok := ty.Pointee.(*ast.FuncType); ok {
			// Pointer(Function(...)) delegates to the function-type path
			// without prepending another `*`: the function-pointer
			// rendering already contains `(*)` (spec.md §4.2).
			return ctx.emitFuncTypeLeading(fn)
		}
		return ctx.emitType(ty.Pointee) + "*"

	case *ast.ArrayType:
		// Array brackets belong to the declarator suffix, not the type
		// prefix (spec.md §4.2).
		return ctx.emitType(ty.Elem)

	case *ast.SliceType:
		return sliceRuntimeType

	case *ast.FuncType:
		return ctx.emitFuncTypeLeading(ty)

	default:
		unreachable(fmt.Sprintf("%T", t), t.Span())
		return ""
	}
}

// emitFuncTypeLeading renders `R (*)(P...)`, with an empty parameter
// list rendered as `(void)` (spec.md §4.2).
func (ctx *Context) emitFuncTypeLeading(fn *ast.FuncType) string {
	ret := ctx.emitType(fn.Return)
	return fmt.Sprintf("%s (*)(%s)", ret, ctx.emitParamTypeList(fn.Params))
}

func (ctx *Context) emitParamTypeList(params []ast.Type) string {
	if len(params) == 0 {
		return "void"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = ctx.emitType(p)
	}
	return strings.Join(parts, ", ")
}
