package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tickc/tickc/internal/ast"
	"github.com/tickc/tickc/internal/diag"
)

// intrinsicRuntimeNames maps the fixed builtin-intrinsic identifiers
// the lowering pass may tag an Ident with to their runtime entry points
// (spec.md §4.6 "Identifier", §6.3).
var intrinsicRuntimeNames = map[string]string{
	"@dbg":         "tick_debug_log",
	"@panic":       "tick_panic",
	"@check_deref": "tick_check_deref",
}

// formatStringIntrinsics is the subset of intrinsics whose first
// argument is a printf-style format string and must be wrapped
// `(const char*)` at the call site (spec.md §4.6 "Call").
var formatStringIntrinsics = map[string]bool{
	"@dbg":   true,
	"@panic": true,
}

// nativeBinarySpelling returns the native C operator for op, used both
// for operator categories that always render natively (comparisons,
// bitwise, logical) and as the fallback when a dispatch-table cell is
// absent (spec.md §4.4, §4.6).
func nativeBinarySpelling(op ast.BuiltinOp) (string, bool) {
	switch op {
	case ast.OpSatAdd, ast.OpWrapAdd, ast.OpCheckedAdd:
		return "+", true
	case ast.OpSatSub, ast.OpWrapSub, ast.OpCheckedSub:
		return "-", true
	case ast.OpSatMul, ast.OpWrapMul, ast.OpCheckedMul:
		return "*", true
	case ast.OpSatDiv, ast.OpWrapDiv, ast.OpCheckedDiv:
		return "/", true
	case ast.OpCheckedMod:
		return "%", true
	case ast.OpCheckedShl:
		return "<<", true
	case ast.OpCheckedShr:
		return ">>", true
	case ast.OpEq:
		return "==", true
	case ast.OpNe:
		return "!=", true
	case ast.OpLt:
		return "<", true
	case ast.OpLe:
		return "<=", true
	case ast.OpGt:
		return ">", true
	case ast.OpGe:
		return ">=", true
	case ast.OpBitAnd:
		return "&", true
	case ast.OpBitOr:
		return "|", true
	case ast.OpBitXor:
		return "^", true
	case ast.OpLogicalAnd:
		return "&&", true
	case ast.OpLogicalOr:
		return "||", true
	default:
		return "", false
	}
}

// emitExpr renders an expression (spec.md §4.6). Dispatch is a total
// type switch; an unrecognized concrete type is an invariant violation
// (spec.md §9).
func (ctx *Context) emitExpr(e ast.Expr) string {
	switch ex := e.(type) {
	case *ast.IntLit:
		// Rendered through Go's decimal formatting, the same value a C
		// emitter would produce via a "%lld"-style conversion (spec.md
		// §4.6).
		return strconv.FormatInt(ex.Value, 10)

	case *ast.UintLit:
		return strconv.FormatUint(ex.Value, 10)

	case *ast.StringLit:
		return escapeCString(ex.Value)

	case *ast.Ident:
		if ex.Intrinsic != "" {
			if name, ok := intrinsicRuntimeNames[ex.Intrinsic]; ok {
				return name
			}
			fail(diag.CodeUnhandledNodeKind, "unknown intrinsic "+ex.Intrinsic, ex.Span())
		}
		return identName(ex)

	case *ast.BinaryExpr:
		return ctx.emitBinaryExpr(ex)

	case *ast.UnaryExpr:
		return ctx.emitUnaryExpr(ex)

	case *ast.CallExpr:
		return ctx.emitCallExpr(ex)

	case *ast.FieldExpr:
		return ctx.emitFieldExpr(ex)

	case *ast.IndexExpr:
		return ctx.emitIndexExpr(ex)

	case *ast.SliceExpr:
		return ctx.emitSliceExpr(ex)

	case *ast.CastExpr:
		return ctx.castStrategy(ex.Target, ex.Operand)

	case *ast.EnumValueExpr:
		return enumValueName(ex.Enum, ex.ValueName)

	case *ast.StructInitExpr:
		return ctx.emitStructInitExpr(ex)

	case *ast.ArrayInitExpr:
		return ctx.emitArrayInitExpr(ex)

	default:
		unreachable(fmt.Sprintf("%T", e), e.Span())
		return ""
	}
}

func (ctx *Context) emitBinaryExpr(ex *ast.BinaryExpr) string {
	left := ctx.emitExpr(ex.Left)
	right := ctx.emitExpr(ex.Right)

	kind, ok := builtinKindOf(ex.ResolvedType)
	if !ok {
		fail(diag.CodeUnresolvedType, "binary expression missing resolved builtin type", ex.Span())
	}

	if fn, ok := RuntimeFunc(ex.Op, kind); ok {
		return fmt.Sprintf("%s(%s, %s)", fn, left, right)
	}

	spelling, ok := nativeBinarySpelling(ex.Op)
	if !ok {
		fail(diag.CodeUnhandledNodeKind, fmt.Sprintf("unhandled binary operator %q", ex.Op), ex.Span())
	}
	return fmt.Sprintf("(%s %s %s)", left, spelling, right)
}

func (ctx *Context) emitUnaryExpr(ex *ast.UnaryExpr) string {
	if ex.Op == ast.OpAddrOf {
		return ctx.emitAddrOf(ex)
	}

	operand := ctx.emitExpr(ex.Operand)
	kind, ok := builtinKindOf(ex.ResolvedType)
	if !ok {
		fail(diag.CodeUnresolvedType, "unary expression missing resolved builtin type", ex.Span())
	}

	if fn, ok := RuntimeFunc(ex.Op, kind); ok {
		return fmt.Sprintf("%s(%s)", fn, operand)
	}
	if IsUnsignedNeg(ex.Op, kind) {
		fail(diag.CodeUnhandledNodeKind, "unsigned negation must never be emitted", ex.Span())
	}
	spelling, ok := nativeBinarySpelling(ex.Op)
	if !ok {
		spelling = "-"
	}
	return fmt.Sprintf("(%s%s)", spelling, operand)
}

// emitAddrOf renders `&expr`, special-casing address-of over a slice
// index so the result recovers a typed pointer instead of dereferencing
// through one (spec.md §4.6 "Binary / unary ... special case").
func (ctx *Context) emitAddrOf(ex *ast.UnaryExpr) string {
	if idx, ok := ex.Operand.(*ast.IndexExpr); ok {
		if idx.IsSliceIndex {
			return ctx.sliceIndexPtrExpr(idx)
		}
		return fmt.Sprintf("(&%s[%s])", ctx.emitExpr(idx.Target), ctx.emitExpr(idx.Index))
	}
	return fmt.Sprintf("(&%s)", ctx.emitExpr(ex.Operand))
}

// sliceIndexPtrExpr renders the pointer-typed form
// `(T*)tick_slice_index_ptr(s, i, sizeof(T))`, shared by &(s[i]) and by
// plain s[i] (which additionally dereferences it).
func (ctx *Context) sliceIndexPtrExpr(idx *ast.IndexExpr) string {
	if idx.ResolvedType == nil {
		fail(diag.CodeUnresolvedType, "slice index missing resolved element type", idx.Span())
	}
	elemType := ctx.emitType(idx.ResolvedType)
	target := ctx.emitExpr(idx.Target)
	index := ctx.emitExpr(idx.Index)
	return fmt.Sprintf("(%s*)tick_slice_index_ptr(%s, %s, sizeof(%s))", elemType, target, index, elemType)
}

func (ctx *Context) emitCallExpr(ex *ast.CallExpr) string {
	callee := ctx.emitExpr(ex.Callee)

	wrapsFormat := false
	if id, ok := ex.Callee.(*ast.Ident); ok && id.Intrinsic != "" {
		wrapsFormat = formatStringIntrinsics[id.Intrinsic]
	}

	args := make([]string, len(ex.Args))
	for i, a := range ex.Args {
		rendered := ctx.emitExpr(a)
		if i == 0 && wrapsFormat {
			rendered = "(const char*)" + rendered
		}
		args[i] = rendered
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", "))
}

func (ctx *Context) emitFieldExpr(ex *ast.FieldExpr) string {
	obj := ctx.emitExpr(ex.Object)
	accessor := "."
	if ex.ObjectIsPointer {
		accessor = "->"
	}
	access := fmt.Sprintf("(%s)%s%s", obj, accessor, ex.Field)

	if ex.Field == "ptr" {
		if ptrType, ok := ex.ResolvedType.(*ast.PointerType); ok {
			return fmt.Sprintf("(%s)%s", ctx.emitType(ptrType), access)
		}
	}
	return access
}

func (ctx *Context) emitIndexExpr(ex *ast.IndexExpr) string {
	if ex.IsSliceIndex {
		return "*" + ctx.sliceIndexPtrExpr(ex)
	}
	return fmt.Sprintf("(%s)[%s]", ctx.emitExpr(ex.Target), ctx.emitExpr(ex.Index))
}

func (ctx *Context) emitSliceExpr(ex *ast.SliceExpr) string {
	if ex.ResolvedType == nil {
		fail(diag.CodeUnresolvedType, "slice expression missing resolved element type", ex.Span())
	}
	elemSize := fmt.Sprintf("sizeof(%s)", ctx.emitType(ex.ResolvedType))
	source := ctx.emitExpr(ex.Source)

	switch ex.SourceKind {
	case ast.SliceFromArray:
		count := fmt.Sprintf("sizeof(%s)/sizeof((%s)[0])", source, source)
		start := "0"
		if ex.Start != nil {
			start = ctx.emitExpr(ex.Start)
		}
		end := count
		if ex.End != nil {
			end = ctx.emitExpr(ex.End)
		}
		return fmt.Sprintf("tick_slice_from_array(%s, %s, %s, %s, %s)", source, count, start, end, elemSize)

	case ast.SliceFromSlice:
		start := "0"
		if ex.Start != nil {
			start = ctx.emitExpr(ex.Start)
		}
		end := fmt.Sprintf("(%s).len", source)
		if ex.End != nil {
			end = ctx.emitExpr(ex.End)
		}
		return fmt.Sprintf("tick_slice_from_slice(%s, %s, %s, %s)", source, start, end, elemSize)

	case ast.SliceFromPointer:
		if ex.End == nil {
			fail(diag.CodeAmbiguousSliceEnd, "slice construction from a pointer requires an explicit end", ex.Span())
		}
		start := "0"
		if ex.Start != nil {
			start = ctx.emitExpr(ex.Start)
		}
		end := ctx.emitExpr(ex.End)
		return fmt.Sprintf("tick_slice_from_ptr(%s, %s, %s, %s)", source, start, end, elemSize)

	default:
		unreachable(fmt.Sprintf("slice source kind %q", ex.SourceKind), ex.Span())
		return ""
	}
}

func (ctx *Context) emitStructInitExpr(ex *ast.StructInitExpr) string {
	fields := make([]string, len(ex.Fields))
	for i, f := range ex.Fields {
		if !isLiteralOrIdent(f.Value) {
			fail(diag.CodeNonLiteralInitField, "struct-initializer field value must be a literal or identifier reference", f.Value.Span())
		}
		fields[i] = fmt.Sprintf(".%s = %s", f.Name, ctx.emitExpr(f.Value))
	}
	return fmt.Sprintf("(%s){ %s }", ctx.emitType(ex.Type), strings.Join(fields, ", "))
}

func (ctx *Context) emitArrayInitExpr(ex *ast.ArrayInitExpr) string {
	elems := make([]string, len(ex.Elements))
	for i, e := range ex.Elements {
		elems[i] = ctx.emitExpr(e)
	}
	return fmt.Sprintf("{ %s }", strings.Join(elems, ", "))
}

// isLiteralOrIdent enforces invariant 8: struct-initializer field
// values are only literals or identifier references.
func isLiteralOrIdent(e ast.Expr) bool {
	switch e.(type) {
	case *ast.IntLit, *ast.UintLit, *ast.StringLit, *ast.Ident, *ast.EnumValueExpr:
		return true
	default:
		return false
	}
}

// escapeCString renders a Go string as a C string literal using the
// explicit escape table of spec.md §4.6/§9: named escapes for NL, CR,
// TAB, backslash, double-quote, NUL; printable ASCII passes through;
// everything else becomes \xNN. This is hand-rolled, not delegated to
// strconv.Quote, because the two escaping rules differ (Go's quoting
// does not match C's \xNN-for-everything-else policy and the spec
// requires byte-for-byte determinism across platforms).
func escapeCString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			if c >= 0x20 && c <= 0x7E {
				b.WriteByte(c)
			} else {
				fmt.Fprintf(&b, `\x%02X`, c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
