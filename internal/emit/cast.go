package emit

import (
	"fmt"

	"github.com/tickc/tickc/internal/ast"
)

// builtinKindOf extracts the resolved builtin kind of t, if t is a
// builtin NamedType. Used by the cast-strategy computation to turn a
// Type into the ast.BuiltinKind the dispatch tables are indexed over.
func builtinKindOf(t ast.Type) (ast.BuiltinKind, bool) {
	named, ok := t.(*ast.NamedType)
	if !ok || named.IsUserDefined() {
		return "", false
	}
	return named.Builtin, true
}

// exprResolvedType recovers the resolved type analysis attached to an
// operand expression, where one is available. Not every expression kind
// carries one (calls, initializers, enum references); for those the
// cast strategy below falls back to a plain C cast, per spec.md §4.5
// and the §9 "Open question".
func exprResolvedType(e ast.Expr) (ast.Type, bool) {
	switch ex := e.(type) {
	case *ast.IntLit:
		return ex.Typ, ex.Typ != nil
	case *ast.UintLit:
		return ex.Typ, ex.Typ != nil
	case *ast.Ident:
		return ex.ResolvedType, ex.ResolvedType != nil
	case *ast.BinaryExpr:
		return ex.ResolvedType, ex.ResolvedType != nil
	case *ast.UnaryExpr:
		return ex.ResolvedType, ex.ResolvedType != nil
	case *ast.IndexExpr:
		return ex.ResolvedType, ex.ResolvedType != nil
	case *ast.FieldExpr:
		return ex.ResolvedType, ex.ResolvedType != nil
	case *ast.CastExpr:
		return ex.Target, ex.Target != nil
	default:
		return nil, false
	}
}

// castStrategy computes how to render `cast<Target>(operand)` (spec.md
// §4.5). It returns the C source text for the whole cast expression.
func (ctx *Context) castStrategy(target ast.Type, operand ast.Expr) string {
	operandSrc := ctx.emitExpr(operand)
	dstKind, dstKnown := builtinKindOf(target)

	srcType, haveSrcType := exprResolvedType(operand)
	var srcKind ast.BuiltinKind
	var srcKnown bool
	if haveSrcType {
		srcKind, srcKnown = builtinKindOf(srcType)
	}

	if !dstKnown || !srcKnown {
		// Either side is not a known numeric builtin: a plain cast is
		// the only thing we can do. This relies on analysis having only
		// left unresolved types on operands where a bare cast is
		// provably safe (spec.md §4.5, §9 "Open question" — the latent
		// hazard the spec calls out explicitly).
		return fmt.Sprintf("(%s)%s", ctx.emitType(target), operandSrc)
	}

	if IsWideningCast(srcKind, dstKind) {
		return fmt.Sprintf("(%s)%s", ctx.emitType(target), operandSrc)
	}

	if fn, ok := CastFunc(srcKind, dstKind); ok {
		return fmt.Sprintf("%s(%s)", fn, operandSrc)
	}

	// src == dst, or a pair CastFunc otherwise declined: a plain cast is
	// well defined.
	return fmt.Sprintf("(%s)%s", ctx.emitType(target), operandSrc)
}
