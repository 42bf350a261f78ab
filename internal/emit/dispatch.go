package emit

import (
	"fmt"

	"github.com/tickc/tickc/internal/ast"
)

// numericKinds is the closed set of numeric builtin kinds the dispatch
// tables are indexed over, in a fixed order used only for iteration in
// tests.
var numericKinds = []ast.BuiltinKind{
	ast.I8, ast.I16, ast.I32, ast.I64, ast.ISZ,
	ast.U8, ast.U16, ast.U32, ast.U64, ast.USZ,
}

// arithOpKind classifies an operator category so the tables below can
// group rules by shape instead of repeating one entry per (op, type).
type arithOpKind int

const (
	kindSat arithOpKind = iota
	kindWrap
	kindCheckedAddSubMul
	kindCheckedDivModShiftNeg
)

func classifyOp(op ast.BuiltinOp) (arithOpKind, string, bool) {
	switch op {
	case ast.OpSatAdd:
		return kindSat, "add", true
	case ast.OpSatSub:
		return kindSat, "sub", true
	case ast.OpSatMul:
		return kindSat, "mul", true
	case ast.OpSatDiv:
		return kindSat, "div", true
	case ast.OpWrapAdd:
		return kindWrap, "add", true
	case ast.OpWrapSub:
		return kindWrap, "sub", true
	case ast.OpWrapMul:
		return kindWrap, "mul", true
	case ast.OpWrapDiv:
		return kindWrap, "div", true
	case ast.OpCheckedAdd:
		return kindCheckedAddSubMul, "add", true
	case ast.OpCheckedSub:
		return kindCheckedAddSubMul, "sub", true
	case ast.OpCheckedMul:
		return kindCheckedAddSubMul, "mul", true
	case ast.OpCheckedDiv:
		return kindCheckedDivModShiftNeg, "div", true
	case ast.OpCheckedMod:
		return kindCheckedDivModShiftNeg, "mod", true
	case ast.OpCheckedShl:
		return kindCheckedDivModShiftNeg, "shl", true
	case ast.OpCheckedShr:
		return kindCheckedDivModShiftNeg, "shr", true
	case ast.OpCheckedNeg:
		return kindCheckedDivModShiftNeg, "neg", true
	default:
		return 0, "", false
	}
}

// RuntimeFunc looks up RUNTIME_FUNCS[op][kind] (spec.md §4.4 table 1).
// ok is false for an absent cell, meaning the emitter must fall back to
// the native C operator (or, for CHECKED_NEG on an unsigned type, must
// never emit the operation at all — callers must check IsUnsignedNeg
// separately before treating an absent cell as "use native operator").
func RuntimeFunc(op ast.BuiltinOp, typ ast.BuiltinKind) (name string, ok bool) {
	opKind, mnemonic, known := classifyOp(op)
	if !known || !typ.IsNumeric() {
		return "", false
	}

	switch opKind {
	case kindSat:
		// Saturating ops are defined for every numeric type, signed or
		// unsigned: clamping to the representable range is meaningful
		// either way.
		return fmt.Sprintf("tick_sat_%s_%s", mnemonic, typ), true

	case kindWrap:
		// Unsigned C arithmetic is already modulo-2^n, so a wrapping op
		// on an unsigned type is the native operator: the cell is absent.
		if typ.IsUnsigned() {
			return "", false
		}
		return fmt.Sprintf("tick_wrap_%s_%s", mnemonic, typ), true

	case kindCheckedAddSubMul:
		// No overflow can occur at the language level for unsigned
		// add/sub/mul (wrap semantics are the contract), so these route
		// to the wrap entry; for unsigned that wrap entry is itself
		// absent, meaning the native operator is used.
		if typ.IsUnsigned() {
			return "", false
		}
		return fmt.Sprintf("tick_checked_%s_%s", mnemonic, typ), true

	case kindCheckedDivModShiftNeg:
		if mnemonic == "neg" && typ.IsUnsigned() {
			// Unsigned negation must never be emitted (§4.4 rule 1b).
			return "", false
		}
		return fmt.Sprintf("tick_checked_%s_%s", mnemonic, typ), true
	}

	return "", false
}

// IsUnsignedNeg reports whether op/typ is the one cell where absence
// means "illegal", not "use the native operator": CHECKED_NEG on an
// unsigned type. Callers of RuntimeFunc must consult this before
// falling back to a native `-x`.
func IsUnsignedNeg(op ast.BuiltinOp, typ ast.BuiltinKind) bool {
	return op == ast.OpCheckedNeg && typ.IsUnsigned()
}

// IsWideningCast reports whether converting src to dst is value
// preserving (spec.md §4.4 "Widening-cast predicate"): wider
// signed-from-signed, wider unsigned-from-unsigned, or any
// unsigned-to-strictly-larger-signed.
func IsWideningCast(src, dst ast.BuiltinKind) bool {
	if !src.IsNumeric() || !dst.IsNumeric() {
		return false
	}
	srcW, dstW := src.BitWidth(), dst.BitWidth()
	switch {
	case src.IsSigned() && dst.IsSigned():
		return dstW > srcW
	case src.IsUnsigned() && dst.IsUnsigned():
		return dstW > srcW
	case src.IsUnsigned() && dst.IsSigned():
		return dstW > srcW
	default:
		// signed-to-unsigned is never value preserving (sign loss).
		return false
	}
}

// CastFunc looks up CAST_FUNCS[src][dst] (spec.md §4.4 table 2). ok is
// false when a plain C cast `(T)expr` is well-defined and sufficient;
// ok is true when the narrowing or sign-changing conversion must route
// through a runtime checked-cast call that panics out of range.
func CastFunc(src, dst ast.BuiltinKind) (name string, ok bool) {
	if !src.IsNumeric() || !dst.IsNumeric() || src == dst {
		return "", false
	}
	if IsWideningCast(src, dst) {
		return "", false
	}
	return fmt.Sprintf("tick_checked_cast_%s_%s", src, dst), true
}
