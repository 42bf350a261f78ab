package emit

import (
	"testing"

	"github.com/tickc/tickc/internal/ast"
)

func TestRuntimeFuncSatDefinedForEveryNumericType(t *testing.T) {
	for _, k := range numericKinds {
		name, ok := RuntimeFunc(ast.OpSatAdd, k)
		if !ok {
			t.Errorf("expected OpSatAdd defined for %s", k)
		}
		want := "tick_sat_add_" + string(k)
		if name != want {
			t.Errorf("OpSatAdd(%s) = %q, want %q", k, name, want)
		}
	}
}

func TestRuntimeFuncWrapUnsignedFallsBackToNative(t *testing.T) {
	for _, k := range []ast.BuiltinKind{ast.U8, ast.U16, ast.U32, ast.U64, ast.USZ} {
		if _, ok := RuntimeFunc(ast.OpWrapAdd, k); ok {
			t.Errorf("expected absent cell (native operator) for wrap add on unsigned %s", k)
		}
	}
}

func TestRuntimeFuncWrapSignedRoutesToRuntime(t *testing.T) {
	name, ok := RuntimeFunc(ast.OpWrapAdd, ast.I32)
	if !ok || name != "tick_wrap_add_i32" {
		t.Errorf("got (%q, %v), want (tick_wrap_add_i32, true)", name, ok)
	}
}

func TestRuntimeFuncCheckedAddSubMulUnsignedRoutesToWrapAbsence(t *testing.T) {
	if _, ok := RuntimeFunc(ast.OpCheckedAdd, ast.U32); ok {
		t.Errorf("expected checked add on unsigned to be absent (native operator)")
	}
	name, ok := RuntimeFunc(ast.OpCheckedAdd, ast.I32)
	if !ok || name != "tick_checked_add_i32" {
		t.Errorf("got (%q, %v), want (tick_checked_add_i32, true)", name, ok)
	}
}

func TestRuntimeFuncCheckedNegUnsignedIsIllegal(t *testing.T) {
	if _, ok := RuntimeFunc(ast.OpCheckedNeg, ast.U32); ok {
		t.Errorf("expected absent cell for checked neg on unsigned")
	}
	if !IsUnsignedNeg(ast.OpCheckedNeg, ast.U32) {
		t.Errorf("expected IsUnsignedNeg true for checked neg on unsigned")
	}
	if IsUnsignedNeg(ast.OpCheckedNeg, ast.I32) {
		t.Errorf("expected IsUnsignedNeg false for checked neg on signed")
	}
}

func TestRuntimeFuncCheckedDivModShiftDefinedForEveryNumericType(t *testing.T) {
	for _, op := range []ast.BuiltinOp{ast.OpCheckedDiv, ast.OpCheckedMod, ast.OpCheckedShl, ast.OpCheckedShr} {
		for _, k := range numericKinds {
			if _, ok := RuntimeFunc(op, k); !ok {
				t.Errorf("expected %v defined for %s", op, k)
			}
		}
	}
}

func TestIsWideningCast(t *testing.T) {
	cases := []struct {
		src, dst ast.BuiltinKind
		want     bool
	}{
		{ast.I8, ast.I16, true},
		{ast.I16, ast.I8, false},
		{ast.I8, ast.I8, false},
		{ast.U8, ast.U16, true},
		{ast.U16, ast.U8, false},
		{ast.U8, ast.I16, true},
		{ast.U16, ast.I16, false}, // same width, sign-loss risk
		{ast.I8, ast.U16, false},  // signed-to-unsigned never widening
		{ast.U64, ast.I64, false}, // same width
	}
	for _, c := range cases {
		if got := IsWideningCast(c.src, c.dst); got != c.want {
			t.Errorf("IsWideningCast(%s, %s) = %v, want %v", c.src, c.dst, got, c.want)
		}
	}
}

func TestCastFuncIdentityAndWideningAreAbsent(t *testing.T) {
	if _, ok := CastFunc(ast.I32, ast.I32); ok {
		t.Errorf("identity cast should be absent")
	}
	if _, ok := CastFunc(ast.I8, ast.I16); ok {
		t.Errorf("widening cast should be absent")
	}
}

func TestCastFuncNarrowingRoutesToRuntime(t *testing.T) {
	name, ok := CastFunc(ast.I16, ast.I8)
	if !ok || name != "tick_checked_cast_i16_i8" {
		t.Errorf("got (%q, %v), want (tick_checked_cast_i16_i8, true)", name, ok)
	}
}

// TestCastFuncPairCountMatchesRuntimeABI locks the 63-pair count the
// runtime package's declared tick_checked_cast_* functions must match
// (internal/runtime/runtime.h).
func TestCastFuncPairCountMatchesRuntimeABI(t *testing.T) {
	count := 0
	for _, src := range numericKinds {
		for _, dst := range numericKinds {
			if _, ok := CastFunc(src, dst); ok {
				count++
			}
		}
	}
	if count != 63 {
		t.Errorf("expected 63 checked-cast pairs, got %d", count)
	}
}
