package ast

import "testing"

func TestSpanIsValid(t *testing.T) {
	if (Span{}).IsValid() {
		t.Error("zero span should be invalid")
	}
	if !(Span{Line: 1}).IsValid() {
		t.Error("span with Line: 1 should be valid")
	}
}

func TestBuiltinKindClassification(t *testing.T) {
	if !I32.IsSigned() || I32.IsUnsigned() {
		t.Errorf("i32 should be signed only")
	}
	if !U32.IsUnsigned() || U32.IsSigned() {
		t.Errorf("u32 should be unsigned only")
	}
	if Bool.IsNumeric() || Void.IsNumeric() {
		t.Errorf("bool/void should not be numeric")
	}
	if !I32.IsNumeric() || !U32.IsNumeric() {
		t.Errorf("i32/u32 should be numeric")
	}
}

func TestBuiltinKindBitWidth(t *testing.T) {
	cases := map[BuiltinKind]int{
		I8: 8, U8: 8, I16: 16, U16: 16, I32: 32, U32: 32,
		I64: 64, U64: 64, ISZ: 64, USZ: 64, Bool: 0, Void: 0,
	}
	for k, want := range cases {
		if got := k.BitWidth(); got != want {
			t.Errorf("BitWidth(%s) = %d, want %d", k, got, want)
		}
	}
}

func TestNamedTypeIsUserDefined(t *testing.T) {
	builtin := NewBuiltinType(I32, Span{})
	if builtin.IsUserDefined() {
		t.Error("builtin type should not be user-defined")
	}
	user := NewUserType("Widget", Span{})
	if !user.IsUserDefined() {
		t.Error("named type with no builtin kind should be user-defined")
	}
}

func TestIdentIsTemp(t *testing.T) {
	id := NewIdent("x", Span{})
	if id.IsTemp() {
		t.Error("fresh ident should not be a temp")
	}
	id.TmpID = 3
	if !id.IsTemp() {
		t.Error("ident with non-zero TmpID should be a temp")
	}
}
