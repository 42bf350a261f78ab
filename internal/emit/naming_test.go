package emit

import (
	"testing"

	"github.com/tickc/tickc/internal/ast"
)

func TestSymbolNamePrefixesPrivateDecls(t *testing.T) {
	if got := symbolName("counter", ast.Visibility{}); got != "__u_counter" {
		t.Errorf("got %q, want __u_counter", got)
	}
}

func TestSymbolNameLeavesPubAndExternBare(t *testing.T) {
	if got := symbolName("counter", ast.Visibility{Pub: true}); got != "counter" {
		t.Errorf("pub: got %q, want counter", got)
	}
	if got := symbolName("counter", ast.Visibility{Extern: true}); got != "counter" {
		t.Errorf("extern: got %q, want counter", got)
	}
}

func TestTempNameNeverPrefixed(t *testing.T) {
	if got := tempName(3); got != "__tmp3" {
		t.Errorf("got %q, want __tmp3", got)
	}
}

func TestIdentNameTemp(t *testing.T) {
	id := ast.NewIdent("x", ast.Span{})
	id.TmpID = 7
	if got := identName(id); got != "__tmp7" {
		t.Errorf("got %q, want __tmp7", got)
	}
}

func TestIdentNameNeedsUserPrefix(t *testing.T) {
	id := ast.NewIdent("counter", ast.Span{})
	id.NeedsUserPrefix = true
	if got := identName(id); got != "__u_counter" {
		t.Errorf("got %q, want __u_counter", got)
	}
}

func TestIdentNameBareReference(t *testing.T) {
	id := ast.NewIdent("counter", ast.Span{})
	if got := identName(id); got != "counter" {
		t.Errorf("got %q, want counter", got)
	}
}

func TestEnumValueName(t *testing.T) {
	enum := ast.NewEnumDecl("Color", ast.NewBuiltinType(ast.I32, ast.Span{}), nil, ast.Visibility{}, ast.Span{})
	if got := enumValueName(enum, "Red"); got != "__u_Color_Red" {
		t.Errorf("got %q, want __u_Color_Red", got)
	}

	pubEnum := ast.NewEnumDecl("Color", ast.NewBuiltinType(ast.I32, ast.Span{}), nil, ast.Visibility{Pub: true}, ast.Span{})
	if got := enumValueName(pubEnum, "Red"); got != "Color_Red" {
		t.Errorf("got %q, want Color_Red", got)
	}
}

func TestUserTypeNameLooksUpDeclVisibility(t *testing.T) {
	declVis := map[string]ast.Visibility{
		"Widget": {Pub: true},
		"Gadget": {},
	}
	ctx := NewContext(NewWriter(nil), "x.tick", declVis)

	if got := ctx.userTypeName("Widget"); got != "Widget" {
		t.Errorf("got %q, want Widget", got)
	}
	if got := ctx.userTypeName("Gadget"); got != "__u_Gadget" {
		t.Errorf("got %q, want __u_Gadget", got)
	}
}
