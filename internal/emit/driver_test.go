package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickc/tickc/internal/ast"
)

func newSinkPair() (sinks, *bytes.Buffer, *bytes.Buffer) {
	var headerBuf, implBuf bytes.Buffer
	declVis := map[string]ast.Visibility{}
	s := sinks{
		header: NewContext(NewWriter(&headerBuf), "x.tick", declVis),
		impl:   NewContext(NewWriter(&implBuf), "x.tick", declVis),
	}
	return s, &headerBuf, &implBuf
}

func TestBuildDeclVisRecordsEveryTypeDecl(t *testing.T) {
	mod := &ast.Module{Decls: []ast.Decl{
		ast.NewStructDecl("Widget", nil, ast.Visibility{Pub: true}, ast.Span{}),
		ast.NewEnumDecl("Color", ast.NewBuiltinType(ast.I32, ast.Span{}), nil, ast.Visibility{}, ast.Span{}),
		ast.NewFuncDecl("main", nil, nil, ast.NewBlockStmt(nil, ast.Span{}), ast.Visibility{Pub: true}, ast.Span{}),
	}}
	vis := buildDeclVis(mod)
	assert.Contains(t, vis, "Widget")
	assert.Equal(t, ast.Visibility{Pub: true}, vis["Widget"])
	assert.Contains(t, vis, "Color")
	assert.Equal(t, ast.Visibility{}, vis["Color"])

	assert.NotContains(t, vis, "main", "FuncDecl should not contribute a declVis entry")
}

func TestEmitEnumDeclRendersTypedefAndValues(t *testing.T) {
	s, headerBuf, implBuf := newSinkPair()
	d := ast.NewEnumDecl("Color", ast.NewBuiltinType(ast.I32, ast.Span{}), []ast.EnumValue{
		{Name: "Red", Value: 0},
		{Name: "Blue", Value: 1},
	}, ast.Visibility{Pub: true}, ast.Span{})
	emitEnumDecl(s, d)

	want := "typedef i32 Color;\nstatic const Color Color_Red = 0;\nstatic const Color Color_Blue = 1;\n\n"
	if got := headerBuf.String(); got != want {
		t.Errorf("header got %q, want %q", got, want)
	}
	if implBuf.Len() != 0 {
		t.Errorf("expected no impl output for a pub enum, got %q", implBuf.String())
	}
}

func TestEmitStructDeclForwardOnly(t *testing.T) {
	s, headerBuf, _ := newSinkPair()
	d := ast.NewStructDecl("Widget", []ast.Field{{Name: "count", Type: ast.NewBuiltinType(ast.I32, ast.Span{})}},
		ast.Visibility{Pub: true, ForwardDecl: true}, ast.Span{})
	emitStructDecl(s, d)

	want := "typedef struct Widget Widget;\n\n"
	if got := headerBuf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitStructDeclFullWithAttrs(t *testing.T) {
	s, _, implBuf := newSinkPair()
	d := ast.NewStructDecl("Widget", []ast.Field{
		{Name: "count", Type: ast.NewBuiltinType(ast.I32, ast.Span{})},
		{Name: "flag", Type: ast.NewBuiltinType(ast.Bool, ast.Span{}), Alignment: 4},
	}, ast.Visibility{}, ast.Span{})
	d.IsPacked = true
	emitStructDecl(s, d)

	want := "typedef struct __attribute__((packed)) {\n" +
		"  i32 count;\n" +
		"  bool flag __attribute__((aligned(4)));\n" +
		"} __u_Widget;\n\n"
	if got := implBuf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitUnionDeclRendersTagAndPayload(t *testing.T) {
	s, _, implBuf := newSinkPair()
	tag := ast.NewEnumDecl("ShapeTag", ast.NewBuiltinType(ast.I32, ast.Span{}), []ast.EnumValue{
		{Name: "Circle", Value: 0},
	}, ast.Visibility{}, ast.Span{})
	d := ast.NewUnionDecl("Shape", []ast.Field{
		{Name: "radius", Type: ast.NewBuiltinType(ast.I32, ast.Span{})},
	}, tag, ast.Visibility{}, ast.Span{})
	emitUnionDecl(s, d)

	want := "typedef i32 __u_ShapeTag;\n" +
		"static const __u_ShapeTag __u_ShapeTag_Circle = 0;\n\n" +
		"typedef struct {\n" +
		"  __u_ShapeTag tag;\n" +
		"  union {\n" +
		"    i32 radius;\n" +
		"  };\n" +
		"} __u_Shape;\n\n"
	if got := implBuf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitUnionDeclNilTagTypeFails(t *testing.T) {
	s, _, _ := newSinkPair()
	d := ast.NewUnionDecl("Shape", []ast.Field{
		{Name: "radius", Type: i32Type()},
	}, nil, ast.Visibility{}, ast.Span{})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for union declaration with nil TagType")
		}
		if _, ok := r.(*InvariantViolation); !ok {
			t.Fatalf("expected *InvariantViolation, got %T", r)
		}
	}()
	emitUnionDecl(s, d)
}

func TestEmitFuncDeclPubWithBodyWritesHeaderAndImpl(t *testing.T) {
	s, headerBuf, implBuf := newSinkPair()
	body := ast.NewBlockStmt([]ast.Stmt{
		ast.NewReturnStmt(ast.NewBinaryExpr(ast.OpCheckedAdd, ast.NewIdent("a", ast.Span{}), ast.NewIdent("b", ast.Span{}), i32Type(), ast.Span{}), ast.Span{}),
	}, ast.Span{})
	d := ast.NewFuncDecl("add", []ast.Param{
		{Name: "a", Type: i32Type()},
		{Name: "b", Type: i32Type()},
	}, i32Type(), body, ast.Visibility{Pub: true}, ast.Span{})
	emitFuncDecl(s, d)

	wantHeader := "i32 add(i32, i32);\n\n"
	if got := headerBuf.String(); got != wantHeader {
		t.Errorf("header got %q, want %q", got, wantHeader)
	}
	wantImpl := "i32 add(i32 a, i32 b) {\n  return tick_checked_add_i32(a, b);\n}\n\n"
	if got := implBuf.String(); got != wantImpl {
		t.Errorf("impl got %q, want %q", got, wantImpl)
	}
}

func TestEmitFuncDeclPrivatePrototypeOnly(t *testing.T) {
	s, headerBuf, implBuf := newSinkPair()
	d := ast.NewFuncDecl("helper", nil, nil, nil, ast.Visibility{}, ast.Span{})
	emitFuncDecl(s, d)

	if headerBuf.Len() != 0 {
		t.Errorf("expected no header output for a private function, got %q", headerBuf.String())
	}
	want := "void __u_helper(void);\n\n"
	if got := implBuf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitVarDeclExternFuncPrototype(t *testing.T) {
	s, _, implBuf := newSinkPair()
	fn := ast.NewFuncType(i32Type(), []ast.Type{i32Type()}, ast.Span{})
	d := ast.NewVarDecl("callback", fn, ast.Visibility{}, ast.Span{})
	emitVarDecl(s, d)

	want := "extern i32 __u_callback(i32);\n\n"
	if got := implBuf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitVarDeclPubWithInit(t *testing.T) {
	s, headerBuf, implBuf := newSinkPair()
	d := ast.NewVarDecl("counter", i32Type(), ast.Visibility{Pub: true}, ast.Span{})
	d.Init = ast.NewIntLit(0, i32Type(), ast.Span{})
	emitVarDecl(s, d)

	wantHeader := "extern i32 counter;\n\n"
	if got := headerBuf.String(); got != wantHeader {
		t.Errorf("header got %q, want %q", got, wantHeader)
	}
	wantImpl := "i32 counter = 0;\n\n"
	if got := implBuf.String(); got != wantImpl {
		t.Errorf("impl got %q, want %q", got, wantImpl)
	}
}
