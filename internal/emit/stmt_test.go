package emit

import (
	"bytes"
	"testing"

	"github.com/tickc/tickc/internal/ast"
)

func newBufCtx(buf *bytes.Buffer) *Context {
	return NewContext(NewWriter(buf), "x.tick", map[string]ast.Visibility{})
}

func TestEmitStmtAssign(t *testing.T) {
	var buf bytes.Buffer
	ctx := newBufCtx(&buf)
	ctx.emitStmt(ast.NewAssignStmt(ast.NewIdent("x", ast.Span{}), ast.NewIntLit(1, i32Type(), ast.Span{}), ast.Span{}))
	if got := buf.String(); got != "x = 1;\n" {
		t.Errorf("got %q", got)
	}
}

func TestEmitStmtReturnVoidAndValue(t *testing.T) {
	var buf bytes.Buffer
	ctx := newBufCtx(&buf)
	ctx.emitStmt(ast.NewReturnStmt(nil, ast.Span{}))
	ctx.emitStmt(ast.NewReturnStmt(ast.NewIntLit(0, i32Type(), ast.Span{}), ast.Span{}))
	want := "return;\nreturn 0;\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitDeclStmtWithQualifiersAndInit(t *testing.T) {
	var buf bytes.Buffer
	ctx := newBufCtx(&buf)
	d := ast.NewVarDecl("counter", i32Type(), ast.Visibility{Static: true, Volatile: true}, ast.Span{})
	d.Init = ast.NewIntLit(0, i32Type(), ast.Span{})
	ctx.emitDeclStmt(d)
	want := "static volatile i32 __u_counter = 0;\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitIfStmtBothArms(t *testing.T) {
	var buf bytes.Buffer
	ctx := newBufCtx(&buf)
	then := ast.NewBlockStmt([]ast.Stmt{ast.NewBreakStmt(ast.Span{})}, ast.Span{})
	els := ast.NewBlockStmt([]ast.Stmt{ast.NewContinueStmt(ast.Span{})}, ast.Span{})
	ctx.emitIfStmt(ast.NewIfStmt(ast.NewIdent("cond", ast.Span{}), then, els, ast.Span{}))

	want := "if (cond) {\n  break;\n} else {\n  continue;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitForStmtLowersToWhileTrue(t *testing.T) {
	var buf bytes.Buffer
	ctx := newBufCtx(&buf)
	init := ast.NewDeclStmt(ast.NewVarDecl("i", i32Type(), ast.Visibility{}, ast.Span{}), ast.Span{})
	cond := ast.NewBinaryExpr(ast.OpLt, ast.NewIdent("i", ast.Span{}), ast.NewIntLit(10, i32Type(), ast.Span{}), i32Type(), ast.Span{})
	step := ast.NewAssignStmt(ast.NewIdent("i", ast.Span{}), ast.NewIdent("i", ast.Span{}), ast.Span{})
	body := ast.NewBlockStmt([]ast.Stmt{ast.NewBreakStmt(ast.Span{})}, ast.Span{})
	ctx.emitForStmt(ast.NewForStmt(init, cond, step, body, ast.Span{}))

	want := "i32 __u_i;\nwhile (1) {\n  if (!((i < 10))) break;\n  break;\n  i = i;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitSwitchStmtForcesBreakAndGroupsMultiValueCases(t *testing.T) {
	var buf bytes.Buffer
	ctx := newBufCtx(&buf)
	body1 := ast.NewBlockStmt([]ast.Stmt{ast.NewBreakStmt(ast.Span{})}, ast.Span{})
	bodyDefault := ast.NewBlockStmt([]ast.Stmt{ast.NewContinueStmt(ast.Span{})}, ast.Span{})
	cases := []ast.SwitchCase{
		{Values: []ast.Expr{ast.NewIntLit(1, i32Type(), ast.Span{}), ast.NewIntLit(2, i32Type(), ast.Span{})}, Body: body1},
		{Values: nil, Body: bodyDefault},
	}
	ctx.emitSwitchStmt(ast.NewSwitchStmt(ast.NewIdent("x", ast.Span{}), cases, ast.Span{}))

	want := "switch (x) {\n  case 1:\n  case 2:\n    break;\n    break;\n  default:\n    continue;\n    break;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
