package emit

import (
	"fmt"

	"github.com/tickc/tickc/internal/ast"
)

// blockStyle parameterizes the four brace/newline presets §4.7 calls
// out for block formatting: whether braces are emitted at all, whether
// the opening brace shares the line with whatever precedes it, and
// whether a trailing newline follows the closing brace.
type blockStyle struct {
	braces       bool
	openInline   bool
	trailingNewl bool
}

var (
	blockStandard = blockStyle{braces: true, openInline: true, trailingNewl: true}
	blockIfArm    = blockStyle{braces: true, openInline: true, trailingNewl: false}
	blockElseArm  = blockStyle{braces: true, openInline: true, trailingNewl: true}
	blockForBody  = blockStyle{braces: false, openInline: false, trailingNewl: true}
)

// emitStmt renders one statement, preceding it with a lazy #line
// directive when its source line differs from the last one emitted on
// this context (spec.md §4.7).
func (ctx *Context) emitStmt(s ast.Stmt) {
	ctx.lineDirective(s.Span().Line)

	switch st := s.(type) {
	case *ast.DeclStmt:
		ctx.emitDeclStmt(st.Decl)

	case *ast.AssignStmt:
		ctx.W.Printf("%s = %s;", ctx.emitExpr(st.Target), ctx.emitExpr(st.Value))

	case *ast.UnusedStmt:
		ctx.W.Printf("TICK_UNUSED(%s);", ctx.emitExpr(st.Value))

	case *ast.ExprStmt:
		ctx.W.Printf("%s;", ctx.emitExpr(st.Value))

	case *ast.BlockStmt:
		ctx.emitBlock(st, blockStandard)

	case *ast.IfStmt:
		ctx.emitIfStmt(st)

	case *ast.ForStmt:
		ctx.emitForStmt(st)

	case *ast.SwitchStmt:
		ctx.emitSwitchStmt(st)

	case *ast.ReturnStmt:
		if st.Value == nil {
			ctx.W.Printf("return;")
		} else {
			ctx.W.Printf("return %s;", ctx.emitExpr(st.Value))
		}

	case *ast.BreakStmt:
		ctx.W.Printf("break;")

	case *ast.ContinueStmt:
		ctx.W.Printf("continue;")

	case *ast.GotoStmt:
		ctx.W.Printf("goto %s;", st.Label)

	case *ast.LabelStmt:
		ctx.W.Printf("%s:;", st.Name)

	default:
		unreachable(fmt.Sprintf("%T", s), s.Span())
	}
}

// emitDeclStmt renders a local variable declaration: qualifiers, then
// the declarator, then an optional initializer (spec.md §4.7 "Decl
// statement").
func (ctx *Context) emitDeclStmt(d *ast.VarDecl) {
	name := symbolName(d.Name, d.Vis)
	if d.TmpID != 0 {
		name = tempName(d.TmpID)
	}

	declarator := ctx.synthesizeDeclarator(d.Type, name)
	qualifiers := ""
	if d.Vis.Static {
		qualifiers += "static "
	}
	if d.Vis.Volatile {
		qualifiers += "volatile "
	}

	if d.Init == nil {
		ctx.W.Printf("%s%s;", qualifiers, declarator)
		return
	}
	ctx.W.Printf("%s%s = %s;", qualifiers, declarator, ctx.emitExpr(d.Init))
}

// emitBlock renders stmts inside braces according to style. Caller is
// responsible for anything that should precede an inline opening brace
// (the "if (...) " / "else " prefix); emitBlock only writes the brace
// itself onward.
func (ctx *Context) emitBlock(b *ast.BlockStmt, style blockStyle) {
	if style.braces {
		if style.openInline {
			ctx.W.PrintfNoIndent("{")
		} else {
			ctx.W.Printf("{")
		}
	}
	ctx.W.Indent()
	for _, s := range b.Stmts {
		ctx.emitStmt(s)
	}
	ctx.W.Dedent()
	if style.braces {
		if style.trailingNewl {
			ctx.W.Printf("}")
		} else {
			ctx.W.WriteString(ctx.W.indentPrefix() + "}")
		}
	}
}

// emitIfStmt renders `if (cond) { ... } else { ... }`. Both arms are
// always present on a lowered tree (spec.md §4.7 "If").
func (ctx *Context) emitIfStmt(st *ast.IfStmt) {
	ctx.W.WriteString(ctx.W.indentPrefix())
	ctx.W.Ident(fmt.Sprintf("if (%s) ", ctx.emitExpr(st.Cond)))
	ctx.emitBlock(st.Then, blockIfArm)
	ctx.W.Ident(" else ")
	ctx.emitBlock(st.Else, blockElseArm)
}

// emitForStmt lowers a C-style for loop to `while (1) { if (!(cond))
// break; <body>; <step>; }`, emitting Init before the loop (spec.md
// §4.7 "For").
func (ctx *Context) emitForStmt(st *ast.ForStmt) {
	if st.Init != nil {
		ctx.emitStmt(st.Init)
	}
	ctx.W.Printf("while (1) {")
	ctx.W.Indent()
	if st.Cond != nil {
		ctx.W.Printf("if (!(%s)) break;", ctx.emitExpr(st.Cond))
	}
	for _, s := range st.Body.Stmts {
		ctx.emitStmt(s)
	}
	if st.Step != nil {
		ctx.emitStmt(st.Step)
	}
	ctx.W.Dedent()
	ctx.W.Printf("}")
}

// emitSwitchStmt renders each case's label group, its body, and a
// forced trailing `break;` so cases never fall through (spec.md §4.7
// "Switch").
func (ctx *Context) emitSwitchStmt(st *ast.SwitchStmt) {
	ctx.W.Printf("switch (%s) {", ctx.emitExpr(st.Subject))
	ctx.W.Indent()
	for _, c := range st.Cases {
		if len(c.Values) == 0 {
			ctx.W.Printf("default:")
		} else {
			for _, v := range c.Values {
				ctx.W.Printf("case %s:", ctx.emitExpr(v))
			}
		}
		ctx.W.Indent()
		for _, s := range c.Body.Stmts {
			ctx.emitStmt(s)
		}
		ctx.W.Printf("break;")
		ctx.W.Dedent()
	}
	ctx.W.Dedent()
	ctx.W.Printf("}")
}
