// Package ast defines the lowered abstract syntax tree consumed by the
// tick code emitter (internal/emit). By the time a tree reaches this
// package every node has already been produced by out-of-process lexing,
// parsing, semantic analysis, and lowering: optional types, error unions,
// string-literal desugaring, and complex initializers have all been
// resolved away. The emitter borrows these trees read-only; nothing in
// this package mutates a tree once built.
package ast

// Span records a source location for diagnostics and for the #line
// directives the statement emitter attaches to generated C.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// IsValid reports whether the span names an actual source location.
func (s Span) IsValid() bool { return s.Line > 0 }

// Node is any AST node with an associated source span.
type Node interface {
	Span() Span
}

// Type is a type node: Named, Pointer, Array, Slice, or Function.
type Type interface {
	Node
	typeNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level (or local, for VarDecl) declaration.
type Decl interface {
	Node
	declNode()
}

// Module is the ordered list of top-level declarations that make up a
// compilation unit.
type Module struct {
	Decls []Decl
}

// Visibility carries the qualifiers spec.md §3 attaches to a
// declaration. Pub and Extern both suppress the private-prefix rule of
// §4.1; Pub additionally routes the declaration to the header file.
type Visibility struct {
	Pub         bool
	Extern      bool
	Static      bool
	Volatile    bool
	ForwardDecl bool
}

// BuiltinKind is one of the closed set of primitive types the source
// language exposes. No other builtin kinds may appear in a lowered tree.
type BuiltinKind string

const (
	I8   BuiltinKind = "i8"
	I16  BuiltinKind = "i16"
	I32  BuiltinKind = "i32"
	I64  BuiltinKind = "i64"
	ISZ  BuiltinKind = "isz"
	U8   BuiltinKind = "u8"
	U16  BuiltinKind = "u16"
	U32  BuiltinKind = "u32"
	U64  BuiltinKind = "u64"
	USZ  BuiltinKind = "usz"
	Bool BuiltinKind = "bool"
	Void BuiltinKind = "void"
)

// IsSigned reports whether k is one of the signed integer kinds.
func (k BuiltinKind) IsSigned() bool {
	switch k {
	case I8, I16, I32, I64, ISZ:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether k is one of the unsigned integer kinds.
func (k BuiltinKind) IsUnsigned() bool {
	switch k {
	case U8, U16, U32, U64, USZ:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether k is a signed or unsigned integer kind.
func (k BuiltinKind) IsNumeric() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// BitWidth returns the bit width of an integer kind, treating isz/usz as
// 64-bit (the pointer width the runtime targets).
func (k BuiltinKind) BitWidth() int {
	switch k {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64, ISZ, USZ:
		return 64
	default:
		return 0
	}
}

// Param is a function parameter: a name paired with its type.
type Param struct {
	Name string
	Type Type
}

// Field is a struct or union payload field.
type Field struct {
	Name      string
	Type      Type
	Alignment int // 0 means unspecified
}

// FieldInit is one `.field = value` entry in a struct initializer.
type FieldInit struct {
	Name  string
	Value Expr
}

// EnumValue is one constant in an enum declaration's ordered value list.
type EnumValue struct {
	Name  string
	Value int64
}
