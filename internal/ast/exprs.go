package ast

// BuiltinOp identifies the resolved semantic category of a binary or
// unary operator, as computed by the (out-of-scope) analysis pass. The
// dispatch tables in internal/emit key off this category, not off
// source-level operator spelling.
type BuiltinOp string

const (
	OpSatAdd BuiltinOp = "sat_add"
	OpSatSub BuiltinOp = "sat_sub"
	OpSatMul BuiltinOp = "sat_mul"
	OpSatDiv BuiltinOp = "sat_div"

	OpWrapAdd BuiltinOp = "wrap_add"
	OpWrapSub BuiltinOp = "wrap_sub"
	OpWrapMul BuiltinOp = "wrap_mul"
	OpWrapDiv BuiltinOp = "wrap_div"

	OpCheckedAdd BuiltinOp = "checked_add"
	OpCheckedSub BuiltinOp = "checked_sub"
	OpCheckedMul BuiltinOp = "checked_mul"
	OpCheckedDiv BuiltinOp = "checked_div"
	OpCheckedMod BuiltinOp = "checked_mod"
	OpCheckedShl BuiltinOp = "checked_shl"
	OpCheckedShr BuiltinOp = "checked_shr"
	OpCheckedNeg BuiltinOp = "checked_neg"

	// Comparison, bitwise, and logical categories never appear in the
	// dispatch tables (§4.4): they always render as a native C operator.
	OpEq         BuiltinOp = "eq"
	OpNe         BuiltinOp = "ne"
	OpLt         BuiltinOp = "lt"
	OpLe         BuiltinOp = "le"
	OpGt         BuiltinOp = "gt"
	OpGe         BuiltinOp = "ge"
	OpBitAnd     BuiltinOp = "bit_and"
	OpBitOr      BuiltinOp = "bit_or"
	OpBitXor     BuiltinOp = "bit_xor"
	OpLogicalAnd BuiltinOp = "logical_and"
	OpLogicalOr  BuiltinOp = "logical_or"

	// Unary, address-of. Negation uses OpCheckedNeg/OpWrapSub-family
	// categories above depending on source arithmetic mode.
	OpAddrOf BuiltinOp = "addr_of"
)

// IntLit is a signed-integer literal.
type IntLit struct {
	Value int64
	Typ   Type
	span  Span
}

func NewIntLit(value int64, typ Type, span Span) *IntLit {
	return &IntLit{Value: value, Typ: typ, span: span}
}

func (e *IntLit) Span() Span { return e.span }
func (*IntLit) exprNode()    {}

// UintLit is an unsigned-integer literal.
type UintLit struct {
	Value uint64
	Typ   Type
	span  Span
}

func NewUintLit(value uint64, typ Type, span Span) *UintLit {
	return &UintLit{Value: value, Typ: typ, span: span}
}

func (e *UintLit) Span() Span { return e.span }
func (*UintLit) exprNode()    {}

// StringLit is a string literal in a context the lowering pass left
// un-desugared (invariant 6 restricts these to format-string arguments
// of debug/panic intrinsics; everywhere else strings arrive as array
// initializers).
type StringLit struct {
	Value string
	span  Span
}

func NewStringLit(value string, span Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

func (e *StringLit) Span() Span { return e.span }
func (*StringLit) exprNode()    {}

// Ident is an identifier reference: a user binding, a compiler
// temporary, or one of the fixed debug/panic/deref-check intrinsics.
type Ident struct {
	Name            string
	TmpID           int    // non-zero => compiler-generated temporary
	NeedsUserPrefix bool   // precomputed by analysis; never re-derived here
	Intrinsic       string // "@dbg", "@panic", "@check_deref", or ""
	ResolvedType    Type
	span            Span
}

func NewIdent(name string, span Span) *Ident {
	return &Ident{Name: name, span: span}
}

func (e *Ident) Span() Span { return e.span }
func (*Ident) exprNode()    {}

// IsTemp reports whether this identifier names a compiler temporary.
func (e *Ident) IsTemp() bool { return e.TmpID != 0 }

// BinaryExpr is a binary operator application with its resolved builtin
// operator category and result type already attached (invariant 1).
type BinaryExpr struct {
	Op           BuiltinOp
	Left, Right  Expr
	ResolvedType Type
	span         Span
}

func NewBinaryExpr(op BuiltinOp, left, right Expr, resolvedType Type, span Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, ResolvedType: resolvedType, span: span}
}

func (e *BinaryExpr) Span() Span { return e.span }
func (*BinaryExpr) exprNode()    {}

// UnaryExpr is a unary operator application (negation or address-of).
type UnaryExpr struct {
	Op           BuiltinOp
	Operand      Expr
	ResolvedType Type
	span         Span
}

func NewUnaryExpr(op BuiltinOp, operand Expr, resolvedType Type, span Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, ResolvedType: resolvedType, span: span}
}

func (e *UnaryExpr) Span() Span { return e.span }
func (*UnaryExpr) exprNode()    {}

// CallExpr is a function call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   Span
}

func NewCallExpr(callee Expr, args []Expr, span Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

func (e *CallExpr) Span() Span { return e.span }
func (*CallExpr) exprNode()    {}

// FieldExpr is a struct field access, `.field` or `->field` depending on
// the precomputed ObjectIsPointer flag (invariant 3).
type FieldExpr struct {
	Object          Expr
	Field           string
	ObjectIsPointer bool
	ResolvedType    Type // needed to recover slice payload element typing
	span            Span
}

func NewFieldExpr(object Expr, field string, objectIsPointer bool, resolvedType Type, span Span) *FieldExpr {
	return &FieldExpr{Object: object, Field: field, ObjectIsPointer: objectIsPointer, ResolvedType: resolvedType, span: span}
}

func (e *FieldExpr) Span() Span { return e.span }
func (*FieldExpr) exprNode()    {}

// IndexExpr is `target[index]`, over a slice or a plain array depending
// on the precomputed IsSliceIndex flag.
type IndexExpr struct {
	Target       Expr
	Index        Expr
	IsSliceIndex bool
	ResolvedType Type // element type (invariant 2)
	span         Span
}

func NewIndexExpr(target, index Expr, isSliceIndex bool, resolvedType Type, span Span) *IndexExpr {
	return &IndexExpr{Target: target, Index: index, IsSliceIndex: isSliceIndex, ResolvedType: resolvedType, span: span}
}

func (e *IndexExpr) Span() Span { return e.span }
func (*IndexExpr) exprNode()    {}

// SliceSourceKind identifies what a slice-construction expression views.
type SliceSourceKind string

const (
	SliceFromArray   SliceSourceKind = "array"
	SliceFromSlice   SliceSourceKind = "slice"
	SliceFromPointer SliceSourceKind = "pointer"
)

// SliceExpr constructs a slice value from an array, an existing slice,
// or a raw pointer. Start/End are nil when the source omitted them;
// §4.6 gives the default-filling rule per SourceKind.
type SliceExpr struct {
	Source       Expr
	SourceKind   SliceSourceKind
	Start        Expr // nil => defaulted
	End          Expr // nil => defaulted (fatal for SliceFromPointer)
	ResolvedType Type // element type (invariant 2)
	span         Span
}

func NewSliceExpr(source Expr, kind SliceSourceKind, start, end Expr, resolvedType Type, span Span) *SliceExpr {
	return &SliceExpr{Source: source, SourceKind: kind, Start: start, End: end, ResolvedType: resolvedType, span: span}
}

func (e *SliceExpr) Span() Span { return e.span }
func (*SliceExpr) exprNode()    {}

// CastExpr is an explicit cast to Target's type.
type CastExpr struct {
	Target  Type
	Operand Expr
	span    Span
}

func NewCastExpr(target Type, operand Expr, span Span) *CastExpr {
	return &CastExpr{Target: target, Operand: operand, span: span}
}

func (e *CastExpr) Span() Span { return e.span }
func (*CastExpr) exprNode()    {}

// EnumValueExpr references one constant of an enum declaration.
type EnumValueExpr struct {
	Enum      *EnumDecl
	ValueName string
	span      Span
}

func NewEnumValueExpr(enum *EnumDecl, valueName string, span Span) *EnumValueExpr {
	return &EnumValueExpr{Enum: enum, ValueName: valueName, span: span}
}

func (e *EnumValueExpr) Span() Span { return e.span }
func (*EnumValueExpr) exprNode()    {}

// StructInitExpr is a `(T){ .f1 = v1, ... }` initializer. Per invariant
// 8, each field value is a literal or identifier reference; anything
// more complex was split into a temporary by the lowering pass.
type StructInitExpr struct {
	Type   Type
	Fields []FieldInit
	span   Span
}

func NewStructInitExpr(typ Type, fields []FieldInit, span Span) *StructInitExpr {
	return &StructInitExpr{Type: typ, Fields: fields, span: span}
}

func (e *StructInitExpr) Span() Span { return e.span }
func (*StructInitExpr) exprNode()    {}

// ArrayInitExpr is a `{ e1, e2, ... }` array initializer.
type ArrayInitExpr struct {
	Elem     Type
	Elements []Expr
	span     Span
}

func NewArrayInitExpr(elem Type, elements []Expr, span Span) *ArrayInitExpr {
	return &ArrayInitExpr{Elem: elem, Elements: elements, span: span}
}

func (e *ArrayInitExpr) Span() Span { return e.span }
func (*ArrayInitExpr) exprNode()    {}
