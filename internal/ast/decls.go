package ast

// VarDecl is a named binding: a global or local variable, or (when Type
// is a *FuncType with no Init) an extern function prototype.
type VarDecl struct {
	Name  string
	TmpID int // non-zero => compiler-generated temporary
	Type  Type
	Init  Expr // optional initializer
	Vis   Visibility
	span  Span
}

func NewVarDecl(name string, typ Type, vis Visibility, span Span) *VarDecl {
	return &VarDecl{Name: name, Type: typ, Vis: vis, span: span}
}

func (d *VarDecl) Span() Span { return d.span }
func (*VarDecl) declNode()    {}

// FuncDecl is a function definition. Body is nil only for a pure
// prototype (§4.8 "Pub functions get a declaration in the header");
// ordinary private and pub functions both carry a body that is emitted
// into the implementation file.
type FuncDecl struct {
	Name   string
	Params []Param
	Return Type // nil => void
	Body   *BlockStmt
	Vis    Visibility
	span   Span
}

func NewFuncDecl(name string, params []Param, ret Type, body *BlockStmt, vis Visibility, span Span) *FuncDecl {
	return &FuncDecl{Name: name, Params: params, Return: ret, Body: body, Vis: vis, span: span}
}

func (d *FuncDecl) Span() Span { return d.span }
func (*FuncDecl) declNode()    {}

// StructDecl is a struct type declaration. When the Vis.ForwardDecl
// qualifier is set, only a `typedef struct X X;` is emitted
// and Fields is ignored.
type StructDecl struct {
	Name      string
	Fields    []Field
	IsPacked  bool
	Alignment int // 0 => unspecified
	Vis       Visibility
	span      Span
}

func NewStructDecl(name string, fields []Field, vis Visibility, span Span) *StructDecl {
	return &StructDecl{Name: name, Fields: fields, Vis: vis, span: span}
}

func (d *StructDecl) Span() Span { return d.span }
func (*StructDecl) declNode()    {}

// EnumDecl is an enum declaration: an underlying numeric type plus an
// ordered list of named constants.
type EnumDecl struct {
	Name       string
	Underlying Type
	Values     []EnumValue
	Vis        Visibility
	span       Span
}

func NewEnumDecl(name string, underlying Type, values []EnumValue, vis Visibility, span Span) *EnumDecl {
	return &EnumDecl{Name: name, Underlying: underlying, Values: values, Vis: vis, span: span}
}

func (d *EnumDecl) Span() Span { return d.span }
func (*EnumDecl) declNode()    {}

// UnionDecl is a tagged union: a synthesized tag enum (TagType, never
// nil per invariant 7) followed by an anonymous union of payload
// Fields.
type UnionDecl struct {
	Name    string
	Fields  []Field
	TagType *EnumDecl
	Vis     Visibility
	span    Span
}

func NewUnionDecl(name string, fields []Field, tagType *EnumDecl, vis Visibility, span Span) *UnionDecl {
	return &UnionDecl{Name: name, Fields: fields, TagType: tagType, Vis: vis, span: span}
}

func (d *UnionDecl) Span() Span { return d.span }
func (*UnionDecl) declNode()    {}
