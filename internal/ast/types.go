package ast

// NamedType is either a builtin (Builtin != "") or a reference to a
// user-defined struct/enum/union by name.
type NamedType struct {
	Builtin BuiltinKind // "" if this names a user-defined type
	Name    string      // user-defined name; ignored when Builtin != ""
	span    Span
}

func NewBuiltinType(kind BuiltinKind, span Span) *NamedType {
	return &NamedType{Builtin: kind, span: span}
}

func NewUserType(name string, span Span) *NamedType {
	return &NamedType{Name: name, span: span}
}

func (t *NamedType) Span() Span { return t.span }
func (*NamedType) typeNode()    {}

// IsUserDefined reports whether this names a struct/enum/union rather
// than one of the closed builtin kinds.
func (t *NamedType) IsUserDefined() bool { return t.Builtin == "" }

// PointerType is `*T` for some pointee type T.
type PointerType struct {
	Pointee Type
	span    Span
}

func NewPointerType(pointee Type, span Span) *PointerType {
	return &PointerType{Pointee: pointee, span: span}
}

func (t *PointerType) Span() Span { return t.span }
func (*PointerType) typeNode()    {}

// ArrayType is `[N]T`; Size is already constant-evaluated per invariant 5.
type ArrayType struct {
	Elem Type
	Size int64
	span Span
}

func NewArrayType(elem Type, size int64, span Span) *ArrayType {
	return &ArrayType{Elem: elem, Size: size, span: span}
}

func (t *ArrayType) Span() Span { return t.span }
func (*ArrayType) typeNode()    {}

// SliceType is `[]T`, a runtime `{ptr, len}` view over T.
type SliceType struct {
	Elem Type
	span Span
}

func NewSliceType(elem Type, span Span) *SliceType {
	return &SliceType{Elem: elem, span: span}
}

func (t *SliceType) Span() Span { return t.span }
func (*SliceType) typeNode()    {}

// FuncType is a function type `fn(P...) R`. Return == nil means void.
type FuncType struct {
	Return Type
	Params []Type
	span   Span
}

func NewFuncType(ret Type, params []Type, span Span) *FuncType {
	return &FuncType{Return: ret, Params: params, span: span}
}

func (t *FuncType) Span() Span { return t.span }
func (*FuncType) typeNode()    {}
