package astjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickc/tickc/internal/ast"
)

func TestDecodeVarDeclWithLiteralInit(t *testing.T) {
	doc := `{
		"decls": [
			{
				"kind": "var",
				"name": "counter",
				"type": {"kind": "named", "builtin": "i32"},
				"init": {"kind": "int_lit", "value": 0, "type": {"kind": "named", "builtin": "i32"}},
				"vis": {"pub": true},
				"span": {"filename": "a.tick", "line": 1, "column": 1}
			}
		]
	}`
	mod, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, mod.Decls, 1)

	vd, ok := mod.Decls[0].(*ast.VarDecl)
	require.True(t, ok, "expected *ast.VarDecl, got %T", mod.Decls[0])
	assert.Equal(t, "counter", vd.Name)
	assert.True(t, vd.Vis.Pub)

	namedType, ok := vd.Type.(*ast.NamedType)
	require.True(t, ok, "expected *ast.NamedType, got %T", vd.Type)
	assert.Equal(t, ast.I32, namedType.Builtin)

	lit, ok := vd.Init.(*ast.IntLit)
	require.True(t, ok, "expected *ast.IntLit, got %T", vd.Init)
	assert.EqualValues(t, 0, lit.Value)
}

func TestDecodeFuncDeclWithParamsAndBody(t *testing.T) {
	doc := `{
		"decls": [
			{
				"kind": "func",
				"name": "add",
				"params": [
					{"name": "a", "type": {"kind": "named", "builtin": "i32"}},
					{"name": "b", "type": {"kind": "named", "builtin": "i32"}}
				],
				"return": {"kind": "named", "builtin": "i32"},
				"body": {
					"kind": "block",
					"stmts": [
						{
							"kind": "return",
							"value": {
								"kind": "binary",
								"op": "checked_add",
								"left": {"kind": "ident", "name": "a"},
								"right": {"kind": "ident", "name": "b"},
								"resolved_type": {"kind": "named", "builtin": "i32"}
							}
						}
					]
				},
				"vis": {"pub": true},
				"span": {"line": 2}
			}
		]
	}`
	mod, err := Decode([]byte(doc))
	require.NoError(t, err)

	fd, ok := mod.Decls[0].(*ast.FuncDecl)
	require.True(t, ok, "expected *ast.FuncDecl, got %T", mod.Decls[0])
	require.Len(t, fd.Params, 2)
	assert.Equal(t, "a", fd.Params[0].Name)
	assert.Equal(t, "b", fd.Params[1].Name)

	require.NotNil(t, fd.Body)
	require.Len(t, fd.Body.Stmts, 1)

	ret, ok := fd.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok, "expected *ast.ReturnStmt, got %T", fd.Body.Stmts[0])

	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok, "expected *ast.BinaryExpr, got %T", ret.Value)
	assert.Equal(t, ast.OpCheckedAdd, bin.Op)
}

func TestDecodeUnionDeclRequiresEnumTagType(t *testing.T) {
	doc := `{
		"decls": [
			{
				"kind": "union",
				"name": "Shape",
				"fields": [{"name": "radius", "type": {"kind": "named", "builtin": "i32"}}],
				"tag_type": {
					"kind": "enum",
					"name": "ShapeTag",
					"underlying": {"kind": "named", "builtin": "i32"},
					"values": [{"name": "Circle", "value": 0}]
				},
				"span": {"line": 3}
			}
		]
	}`
	mod, err := Decode([]byte(doc))
	require.NoError(t, err)

	ud, ok := mod.Decls[0].(*ast.UnionDecl)
	require.True(t, ok, "expected *ast.UnionDecl, got %T", mod.Decls[0])
	require.NotNil(t, ud.TagType)
	assert.Equal(t, "ShapeTag", ud.TagType.Name)
}

func TestDecodeUnknownKindReturnsError(t *testing.T) {
	doc := `{"decls": [{"kind": "mystery"}]}`
	_, err := Decode([]byte(doc))
	assert.Error(t, err)
}

func TestDecodePointerAndArrayTypes(t *testing.T) {
	doc := `{
		"decls": [
			{
				"kind": "var",
				"name": "buf",
				"type": {
					"kind": "pointer",
					"pointee": {"kind": "array", "elem": {"kind": "named", "builtin": "u8"}, "size": 4}
				},
				"span": {"line": 1}
			}
		]
	}`
	mod, err := Decode([]byte(doc))
	require.NoError(t, err)

	vd := mod.Decls[0].(*ast.VarDecl)
	pt, ok := vd.Type.(*ast.PointerType)
	require.True(t, ok, "expected *ast.PointerType, got %T", vd.Type)

	arr, ok := pt.Pointee.(*ast.ArrayType)
	require.True(t, ok, "expected *ast.ArrayType, got %T", pt.Pointee)
	assert.EqualValues(t, 4, arr.Size)
}
