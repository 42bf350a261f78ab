// Package astjson decodes the JSON wire form of a lowered AST (as
// produced by the out-of-scope analysis+lowering pipeline, spec.md
// §6.1) into internal/ast's in-memory tree. Every node is tagged with
// a "kind" discriminator; decoding a tree is one pass of json.RawMessage
// peeling driven by that tag, since Go's encoding/json has no native
// support for decoding into a tagged-interface sum type.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/tickc/tickc/internal/ast"
)

type wireSpan struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

func (s wireSpan) toAST() ast.Span {
	return ast.Span{Filename: s.Filename, Line: s.Line, Column: s.Column, Start: s.Start, End: s.End}
}

type wireVisibility struct {
	Pub         bool `json:"pub"`
	Extern      bool `json:"extern"`
	Static      bool `json:"static"`
	Volatile    bool `json:"volatile"`
	ForwardDecl bool `json:"forward_decl"`
}

func (v wireVisibility) toAST() ast.Visibility {
	return ast.Visibility{Pub: v.Pub, Extern: v.Extern, Static: v.Static, Volatile: v.Volatile, ForwardDecl: v.ForwardDecl}
}

type tagged struct {
	Kind string `json:"kind"`
}

// Decode reads a JSON-encoded module from data.
func Decode(data []byte) (*ast.Module, error) {
	var wire struct {
		Decls []json.RawMessage `json:"decls"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("astjson: decode module: %w", err)
	}
	decls := make([]ast.Decl, len(wire.Decls))
	for i, raw := range wire.Decls {
		d, err := decodeDecl(raw)
		if err != nil {
			return nil, fmt.Errorf("astjson: decl %d: %w", i, err)
		}
		decls[i] = d
	}
	return &ast.Module{Decls: decls}, nil
}

// ---- types ----

func decodeType(raw json.RawMessage) (ast.Type, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	switch t.Kind {
	case "named":
		var w struct {
			Builtin string   `json:"builtin"`
			Name    string   `json:"name"`
			Span    wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if w.Builtin != "" {
			return ast.NewBuiltinType(ast.BuiltinKind(w.Builtin), w.Span.toAST()), nil
		}
		return ast.NewUserType(w.Name, w.Span.toAST()), nil

	case "pointer":
		var w struct {
			Pointee json.RawMessage `json:"pointee"`
			Span    wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		pointee, err := decodeType(w.Pointee)
		if err != nil {
			return nil, err
		}
		return ast.NewPointerType(pointee, w.Span.toAST()), nil

	case "array":
		var w struct {
			Elem json.RawMessage `json:"elem"`
			Size int64           `json:"size"`
			Span wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elem, err := decodeType(w.Elem)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayType(elem, w.Size, w.Span.toAST()), nil

	case "slice":
		var w struct {
			Elem json.RawMessage `json:"elem"`
			Span wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elem, err := decodeType(w.Elem)
		if err != nil {
			return nil, err
		}
		return ast.NewSliceType(elem, w.Span.toAST()), nil

	case "function":
		var w struct {
			Return json.RawMessage   `json:"return"`
			Params []json.RawMessage `json:"params"`
			Span   wireSpan          `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		ret, err := decodeType(w.Return)
		if err != nil {
			return nil, err
		}
		params := make([]ast.Type, len(w.Params))
		for i, p := range w.Params {
			pt, err := decodeType(p)
			if err != nil {
				return nil, err
			}
			params[i] = pt
		}
		return ast.NewFuncType(ret, params, w.Span.toAST()), nil

	default:
		return nil, fmt.Errorf("unknown type kind %q", t.Kind)
	}
}

// ---- expressions ----

func decodeExpr(raw json.RawMessage) (ast.Expr, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	switch t.Kind {
	case "int_lit":
		var w struct {
			Value int64           `json:"value"`
			Typ   json.RawMessage `json:"type"`
			Span  wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		typ, err := decodeType(w.Typ)
		if err != nil {
			return nil, err
		}
		return ast.NewIntLit(w.Value, typ, w.Span.toAST()), nil

	case "uint_lit":
		var w struct {
			Value uint64          `json:"value"`
			Typ   json.RawMessage `json:"type"`
			Span  wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		typ, err := decodeType(w.Typ)
		if err != nil {
			return nil, err
		}
		return ast.NewUintLit(w.Value, typ, w.Span.toAST()), nil

	case "string_lit":
		var w struct {
			Value string   `json:"value"`
			Span  wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return ast.NewStringLit(w.Value, w.Span.toAST()), nil

	case "ident":
		var w struct {
			Name            string          `json:"name"`
			TmpID           int             `json:"tmp_id"`
			NeedsUserPrefix bool            `json:"needs_user_prefix"`
			Intrinsic       string          `json:"intrinsic"`
			ResolvedType    json.RawMessage `json:"resolved_type"`
			Span            wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		resolved, err := decodeType(w.ResolvedType)
		if err != nil {
			return nil, err
		}
		id := ast.NewIdent(w.Name, w.Span.toAST())
		id.TmpID = w.TmpID
		id.NeedsUserPrefix = w.NeedsUserPrefix
		id.Intrinsic = w.Intrinsic
		id.ResolvedType = resolved
		return id, nil

	case "binary":
		var w struct {
			Op           string          `json:"op"`
			Left         json.RawMessage `json:"left"`
			Right        json.RawMessage `json:"right"`
			ResolvedType json.RawMessage `json:"resolved_type"`
			Span         wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		left, err := decodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		resolved, err := decodeType(w.ResolvedType)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpr(ast.BuiltinOp(w.Op), left, right, resolved, w.Span.toAST()), nil

	case "unary":
		var w struct {
			Op           string          `json:"op"`
			Operand      json.RawMessage `json:"operand"`
			ResolvedType json.RawMessage `json:"resolved_type"`
			Span         wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		operand, err := decodeExpr(w.Operand)
		if err != nil {
			return nil, err
		}
		resolved, err := decodeType(w.ResolvedType)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(ast.BuiltinOp(w.Op), operand, resolved, w.Span.toAST()), nil

	case "call":
		var w struct {
			Callee json.RawMessage   `json:"callee"`
			Args   []json.RawMessage `json:"args"`
			Span   wireSpan          `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		callee, err := decodeExpr(w.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(w.Args))
		for i, a := range w.Args {
			ae, err := decodeExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		return ast.NewCallExpr(callee, args, w.Span.toAST()), nil

	case "field":
		var w struct {
			Object          json.RawMessage `json:"object"`
			Field           string          `json:"field"`
			ObjectIsPointer bool            `json:"object_is_pointer"`
			ResolvedType    json.RawMessage `json:"resolved_type"`
			Span            wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		obj, err := decodeExpr(w.Object)
		if err != nil {
			return nil, err
		}
		resolved, err := decodeType(w.ResolvedType)
		if err != nil {
			return nil, err
		}
		return ast.NewFieldExpr(obj, w.Field, w.ObjectIsPointer, resolved, w.Span.toAST()), nil

	case "index":
		var w struct {
			Target       json.RawMessage `json:"target"`
			Index        json.RawMessage `json:"index"`
			IsSliceIndex bool            `json:"is_slice_index"`
			ResolvedType json.RawMessage `json:"resolved_type"`
			Span         wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		target, err := decodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		index, err := decodeExpr(w.Index)
		if err != nil {
			return nil, err
		}
		resolved, err := decodeType(w.ResolvedType)
		if err != nil {
			return nil, err
		}
		return ast.NewIndexExpr(target, index, w.IsSliceIndex, resolved, w.Span.toAST()), nil

	case "slice":
		var w struct {
			Source       json.RawMessage `json:"source"`
			SourceKind   string          `json:"source_kind"`
			Start        json.RawMessage `json:"start"`
			End          json.RawMessage `json:"end"`
			ResolvedType json.RawMessage `json:"resolved_type"`
			Span         wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		source, err := decodeExpr(w.Source)
		if err != nil {
			return nil, err
		}
		start, err := decodeExpr(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeExpr(w.End)
		if err != nil {
			return nil, err
		}
		resolved, err := decodeType(w.ResolvedType)
		if err != nil {
			return nil, err
		}
		return ast.NewSliceExpr(source, ast.SliceSourceKind(w.SourceKind), start, end, resolved, w.Span.toAST()), nil

	case "cast":
		var w struct {
			Target  json.RawMessage `json:"target"`
			Operand json.RawMessage `json:"operand"`
			Span    wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		target, err := decodeType(w.Target)
		if err != nil {
			return nil, err
		}
		operand, err := decodeExpr(w.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewCastExpr(target, operand, w.Span.toAST()), nil

	case "enum_value":
		var w struct {
			Enum      json.RawMessage `json:"enum"`
			ValueName string          `json:"value_name"`
			Span      wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		enumDecl, err := decodeDecl(w.Enum)
		if err != nil {
			return nil, err
		}
		enum, ok := enumDecl.(*ast.EnumDecl)
		if !ok {
			return nil, fmt.Errorf("enum_value: referenced decl is not an enum")
		}
		return ast.NewEnumValueExpr(enum, w.ValueName, w.Span.toAST()), nil

	case "struct_init":
		var w struct {
			Type   json.RawMessage `json:"type"`
			Fields []struct {
				Name  string          `json:"name"`
				Value json.RawMessage `json:"value"`
			} `json:"fields"`
			Span wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		typ, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		fields := make([]ast.FieldInit, len(w.Fields))
		for i, f := range w.Fields {
			v, err := decodeExpr(f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.FieldInit{Name: f.Name, Value: v}
		}
		return ast.NewStructInitExpr(typ, fields, w.Span.toAST()), nil

	case "array_init":
		var w struct {
			Elem     json.RawMessage   `json:"elem"`
			Elements []json.RawMessage `json:"elements"`
			Span     wireSpan          `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elem, err := decodeType(w.Elem)
		if err != nil {
			return nil, err
		}
		elements := make([]ast.Expr, len(w.Elements))
		for i, e := range w.Elements {
			ee, err := decodeExpr(e)
			if err != nil {
				return nil, err
			}
			elements[i] = ee
		}
		return ast.NewArrayInitExpr(elem, elements, w.Span.toAST()), nil

	default:
		return nil, fmt.Errorf("unknown expr kind %q", t.Kind)
	}
}

// ---- statements ----

func decodeStmt(raw json.RawMessage) (ast.Stmt, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	switch t.Kind {
	case "decl_stmt":
		var w struct {
			Decl json.RawMessage `json:"decl"`
			Span wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		d, err := decodeDecl(w.Decl)
		if err != nil {
			return nil, err
		}
		varDecl, ok := d.(*ast.VarDecl)
		if !ok {
			return nil, fmt.Errorf("decl_stmt: decl is not a variable")
		}
		return ast.NewDeclStmt(varDecl, w.Span.toAST()), nil

	case "assign":
		var w struct {
			Target json.RawMessage `json:"target"`
			Value  json.RawMessage `json:"value"`
			Span   wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		target, err := decodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignStmt(target, value, w.Span.toAST()), nil

	case "unused":
		var w struct {
			Value json.RawMessage `json:"value"`
			Span  wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewUnusedStmt(value, w.Span.toAST()), nil

	case "expr_stmt":
		var w struct {
			Value json.RawMessage `json:"value"`
			Span  wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(value, w.Span.toAST()), nil

	case "block":
		return decodeBlock(raw)

	case "if":
		var w struct {
			Cond json.RawMessage `json:"cond"`
			Then json.RawMessage `json:"then"`
			Else json.RawMessage `json:"else"`
			Span wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeBlock(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeBlock(w.Else)
		if err != nil {
			return nil, err
		}
		return ast.NewIfStmt(cond, then, els, w.Span.toAST()), nil

	case "for":
		var w struct {
			Init json.RawMessage `json:"init"`
			Cond json.RawMessage `json:"cond"`
			Step json.RawMessage `json:"step"`
			Body json.RawMessage `json:"body"`
			Span wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		init, err := decodeStmt(w.Init)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		step, err := decodeStmt(w.Step)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForStmt(init, cond, step, body, w.Span.toAST()), nil

	case "switch":
		var w struct {
			Subject json.RawMessage `json:"subject"`
			Cases   []struct {
				Values []json.RawMessage `json:"values"`
				Body   json.RawMessage   `json:"body"`
			} `json:"cases"`
			Span wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		subject, err := decodeExpr(w.Subject)
		if err != nil {
			return nil, err
		}
		cases := make([]ast.SwitchCase, len(w.Cases))
		for i, c := range w.Cases {
			values := make([]ast.Expr, len(c.Values))
			for j, v := range c.Values {
				ve, err := decodeExpr(v)
				if err != nil {
					return nil, err
				}
				values[j] = ve
			}
			body, err := decodeBlock(c.Body)
			if err != nil {
				return nil, err
			}
			cases[i] = ast.SwitchCase{Values: values, Body: body}
		}
		return ast.NewSwitchStmt(subject, cases, w.Span.toAST()), nil

	case "return":
		var w struct {
			Value json.RawMessage `json:"value"`
			Span  wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		value, err := decodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStmt(value, w.Span.toAST()), nil

	case "break":
		var w struct {
			Span wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return ast.NewBreakStmt(w.Span.toAST()), nil

	case "continue":
		var w struct {
			Span wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return ast.NewContinueStmt(w.Span.toAST()), nil

	case "goto":
		var w struct {
			Label string   `json:"label"`
			Span  wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return ast.NewGotoStmt(w.Label, w.Span.toAST()), nil

	case "label":
		var w struct {
			Name string   `json:"name"`
			Span wireSpan `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return ast.NewLabelStmt(w.Name, w.Span.toAST()), nil

	default:
		return nil, fmt.Errorf("unknown stmt kind %q", t.Kind)
	}
}

func decodeBlock(raw json.RawMessage) (*ast.BlockStmt, error) {
	if raw == nil || string(raw) == "null" {
		return ast.NewBlockStmt(nil, ast.Span{}), nil
	}
	var w struct {
		Stmts []json.RawMessage `json:"stmts"`
		Span  wireSpan          `json:"span"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	stmts := make([]ast.Stmt, len(w.Stmts))
	for i, s := range w.Stmts {
		st, err := decodeStmt(s)
		if err != nil {
			return nil, err
		}
		stmts[i] = st
	}
	return ast.NewBlockStmt(stmts, w.Span.toAST()), nil
}

// ---- declarations ----

func decodeDecl(raw json.RawMessage) (ast.Decl, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}
	var t tagged
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	switch t.Kind {
	case "var":
		var w struct {
			Name  string          `json:"name"`
			TmpID int             `json:"tmp_id"`
			Type  json.RawMessage `json:"type"`
			Init  json.RawMessage `json:"init"`
			Vis   wireVisibility  `json:"vis"`
			Span  wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		typ, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		init, err := decodeExpr(w.Init)
		if err != nil {
			return nil, err
		}
		d := ast.NewVarDecl(w.Name, typ, w.Vis.toAST(), w.Span.toAST())
		d.TmpID = w.TmpID
		d.Init = init
		return d, nil

	case "func":
		var w struct {
			Name   string `json:"name"`
			Params []struct {
				Name string          `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"params"`
			Return json.RawMessage `json:"return"`
			Body   json.RawMessage `json:"body"`
			Vis    wireVisibility  `json:"vis"`
			Span   wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		params := make([]ast.Param, len(w.Params))
		for i, p := range w.Params {
			pt, err := decodeType(p.Type)
			if err != nil {
				return nil, err
			}
			params[i] = ast.Param{Name: p.Name, Type: pt}
		}
		ret, err := decodeType(w.Return)
		if err != nil {
			return nil, err
		}
		var body *ast.BlockStmt
		if w.Body != nil && string(w.Body) != "null" {
			body, err = decodeBlock(w.Body)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewFuncDecl(w.Name, params, ret, body, w.Vis.toAST(), w.Span.toAST()), nil

	case "struct":
		var w struct {
			Name      string         `json:"name"`
			Fields    []wireField    `json:"fields"`
			IsPacked  bool           `json:"is_packed"`
			Alignment int            `json:"alignment"`
			Vis       wireVisibility `json:"vis"`
			Span      wireSpan       `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fields, err := decodeFields(w.Fields)
		if err != nil {
			return nil, err
		}
		d := ast.NewStructDecl(w.Name, fields, w.Vis.toAST(), w.Span.toAST())
		d.IsPacked = w.IsPacked
		d.Alignment = w.Alignment
		return d, nil

	case "enum":
		var w struct {
			Name       string          `json:"name"`
			Underlying json.RawMessage `json:"underlying"`
			Values     []struct {
				Name  string `json:"name"`
				Value int64  `json:"value"`
			} `json:"values"`
			Vis  wireVisibility `json:"vis"`
			Span wireSpan       `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		underlying, err := decodeType(w.Underlying)
		if err != nil {
			return nil, err
		}
		values := make([]ast.EnumValue, len(w.Values))
		for i, v := range w.Values {
			values[i] = ast.EnumValue{Name: v.Name, Value: v.Value}
		}
		return ast.NewEnumDecl(w.Name, underlying, values, w.Vis.toAST(), w.Span.toAST()), nil

	case "union":
		var w struct {
			Name    string          `json:"name"`
			Fields  []wireField     `json:"fields"`
			TagType json.RawMessage `json:"tag_type"`
			Vis     wireVisibility  `json:"vis"`
			Span    wireSpan        `json:"span"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fields, err := decodeFields(w.Fields)
		if err != nil {
			return nil, err
		}
		tagDecl, err := decodeDecl(w.TagType)
		if err != nil {
			return nil, err
		}
		tagType, ok := tagDecl.(*ast.EnumDecl)
		if !ok {
			return nil, fmt.Errorf("union %q: tag_type is not an enum", w.Name)
		}
		return ast.NewUnionDecl(w.Name, fields, tagType, w.Vis.toAST(), w.Span.toAST()), nil

	default:
		return nil, fmt.Errorf("unknown decl kind %q", t.Kind)
	}
}

type wireField struct {
	Name      string          `json:"name"`
	Type      json.RawMessage `json:"type"`
	Alignment int             `json:"alignment"`
}

func decodeFields(wfs []wireField) ([]ast.Field, error) {
	fields := make([]ast.Field, len(wfs))
	for i, wf := range wfs {
		typ, err := decodeType(wf.Type)
		if err != nil {
			return nil, err
		}
		fields[i] = ast.Field{Name: wf.Name, Type: typ, Alignment: wf.Alignment}
	}
	return fields, nil
}
