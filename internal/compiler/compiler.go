package compiler

import (
	"fmt"
	"strconv"

	"github.com/solarlang/solar/internal/ast"
	"github.com/solarlang/solar/internal/builtin"
	"github.com/solarlang/solar/internal/diag"
	"github.com/solarlang/solar/internal/funcstore"
	"github.com/solarlang/solar/internal/idpath"
	"github.com/solarlang/solar/internal/mir"
	"github.com/solarlang/solar/internal/modindex"
	"github.com/solarlang/solar/internal/resolve"
	"github.com/solarlang/solar/internal/scope"
	"github.com/solarlang/solar/internal/symbol"
	"github.com/solarlang/solar/internal/typestore"
)

// resolverFor returns the cached Resolver for file fileIdx of the module
// at modulePath, computing it on first use (§4.3's per-file import
// resolution).
func (c *Context) resolverFor(mod *modindex.Module, modulePath idpath.Path, fileIdx uint16) (resolve.Resolver, error) {
	key := fmt.Sprintf("%s#%d", modulePath.String(), fileIdx)
	if r, ok := c.imports[key]; ok {
		return r, nil
	}

	proj, ok := c.Projects.Get(mod.ProjectId)
	if !ok {
		return nil, diag.NewFatalError("project not loaded: " + mod.ProjectId.String())
	}
	file := mod.Files[fileIdx]
	r, err := resolve.ResolveImports(file, proj)
	if err != nil {
		return nil, err
	}
	c.imports[key] = r
	return r, nil
}

func (c *Context) lookupFor(mod *modindex.Module, modulePath idpath.Path, fileIdx uint16) (resolve.Lookup, error) {
	r, err := c.resolverFor(mod, modulePath, fileIdx)
	if err != nil {
		return resolve.Lookup{}, err
	}
	return resolve.Lookup{
		Global:     c.Global,
		ModulePath: modulePath,
		Module:     mod,
		Imports:    r,
	}, nil
}

// CompileSymbol is the top-level entry point (§4.5.1): dispatch on the
// kind of item a SymbolId names, given the caller's concrete argument
// TypeIds.
func (c *Context) CompileSymbol(sym symbol.Id, argTypes []typestore.TypeId) (symbol.FunctionId, typestore.TypeId, error) {
	mod, ok := c.Global.Get(sym.Module)
	if !ok {
		return 0, 0, diag.NewModuleNotFoundError(sym.Module.String(), ast.NoSpan)
	}
	if int(sym.File) >= len(mod.Files) {
		return 0, 0, diag.NewFatalError("file index out of range for " + sym.String())
	}
	file := mod.Files[sym.File]
	if sym.Item.Index >= len(file.Items) {
		return 0, 0, diag.NewFatalError("item index out of range for " + sym.String())
	}
	decl := file.Items[sym.Item.Index]

	switch d := decl.(type) {
	case *ast.FuncDecl:
		return c.CompileFunction(sym, mod, d, argTypes)

	case *ast.LetDecl:
		if len(argTypes) != 0 {
			return 0, 0, diag.NewCallingVariableError(d.Name.Name, file.Source.Path, d.Span())
		}
		return c.compileGlobalLet(sym, mod, d)

	case *ast.TypeDecl:
		return 0, 0, diag.NewUnimplementedError("generated constructor for "+d.Name.Name, d.Span())

	case *ast.TestDecl:
		return 0, 0, diag.NewFatalError("cannot compile a test as a call target: " + d.Name)

	default:
		return 0, 0, diag.NewFatalError(fmt.Sprintf("unrecognized declaration kind for %s", sym.String()))
	}
}

// compileGlobalLet compiles a top-level "let" exactly like a zero-arity
// function: memoized in the function store under SSID(sym, nil), reusing
// the reservation machinery instead of a second cache (documented as an
// Open Question resolution).
func (c *Context) compileGlobalLet(sym symbol.Id, mod *modindex.Module, d *ast.LetDecl) (symbol.FunctionId, typestore.TypeId, error) {
	ssid := symbol.NewSSID(sym, nil)

	if rec, ok := c.Funcs.Lookup(ssid); ok {
		if rec.Kind == funcstore.Complete {
			return rec.Id, rec.ReturnType, nil
		}
		return 0, 0, diag.NewRecursionWithoutReturnTypeError(d.Name.Name, d.Span())
	}

	id := c.Funcs.Reserve(ssid)

	lk, err := c.lookupFor(mod, sym.Module, sym.File)
	if err != nil {
		return 0, 0, err
	}
	sc := scope.New()
	body, err := c.compileExpr(lk, sc, d.Value)
	if err != nil {
		return 0, 0, err
	}

	c.Funcs.Complete(ssid, nil, body, body.Type)
	return id, body.Type, nil
}

// CompileFunction implements §4.5.2: memoized, recursion-safe
// specialization of fn for the given argument types.
func (c *Context) CompileFunction(sym symbol.Id, mod *modindex.Module, fn *ast.FuncDecl, argTypes []typestore.TypeId) (symbol.FunctionId, typestore.TypeId, error) {
	ssid := symbol.NewSSID(sym, typeIdsToInts(argTypes))

	if rec, ok := c.Funcs.Lookup(ssid); ok {
		switch rec.Kind {
		case funcstore.Complete:
			return rec.Id, rec.ReturnType, nil
		case funcstore.Partial:
			if fn.RetType == nil {
				return 0, 0, diag.NewRecursionWithoutReturnTypeError(fn.Name.Name, fn.Span())
			}
			retType, err := c.resolveTypeAnn(fn.RetType)
			if err != nil {
				return 0, 0, err
			}
			return rec.Id, retType, nil
		}
	}

	id := c.Funcs.Reserve(ssid)

	sc := scope.New()
	if len(fn.Params) != len(argTypes) {
		return 0, 0, diag.NewWrongBuiltinError(fmt.Sprintf("%s: expected %d arguments, got %d", fn.Name.Name, len(fn.Params), len(argTypes)), fn.Span())
	}
	for i, param := range fn.Params {
		argType := argTypes[i]
		if param.Type != nil {
			declared, err := c.resolveTypeAnn(param.Type)
			if err != nil {
				return 0, 0, err
			}
			if declared != argType {
				return 0, 0, diag.NewTypeMismatchError(c.Types.Name(argType), c.Types.Name(declared), param.Name.Span)
			}
		}
		sc.Push(param.Name.Name, argType)
	}

	lk, err := c.lookupFor(mod, sym.Module, sym.File)
	if err != nil {
		return 0, 0, err
	}

	body, err := c.compileExpr(lk, sc, fn.Body)
	if err != nil {
		return 0, 0, err
	}

	c.Funcs.Complete(ssid, argTypes, body, body.Type)
	return id, body.Type, nil
}

func typeIdsToInts(ids []typestore.TypeId) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

// resolveTypeAnn looks up the TypeId a TypeAnn names. Built-in names are
// resolved directly against the store's BuiltinTypeIds table; anything
// else is unimplemented (user type declarations are not yet linked into
// the store outside the §4.7 built-in path).
func (c *Context) resolveTypeAnn(ann *ast.TypeAnn) (typestore.TypeId, error) {
	name := ann.Name.String()
	if id, ok := builtinTypeIdByName(c.Types, name); ok {
		return id, nil
	}
	return 0, diag.NewUnimplementedError("type annotation referring to a user-declared type: "+name, ann.Span())
}

func builtinTypeIdByName(store *typestore.Store, name string) (typestore.TypeId, bool) {
	b := store.Builtin
	switch name {
	case "Bool":
		return b.Bool, b.Bool != 0
	case "Int8":
		return b.Int8, b.Int8 != 0
	case "Int16":
		return b.Int16, b.Int16 != 0
	case "Int32":
		return b.Int32, b.Int32 != 0
	case "Int":
		return b.Int, b.Int != 0
	case "Uint8":
		return b.Uint8, b.Uint8 != 0
	case "Uint16":
		return b.Uint16, b.Uint16 != 0
	case "Uint32":
		return b.Uint32, b.Uint32 != 0
	case "Uint":
		return b.Uint, b.Uint != 0
	case "Float32":
		return b.Float32, b.Float32 != 0
	case "Float":
		return b.Float, b.Float != 0
	case "String":
		return b.String, b.String != 0
	default:
		return 0, false
	}
}

// compileExpr implements §4.5.3: the per-expression-form dispatch.
func (c *Context) compileExpr(lk resolve.Lookup, sc *scope.Scope, e ast.Expr) (mir.StaticExpression, error) {
	switch expr := e.(type) {
	case *ast.LitExpr:
		return c.compileValue(lk, sc, expr)

	case *ast.IdentExpr:
		return c.compileValue(lk, sc, expr)

	case *ast.TupleExpr:
		return c.compileValue(lk, sc, expr)

	case *ast.LetInExpr:
		return c.compileLetIn(lk, sc, expr)

	case *ast.IfExpr:
		return c.compileIf(lk, sc, expr)

	case *ast.CallExpr:
		return c.compileCall(lk, sc, expr)

	default:
		return mir.StaticExpression{}, diag.NewFatalError(fmt.Sprintf("unrecognized expression form %T", e))
	}
}

// compileLetIn implements §4.5.3's let-in construction: compile each
// binding left to right, pushing into scope as we go, then wrap the
// compiled body right-associatively through NewLocalVar.
func (c *Context) compileLetIn(lk resolve.Lookup, sc *scope.Scope, expr *ast.LetInExpr) (mir.StaticExpression, error) {
	type pending struct {
		slot  int
		value mir.StaticExpression
	}
	var bound []pending

	for _, binding := range expr.Bindings {
		value, err := c.compileExpr(lk, sc, binding.Value)
		if err != nil {
			return mir.StaticExpression{}, err
		}
		slot := sc.Push(binding.Name.Name, value.Type)
		bound = append(bound, pending{slot: slot, value: value})
	}

	body, err := c.compileExpr(lk, sc, expr.Body)
	if err != nil {
		return mir.StaticExpression{}, err
	}

	for range bound {
		sc.Pop()
	}

	result := body
	for i := len(bound) - 1; i >= 0; i-- {
		result = mir.StaticExpression{
			Instr: mir.NewLocalVar{Slot: bound[i].slot, Value: bound[i].value, Body: result},
			Type:  result.Type,
		}
	}
	return result, nil
}

// compileIf implements SPEC_FULL §B's typing rule.
func (c *Context) compileIf(lk resolve.Lookup, sc *scope.Scope, expr *ast.IfExpr) (mir.StaticExpression, error) {
	cond, err := c.compileExpr(lk, sc, expr.Cond)
	if err != nil {
		return mir.StaticExpression{}, err
	}
	if cond.Type != c.Types.Builtin.Bool {
		return mir.StaticExpression{}, diag.NewTypeMismatchError(c.Types.Name(cond.Type), "Bool", expr.Cond.Span())
	}

	then, err := c.compileExpr(lk, sc, expr.Then)
	if err != nil {
		return mir.StaticExpression{}, err
	}
	els, err := c.compileExpr(lk, sc, expr.Else)
	if err != nil {
		return mir.StaticExpression{}, err
	}
	if then.Type != els.Type {
		return mir.StaticExpression{}, diag.NewTypeMismatchError(c.Types.Name(els.Type), c.Types.Name(then.Type), expr.Else.Span())
	}

	return mir.StaticExpression{
		Instr: mir.IfExpr{Cond: cond, CaseTrue: then, CaseFalse: els},
		Type:  then.Type,
	}, nil
}

// compileCall implements §4.5.3's function-call expression rule.
func (c *Context) compileCall(lk resolve.Lookup, sc *scope.Scope, expr *ast.CallExpr) (mir.StaticExpression, error) {
	args := make([]mir.StaticExpression, len(expr.Args))
	argTypes := make([]typestore.TypeId, len(expr.Args))
	for i, a := range expr.Args {
		compiled, err := c.compileExpr(lk, sc, a)
		if err != nil {
			return mir.StaticExpression{}, err
		}
		args[i] = compiled
		argTypes[i] = compiled.Type
	}

	name := expr.Callee.String()
	if builtin.IsBuiltinCall(name) {
		return builtin.Dispatch(c.Types, name, args, expr.Span())
	}

	candidates := resolve.ResolveSymbol(lk, expr.Callee, sc)
	if len(candidates) == 0 {
		return mir.StaticExpression{}, diag.NewNotFoundError(name, expr.Span())
	}

	global := filterGlobalCandidates(candidates)
	if len(global) == 0 {
		// Every candidate was a LocalVar: calling a value, not a function.
		return mir.StaticExpression{}, diag.NewCallingVariableError(name, "", expr.Span())
	}
	if len(global) > 1 {
		return mir.StaticExpression{}, diag.NewAmbiguousOverloadError(name, len(global), expr.Span())
	}

	funcId, retType, err := c.CompileSymbol(global[0], argTypes)
	if err != nil {
		return mir.StaticExpression{}, err
	}

	return mir.StaticExpression{
		Instr: mir.FunctionCall{Func: funcId, Args: args},
		Type:  retType,
	}, nil
}

func filterGlobalCandidates(candidates []resolve.Candidate) []symbol.Id {
	var out []symbol.Id
	for _, cand := range candidates {
		if cand.Kind == resolve.CandidateGlobal {
			out = append(out, cand.Sym)
		}
	}
	return out
}

// compileValue implements §4.5.4: literals, identifiers, and arity-one
// tuples.
func (c *Context) compileValue(lk resolve.Lookup, sc *scope.Scope, e ast.Expr) (mir.StaticExpression, error) {
	switch expr := e.(type) {
	case *ast.LitExpr:
		return c.compileLit(expr.Lit)

	case *ast.IdentExpr:
		if len(expr.Path.Segments) != 1 {
			return mir.StaticExpression{}, diag.NewUnimplementedError("field access ("+expr.Path.String()+")", expr.Span())
		}
		candidates := resolve.ResolveSymbol(lk, expr.Path, sc)
		if len(candidates) == 0 {
			return mir.StaticExpression{}, diag.NewNotFoundError(expr.Path.String(), expr.Span())
		}
		if candidates[0].Kind == resolve.CandidateLocal {
			b := candidates[0].Local
			return mir.StaticExpression{Instr: mir.GetLocalVar{Slot: b.Slot}, Type: b.Type}, nil
		}
		return mir.StaticExpression{}, diag.NewUnimplementedError("referencing function "+expr.Path.String()+" without calling it (no closures)", expr.Span())

	case *ast.TupleExpr:
		if len(expr.Elems) != 1 {
			return mir.StaticExpression{}, diag.NewUnimplementedError("tuple of arity > 1", expr.Span())
		}
		return c.compileExpr(lk, sc, expr.Elems[0])

	default:
		return mir.StaticExpression{}, diag.NewFatalError(fmt.Sprintf("unrecognized value form %T", e))
	}
}

func (c *Context) compileLit(lit ast.Lit) (mir.StaticExpression, error) {
	b := c.Types.Builtin
	switch l := lit.(type) {
	case *ast.StringLit:
		return mir.StaticExpression{Instr: mir.Const{Value: mir.String(l.PlainText())}, Type: b.String}, nil

	case *ast.BoolLit:
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Bool(l.Value)}, Type: b.Bool}, nil

	case *ast.IntLit:
		return c.compileIntLit(l)

	case *ast.FloatLit:
		f, err := strconv.ParseFloat(l.Text, 64)
		if err != nil {
			return mir.StaticExpression{}, diag.NewFloatConversionError(l.Text, l.Span())
		}
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Float64(f)}, Type: b.Float}, nil

	default:
		return mir.StaticExpression{}, diag.NewFatalError(fmt.Sprintf("unrecognized literal form %T", lit))
	}
}

// compileIntLit implements §4.5.4's suffix→width table, defaulting to
// 64-bit signed when the suffix is absent.
func (c *Context) compileIntLit(l *ast.IntLit) (mir.StaticExpression, error) {
	b := c.Types.Builtin
	n, err := strconv.ParseUint(l.Digits, l.Radix, 64)
	if err != nil {
		return mir.StaticExpression{}, diag.NewIntConversionError(l.Digits, l.Span())
	}

	switch l.Suffix {
	case "i8":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Int8(int8(n))}, Type: b.Int8}, nil
	case "i16":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Int16(int16(n))}, Type: b.Int16}, nil
	case "i32":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Int32(int32(n))}, Type: b.Int32}, nil
	case "", "i":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Int64(int64(n))}, Type: b.Int}, nil
	case "u8":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Uint8(uint8(n))}, Type: b.Uint8}, nil
	case "u16":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Uint16(uint16(n))}, Type: b.Uint16}, nil
	case "u32":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Uint32(uint32(n))}, Type: b.Uint32}, nil
	case "u":
		return mir.StaticExpression{Instr: mir.Const{Value: mir.Uint64(n)}, Type: b.Uint}, nil
	default:
		return mir.StaticExpression{}, diag.NewIntConversionError(l.Digits+l.Suffix, l.Span())
	}
}
