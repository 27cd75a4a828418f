package parser_test

import (
	"testing"

	"zomlang/internal/ast"
	"zomlang/internal/diag"
	"zomlang/internal/lexer"
	"zomlang/internal/parser"
	"zomlang/internal/source"
)

type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes, Fixes: fixes,
	})
}

func (r *testReporter) errorCount() int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

func parseSource(t *testing.T, input string) (*ast.SourceFile, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.zom", []byte(input))
	reporter := &testReporter{}
	lx := lexer.New(fs, id, lexer.Options{Reporter: reporter})
	sf := parser.ParseFile(lx, id, "test.zom", parser.Options{Reporter: reporter})
	return sf, reporter
}

func TestEmptyInputProducesEmptySourceFile(t *testing.T) {
	sf, rep := parseSource(t, "")
	if len(sf.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(sf.Statements))
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %+v", len(rep.diagnostics), rep.diagnostics)
	}
}

func TestKeywordUsedAsIdentifierIsAParseError(t *testing.T) {
	sf, rep := parseSource(t, "let var_ = var;")
	if len(sf.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(sf.Statements))
	}
	decl, ok := sf.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.VariableDeclaration", sf.Statements[0])
	}
	if len(decl.Elements) != 1 || decl.Elements[0].Name != "var_" {
		t.Fatalf("got %+v", decl.Elements)
	}
	if rep.errorCount() == 0 {
		t.Fatalf("expected at least one error diagnostic for the reserved word in expression position")
	}
}

func TestBinaryPrecedence(t *testing.T) {
	sf, rep := parseSource(t, "1 + 2 * 3 == 7;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	stmt, ok := sf.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("got %T", sf.Statements[0])
	}
	eq, ok := stmt.Expression.(*ast.BinaryExpression)
	if !ok || eq.Operator.Symbol != "==" {
		t.Fatalf("got %+v", stmt.Expression)
	}
	plus, ok := eq.Left.(*ast.BinaryExpression)
	if !ok || plus.Operator.Symbol != "+" {
		t.Fatalf("left of == is %+v, want a '+' BinaryExpression", eq.Left)
	}
	if _, ok := plus.Left.(*ast.IntLiteral); !ok {
		t.Fatalf("left of + is %T, want IntLiteral", plus.Left)
	}
	mul, ok := plus.Right.(*ast.BinaryExpression)
	if !ok || mul.Operator.Symbol != "*" {
		t.Fatalf("right of + is %+v, want a '*' BinaryExpression", plus.Right)
	}
	if _, ok := eq.Right.(*ast.IntLiteral); !ok {
		t.Fatalf("right of == is %T, want IntLiteral", eq.Right)
	}
}

func TestUnterminatedStringReportsOneErrorAndContinues(t *testing.T) {
	sf, rep := parseSource(t, `"hello`)
	if rep.errorCount() != 1 {
		t.Fatalf("got %d errors, want 1: %+v", rep.errorCount(), rep.diagnostics)
	}
	if sf == nil {
		t.Fatal("parser must always return a (possibly partial) AST")
	}
}

func TestFunctionDeclarationWithOptionalReturnType(t *testing.T) {
	sf, rep := parseSource(t, "fun f(x: i32) -> i32? { return x; }")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	if len(sf.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(sf.Statements))
	}
	fn, ok := sf.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDeclaration", sf.Statements[0])
	}
	if fn.Name != "f" {
		t.Fatalf("got name %q", fn.Name)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("got params %+v", fn.Params)
	}
	if fn.ReturnType == nil {
		t.Fatal("expected a return type")
	}
	opt, ok := fn.ReturnType.Type.(*ast.OptionalType)
	if !ok {
		t.Fatalf("got return type %T, want *ast.OptionalType", fn.ReturnType.Type)
	}
	ref, ok := opt.Inner.(*ast.TypeReference)
	if !ok || ref.Name != "i32" {
		t.Fatalf("got inner type %+v", opt.Inner)
	}
	if fn.Body == nil || len(fn.Body.Statements) != 1 {
		t.Fatalf("got body %+v", fn.Body)
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ReturnStatement", fn.Body.Statements[0])
	}
	ident, ok := ret.Value.(*ast.Identifier)
	if !ok || ident.Name != "x" {
		t.Fatalf("got return value %+v", ret.Value)
	}
}

func TestFunctionDeclarationWithRaisesErrorType(t *testing.T) {
	sf, rep := parseSource(t, "fun f() -> i32 raises Error { return 0; }")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	fn := sf.Statements[0].(*ast.FunctionDeclaration)
	if !fn.ReturnType.HasErrorType() {
		t.Fatal("expected an error type from 'raises Error'")
	}
	errRef, ok := fn.ReturnType.ErrorType.(*ast.TypeReference)
	if !ok || errRef.Name != "Error" {
		t.Fatalf("got error type %+v", fn.ReturnType.ErrorType)
	}
}

func TestVariableDeclarationMultipleBindings(t *testing.T) {
	sf, rep := parseSource(t, "let a = 1, b = 2;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	decl := sf.Statements[0].(*ast.VariableDeclaration)
	if len(decl.Elements) != 2 {
		t.Fatalf("got %d bindings, want 2", len(decl.Elements))
	}
	if decl.Kind_ != ast.VarLet {
		t.Fatalf("got kind %v, want VarLet", decl.Kind_)
	}
}

func TestIfElseStatement(t *testing.T) {
	sf, rep := parseSource(t, "if (a) { b; } else { c; }")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	ifStmt, ok := sf.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("got %T", sf.Statements[0])
	}
	if ifStmt.Then == nil || ifStmt.Else == nil {
		t.Fatalf("got %+v", ifStmt)
	}
}

func TestForOfLoop(t *testing.T) {
	sf, rep := parseSource(t, "for (let x of xs) { y; }")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	forStmt, ok := sf.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("got %T", sf.Statements[0])
	}
	if !forStmt.IsOf || forStmt.Binding != "x" {
		t.Fatalf("got %+v", forStmt)
	}
}

func TestConditionalTernaryIsRightAssociative(t *testing.T) {
	sf, rep := parseSource(t, "a ? b : c ? d : e;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	stmt := sf.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expression.(*ast.ConditionalExpression)
	if !ok {
		t.Fatalf("got %T", stmt.Expression)
	}
	if _, ok := outer.Else.(*ast.ConditionalExpression); !ok {
		t.Fatalf("got else %T, want nested ConditionalExpression (right-associative)", outer.Else)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	sf, rep := parseSource(t, "a = b = c;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	stmt := sf.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expression.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("got %T", stmt.Expression)
	}
	if _, ok := outer.Right.(*ast.AssignmentExpression); !ok {
		t.Fatalf("got right %T, want nested AssignmentExpression", outer.Right)
	}
}

func TestCallExpressionWithTypeArgs(t *testing.T) {
	sf, rep := parseSource(t, "f<T>(x, y);")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	stmt := sf.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("got %T", stmt.Expression)
	}
	if len(call.TypeArgs) != 1 || len(call.Args) != 2 {
		t.Fatalf("got %+v", call)
	}
}

func TestLessThanOperatorNotConfusedForTypeArgs(t *testing.T) {
	sf, rep := parseSource(t, "a < b;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	stmt := sf.Statements[0].(*ast.ExpressionStatement)
	bin, ok := stmt.Expression.(*ast.BinaryExpression)
	if !ok || bin.Operator.Symbol != "<" {
		t.Fatalf("got %+v, want a '<' BinaryExpression", stmt.Expression)
	}
}

func TestArrowFunctionExpression(t *testing.T) {
	sf, rep := parseSource(t, "let f = (a, b) => a + b;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	decl := sf.Statements[0].(*ast.VariableDeclaration)
	fn, ok := decl.Elements[0].Initializer.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("got %T", decl.Elements[0].Initializer)
	}
	if len(fn.Params) != 2 || fn.Body == nil || len(fn.Body.Statements) != 1 {
		t.Fatalf("got %+v", fn)
	}
	if _, ok := fn.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Fatalf("expected the concise arrow body desugared into a return statement, got %T", fn.Body.Statements[0])
	}
}

func TestArrayLiteralWithSpread(t *testing.T) {
	sf, rep := parseSource(t, "let xs = [1, 2, ...ys];")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	decl := sf.Statements[0].(*ast.VariableDeclaration)
	lit, ok := decl.Elements[0].Initializer.(*ast.ArrayLiteralExpression)
	if !ok {
		t.Fatalf("got %T", decl.Elements[0].Initializer)
	}
	if len(lit.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(lit.Elements))
	}
	if _, ok := lit.Elements[2].(*ast.PrefixUnaryExpression); !ok {
		t.Fatalf("got %T for spread element", lit.Elements[2])
	}
}

func TestObjectLiteralShorthandAndComputed(t *testing.T) {
	sf, rep := parseSource(t, "let o = { a, [k]: v };")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	decl := sf.Statements[0].(*ast.VariableDeclaration)
	obj, ok := decl.Elements[0].Initializer.(*ast.ObjectLiteralExpression)
	if !ok {
		t.Fatalf("got %T", decl.Elements[0].Initializer)
	}
	if len(obj.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(obj.Properties))
	}
	if !obj.Properties[0].Shorthand {
		t.Fatalf("expected first property to be shorthand")
	}
	if !obj.Properties[1].Computed {
		t.Fatalf("expected second property to be computed")
	}
}

func TestAsAndForcedAsAndConditionalAsCasts(t *testing.T) {
	sf, rep := parseSource(t, "let a = x as T; let b = x as! T; let c = x as? T;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	if len(sf.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(sf.Statements))
	}
	kinds := []ast.Kind{
		sf.Statements[0].(*ast.VariableDeclaration).Elements[0].Initializer.Kind(),
		sf.Statements[1].(*ast.VariableDeclaration).Elements[0].Initializer.Kind(),
		sf.Statements[2].(*ast.VariableDeclaration).Elements[0].Initializer.Kind(),
	}
	want := []ast.Kind{ast.KindAsExpression, ast.KindForcedAsExpression, ast.KindConditionalAsExpression}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("statement %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestTemplateExpressionWithInterpolation(t *testing.T) {
	sf, rep := parseSource(t, "let s = `a${b}c`;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	decl := sf.Statements[0].(*ast.VariableDeclaration)
	tmpl, ok := decl.Elements[0].Initializer.(*ast.TemplateExpression)
	if !ok {
		t.Fatalf("got %T", decl.Elements[0].Initializer)
	}
	if tmpl.HeadChunk != "a" || len(tmpl.Spans) != 1 || tmpl.Spans[0].TrailingChunk != "c" {
		t.Fatalf("got %+v", tmpl)
	}
	ident, ok := tmpl.Spans[0].Expr.(*ast.Identifier)
	if !ok || ident.Name != "b" {
		t.Fatalf("got hole expr %+v", tmpl.Spans[0].Expr)
	}
}

func TestUnclosedBraceRecoversAtNextStatement(t *testing.T) {
	sf, rep := parseSource(t, "fun f() -> i32 { return 1;\nlet x = 2;")
	if rep.errorCount() == 0 {
		t.Fatalf("expected an error diagnostic for the unclosed brace")
	}
	// The parser never throws and always returns an AST, however partial.
	if sf == nil {
		t.Fatal("expected a non-nil AST")
	}
}

func TestExportedDeclaration(t *testing.T) {
	sf, rep := parseSource(t, "export let x = 1;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	exp, ok := sf.Statements[0].(*ast.ExportDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.ExportDeclaration", sf.Statements[0])
	}
	decl, ok := exp.Decl.(*ast.VariableDeclaration)
	if !ok || !decl.Exported {
		t.Fatalf("got %+v", exp.Decl)
	}
}

func TestImportDeclaration(t *testing.T) {
	sf, rep := parseSource(t, `import { a, b as c } from some.pkg;`)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	imp, ok := sf.Statements[0].(*ast.ImportDeclaration)
	if !ok {
		t.Fatalf("got %T", sf.Statements[0])
	}
	if len(imp.Specifiers) != 2 || imp.Specifiers[1].Alias != "c" {
		t.Fatalf("got %+v", imp.Specifiers)
	}
	if len(imp.Path.Parts) != 2 || imp.Path.Parts[1] != "pkg" {
		t.Fatalf("got path %+v", imp.Path)
	}
}

func TestMissingSemicolonDiagnosticCarriesAnInsertFix(t *testing.T) {
	_, reporter := parseSource(t, "let x = 1\nlet y = 2;")

	var found *diag.Diagnostic
	for i := range reporter.diagnostics {
		if reporter.diagnostics[i].Code == diag.SynExpectSemicolon {
			found = &reporter.diagnostics[i]
			break
		}
	}
	if found == nil {
		t.Fatal("expected a SynExpectSemicolon diagnostic")
	}
	if len(found.Fixes) != 1 {
		t.Fatalf("got %d fixes, want 1", len(found.Fixes))
	}
	fix := found.Fixes[0]
	if !fix.IsPreferred {
		t.Error("the insert-semicolon fix should be marked preferred")
	}
	if len(fix.Edits) != 1 || fix.Edits[0].NewText != ";" {
		t.Fatalf("got edits %+v, want a single ';' insertion", fix.Edits)
	}
	if !fix.Edits[0].Span.Empty() {
		t.Error("the fix should insert at a zero-length span, not replace existing text")
	}
}

func TestDeterministicParse(t *testing.T) {
	const src = "fun f(x: i32) -> i32? { return x + 1 * 2; }"
	sf1, rep1 := parseSource(t, src)
	sf2, rep2 := parseSource(t, src)
	if len(rep1.diagnostics) != len(rep2.diagnostics) {
		t.Fatalf("got different diagnostic counts across runs: %d vs %d", len(rep1.diagnostics), len(rep2.diagnostics))
	}
	var dump1, dump2 []ast.Kind
	ast.Walk(sf1, func(n ast.Node) bool { dump1 = append(dump1, n.Kind()); return true })
	ast.Walk(sf2, func(n ast.Node) bool { dump2 = append(dump2, n.Kind()); return true })
	if len(dump1) != len(dump2) {
		t.Fatalf("got different tree shapes across runs: %d vs %d nodes", len(dump1), len(dump2))
	}
	for i := range dump1 {
		if dump1[i] != dump2[i] {
			t.Fatalf("node %d: got %v vs %v", i, dump1[i], dump2[i])
		}
	}
}

func TestRegexLiteralAtExpressionStart(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.zom", []byte("let re = /ab+c/gi;"))
	reporter := &testReporter{}
	lx := lexer.New(fs, id, lexer.Options{Reporter: reporter, SupportRegexLiterals: true})
	sf := parser.ParseFile(lx, id, "test.zom", parser.Options{Reporter: reporter})

	if len(reporter.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", reporter.diagnostics)
	}
	decl, ok := sf.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.VariableDeclaration", sf.Statements[0])
	}
	re, ok := decl.Elements[0].Initializer.(*ast.RegexLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.RegexLiteral", decl.Elements[0].Initializer)
	}
	if re.Pattern != "ab+c" || re.Flags != "gi" {
		t.Fatalf("got pattern %q flags %q", re.Pattern, re.Flags)
	}
}

func TestSlashAfterOperandStaysDivision(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.zom", []byte("let x = a / b;"))
	reporter := &testReporter{}
	lx := lexer.New(fs, id, lexer.Options{Reporter: reporter, SupportRegexLiterals: true})
	sf := parser.ParseFile(lx, id, "test.zom", parser.Options{Reporter: reporter})

	if len(reporter.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", reporter.diagnostics)
	}
	decl := sf.Statements[0].(*ast.VariableDeclaration)
	div, ok := decl.Elements[0].Initializer.(*ast.BinaryExpression)
	if !ok || div.Operator.Symbol != "/" {
		t.Fatalf("got %T, want a '/' BinaryExpression", decl.Elements[0].Initializer)
	}
}

func TestStrayTokenRecoversAtNextStatementStart(t *testing.T) {
	sf, rep := parseSource(t, ") )\nlet x = 1;")
	if rep.errorCount() == 0 {
		t.Fatal("expected at least one diagnostic for the stray tokens")
	}
	var decls int
	for _, s := range sf.Statements {
		if _, ok := s.(*ast.VariableDeclaration); ok {
			decls++
		}
	}
	if decls != 1 {
		t.Fatalf("expected recovery to reach the following declaration, got %+v", sf.Statements)
	}
}

func TestStrayCloseBraceInsideBlockDoesNotCascade(t *testing.T) {
	sf, rep := parseSource(t, "fun f() -> i32 { return 1; }\nlet x = 2;")
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	if len(sf.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(sf.Statements))
	}
}
