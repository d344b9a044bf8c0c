package parser

import (
	"testing"

	"github.com/kievzenit/golox/internal/ast"
	"github.com/kievzenit/golox/internal/compiler_errors"
	"github.com/kievzenit/golox/internal/lexer"
	"github.com/kievzenit/golox/internal/runtime"
)

// parse runs the lexer and parser on src, failing the test on any
// diagnostic or when the statement count differs from want.
func parse(t *testing.T, src string, want int) []ast.Stmt {
	t.Helper()

	tokens, lexErrs := lexer.Scan(src)
	if len(lexErrs) > 0 {
		t.Fatalf("lexer errors: %v", lexErrs)
	}

	stmts, errs := Parse(tokens)
	if len(errs) > 0 {
		for _, err := range errs {
			t.Errorf("  %s", compiler_errors.Format(err))
		}
		t.FailNow()
	}
	if len(stmts) != want {
		t.Fatalf("expected %d statements, got %d", want, len(stmts))
	}

	return stmts
}

func parseErrors(t *testing.T, src string) ([]ast.Stmt, []string) {
	t.Helper()

	tokens, _ := lexer.Scan(src)
	stmts, errs := Parse(tokens)

	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = compiler_errors.Format(err)
	}

	return stmts, messages
}

func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()

	stmt, ok := parse(t, src, 1)[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected expression statement for %q", src)
	}

	return stmt.Expr
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 - 2 - 3;", "1 2 - 3 -"},
		{"1 + 2 * 3;", "1 2 3 * +"},
		{"(1 + 2) * 3;", "1 2 + group 3 *"},
		{"8 / 4 / 2;", "8 4 / 2 /"},
		{"1 < 2 == 3 > 4;", "1 2 < 3 4 > =="},
		{"-1 - -2;", "1 - 2 - -"},
		{"!!true;", "true ! !"},
		{"a = b = 3;", "3 b = a ="},
		{"1 != 2 == true;", "1 2 != true =="},
		{"1 + 2 <= 3 * 4;", "1 2 + 3 4 * <="},
	}

	for _, tc := range cases {
		if got := ast.PrintRPN(exprOf(t, tc.src)); got != tc.want {
			t.Errorf("%q parsed as %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestParseLeftLeaningTree(t *testing.T) {
	expr := exprOf(t, "1 - 2 - 3;")

	outer, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected binary expression, got %T", expr)
	}
	if _, ok := outer.Left.(*ast.BinaryExpr); !ok {
		t.Fatalf("left operand should be the nested subtraction, got %T", outer.Left)
	}
	if lit, ok := outer.Right.(*ast.LiteralExpr); !ok || lit.Value != (runtime.NumberValue{Val: 3}) {
		t.Fatalf("right operand should be literal 3, got %#v", outer.Right)
	}
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want runtime.Value
	}{
		{"12.5;", runtime.NumberValue{Val: 12.5}},
		{"\"str\";", runtime.StringValue{Val: "str"}},
		{"true;", runtime.BoolValue{Val: true}},
		{"false;", runtime.BoolValue{Val: false}},
		{"nil;", runtime.Nil},
	}

	for _, tc := range cases {
		lit, ok := exprOf(t, tc.src).(*ast.LiteralExpr)
		if !ok {
			t.Fatalf("%q: expected literal", tc.src)
		}
		if lit.Value != tc.want {
			t.Errorf("%q: value = %#v, want %#v", tc.src, lit.Value, tc.want)
		}
	}
}

func TestParseStatements(t *testing.T) {
	stmts := parse(t, `
var a;
var b = 1;
print a;
{ a = 2; print b; }
if (a) print 1; else print 2;
if (b) { print 3; }
`, 6)

	if decl, ok := stmts[0].(*ast.VarDeclStmt); !ok || decl.Name.Lexeme != "a" || decl.Initializer != nil {
		t.Fatalf("stmt 0: %#v", stmts[0])
	}
	if decl, ok := stmts[1].(*ast.VarDeclStmt); !ok || decl.Initializer == nil {
		t.Fatalf("stmt 1: %#v", stmts[1])
	}
	if _, ok := stmts[2].(*ast.PrintStmt); !ok {
		t.Fatalf("stmt 2: %#v", stmts[2])
	}
	block, ok := stmts[3].(*ast.BlockStmt)
	if !ok || len(block.Stmts) != 2 {
		t.Fatalf("stmt 3: %#v", stmts[3])
	}
	if assign, ok := block.Stmts[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr); !ok || assign.Name.Lexeme != "a" {
		t.Fatalf("block stmt 0: %#v", block.Stmts[0])
	}
	ifElse, ok := stmts[4].(*ast.IfStmt)
	if !ok || ifElse.Else == nil {
		t.Fatalf("stmt 4: %#v", stmts[4])
	}
	ifOnly, ok := stmts[5].(*ast.IfStmt)
	if !ok || ifOnly.Else != nil {
		t.Fatalf("stmt 5: %#v", stmts[5])
	}
	if _, ok := ifOnly.Then.(*ast.BlockStmt); !ok {
		t.Fatalf("stmt 5 then branch: %#v", ifOnly.Then)
	}
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	stmts := parse(t, "if (a) if (b) print 1; else print 2;", 1)

	outer := stmts[0].(*ast.IfStmt)
	if outer.Else != nil {
		t.Fatalf("else attached to the outer if")
	}
	inner, ok := outer.Then.(*ast.IfStmt)
	if !ok || inner.Else == nil {
		t.Fatalf("else should belong to the inner if")
	}
}

func TestParseErrorMessages(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"print 1", []string{"[line 1] Error at end: expect ';' after value"}},
		{"1 +;", []string{"[line 1] Error at ';': expect expression"}},
		{"(1 + 2;", []string{"[line 1] Error at ';': expect ')' after expression"}},
		{"var = 1;", []string{"[line 1] Error at '=': expect variable name"}},
		{"var a = 1", []string{"[line 1] Error at end: expect ';' after variable declaration"}},
		{"if 1) print 1;", []string{"[line 1] Error at '1': expect '(' after 'if'"}},
		{"if (1 print 1;", []string{"[line 1] Error at 'print': expect ')' after if condition"}},
		{"{ print 1;", []string{"[line 1] Error at end: expect '}' after block"}},
		{"a + b = 3;", []string{"[line 1] Error at '=': invalid assignment target"}},
		{"1 2;", []string{"[line 1] Error at '2': expect ';' after expression"}},
	}

	for _, tc := range cases {
		_, got := parseErrors(t, tc.src)
		if len(got) != len(tc.want) {
			t.Errorf("%q: got errors %q, want %q", tc.src, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%q: error %d = %q, want %q", tc.src, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseRecoversAtStatementBoundary(t *testing.T) {
	stmts, errs := parseErrors(t, `
print ;
var ok = 1;
var = 2;
print ok;
1 + ;
`)

	want := []string{
		"[line 2] Error at ';': expect expression",
		"[line 4] Error at '=': expect variable name",
		"[line 6] Error at ';': expect expression",
	}
	if len(errs) != len(want) {
		t.Fatalf("got errors %q, want %q", errs, want)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("error %d = %q, want %q", i, errs[i], want[i])
		}
	}

	if len(stmts) != 2 {
		t.Fatalf("expected the 2 valid statements to survive, got %d", len(stmts))
	}
}

func TestParseRecoversInsideBlock(t *testing.T) {
	stmts, errs := parseErrors(t, "{ print ; print 2; }\nprint 3;")
	if len(errs) != 1 {
		t.Fatalf("got errors %q", errs)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected block and print, got %d statements", len(stmts))
	}
	if block := stmts[0].(*ast.BlockStmt); len(block.Stmts) != 1 {
		t.Fatalf("block kept %d statements, want 1", len(block.Stmts))
	}
}

func TestParseRecoversAtKeyword(t *testing.T) {
	stmts, errs := parseErrors(t, "1 + 2 print 3;")
	if len(errs) != 1 || errs[0] != "[line 1] Error at 'print': expect ';' after expression" {
		t.Fatalf("got errors %q", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected the print statement to be parsed, got %d statements", len(stmts))
	}
}

func TestParseExpression(t *testing.T) {
	tokens, _ := lexer.Scan("1 + a")
	expr, errs := ParseExpression(tokens)
	if len(errs) != 0 || expr == nil {
		t.Fatalf("ParseExpression failed: %v", errs)
	}
	if got := ast.PrintRPN(expr); got != "1 a +" {
		t.Fatalf("parsed %q", got)
	}

	tokens, _ = lexer.Scan("print 1;")
	expr, errs = ParseExpression(tokens)
	if expr != nil || len(errs) != 1 {
		t.Fatalf("statement accepted as expression: %v %v", expr, errs)
	}

	tokens, _ = lexer.Scan("1;")
	if _, errs = ParseExpression(tokens); len(errs) != 1 {
		t.Fatalf("trailing semicolon accepted as expression")
	}
}

func TestParseEmptyProgram(t *testing.T) {
	parse(t, "// only a comment\n", 0)
}
