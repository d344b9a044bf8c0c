package parser

import (
	"fmt"
	"slices"

	"github.com/kievzenit/golox/internal/ast"
	"github.com/kievzenit/golox/internal/compiler_errors"
	"github.com/kievzenit/golox/internal/lexer"
	"github.com/kievzenit/golox/internal/runtime"
)

type SyntaxError struct {
	Token   *lexer.Token
	Message string
}

func newSyntaxError(token *lexer.Token, message string) *SyntaxError {
	return &SyntaxError{
		Token:   token,
		Message: message,
	}
}

func (e *SyntaxError) GetMessage() string { return e.Message }
func (e *SyntaxError) GetLine() int       { return e.Token.Line }

func (e *SyntaxError) GetWhere() string {
	if e.Token.Kind == lexer.EOF {
		return " at end"
	}

	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}

func (e *SyntaxError) Error() string {
	return compiler_errors.Format(e)
}

// parseError unwinds the parser to the nearest statement boundary after the
// error itself has been recorded.
type parseError struct{}

type Parser struct {
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	curr *lexer.Token
}

// binaryLevels lists the binary operators from lowest to highest precedence.
// Every level is left-associative.
var binaryLevels = [][]lexer.TokenKind{
	{lexer.NEQ, lexer.EQ},
	{lexer.GT, lexer.GEQ, lexer.LT, lexer.LEQ},
	{lexer.MINUS, lexer.PLUS},
	{lexer.SLASH, lexer.ASTERISK},
}

func NewParser(scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		scanner: scanner,
		eh:      eh,
		curr:    scanner.Peek(),
	}
}

// Parse parses tokens with a private error handler. When errors are returned
// the statements must not be executed.
func Parse(tokens []lexer.Token) ([]ast.Stmt, []compiler_errors.CompilerError) {
	eh := compiler_errors.NewErrorHandler(nil)
	program := NewParser(lexer.NewTokenScanner(tokens), eh).Parse()
	return program.Stmts, eh.Errors()
}

// ParseExpression parses tokens that must hold exactly one expression and
// nothing else.
func ParseExpression(tokens []lexer.Token) (ast.Expr, []compiler_errors.CompilerError) {
	eh := compiler_errors.NewErrorHandler(nil)
	expr := NewParser(lexer.NewTokenScanner(tokens), eh).ParseExpression()
	return expr, eh.Errors()
}

func (p *Parser) Parse() *ast.Program {
	stmts := make([]ast.Stmt, 0)
	for p.scanner.HasTokens() {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return &ast.Program{
		Stmts: stmts,
	}
}

func (p *Parser) ParseExpression() (expr ast.Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			expr = nil
		}
	}()

	expr = p.parseExpr()
	p.expect(lexer.EOF, "expect end of expression")

	return expr
}

// parseDeclaration parses one statement and recovers from a syntax error by
// skipping to the next statement boundary. It returns nil on error.
func (p *Parser) parseDeclaration() (stmt ast.Stmt) {
	startToken := p.curr

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize(startToken)
			stmt = nil
		}
	}()

	return p.parseStmt()
}

// synchronize discards tokens until just after a ';' or until a keyword that
// begins a statement. The token that started the failed statement is always
// dropped so the parser makes progress.
func (p *Parser) synchronize(startToken *lexer.Token) {
	if p.curr == startToken || !isStmtKeyword(p.curr.Kind) {
		p.read()
	}

	for p.scanner.HasTokens() {
		if p.scanner.Previous().Kind == lexer.SEMICOLON || isStmtKeyword(p.curr.Kind) {
			return
		}

		p.read()
	}
}

func isStmtKeyword(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
		return true
	}

	return false
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curr.Kind {
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.PRINT:
		return p.parsePrintStmt()
	case lexer.LBRACE:
		return p.parseBlockStmt()
	case lexer.VAR:
		return p.parseVarDeclStmt()
	}

	return p.parseExprStmt()
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	startToken := p.curr
	p.read()

	p.expect(lexer.LPAREN, "expect '(' after 'if'")
	p.read()

	cond := p.parseExpr()

	p.expect(lexer.RPAREN, "expect ')' after if condition")
	p.read()

	then := p.parseStmt()

	var elseStmt ast.Stmt
	if p.curr.Kind == lexer.ELSE {
		p.read()
		elseStmt = p.parseStmt()
	}

	return &ast.IfStmt{
		StartToken: startToken,

		Cond: cond,
		Then: then,
		Else: elseStmt,
	}
}

func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	startToken := p.curr
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.SEMICOLON, "expect ';' after value")
	p.read()

	return &ast.PrintStmt{
		StartToken: startToken,

		Expr: expr,
	}
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	startToken := p.curr
	p.read()

	stmts := make([]ast.Stmt, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RBRACE {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	p.expect(lexer.RBRACE, "expect '}' after block")
	p.read()

	return &ast.BlockStmt{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseVarDeclStmt() *ast.VarDeclStmt {
	startToken := p.curr
	p.read()

	p.expect(lexer.IDENT, "expect variable name")
	name := p.curr
	p.read()

	var initializer ast.Expr
	if p.curr.Kind == lexer.ASSIGN {
		p.read()
		initializer = p.parseExpr()
	}

	p.expect(lexer.SEMICOLON, "expect ';' after variable declaration")
	p.read()

	return &ast.VarDeclStmt{
		StartToken: startToken,

		Name:        name,
		Initializer: initializer,
	}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()

	p.expect(lexer.SEMICOLON, "expect ';' after expression")
	p.read()

	return &ast.ExprStmt{
		Expr: expr,
	}
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignExpr()
}

func (p *Parser) parseAssignExpr() ast.Expr {
	expr := p.parseBinaryExpr(0)

	if p.curr.Kind != lexer.ASSIGN {
		return expr
	}

	equals := p.curr
	p.read()

	value := p.parseAssignExpr()

	if variable, ok := expr.(*ast.VariableExpr); ok {
		return &ast.AssignExpr{
			StartToken: variable.StartToken,

			Name:  variable.Name,
			Value: value,
		}
	}

	// the parser is not confused here, so report without unwinding
	p.eh.AddError(newSyntaxError(equals, "invalid assignment target"))
	return expr
}

// parseBinaryExpr parses the operators of binaryLevels[level] and everything
// binding tighter. Each operator found folds the expression parsed so far into
// the left operand, which yields left-leaning trees.
func (p *Parser) parseBinaryExpr(level int) ast.Expr {
	if level == len(binaryLevels) {
		return p.parseUnaryExpr()
	}

	left := p.parseBinaryExpr(level + 1)

	for p.isCurrAny(binaryLevels[level]...) {
		op := p.curr
		p.read()

		right := p.parseBinaryExpr(level + 1)

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return left
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.isCurrAny(lexer.XMARK, lexer.MINUS) {
		op := p.curr
		p.read()

		right := p.parseUnaryExpr()

		return &ast.UnaryExpr{
			StartToken: op,

			Op:    op,
			Right: right,
		}
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.curr.Kind {
	case lexer.FALSE:
		return p.parseLiteralExpr(runtime.BoolValue{Val: false})
	case lexer.TRUE:
		return p.parseLiteralExpr(runtime.BoolValue{Val: true})
	case lexer.NIL:
		return p.parseLiteralExpr(runtime.Nil)
	case lexer.NUMBER, lexer.STRING:
		return p.parseLiteralExpr(runtime.FromLiteral(p.curr.Literal))
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.IDENT:
		return p.parseVariableExpr()
	}

	p.unexpected("expect expression")
	panic("unreachable")
}

func (p *Parser) parseLiteralExpr(value runtime.Value) *ast.LiteralExpr {
	startToken := p.curr
	p.read()

	return &ast.LiteralExpr{
		StartToken: startToken,

		Value: value,
	}
}

func (p *Parser) parseParenExpr() *ast.GroupingExpr {
	startToken := p.curr
	p.read()

	inner := p.parseExpr()

	p.expect(lexer.RPAREN, "expect ')' after expression")
	p.read()

	return &ast.GroupingExpr{
		StartToken: startToken,

		Inner: inner,
	}
}

func (p *Parser) parseVariableExpr() *ast.VariableExpr {
	name := p.curr
	p.read()

	return &ast.VariableExpr{
		StartToken: name,

		Name: name,
	}
}

func (p *Parser) read() *lexer.Token {
	p.scanner.Read()
	p.curr = p.scanner.Peek()
	return p.curr
}

func (p *Parser) expect(kind lexer.TokenKind, message string) {
	if p.curr.Kind != kind {
		p.unexpected(message)
	}
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) unexpected(message string) {
	p.eh.AddError(newSyntaxError(p.curr, message))
	panic(parseError{})
}
