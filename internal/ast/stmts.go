package ast

import "github.com/kievzenit/golox/internal/lexer"

type ExprStmt struct {
	Expr Expr
}

type PrintStmt struct {
	StartToken *lexer.Token

	Expr Expr
}

type VarDeclStmt struct {
	StartToken *lexer.Token

	Name *lexer.Token
	// Initializer is nil when the declaration has no "= expr" part.
	Initializer Expr
}

type BlockStmt struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

type IfStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Then Stmt
	Else Stmt
}

func (e *ExprStmt) AstNode()    {}
func (p *PrintStmt) AstNode()   {}
func (v *VarDeclStmt) AstNode() {}
func (b *BlockStmt) AstNode()   {}
func (i *IfStmt) AstNode()      {}

func (e *ExprStmt) FirstToken() *lexer.Token    { return e.Expr.FirstToken() }
func (p *PrintStmt) FirstToken() *lexer.Token   { return p.StartToken }
func (v *VarDeclStmt) FirstToken() *lexer.Token { return v.StartToken }
func (b *BlockStmt) FirstToken() *lexer.Token   { return b.StartToken }
func (i *IfStmt) FirstToken() *lexer.Token      { return i.StartToken }

func (e *ExprStmt) StmtNode()    {}
func (p *PrintStmt) StmtNode()   {}
func (v *VarDeclStmt) StmtNode() {}
func (b *BlockStmt) StmtNode()   {}
func (i *IfStmt) StmtNode()      {}
