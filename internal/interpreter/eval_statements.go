package interpreter

import (
	"fmt"

	"github.com/kievzenit/golox/internal/ast"
	"github.com/kievzenit/golox/internal/runtime"
)

func (i *Interpreter) executeStatement(stmt ast.Stmt, env *runtime.Environment) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.evaluateExpression(s.Expr, env)
		return err
	case *ast.PrintStmt:
		value, err := i.evaluateExpression(s.Expr, env)
		if err != nil {
			return err
		}
		return i.print(value)
	case *ast.VarDeclStmt:
		return i.executeVarDecl(s, env)
	case *ast.BlockStmt:
		// the child scope is dropped on return, error or not
		return i.Execute(s.Stmts, env.Extend())
	case *ast.IfStmt:
		return i.executeIf(s, env)
	}

	panic(fmt.Sprintf("executeStatement: unexpected statement %T", stmt))
}

func (i *Interpreter) executeVarDecl(stmt *ast.VarDeclStmt, env *runtime.Environment) error {
	var value runtime.Value = runtime.Nil
	if stmt.Initializer != nil {
		v, err := i.evaluateExpression(stmt.Initializer, env)
		if err != nil {
			return err
		}
		value = v
	}

	env.Define(stmt.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) executeIf(stmt *ast.IfStmt, env *runtime.Environment) error {
	cond, err := i.evaluateExpression(stmt.Cond, env)
	if err != nil {
		return err
	}

	if runtime.IsTruthy(cond) {
		return i.executeStatement(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.executeStatement(stmt.Else, env)
	}

	return nil
}
