package interpreter

import (
	"fmt"
	"io"

	"github.com/kievzenit/golox/internal/ast"
	"github.com/kievzenit/golox/internal/runtime"
)

// Interpreter walks the AST directly. It holds no variable state of its own:
// every call receives the environment to run against, so the caller decides
// how long the global scope lives.
type Interpreter struct {
	out io.Writer
}

// New returns an interpreter that writes print output to out.
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = io.Discard
	}

	return &Interpreter{
		out: out,
	}
}

// Execute runs stmts in order against env and stops at the first runtime
// error. Effects of statements that already ran are kept.
func (i *Interpreter) Execute(stmts []ast.Stmt, env *runtime.Environment) error {
	for _, stmt := range stmts {
		if err := i.executeStatement(stmt, env); err != nil {
			return err
		}
	}

	return nil
}

// Evaluate computes the value of a single expression.
func (i *Interpreter) Evaluate(expr ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	return i.evaluateExpression(expr, env)
}

// EvaluateAndPrint evaluates expr and prints its value, the way the REPL
// echoes a bare expression.
func (i *Interpreter) EvaluateAndPrint(expr ast.Expr, env *runtime.Environment) error {
	value, err := i.evaluateExpression(expr, env)
	if err != nil {
		return err
	}

	return i.print(value)
}

func (i *Interpreter) print(value runtime.Value) error {
	if _, err := fmt.Fprintln(i.out, runtime.Stringify(value)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
