package interpreter

import (
	"fmt"

	"github.com/kievzenit/golox/internal/ast"
	"github.com/kievzenit/golox/internal/lexer"
	"github.com/kievzenit/golox/internal/runtime"
)

func (i *Interpreter) evaluateExpression(expr ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		if e.Value == nil {
			return runtime.Nil, nil
		}
		return e.Value, nil
	case *ast.GroupingExpr:
		return i.evaluateExpression(e.Inner, env)
	case *ast.VariableExpr:
		return env.Get(e.Name)
	case *ast.AssignExpr:
		value, err := i.evaluateExpression(e.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.UnaryExpr:
		return i.evaluateUnary(e, env)
	case *ast.BinaryExpr:
		return i.evaluateBinary(e, env)
	}

	panic(fmt.Sprintf("evaluateExpression: unexpected expression %T", expr))
}

func (i *Interpreter) evaluateUnary(expr *ast.UnaryExpr, env *runtime.Environment) (runtime.Value, error) {
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case lexer.XMARK:
		return runtime.BoolValue{Val: !runtime.IsTruthy(right)}, nil
	case lexer.MINUS:
		number, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, runtime.NewRuntimeError(runtime.TypeError, expr.Op, "operand must be a number")
		}
		return runtime.NumberValue{Val: -number.Val}, nil
	}

	panic(fmt.Sprintf("evaluateUnary: unexpected operator %s", expr.Op.Kind))
}

func (i *Interpreter) evaluateBinary(expr *ast.BinaryExpr, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case lexer.EQ:
		return runtime.BoolValue{Val: runtime.IsEqual(left, right)}, nil
	case lexer.NEQ:
		return runtime.BoolValue{Val: !runtime.IsEqual(left, right)}, nil
	case lexer.PLUS:
		return evaluatePlus(expr.Op, left, right)
	}

	l, r, err := numberOperands(expr.Op, left, right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case lexer.GT:
		return runtime.BoolValue{Val: l > r}, nil
	case lexer.GEQ:
		return runtime.BoolValue{Val: l >= r}, nil
	case lexer.LT:
		return runtime.BoolValue{Val: l < r}, nil
	case lexer.LEQ:
		return runtime.BoolValue{Val: l <= r}, nil
	case lexer.MINUS:
		return runtime.NumberValue{Val: l - r}, nil
	case lexer.ASTERISK:
		return runtime.NumberValue{Val: l * r}, nil
	case lexer.SLASH:
		if r == 0 {
			return nil, runtime.NewRuntimeError(runtime.DivisionByZero, expr.Op, "division by zero")
		}
		return runtime.NumberValue{Val: l / r}, nil
	}

	panic(fmt.Sprintf("evaluateBinary: unexpected operator %s", expr.Op.Kind))
}

// evaluatePlus only looks at the left operand to decide on concatenation:
// a string on the left stringifies whatever is on the right.
func evaluatePlus(op *lexer.Token, left, right runtime.Value) (runtime.Value, error) {
	l, leftIsNumber := left.(runtime.NumberValue)
	r, rightIsNumber := right.(runtime.NumberValue)
	if leftIsNumber && rightIsNumber {
		return runtime.NumberValue{Val: l.Val + r.Val}, nil
	}

	switch lv := left.(type) {
	case runtime.StringValue:
		return runtime.StringValue{Val: lv.Val + runtime.Stringify(right)}, nil
	case runtime.NilValue:
		return nil, runtime.NewRuntimeError(runtime.NilOperand, op, "operand can't be applied to nil values")
	}

	return nil, runtime.NewRuntimeError(runtime.TypeError, op, "operands must be two numbers or two strings")
}

func numberOperands(op *lexer.Token, left, right runtime.Value) (float64, float64, error) {
	l, leftOk := left.(runtime.NumberValue)
	r, rightOk := right.(runtime.NumberValue)
	if !leftOk || !rightOk {
		return 0, 0, runtime.NewRuntimeError(runtime.TypeError, op, "operands must be numbers")
	}

	return l.Val, r.Val, nil
}
