package ast

import (
	"fmt"
	"strings"

	"github.com/kievzenit/golox/internal/runtime"
)

// PrintRPN renders expr in reverse Polish notation: operands first, then the
// operator, separated by single spaces. Groupings keep a "group" marker so
// the tree shape stays visible.
func PrintRPN(expr Expr) string {
	return strings.Join(rpnParts(expr, nil), " ")
}

func rpnParts(expr Expr, parts []string) []string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return append(parts, runtime.Stringify(e.Value))
	case *GroupingExpr:
		return append(rpnParts(e.Inner, parts), "group")
	case *UnaryExpr:
		return append(rpnParts(e.Right, parts), e.Op.Lexeme)
	case *BinaryExpr:
		parts = rpnParts(e.Left, parts)
		parts = rpnParts(e.Right, parts)
		return append(parts, e.Op.Lexeme)
	case *VariableExpr:
		return append(parts, e.Name.Lexeme)
	case *AssignExpr:
		return append(rpnParts(e.Value, parts), e.Name.Lexeme, "=")
	}

	panic(fmt.Sprintf("PrintRPN: unexpected expression %T", expr))
}
