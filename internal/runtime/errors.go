package runtime

import (
	"fmt"

	"github.com/kievzenit/golox/internal/compiler_errors"
	"github.com/kievzenit/golox/internal/lexer"
)

type ErrorKind int

const (
	TypeError ErrorKind = iota
	DivisionByZero
	UndefinedVariable
	NilOperand
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case DivisionByZero:
		return "DivisionByZero"
	case UndefinedVariable:
		return "UndefinedVariable"
	case NilOperand:
		return "NilOperand"
	default:
		panic(fmt.Sprintf("ErrorKind.String(): received illegal error kind: %d", k))
	}
}

// RuntimeError aborts the current execution unit. Token points at the
// operator or name that failed so the error can be attributed to a line.
type RuntimeError struct {
	Kind    ErrorKind
	Token   *lexer.Token
	Message string
}

func NewRuntimeError(kind ErrorKind, token *lexer.Token, message string) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Token:   token,
		Message: message,
	}
}

func newUndefinedVariableError(name *lexer.Token) *RuntimeError {
	return NewRuntimeError(
		UndefinedVariable,
		name,
		fmt.Sprintf("undefined variable '%s'", name.Lexeme),
	)
}

func (e *RuntimeError) GetMessage() string { return e.Message }

func (e *RuntimeError) GetLine() int {
	if e.Token == nil {
		return 0
	}

	return e.Token.Line
}

func (e *RuntimeError) GetWhere() string {
	if e.Token == nil {
		return ""
	}
	if e.Token.Kind == lexer.EOF {
		return " at end"
	}

	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}

func (e *RuntimeError) Error() string {
	return compiler_errors.Format(e)
}
