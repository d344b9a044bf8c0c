package lexer

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER
	STRING

	IDENT

	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	COMMA     // ,
	DOT       // .
	SEMICOLON // ;

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	XMARK  // !
	ASSIGN // =

	EQ  // ==
	NEQ // !=
	LT  // <
	LEQ // <=
	GT  // >
	GEQ // >=

	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

var keywords = map[string]TokenKind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENT:
		return "IDENT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case SEMICOLON:
		return "SEMICOLON"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case XMARK:
		return "XMARK"
	case ASSIGN:
		return "ASSIGN"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case GT:
		return "GT"
	case GEQ:
		return "GEQ"
	case AND:
		return "AND"
	case CLASS:
		return "CLASS"
	case ELSE:
		return "ELSE"
	case FALSE:
		return "FALSE"
	case FOR:
		return "FOR"
	case FUN:
		return "FUN"
	case IF:
		return "IF"
	case NIL:
		return "NIL"
	case OR:
		return "OR"
	case PRINT:
		return "PRINT"
	case RETURN:
		return "RETURN"
	case SUPER:
		return "SUPER"
	case THIS:
		return "THIS"
	case TRUE:
		return "TRUE"
	case VAR:
		return "VAR"
	case WHILE:
		return "WHILE"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Token is immutable once the lexer emits it. Literal holds a float64 for
// NUMBER, a string for STRING and nil for everything else.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal any
	Line    int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, STRING, IDENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	switch literal := t.Literal.(type) {
	case float64:
		return fmt.Sprintf("%s(%s)", t.Kind, strconv.FormatFloat(literal, 'f', -1, 64))
	case string:
		return fmt.Sprintf("%s(%s)", t.Kind, literal)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
}
