package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/kievzenit/golox/internal/compiler_errors"
)

type LexerError struct {
	Message string
	Line    int
}

func newUnexpectedError(unexpected string, line int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", unexpected),
		Line:    line,
	}
}

func newUnterminatedStringError(line int) *LexerError {
	return &LexerError{
		Message: "unterminated string",
		Line:    line,
	}
}

func (e *LexerError) GetMessage() string { return e.Message }
func (e *LexerError) GetLine() int       { return e.Line }
func (e *LexerError) GetWhere() string   { return "" }

func (e *LexerError) Error() string {
	return compiler_errors.Format(e)
}

// Lexer turns source bytes into tokens in a single pass. buf[start:pos] is
// the lexeme being scanned. Bad input is reported to eh and skipped, so one
// pass can surface several errors.
type Lexer struct {
	buf []byte

	start, pos int
	line       int

	eh compiler_errors.ErrorHandler
}

func NewLexer(buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		buf:   buf,
		start: 0,
		pos:   0,

		line: 1,

		eh: eh,
	}
}

// Scan tokenizes src with a private error handler and returns whatever it
// collected alongside the tokens.
func Scan(src string) ([]Token, []compiler_errors.CompilerError) {
	eh := compiler_errors.NewErrorHandler(nil)
	tokens := NewLexer([]byte(src), eh).Tokenize()
	return tokens, eh.Errors()
}

func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)

	for l.hasChars() {
		l.start = l.pos

		switch {
		case l.isCurrSkippable():
			if l.isCurrNewline() {
				l.line++
			}
			l.advance()

		case l.isCurrDigit():
			tokens = append(tokens, l.processNumber())

		case l.isCurrIdentifier():
			tokens = append(tokens, l.processIdentifier())

		case l.read() == '"':
			if token, ok := l.processStringLiteral(); ok {
				tokens = append(tokens, token)
			}

		case l.read() == '/' && l.hasNext() && l.next() == '/':
			l.skipOneLineComment()

		case l.isCurrPunctuation():
			tokens = append(tokens, l.processPunctuation())

		default:
			l.skipUnexpected()
		}
	}

	tokens = append(tokens, Token{
		Kind: EOF,
		Line: l.line,
	})

	return tokens
}

func (l *Lexer) isCurrIdentifier() bool {
	return isAlpha(l.read())
}

func (l *Lexer) isCurrDigit() bool {
	return isDigit(l.read())
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '*', '/', '!', '=', '<', '>':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	for l.hasChars() && (l.isCurrIdentifier() || l.isCurrDigit()) {
		l.advance()
	}

	if kind, ok := keywords[l.lexeme()]; ok {
		return l.makeToken(kind, nil)
	}

	return l.makeToken(IDENT, nil)
}

func (l *Lexer) processNumber() Token {
	for l.hasChars() && l.isCurrDigit() {
		l.advance()
	}

	// a trailing dot is left for the next token
	if l.hasChars() && l.read() == '.' && l.hasNext() && isDigit(l.next()) {
		l.advance()

		for l.hasChars() && l.isCurrDigit() {
			l.advance()
		}
	}

	// out of range literals keep the ±Inf ParseFloat hands back
	number, err := strconv.ParseFloat(l.lexeme(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(err)
	}

	return l.makeToken(NUMBER, number)
}

func (l *Lexer) processStringLiteral() (Token, bool) {
	l.advance()

	for l.hasChars() && l.read() != '"' {
		if l.isCurrNewline() {
			l.line++
		}
		l.advance()
	}

	if !l.hasChars() {
		l.eh.AddError(newUnterminatedStringError(l.line))
		return Token{}, false
	}

	l.advance()

	value := string(l.buf[l.start+1 : l.pos-1])
	return l.makeToken(STRING, value), true
}

// skipUnexpected reports the whole UTF-8 character at pos once. Bytes that
// are not valid UTF-8 are reported one at a time in \x form.
func (l *Lexer) skipUnexpected() {
	r, size := utf8.DecodeRune(l.buf[l.pos:])

	text := string(r)
	if r == utf8.RuneError && size <= 1 {
		text = fmt.Sprintf("\\x%02x", l.read())
		size = 1
	}

	l.eh.AddError(newUnexpectedError(text, l.line))
	l.pos += size
}

func (l *Lexer) skipOneLineComment() {
	for l.hasChars() && !l.isCurrNewline() {
		l.advance()
	}
}

func (l *Lexer) processPunctuation() Token {
	char := l.read()
	l.advance()

	switch char {
	case '(':
		return l.makeToken(LPAREN, nil)
	case ')':
		return l.makeToken(RPAREN, nil)
	case '{':
		return l.makeToken(LBRACE, nil)
	case '}':
		return l.makeToken(RBRACE, nil)
	case ',':
		return l.makeToken(COMMA, nil)
	case '.':
		return l.makeToken(DOT, nil)
	case '-':
		return l.makeToken(MINUS, nil)
	case '+':
		return l.makeToken(PLUS, nil)
	case ';':
		return l.makeToken(SEMICOLON, nil)
	case '*':
		return l.makeToken(ASTERISK, nil)
	case '/':
		return l.makeToken(SLASH, nil)
	case '!':
		return l.processWithEquals(XMARK, NEQ)
	case '=':
		return l.processWithEquals(ASSIGN, EQ)
	case '<':
		return l.processWithEquals(LT, LEQ)
	case '>':
		return l.processWithEquals(GT, GEQ)
	}

	panic("unreachable")
}

// processWithEquals picks the two-character form when the already consumed
// operator is followed by '='.
func (l *Lexer) processWithEquals(single, double TokenKind) Token {
	if l.hasChars() && l.read() == '=' {
		l.advance()
		return l.makeToken(double, nil)
	}

	return l.makeToken(single, nil)
}

func (l *Lexer) makeToken(kind TokenKind, literal any) Token {
	return Token{
		Kind:    kind,
		Lexeme:  l.lexeme(),
		Literal: literal,
		Line:    l.line,
	}
}

func (l *Lexer) lexeme() string {
	return string(l.buf[l.start:l.pos])
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
