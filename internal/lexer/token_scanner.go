package lexer

// TokenScanner walks a token slice that ends with an EOF token. Reading past
// the EOF keeps returning it.
type TokenScanner interface {
	Read() *Token
	Peek() *Token
	Previous() *Token
	HasTokens() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: EOF, Line: line})
	}

	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

// Read consumes the current token and returns it.
func (s *SimpleTokenScanner) Read() *Token {
	token := &s.tokens[s.pos]
	if s.HasTokens() {
		s.pos++
	}

	return token
}

func (s *SimpleTokenScanner) Peek() *Token {
	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Previous() *Token {
	if s.pos == 0 {
		return &s.tokens[0]
	}

	return &s.tokens[s.pos-1]
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.tokens[s.pos].Kind != EOF
}
