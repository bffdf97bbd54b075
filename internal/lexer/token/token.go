package token

import "fmt"

type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Pos
}

func New(lexeme string, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

// Name returns the lexeme for tokens that carry user text and the kind
// otherwise.
func (token *Token) Name() string {
	switch token.Kind {
	case IDENT, INT, STRING, ILLEGAL:
		return token.Lexeme
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", token.Lexeme, token.Kind, token.Pos)
}
