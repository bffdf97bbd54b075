package lexer

import (
	"os"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/lexer/token"
)

const eof = '\000'

type Lexer struct {
	Loc *ast.Loc

	src    []byte
	offset int
	pos    token.Pos
}

func New(loc *ast.Loc, src []byte) *Lexer {
	lexer := new(Lexer)

	lexer.Loc = loc
	lexer.src = src
	lexer.Reset()

	return lexer
}

func NewFromFilePath(loc *ast.Loc) (*Lexer, error) {
	src, err := os.ReadFile(loc.Path)
	if err != nil {
		return nil, err
	}
	l := New(loc, src)
	return l, nil
}

// Reset rewinds the lexer to the beginning of its source.
func (lex *Lexer) Reset() {
	lex.offset = 0
	lex.pos = token.NewPosition(lex.Loc.Name, 1, 1)
}

// Next returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (lex *Lexer) Next() *token.Token {
	lex.skipWhitespace()
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.ILLEGAL

	if character == eof {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok
	}

	return lex.getToken(tok, character)
}

// Useful for testing
func (lex *Lexer) Tokenize() []*token.Token {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) *token.Token {
	switch ch {
	case '(':
		lex.consumeToken(tok, token.OPEN_PAREN)
	case ')':
		lex.consumeToken(tok, token.CLOSE_PAREN)
	case '{':
		lex.consumeToken(tok, token.OPEN_CURLY)
	case '}':
		lex.consumeToken(tok, token.CLOSE_CURLY)
	case ',':
		lex.consumeToken(tok, token.COMMA)
	case ';':
		lex.consumeToken(tok, token.SEMICOLON)
	case '+':
		lex.consumeToken(tok, token.PLUS)
	case '-':
		lex.consumeToken(tok, token.MINUS)
	case '*':
		lex.consumeToken(tok, token.STAR)
	case '/':
		lex.consumeToken(tok, token.SLASH)
	case '<':
		lex.consumeToken(tok, token.LESS)
	case '>':
		lex.consumeToken(tok, token.GREATER)
	case '"':
		lex.getStringLit(tok)
	case '!':
		tok.Kind = token.BANG
		tok.Pos = lex.pos
		lex.nextChar() // !

		if lex.peekChar() != '=' {
			tok.Lexeme = "!"
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.BANG_EQUAL
		tok.Lexeme = "!="
	case '=':
		tok.Kind = token.EQUAL
		tok.Pos = lex.pos
		lex.nextChar() // =

		if lex.peekChar() != '=' {
			tok.Lexeme = "="
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.EQUAL_EQUAL
		tok.Lexeme = "=="
	default:
		if isLetter(ch) {
			lex.getIdOrKeyword(tok)
		} else if isDigit(ch) {
			lex.getIntegerLit(tok)
		} else {
			tok.Pos = lex.pos
			tok.Lexeme = string([]byte{ch})
			lex.nextChar()
		}
	}
	return tok
}

func (lex *Lexer) getStringLit(tok *token.Token) {
	tok.Pos = lex.pos
	lex.nextChar() // "

	var str []byte
	for {
		ch := lex.peekChar()
		if ch == eof || ch == '"' {
			break
		}

		if ch == '\\' {
			lex.nextChar()
			var escape byte
			switch lex.peekChar() {
			case 'n':
				escape = '\n'
			case 't':
				escape = '\t'
			case '\\':
				escape = '\\'
			case '"':
				escape = '"'
			default:
				tok.Kind = token.ILLEGAL
				tok.Lexeme = "\\" + string(lex.peekChar())
				lex.nextChar()
				return
			}
			str = append(str, escape)
		} else {
			str = append(str, ch)
		}

		lex.nextChar()
	}

	if lex.peekChar() != '"' {
		// unterminated string literal
		tok.Kind = token.ILLEGAL
		tok.Lexeme = "\"" + string(str)
		return
	}
	lex.nextChar() // "

	tok.Kind = token.STRING
	tok.Lexeme = string(str)
}

func (lex *Lexer) getIntegerLit(tok *token.Token) {
	tok.Pos = lex.pos
	number := lex.readWhile(isDigit)
	tok.Kind = token.INT
	tok.Lexeme = string(number)
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	tok.Pos = lex.pos
	identifier := lex.readWhile(
		func(chr byte) bool { return isLetter(chr) || isDigit(chr) },
	)
	tok.Kind = token.IDENT
	tok.Lexeme = string(identifier)
	keyword, ok := token.KEYWORDS[tok.Lexeme]
	if ok {
		tok.Kind = keyword
	}
}

func (lex *Lexer) consumeToken(tok *token.Token, kind token.Kind) {
	lex.consumeTokenNoLex(tok, kind)
	tok.Lexeme = string(lex.nextChar())
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = ""
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	start := lex.offset

	for {
		character := lex.peekChar()
		if character == eof || !isValid(character) {
			break
		}
		lex.nextChar()
	}

	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	return lex.src[lex.offset]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
