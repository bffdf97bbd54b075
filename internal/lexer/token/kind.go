package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	ILLEGAL

	// Identifier
	IDENT

	// Literals
	INT
	STRING

	// Keywords
	FN
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// ,
	COMMA

	// ;
	SEMICOLON

	// =
	EQUAL
	// !
	BANG
	// !=
	BANG_EQUAL
	// ==
	EQUAL_EQUAL

	// >
	GREATER
	// <
	LESS

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"fn":     FN,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case STRING:
		return "STRING"
	case FN:
		return "FUNCTION"
	case LET:
		return "LET"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case RETURN:
		return "RETURN"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case EQUAL:
		return "="
	case BANG:
		return "!"
	case BANG_EQUAL:
		return "!="
	case EQUAL_EQUAL:
		return "=="
	case GREATER:
		return ">"
	case LESS:
		return "<"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
