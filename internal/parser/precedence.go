package parser

import "github.com/HicaroD/monkey/internal/lexer/token"

type Precedence int

const (
	LOWEST      Precedence = iota
	EQUALS                 // ==
	LESSGREATER            // > or <
	SUM                    // +
	PRODUCT                // *
	PREFIX                 // -x or !x
	CALL                   // fn(x)
)

type prefixRule int

const (
	PREFIX_NONE prefixRule = iota
	PREFIX_IDENT
	PREFIX_INTEGER
	PREFIX_STRING
	PREFIX_BOOLEAN
	PREFIX_OPERATOR
	PREFIX_GROUP
	PREFIX_IF
	PREFIX_FN
)

type infixRule int

const (
	INFIX_NONE infixRule = iota
	INFIX_OPERATOR
	INFIX_CALL
)

var PREFIX_RULES map[token.Kind]prefixRule = map[token.Kind]prefixRule{
	token.IDENT:      PREFIX_IDENT,
	token.INT:        PREFIX_INTEGER,
	token.STRING:     PREFIX_STRING,
	token.TRUE:       PREFIX_BOOLEAN,
	token.FALSE:      PREFIX_BOOLEAN,
	token.BANG:       PREFIX_OPERATOR,
	token.MINUS:      PREFIX_OPERATOR,
	token.OPEN_PAREN: PREFIX_GROUP,
	token.IF:         PREFIX_IF,
	token.FN:         PREFIX_FN,
}

var INFIX_RULES map[token.Kind]infixRule = map[token.Kind]infixRule{
	token.EQUAL_EQUAL: INFIX_OPERATOR,
	token.BANG_EQUAL:  INFIX_OPERATOR,
	token.LESS:        INFIX_OPERATOR,
	token.GREATER:     INFIX_OPERATOR,
	token.PLUS:        INFIX_OPERATOR,
	token.MINUS:       INFIX_OPERATOR,
	token.STAR:        INFIX_OPERATOR,
	token.SLASH:       INFIX_OPERATOR,
	token.OPEN_PAREN:  INFIX_CALL,
}

var PRECEDENCES map[token.Kind]Precedence = map[token.Kind]Precedence{
	token.EQUAL_EQUAL: EQUALS,
	token.BANG_EQUAL:  EQUALS,
	token.LESS:        LESSGREATER,
	token.GREATER:     LESSGREATER,
	token.PLUS:        SUM,
	token.MINUS:       SUM,
	token.STAR:        PRODUCT,
	token.SLASH:       PRODUCT,
	token.OPEN_PAREN:  CALL,
}

func precedenceOf(kind token.Kind) Precedence {
	if precedence, ok := PRECEDENCES[kind]; ok {
		return precedence
	}
	return LOWEST
}
