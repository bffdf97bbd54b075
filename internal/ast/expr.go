package ast

import (
	"strings"

	"github.com/HicaroD/monkey/internal/lexer/token"
)

type IdExpr struct {
	Token *token.Token
	Name  string
}

func (id *IdExpr) String() string       { return id.Name }
func (id *IdExpr) TokenLiteral() string { return id.Token.Lexeme }

// IntegerLiteral keeps its value as float64 so that division on integers
// can stay exact.
type IntegerLiteral struct {
	Token *token.Token
	Value float64
}

func (lit *IntegerLiteral) String() string       { return lit.Token.Lexeme }
func (lit *IntegerLiteral) TokenLiteral() string { return lit.Token.Lexeme }

type StringLiteral struct {
	Token *token.Token
	Value string
}

func (lit *StringLiteral) String() string       { return lit.Value }
func (lit *StringLiteral) TokenLiteral() string { return lit.Token.Lexeme }

type BooleanLiteral struct {
	Token *token.Token
	Value bool
}

func (lit *BooleanLiteral) String() string       { return lit.Token.Lexeme }
func (lit *BooleanLiteral) TokenLiteral() string { return lit.Token.Lexeme }

type PrefixExpr struct {
	Token *token.Token
	Op    string
	Right *Node
}

func (prefix *PrefixExpr) String() string {
	return "(" + prefix.Op + prefix.Right.String() + ")"
}
func (prefix *PrefixExpr) TokenLiteral() string { return prefix.Token.Lexeme }

type InfixExpr struct {
	Token *token.Token
	Left  *Node
	Op    string
	Right *Node
}

func (infix *InfixExpr) String() string {
	return "(" + infix.Left.String() + " " + infix.Op + " " + infix.Right.String() + ")"
}
func (infix *InfixExpr) TokenLiteral() string { return infix.Token.Lexeme }

type IfExpr struct {
	If          *token.Token
	Cond        *Node
	Consequence *BlockStmt
	Alternative *BlockStmt
}

func (ifExpr *IfExpr) String() string {
	var out strings.Builder
	out.WriteString("if ")
	out.WriteString(ifExpr.Cond.String())
	out.WriteString(" ")
	if ifExpr.Consequence != nil {
		out.WriteString(ifExpr.Consequence.String())
	}
	if ifExpr.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ifExpr.Alternative.String())
	}
	return out.String()
}
func (ifExpr *IfExpr) TokenLiteral() string { return ifExpr.If.Lexeme }

type FnLiteral struct {
	Fn     *token.Token
	Params []*IdExpr
	Body   *BlockStmt
}

func (fn *FnLiteral) String() string {
	var out strings.Builder
	out.WriteString(fn.TokenLiteral())
	out.WriteString("(")
	out.WriteString(JoinParams(fn.Params))
	out.WriteString(") ")
	if fn.Body != nil {
		out.WriteString(fn.Body.String())
	}
	return out.String()
}
func (fn *FnLiteral) TokenLiteral() string { return fn.Fn.Lexeme }

type CallExpr struct {
	Token  *token.Token // (
	Callee *Node
	Args   []*Node
}

func (call *CallExpr) String() string {
	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, arg.String())
	}
	return call.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
func (call *CallExpr) TokenLiteral() string { return call.Token.Lexeme }

// JoinParams renders a parameter list as "a, b, c".
func JoinParams(params []*IdExpr) string {
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.String())
	}
	return strings.Join(names, ", ")
}
