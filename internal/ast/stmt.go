package ast

import (
	"strings"

	"github.com/HicaroD/monkey/internal/lexer/token"
)

type LetStmt struct {
	Let   *token.Token
	Name  *IdExpr
	Value *Node
}

func (let *LetStmt) String() string {
	return let.TokenLiteral() + " " + let.Name.String() + " = " + let.Value.String() + ";"
}
func (let *LetStmt) TokenLiteral() string { return let.Let.Lexeme }

type ReturnStmt struct {
	Return *token.Token
	Value  *Node
}

func (ret *ReturnStmt) String() string {
	return ret.TokenLiteral() + " " + ret.Value.String() + ";"
}
func (ret *ReturnStmt) TokenLiteral() string { return ret.Return.Lexeme }

// ExprStmt wraps an expression used in statement position, e.g. `x + 10;`.
type ExprStmt struct {
	First *token.Token
	Expr  *Node
}

func (stmt *ExprStmt) String() string       { return stmt.Expr.String() }
func (stmt *ExprStmt) TokenLiteral() string { return stmt.First.Lexeme }

type BlockStmt struct {
	OpenCurly  *token.Token
	Statements []*Node
}

func (block *BlockStmt) String() string {
	var out strings.Builder
	for _, stmt := range block.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}
func (block *BlockStmt) TokenLiteral() string { return block.OpenCurly.Lexeme }
