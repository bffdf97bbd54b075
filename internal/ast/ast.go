// Package ast defines the abstract syntax tree (AST) for the monkey language.
package ast

import "fmt"

type NodeKind int

const (
	STMT_START NodeKind = iota // statement node start delimiter

	KIND_LET_STMT
	KIND_RETURN_STMT
	KIND_EXPR_STMT
	KIND_BLOCK_STMT

	STMT_END // statement node end delimiter

	EXPR_START // expression node start delimiter

	KIND_ID_EXPR
	KIND_INTEGER_LITERAL
	KIND_STRING_LITERAL
	KIND_BOOLEAN_LITERAL
	KIND_PREFIX_EXPR
	KIND_INFIX_EXPR
	KIND_IF_EXPR
	KIND_FN_LITERAL
	KIND_CALL_EXPR

	EXPR_END // expression node end delimiter
)

// Node is a closed tagged union: Kind selects the concrete type stored in
// Node. Use NewNode so that the two always agree.
type Node struct {
	Kind NodeKind
	Node any
}

func NewNode(kind NodeKind, node any) *Node {
	return &Node{Kind: kind, Node: node}
}

type source interface {
	String() string
	TokenLiteral() string
}

func (n *Node) IsStmt() bool {
	return n.Kind > STMT_START && n.Kind < STMT_END
}

func (n *Node) IsExpr() bool {
	return n.Kind > EXPR_START && n.Kind < EXPR_END
}

// String renders the node back to source-equivalent text. A nil node
// renders as the empty string.
func (n *Node) String() string {
	if n == nil || n.Node == nil {
		return ""
	}
	return n.Node.(source).String()
}

func (n *Node) TokenLiteral() string {
	if n == nil || n.Node == nil {
		return ""
	}
	return n.Node.(source).TokenLiteral()
}

func (kind NodeKind) String() string {
	switch kind {
	case KIND_LET_STMT:
		return "KIND_LET_STMT"
	case KIND_RETURN_STMT:
		return "KIND_RETURN_STMT"
	case KIND_EXPR_STMT:
		return "KIND_EXPR_STMT"
	case KIND_BLOCK_STMT:
		return "KIND_BLOCK_STMT"
	case KIND_ID_EXPR:
		return "KIND_ID_EXPR"
	case KIND_INTEGER_LITERAL:
		return "KIND_INTEGER_LITERAL"
	case KIND_STRING_LITERAL:
		return "KIND_STRING_LITERAL"
	case KIND_BOOLEAN_LITERAL:
		return "KIND_BOOLEAN_LITERAL"
	case KIND_PREFIX_EXPR:
		return "KIND_PREFIX_EXPR"
	case KIND_INFIX_EXPR:
		return "KIND_INFIX_EXPR"
	case KIND_IF_EXPR:
		return "KIND_IF_EXPR"
	case KIND_FN_LITERAL:
		return "KIND_FN_LITERAL"
	case KIND_CALL_EXPR:
		return "KIND_CALL_EXPR"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}
