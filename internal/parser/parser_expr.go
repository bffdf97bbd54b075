package parser

import (
	"fmt"
	"strconv"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/lexer/token"
)

// parseExpr is the precedence climbing loop. It starts with cur on the
// first token of the expression and leaves cur on its last token.
func (p *Parser) parseExpr(precedence Precedence) *ast.Node {
	rule, ok := PREFIX_RULES[p.cur.Kind]
	if !ok {
		p.report(p.cur.Pos, fmt.Sprintf("no prefix parse rule for token kind %s", p.cur.Kind))
		return nil
	}

	left := p.parsePrefix(rule)
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMICOLON) && precedence < precedenceOf(p.peek.Kind) {
		infix, ok := INFIX_RULES[p.peek.Kind]
		if !ok {
			return left
		}
		p.advance()

		left = p.parseInfix(infix, left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parsePrefix(rule prefixRule) *ast.Node {
	switch rule {
	case PREFIX_IDENT:
		return ast.NewNode(ast.KIND_ID_EXPR, &ast.IdExpr{Token: p.cur, Name: p.cur.Lexeme})
	case PREFIX_INTEGER:
		return p.parseIntegerLiteral()
	case PREFIX_STRING:
		return ast.NewNode(ast.KIND_STRING_LITERAL, &ast.StringLiteral{Token: p.cur, Value: p.cur.Lexeme})
	case PREFIX_BOOLEAN:
		return ast.NewNode(ast.KIND_BOOLEAN_LITERAL, &ast.BooleanLiteral{Token: p.cur, Value: p.curIs(token.TRUE)})
	case PREFIX_OPERATOR:
		return p.parsePrefixExpr()
	case PREFIX_GROUP:
		return p.parseGroupedExpr()
	case PREFIX_IF:
		return p.parseIfExpr()
	case PREFIX_FN:
		return p.parseFnLiteral()
	}
	return nil
}

func (p *Parser) parseInfix(rule infixRule, left *ast.Node) *ast.Node {
	switch rule {
	case INFIX_OPERATOR:
		return p.parseInfixExpr(left)
	case INFIX_CALL:
		return p.parseCallExpr(left)
	}
	return nil
}

func (p *Parser) parseIntegerLiteral() *ast.Node {
	value, err := strconv.ParseFloat(p.cur.Lexeme, 64)
	if err != nil {
		p.report(p.cur.Pos, fmt.Sprintf("could not parse %q as integer", p.cur.Lexeme))
		return nil
	}
	return ast.NewNode(ast.KIND_INTEGER_LITERAL, &ast.IntegerLiteral{Token: p.cur, Value: value})
}

func (p *Parser) parsePrefixExpr() *ast.Node {
	prefix := &ast.PrefixExpr{Token: p.cur, Op: p.cur.Lexeme}
	p.advance()

	prefix.Right = p.parseExpr(PREFIX)
	if prefix.Right == nil {
		return nil
	}
	return ast.NewNode(ast.KIND_PREFIX_EXPR, prefix)
}

func (p *Parser) parseInfixExpr(left *ast.Node) *ast.Node {
	infix := &ast.InfixExpr{Token: p.cur, Op: p.cur.Lexeme, Left: left}
	precedence := precedenceOf(p.cur.Kind)
	p.advance()

	infix.Right = p.parseExpr(precedence)
	if infix.Right == nil {
		return nil
	}
	return ast.NewNode(ast.KIND_INFIX_EXPR, infix)
}

func (p *Parser) parseGroupedExpr() *ast.Node {
	p.advance() // (

	expr := p.parseExpr(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.CLOSE_PAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpr() *ast.Node {
	ifExpr := &ast.IfExpr{If: p.cur}

	if !p.expectPeek(token.OPEN_PAREN) {
		return nil
	}
	p.advance()

	ifExpr.Cond = p.parseExpr(LOWEST)
	if ifExpr.Cond == nil {
		return nil
	}

	if !p.expectPeek(token.CLOSE_PAREN) {
		return nil
	}
	if !p.expectPeek(token.OPEN_CURLY) {
		return nil
	}

	ifExpr.Consequence = p.parseBlock()
	if ifExpr.Consequence == nil {
		return nil
	}

	if p.peekIs(token.ELSE) {
		p.advance()

		if !p.expectPeek(token.OPEN_CURLY) {
			return nil
		}

		ifExpr.Alternative = p.parseBlock()
		if ifExpr.Alternative == nil {
			return nil
		}
	}

	return ast.NewNode(ast.KIND_IF_EXPR, ifExpr)
}

func (p *Parser) parseFnLiteral() *ast.Node {
	fn := &ast.FnLiteral{Fn: p.cur}

	if !p.expectPeek(token.OPEN_PAREN) {
		return nil
	}

	params, ok := p.parseFnParams()
	if !ok {
		return nil
	}
	fn.Params = params

	if !p.expectPeek(token.OPEN_CURLY) {
		return nil
	}

	fn.Body = p.parseBlock()
	if fn.Body == nil {
		return nil
	}
	return ast.NewNode(ast.KIND_FN_LITERAL, fn)
}

// parseFnParams expects cur to be '(' and leaves cur on ')'.
func (p *Parser) parseFnParams() ([]*ast.IdExpr, bool) {
	params := []*ast.IdExpr{}

	if p.peekIs(token.CLOSE_PAREN) {
		p.advance()
		return params, true
	}

	if !p.expectPeek(token.IDENT) {
		return nil, false
	}
	params = append(params, &ast.IdExpr{Token: p.cur, Name: p.cur.Lexeme})

	for p.peekIs(token.COMMA) {
		p.advance() // ,
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		params = append(params, &ast.IdExpr{Token: p.cur, Name: p.cur.Lexeme})
	}

	if !p.expectPeek(token.CLOSE_PAREN) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpr(callee *ast.Node) *ast.Node {
	call := &ast.CallExpr{Token: p.cur, Callee: callee}

	args, ok := p.parseExprList(token.CLOSE_PAREN)
	if !ok {
		return nil
	}
	call.Args = args

	return ast.NewNode(ast.KIND_CALL_EXPR, call)
}

// parseExprList parses a comma separated list of expressions. It expects
// cur to be the opening token and leaves cur on end.
func (p *Parser) parseExprList(end token.Kind) ([]*ast.Node, bool) {
	list := []*ast.Node{}

	if p.peekIs(end) {
		p.advance()
		return list, true
	}

	p.advance()
	expr := p.parseExpr(LOWEST)
	if expr == nil {
		return nil, false
	}
	list = append(list, expr)

	for p.peekIs(token.COMMA) {
		p.advance() // ,
		p.advance()

		expr := p.parseExpr(LOWEST)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return list, true
}
