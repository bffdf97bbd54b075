package parser

import (
	"fmt"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/diagnostics"
	"github.com/HicaroD/monkey/internal/lexer"
	"github.com/HicaroD/monkey/internal/lexer/token"
)

type Parser struct {
	lex       *lexer.Lexer
	collector *diagnostics.Collector

	cur  *token.Token
	peek *token.Token
}

func New(lex *lexer.Lexer, collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.lex = lex
	parser.collector = collector

	// fill cur and peek
	parser.advance()
	parser.advance()

	return parser
}

// Parse runs a fresh parser over lex and returns the program together
// with every diagnostic message, in report order.
func Parse(lex *lexer.Lexer) (*ast.Program, []string) {
	collector := diagnostics.New()
	p := New(lex, collector)
	program := p.ParseProgram()
	return program, collector.Messages()
}

// ParseProgram parses statements until EOF. Statements that fail to parse
// are reported to the collector and left out of the program.
func (p *Parser) ParseProgram() *ast.Program {
	program := new(ast.Program)
	program.Loc = p.lex.Loc

	for !p.curIs(token.EOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) curIs(kind token.Kind) bool {
	return p.cur != nil && p.cur.Kind == kind
}

func (p *Parser) peekIs(kind token.Kind) bool {
	return p.peek.Kind == kind
}

func (p *Parser) expectPeek(expectedKind token.Kind) bool {
	if p.peekIs(expectedKind) {
		p.advance()
		return true
	}
	p.peekError(expectedKind)
	return false
}

func (p *Parser) peekError(expectedKind token.Kind) {
	p.report(p.peek.Pos, fmt.Sprintf("expected next token to be %s, got %s instead", expectedKind, p.peek.Kind))
}

func (p *Parser) report(pos token.Pos, message string) {
	p.collector.ReportAndSave(diagnostics.Diag{Message: message, Pos: pos})
}

func (p *Parser) parseStmt() *ast.Node {
	switch p.cur.Kind {
	case token.LET:
		return p.parseLet()
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() *ast.Node {
	let := &ast.LetStmt{Let: p.cur}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	let.Name = &ast.IdExpr{Token: p.cur, Name: p.cur.Lexeme}

	if !p.expectPeek(token.EQUAL) {
		return nil
	}
	p.advance()

	let.Value = p.parseExpr(LOWEST)
	if let.Value == nil {
		return nil
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return ast.NewNode(ast.KIND_LET_STMT, let)
}

func (p *Parser) parseReturn() *ast.Node {
	ret := &ast.ReturnStmt{Return: p.cur}
	p.advance()

	ret.Value = p.parseExpr(LOWEST)
	if ret.Value == nil {
		return nil
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return ast.NewNode(ast.KIND_RETURN_STMT, ret)
}

func (p *Parser) parseExprStmt() *ast.Node {
	stmt := &ast.ExprStmt{First: p.cur}

	stmt.Expr = p.parseExpr(LOWEST)
	if stmt.Expr == nil {
		return nil
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return ast.NewNode(ast.KIND_EXPR_STMT, stmt)
}

// parseBlock expects cur to be '{' and leaves cur on the matching '}'.
func (p *Parser) parseBlock() *ast.BlockStmt {
	block := &ast.BlockStmt{OpenCurly: p.cur}
	p.advance()

	for !p.curIs(token.CLOSE_CURLY) {
		if p.curIs(token.EOF) {
			p.report(p.cur.Pos, fmt.Sprintf("expected next token to be %s, got %s instead", token.CLOSE_CURLY, token.EOF))
			return nil
		}
		stmt := p.parseStmt()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	return block
}
