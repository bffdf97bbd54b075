package parser

import (
	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/diagnostics"
	"github.com/HicaroD/monkey/internal/lexer"
)

const defaultFilename = "input"

func FakeLoc(filename string) *ast.Loc {
	if filename == "" {
		filename = defaultFilename
	}
	return &ast.Loc{Name: filename}
}

// ParseSource parses src as a whole program.
func ParseSource(src string) (*ast.Program, []string) {
	lex := lexer.New(FakeLoc(""), []byte(src))
	return Parse(lex)
}

// ParseExprFrom parses a single expression from input. It returns nil when
// the expression could not be parsed.
func ParseExprFrom(input, filename string) (*ast.Node, *diagnostics.Collector) {
	collector := diagnostics.New()
	lex := lexer.New(FakeLoc(filename), []byte(input))
	p := New(lex, collector)
	return p.parseExpr(LOWEST), collector
}
