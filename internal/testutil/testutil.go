package testutil

import (
	"os"
	"strings"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/diagnostics"
	"github.com/HicaroD/monkey/internal/eval"
	"github.com/HicaroD/monkey/internal/lexer"
	"github.com/HicaroD/monkey/internal/object"
	"github.com/HicaroD/monkey/internal/parser"
	"github.com/pkg/errors"
)

const DefaultFilename = "test.mk"

func FakeLoc(filename string) *ast.Loc {
	if filename == "" {
		filename = DefaultFilename
	}
	return &ast.Loc{Name: filename}
}

func NewLexer(src []byte, filename string) *lexer.Lexer {
	return lexer.New(FakeLoc(filename), src)
}

// Result is the outcome of running a program: either the parse
// diagnostics, or the value it evaluated to.
type Result struct {
	Diags  []string
	Value  object.Object
	Env    *object.Environment
	Output string
}

// RunSource parses and evaluates src in a fresh environment. maxCallDepth
// is passed to the evaluator as is.
func RunSource(src, filename string, maxCallDepth int) (*Result, error) {
	program, diags := parser.Parse(NewLexer([]byte(src), filename))
	if len(diags) > 0 {
		return &Result{Diags: diags, Output: strings.Join(diags, "\n")}, diagnostics.ERR_PARSE_ERROR_FOUND
	}

	env := object.NewEnvironment()
	evaluator := eval.New(eval.Options{MaxCallDepth: maxCallDepth})
	value, err := evaluator.Run(program, env)
	if err != nil {
		return nil, err
	}

	result := &Result{Value: value, Env: env}
	if value != nil {
		result.Output = value.Inspect()
	}
	return result, nil
}

func RunFile(path string, maxCallDepth int) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	loc, err := ast.LocFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid source path %s", path)
	}
	return RunSource(string(src), loc.Name, maxCallDepth)
}
