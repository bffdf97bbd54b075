// Package object defines the runtime values produced by the evaluator.
package object

import (
	"strconv"
	"strings"

	"github.com/HicaroD/monkey/internal/ast"
)

type ObjectType string

const (
	INTEGER_OBJ      ObjectType = "INTEGER"
	BOOLEAN_OBJ      ObjectType = "BOOL"
	STRING_OBJ       ObjectType = "STRING"
	NULL_OBJ         ObjectType = "NULL"
	RETURN_VALUE_OBJ ObjectType = "RETURN_VALUE"
	FUNCTION_OBJ     ObjectType = "FUNCTION_VALUE"
	ERROR_OBJ        ObjectType = "ERROR"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

// NativeBool maps a host boolean to one of the two boolean singletons.
func NativeBool(value bool) *Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

type Integer struct {
	Value float64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string {
	if i.Value == 0 {
		// -0 prints as 0
		return "0"
	}
	return strconv.FormatFloat(i.Value, 'f', -1, 64)
}

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// ReturnValue carries a returned value up through enclosing blocks until
// it reaches a function call or the top level.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string {
	if rv.Value == nil {
		return NULL.Inspect()
	}
	return rv.Value.Inspect()
}

type Function struct {
	Parameters []*ast.IdExpr
	Body       *ast.BlockStmt
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(ast.JoinParams(f.Parameters))
	out.WriteString(") {\n")
	if f.Body != nil {
		out.WriteString(f.Body.String())
	}
	out.WriteString("\n}")
	return out.String()
}

type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

func IsError(obj Object) bool {
	return obj != nil && obj.Type() == ERROR_OBJ
}
