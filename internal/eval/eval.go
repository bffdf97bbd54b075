// Package eval implements the tree-walking evaluator. Runtime errors and
// returns are ordinary values: every sub-result is checked before it is
// used and an error is handed back unchanged the moment it appears.
package eval

import (
	"fmt"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/object"
)

// DepthError is raised (as a panic) when a call would nest deeper than
// the configured limit. It is a host failure, not a language error.
type DepthError struct {
	Limit int
}

func (err *DepthError) Error() string {
	return fmt.Sprintf("maximum call depth exceeded (%d)", err.Limit)
}

type Options struct {
	// MaxCallDepth bounds nested function calls. Zero means unbounded.
	MaxCallDepth int
}

type Evaluator struct {
	maxCallDepth int
	depth        int
}

func New(opts Options) *Evaluator {
	evaluator := new(Evaluator)
	evaluator.maxCallDepth = opts.MaxCallDepth
	return evaluator
}

// Evaluate runs program in env with no call-depth limit. A nil result
// means the last statement produced nothing, as a let statement does.
func Evaluate(program *ast.Program, env *object.Environment) object.Object {
	return New(Options{}).Evaluate(program, env)
}

func Eval(node *ast.Node, env *object.Environment) object.Object {
	return New(Options{}).Eval(node, env)
}

// Run is like Evaluate but turns a DepthError panic into an error. Any
// other panic is passed through.
func (ev *Evaluator) Run(program *ast.Program, env *object.Environment) (result object.Object, err error) {
	ev.depth = 0
	defer func() {
		if r := recover(); r != nil {
			depthErr, ok := r.(*DepthError)
			if !ok {
				panic(r)
			}
			ev.depth = 0
			result, err = nil, depthErr
		}
	}()
	return ev.Evaluate(program, env), nil
}

func (ev *Evaluator) Evaluate(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object

	for _, stmt := range program.Statements {
		result = ev.Eval(stmt, env)

		switch value := result.(type) {
		case *object.ReturnValue:
			return value.Value
		case *object.Error:
			return value
		}
	}

	return result
}

func (ev *Evaluator) Eval(node *ast.Node, env *object.Environment) object.Object {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case ast.KIND_EXPR_STMT:
		return ev.Eval(node.Node.(*ast.ExprStmt).Expr, env)
	case ast.KIND_LET_STMT:
		return ev.evalLet(node.Node.(*ast.LetStmt), env)
	case ast.KIND_RETURN_STMT:
		return ev.evalReturn(node.Node.(*ast.ReturnStmt), env)
	case ast.KIND_BLOCK_STMT:
		return ev.evalBlock(node.Node.(*ast.BlockStmt), env)

	case ast.KIND_INTEGER_LITERAL:
		return &object.Integer{Value: node.Node.(*ast.IntegerLiteral).Value}
	case ast.KIND_STRING_LITERAL:
		return &object.String{Value: node.Node.(*ast.StringLiteral).Value}
	case ast.KIND_BOOLEAN_LITERAL:
		return object.NativeBool(node.Node.(*ast.BooleanLiteral).Value)
	case ast.KIND_ID_EXPR:
		return ev.evalId(node.Node.(*ast.IdExpr), env)
	case ast.KIND_PREFIX_EXPR:
		return ev.evalPrefix(node.Node.(*ast.PrefixExpr), env)
	case ast.KIND_INFIX_EXPR:
		return ev.evalInfix(node.Node.(*ast.InfixExpr), env)
	case ast.KIND_IF_EXPR:
		return ev.evalIf(node.Node.(*ast.IfExpr), env)
	case ast.KIND_FN_LITERAL:
		fn := node.Node.(*ast.FnLiteral)
		return &object.Function{Parameters: fn.Params, Body: fn.Body, Env: env}
	case ast.KIND_CALL_EXPR:
		return ev.evalCall(node.Node.(*ast.CallExpr), env)
	}

	return nil
}

// evalValue evaluates node in a position that needs a value, so nothing
// reads as NULL.
func (ev *Evaluator) evalValue(node *ast.Node, env *object.Environment) object.Object {
	result := ev.Eval(node, env)
	if result == nil {
		return object.NULL
	}
	return result
}

func (ev *Evaluator) evalBlock(block *ast.BlockStmt, env *object.Environment) object.Object {
	var result object.Object

	for _, stmt := range block.Statements {
		result = ev.Eval(stmt, env)
		if isSignal(result) {
			return result
		}
	}

	return result
}

func (ev *Evaluator) evalLet(let *ast.LetStmt, env *object.Environment) object.Object {
	value := ev.evalValue(let.Value, env)
	if isSignal(value) {
		return value
	}
	env.Set(let.Name.Name, value)
	return nil
}

func (ev *Evaluator) evalReturn(ret *ast.ReturnStmt, env *object.Environment) object.Object {
	value := ev.evalValue(ret.Value, env)
	if isSignal(value) {
		return value
	}
	return &object.ReturnValue{Value: value}
}

func (ev *Evaluator) evalId(id *ast.IdExpr, env *object.Environment) object.Object {
	value, ok := env.Get(id.Name)
	if !ok {
		return newError("identifier not found: %s", id.Name)
	}
	return value
}

func (ev *Evaluator) evalPrefix(prefix *ast.PrefixExpr, env *object.Environment) object.Object {
	right := ev.evalValue(prefix.Right, env)
	if isSignal(right) {
		return right
	}

	switch prefix.Op {
	case "!":
		return object.NativeBool(!isTruthy(right))
	case "-":
		integer, ok := right.(*object.Integer)
		if !ok {
			return newError("unknown operator: -%s", right.Type())
		}
		return &object.Integer{Value: -integer.Value}
	default:
		return newError("unknown operator: %s%s", prefix.Op, right.Type())
	}
}

func (ev *Evaluator) evalInfix(infix *ast.InfixExpr, env *object.Environment) object.Object {
	right := ev.evalValue(infix.Right, env)
	if isSignal(right) {
		return right
	}
	left := ev.evalValue(infix.Left, env)
	if isSignal(left) {
		return left
	}
	return evalInfixOperator(infix.Op, left, right)
}

func evalInfixOperator(op string, left, right object.Object) object.Object {
	leftInt, leftIsInt := left.(*object.Integer)
	rightInt, rightIsInt := right.(*object.Integer)
	if leftIsInt && rightIsInt {
		return evalIntegerInfix(op, leftInt.Value, rightInt.Value)
	}

	leftStr, leftIsStr := left.(*object.String)
	rightStr, rightIsStr := right.(*object.String)
	if leftIsStr && rightIsStr {
		if op != "+" {
			return newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
		}
		return &object.String{Value: leftStr.Value + rightStr.Value}
	}

	switch {
	case op == "==":
		return object.NativeBool(left == right)
	case op == "!=":
		return object.NativeBool(left != right)
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	default:
		return newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}
}

func evalIntegerInfix(op string, left, right float64) object.Object {
	switch op {
	case "+":
		return &object.Integer{Value: left + right}
	case "-":
		return &object.Integer{Value: left - right}
	case "*":
		return &object.Integer{Value: left * right}
	case "/":
		if right == 0 {
			return newError("division by zero")
		}
		return &object.Integer{Value: left / right}
	case "<":
		return object.NativeBool(left < right)
	case ">":
		return object.NativeBool(left > right)
	case "==":
		return object.NativeBool(left == right)
	case "!=":
		return object.NativeBool(left != right)
	default:
		return newError("unknown operator: %s %s %s", object.INTEGER_OBJ, op, object.INTEGER_OBJ)
	}
}

func (ev *Evaluator) evalIf(ifExpr *ast.IfExpr, env *object.Environment) object.Object {
	cond := ev.evalValue(ifExpr.Cond, env)
	if isSignal(cond) {
		return cond
	}

	if isTruthy(cond) {
		return ev.evalBlock(ifExpr.Consequence, env)
	}
	if ifExpr.Alternative != nil {
		return ev.evalBlock(ifExpr.Alternative, env)
	}
	return object.NULL
}

func (ev *Evaluator) evalCall(call *ast.CallExpr, env *object.Environment) object.Object {
	callee := ev.evalValue(call.Callee, env)
	if isSignal(callee) {
		return callee
	}

	fn, ok := callee.(*object.Function)
	if !ok {
		return newError("not a function: %s", callee.Type())
	}

	args := make([]object.Object, 0, len(call.Args))
	for _, arg := range call.Args {
		value := ev.evalValue(arg, env)
		if isSignal(value) {
			return value
		}
		args = append(args, value)
	}

	return ev.applyFunction(fn, args)
}

func (ev *Evaluator) applyFunction(fn *object.Function, args []object.Object) object.Object {
	if ev.maxCallDepth > 0 && ev.depth >= ev.maxCallDepth {
		panic(&DepthError{Limit: ev.maxCallDepth})
	}
	ev.depth++
	defer func() { ev.depth-- }()

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		if i < len(args) {
			callEnv.Set(param.Name, args[i])
		} else {
			callEnv.Set(param.Name, object.NULL)
		}
	}

	result := ev.evalBlock(fn.Body, callEnv)
	if ret, ok := result.(*object.ReturnValue); ok {
		return ret.Value
	}
	return result
}

// isTruthy: NULL and false are false, every other value is true.
func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL, object.FALSE:
		return false
	default:
		return true
	}
}

// isSignal reports whether obj must stop the evaluation of its enclosing
// construct: a runtime error or a pending return.
// A pending return in a let value or an operand leaves the enclosing function
// with that value, the same way an error does.
func isSignal(obj object.Object) bool {
	if obj == nil {
		return false
	}
	switch obj.Type() {
	case object.ERROR_OBJ, object.RETURN_VALUE_OBJ:
		return true
	}
	return false
}

func newError(format string, args ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}
