package main

import (
	"fmt"
	"os"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/pkg/errors"
)

type Command int

const (
	COMMAND_HELP Command = iota
	COMMAND_ENV
	COMMAND_RUN
	COMMAND_EVAL
	COMMAND_CHECK
)

type CliResult struct {
	Command Command
	Locs    []*ast.Loc
	Source  string
	ShowEnv bool
}

var HELP_COMMAND string = `Monkey - a small interpreted language with first-class functions and closures.

Usage:
  monkey <command> [arguments]

Available Commands:
  run <file> [-env]       Runs a monkey program and prints its result
      -env                Also print the top-level bindings

  eval <source>           Evaluates a source string and prints its result

  check <file>...         Reports parse diagnostics for every file

  env                     Show the resolved configuration

  help                    Show this help message

Examples:
  monkey run examples/fib.mk
  monkey eval "let add = fn(a, b) { a + b }; add(1, 2)"
  monkey check a.mk b.mk
`

func cli(args []string) (CliResult, error) {
	result := CliResult{}

	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "help":
		result.Command = COMMAND_HELP
	case "env":
		result.Command = COMMAND_ENV
	case "run":
		result.Command = COMMAND_RUN

		var path string
		for _, arg := range args[1:] {
			switch arg {
			case "-env":
				result.ShowEnv = true
			default:
				if path != "" {
					return result, fmt.Errorf("run expects a single file, got %s and %s", path, arg)
				}
				path = arg
			}
		}
		if path == "" {
			return result, fmt.Errorf("run expects a file")
		}

		loc, err := locFromArg(path)
		if err != nil {
			return result, err
		}
		result.Locs = []*ast.Loc{loc}
	case "eval":
		result.Command = COMMAND_EVAL
		if len(args) != 2 {
			return result, fmt.Errorf("eval expects exactly one source argument")
		}
		result.Source = args[1]
	case "check":
		result.Command = COMMAND_CHECK
		if len(args) < 2 {
			return result, fmt.Errorf("check expects at least one file")
		}
		for _, path := range args[1:] {
			loc, err := locFromArg(path)
			if err != nil {
				return result, err
			}
			result.Locs = append(result.Locs, loc)
		}
	default:
		return result, fmt.Errorf("unknown command %q, see 'monkey help'", command)
	}
	return result, nil
}

func locFromArg(path string) (*ast.Loc, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "no such file: %s", path)
	}
	loc, err := ast.LocFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid source file %s", path)
	}
	return loc, nil
}
