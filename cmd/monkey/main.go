package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/HicaroD/monkey/internal/ast"
	"github.com/HicaroD/monkey/internal/config"
	"github.com/HicaroD/monkey/internal/diagnostics"
	"github.com/HicaroD/monkey/internal/eval"
	"github.com/HicaroD/monkey/internal/lexer"
	"github.com/HicaroD/monkey/internal/object"
	"github.com/HicaroD/monkey/internal/parser"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var DevMode string

const (
	EXIT_OK    = 0
	EXIT_ERROR = 1
	EXIT_FATAL = 2
)

func main() {
	config.SetDevMode(DevMode == "1")
	if config.DEV {
		fmt.Println("[DEV MODE] initialized")
	}

	args, err := cli(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Setup()
	if err != nil {
		log.Fatal(err)
	}

	isTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	app := &App{
		cfg:   cfg,
		out:   os.Stdout,
		color: cfg.UseColor(isTerminal),
	}

	os.Exit(app.Execute(args))
}

type App struct {
	cfg   *config.Config
	out   io.Writer
	color bool
}

func (app *App) Execute(args CliResult) int {
	switch args.Command {
	case COMMAND_HELP:
		fmt.Fprint(app.out, HELP_COMMAND)
		return EXIT_OK
	case COMMAND_ENV:
		out, err := app.cfg.YAML()
		if err != nil {
			log.Fatal(err)
		}
		if app.cfg.Path != "" {
			fmt.Fprintf(app.out, "# %s\n", app.cfg.Path)
		}
		fmt.Fprint(app.out, out)
		return EXIT_OK
	case COMMAND_RUN:
		loc := args.Locs[0]
		src, err := os.ReadFile(loc.Path)
		if err != nil {
			log.Fatal(errors.Wrapf(err, "could not read %s", loc.Path))
		}
		return app.run(loc, src, args.ShowEnv || app.cfg.ShowEnv)
	case COMMAND_EVAL:
		return app.run(&ast.Loc{Name: "<eval>"}, []byte(args.Source), false)
	case COMMAND_CHECK:
		return app.check(args.Locs)
	}
	return EXIT_ERROR
}

func (app *App) run(loc *ast.Loc, src []byte, showEnv bool) int {
	collector := diagnostics.NewWithOutput(app.errorOutput())
	p := parser.New(lexer.New(loc, src), collector)
	program := p.ParseProgram()

	if collector.HasErrors() {
		return EXIT_ERROR
	}

	env := object.NewEnvironment()
	evaluator := eval.New(eval.Options{MaxCallDepth: app.cfg.MaxCallDepth})
	result, err := evaluator.Run(program, env)
	if err != nil {
		app.printError(fmt.Sprintf("fatal: %s", err))
		return EXIT_FATAL
	}

	code := EXIT_OK
	if result != nil {
		if object.IsError(result) {
			app.printError(result.Inspect())
			code = EXIT_ERROR
		} else {
			fmt.Fprintln(app.out, result.Inspect())
		}
	}

	if showEnv {
		for _, name := range env.Names() {
			value, _ := env.Get(name)
			fmt.Fprintf(app.out, "%s = %s\n", name, value.Inspect())
		}
	}

	return code
}

// check parses every file concurrently. Diagnostics are printed in the
// order the files were given.
func (app *App) check(locs []*ast.Loc) int {
	diags := make([][]diagnostics.Diag, len(locs))

	var g errgroup.Group
	for i, loc := range locs {
		i, loc := i, loc
		g.Go(func() error {
			lex, err := lexer.NewFromFilePath(loc)
			if err != nil {
				return errors.Wrapf(err, "could not read %s", loc.Path)
			}
			collector := diagnostics.New()
			parser.New(lex, collector).ParseProgram()
			diags[i] = collector.Diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		app.printError(err.Error())
		return EXIT_FATAL
	}

	code := EXIT_OK
	for i, fileDiags := range diags {
		if len(fileDiags) == 0 {
			fmt.Fprintf(app.out, "%s: ok\n", locs[i].Path)
			continue
		}
		code = EXIT_ERROR
		for _, diag := range fileDiags {
			app.printError(diag.String())
		}
	}
	return code
}

func (app *App) printError(message string) {
	fmt.Fprintln(app.errorOutput(), message)
}

func (app *App) errorOutput() io.Writer {
	if app.color {
		return redWriter{out: app.out}
	}
	return app.out
}

// redWriter wraps every line written to it in red ANSI escapes.
type redWriter struct {
	out io.Writer
}

func (w redWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		text := bytes.TrimSuffix(line, []byte("\n"))
		if _, err := fmt.Fprintf(w.out, "\x1b[31m%s\x1b[0m\n", text); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
