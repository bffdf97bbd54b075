package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HicaroD/monkey/internal/config"
)

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestApp(cfg *config.Config) (*App, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return &App{cfg: cfg, out: out, color: false}, out
}

func TestCli(t *testing.T) {
	path := writeSource(t, "main.mk", "1")

	tests := []struct {
		args    []string
		command Command
		fails   bool
	}{
		{[]string{}, COMMAND_HELP, false},
		{[]string{"help"}, COMMAND_HELP, false},
		{[]string{"env"}, COMMAND_ENV, false},
		{[]string{"run", path}, COMMAND_RUN, false},
		{[]string{"run", path, "-env"}, COMMAND_RUN, false},
		{[]string{"run"}, COMMAND_RUN, true},
		{[]string{"run", path, path}, COMMAND_RUN, true},
		{[]string{"run", "missing.mk"}, COMMAND_RUN, true},
		{[]string{"eval", "1 + 2"}, COMMAND_EVAL, false},
		{[]string{"eval"}, COMMAND_EVAL, true},
		{[]string{"check", path, path}, COMMAND_CHECK, false},
		{[]string{"check"}, COMMAND_CHECK, true},
		{[]string{"build"}, COMMAND_HELP, true},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("Test(%d): %v", i, test.args), func(t *testing.T) {
			result, err := cli(test.args)
			if test.fails {
				if err == nil {
					t.Errorf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Command != test.command {
				t.Errorf("expected command %d, but got %d", test.command, result.Command)
			}
		})
	}

	result, _ := cli([]string{"run", path, "-env"})
	if !result.ShowEnv {
		t.Errorf("expected -env to set ShowEnv")
	}
}

func TestExecuteEval(t *testing.T) {
	tests := []struct {
		source string
		output string
		code   int
	}{
		{"1 + 2", "3\n", EXIT_OK},
		{"let x = 1;", "", EXIT_OK},
		{"let add = fn(a, b) { a + b }; add(1, 2)", "3\n", EXIT_OK},
		{"y", "ERROR: identifier not found: y\n", EXIT_ERROR},
		{"let = 1", "<eval>:1:5: expected next token to be IDENT, got = instead\n<eval>:1:5: no prefix parse rule for token kind =\n", EXIT_ERROR},
		{"let f = fn() { f() }; f()", "fatal: maximum call depth exceeded (20)\n", EXIT_FATAL},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("Test(%d): %s", i, test.source), func(t *testing.T) {
			cfg := config.Default()
			cfg.MaxCallDepth = 20
			app, out := newTestApp(cfg)

			code := app.Execute(CliResult{Command: COMMAND_EVAL, Source: test.source})
			if code != test.code {
				t.Errorf("expected exit code %d, but got %d", test.code, code)
			}
			if out.String() != test.output {
				t.Errorf("expected output %q, but got %q", test.output, out.String())
			}
		})
	}
}

func TestExecuteRunShowsEnv(t *testing.T) {
	path := writeSource(t, "env.mk", "let b = 2; let a = true; a")
	args, err := cli([]string{"run", path, "-env"})
	if err != nil {
		t.Fatal(err)
	}

	app, out := newTestApp(config.Default())
	if code := app.Execute(args); code != EXIT_OK {
		t.Fatalf("expected exit code 0, but got %d", code)
	}

	expected := "true\na = true\nb = 2\n"
	if out.String() != expected {
		t.Errorf("expected %q, but got %q", expected, out.String())
	}
}

func TestExecuteCheck(t *testing.T) {
	good := writeSource(t, "good.mk", "let x = 1; x")
	bad := writeSource(t, "bad.mk", "let x 1;")

	args, err := cli([]string{"check", good, bad})
	if err != nil {
		t.Fatal(err)
	}

	app, out := newTestApp(config.Default())
	if code := app.Execute(args); code != EXIT_ERROR {
		t.Errorf("expected exit code 1, but got %d", code)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, but got %q", out.String())
	}
	if lines[0] != good+": ok" {
		t.Errorf("expected first line for %s, but got %q", good, lines[0])
	}
	expected := "bad.mk:1:7: expected next token to be =, got INT instead"
	if lines[1] != expected {
		t.Errorf("expected %q, but got %q", expected, lines[1])
	}
}

func TestPrintErrorColor(t *testing.T) {
	out := new(bytes.Buffer)
	app := &App{cfg: config.Default(), out: out, color: true}
	app.printError("boom")
	if out.String() != "\x1b[31mboom\x1b[0m\n" {
		t.Errorf("expected red output, but got %q", out.String())
	}
}

func TestRunEchoesDiagnosticsInColor(t *testing.T) {
	out := new(bytes.Buffer)
	app := &App{cfg: config.Default(), out: out, color: true}

	code := app.Execute(CliResult{Command: COMMAND_EVAL, Source: "let = 1"})
	if code != EXIT_ERROR {
		t.Errorf("expected exit code %d, but got %d", EXIT_ERROR, code)
	}

	expected := "\x1b[31m<eval>:1:5: expected next token to be IDENT, got = instead\x1b[0m\n" +
		"\x1b[31m<eval>:1:5: no prefix parse rule for token kind =\x1b[0m\n"
	if out.String() != expected {
		t.Errorf("expected %q, but got %q", expected, out.String())
	}
}
