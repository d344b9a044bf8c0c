package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kievzenit/golox/internal/ast"
	"github.com/kievzenit/golox/internal/compiler_errors"
	"github.com/kievzenit/golox/internal/config"
	"github.com/kievzenit/golox/internal/interpreter"
	l "github.com/kievzenit/golox/internal/lexer"
	"github.com/kievzenit/golox/internal/parser"
	"github.com/kievzenit/golox/internal/runtime"
	"github.com/sanity-io/litter"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitData     = 65
	exitSoftware = 70
	exitIO       = 74
)

type options struct {
	cfg    *config.Config
	script string
}

type session struct {
	cfg *config.Config

	stdout io.Writer
	stderr io.Writer

	interp *interpreter.Interpreter
	env    *runtime.Environment
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, code, ok := parseArgs(args, stdout, stderr)
	if !ok {
		return code
	}

	s := &session{
		cfg:    opts.cfg,
		stdout: stdout,
		stderr: stderr,
		interp: interpreter.New(stdout),
		env:    runtime.NewEnvironment(nil),
	}

	if opts.script != "" {
		return s.runFile(opts.script)
	}
	return s.runPrompt(stdin)
}

// parseArgs applies flags on top of the discovered config. It returns false
// together with an exit code when the process should stop.
func parseArgs(args []string, stdout, stderr io.Writer) (*options, int, bool) {
	var (
		configPath string
		tokens     bool
		dumpAST    bool
		rpn        bool
		env        bool
		positional []string
	)

	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]
		switch {
		case arg == "--help" || arg == "-h":
			printUsage(stdout)
			return nil, exitOK, false
		case arg == "--tokens":
			tokens = true
		case arg == "--ast":
			dumpAST = true
		case arg == "--rpn":
			rpn = true
		case arg == "--env":
			env = true
		case arg == "--config":
			if idx+1 >= len(args) {
				fmt.Fprintln(stderr, "--config requires a path")
				return nil, exitUsage, false
			}
			idx++
			configPath = args[idx]
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-") && arg != "-":
			fmt.Fprintf(stderr, "unknown flag %s\n", arg)
			printUsage(stdout)
			return nil, exitUsage, false
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) > 1 {
		printUsage(stdout)
		return nil, exitUsage, false
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return nil, exitUsage, false
	}
	cfg.DumpTokens = cfg.DumpTokens || tokens
	cfg.DumpAST = cfg.DumpAST || dumpAST
	cfg.PrintRPN = cfg.PrintRPN || rpn
	cfg.DumpEnv = cfg.DumpEnv || env

	opts := &options{cfg: cfg}
	if len(positional) == 1 {
		opts.script = positional[0]
	}
	return opts, exitOK, true
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: golox [--tokens] [--ast] [--rpn] [--env] [--config <path>] [script]")
}

func (s *session) runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.stderr, "read %s: %v\n", path, err)
		return exitIO
	}

	stmts, ok := s.compile(source)
	if !ok {
		return exitData
	}

	err = s.interp.Execute(stmts, s.env)
	s.dumpGlobals()
	if err != nil {
		s.reportRuntimeError(err)
		return exitSoftware
	}
	return exitOK
}

func (s *session) runPrompt(stdin io.Reader) int {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(s.stdout, s.cfg.Prompt)
		if !scanner.Scan() {
			break
		}
		s.runLine(scanner.Text())
	}
	fmt.Fprintln(s.stdout)
	s.dumpGlobals()

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(s.stderr, "read input: %v\n", err)
		return exitIO
	}
	return exitOK
}

// runLine evaluates a bare expression and prints its value, otherwise runs
// the line as statements. Errors never end the session.
func (s *session) runLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	eh := compiler_errors.NewErrorHandler(s.stderr)
	tokens := l.NewLexer([]byte(line), eh).Tokenize()
	if eh.HasErrors() {
		eh.Report()
		return
	}

	if expr, errs := parser.ParseExpression(tokens); len(errs) == 0 && expr != nil {
		s.dump(tokens, expr)
		if err := s.interp.EvaluateAndPrint(expr, s.env); err != nil {
			s.reportRuntimeError(err)
		}
		return
	}

	stmts, ok := s.parse(tokens, eh)
	if !ok {
		return
	}
	if err := s.interp.Execute(stmts, s.env); err != nil {
		s.reportRuntimeError(err)
	}
}

func (s *session) compile(source []byte) ([]ast.Stmt, bool) {
	eh := compiler_errors.NewErrorHandler(s.stderr)

	tokens := l.NewLexer(source, eh).Tokenize()
	if eh.HasErrors() {
		eh.Report()
		return nil, false
	}

	return s.parse(tokens, eh)
}

func (s *session) parse(tokens []l.Token, eh compiler_errors.ErrorHandler) ([]ast.Stmt, bool) {
	program := parser.NewParser(l.NewTokenScanner(tokens), eh).Parse()
	if eh.HasErrors() {
		eh.Report()
		return nil, false
	}

	s.dump(tokens, program)
	if s.cfg.PrintRPN {
		for _, stmt := range program.Stmts {
			if exprStmt, ok := stmt.(*ast.ExprStmt); ok {
				fmt.Fprintln(s.stdout, ast.PrintRPN(exprStmt.Expr))
			}
		}
	}
	return program.Stmts, true
}

func (s *session) dump(tokens []l.Token, node any) {
	if s.cfg.DumpTokens {
		for _, token := range tokens {
			fmt.Fprintln(s.stdout, token.String())
		}
	}
	if s.cfg.DumpAST {
		fmt.Fprintln(s.stdout, litter.Sdump(node))
	}
	if expr, ok := node.(ast.Expr); ok && s.cfg.PrintRPN {
		fmt.Fprintln(s.stdout, ast.PrintRPN(expr))
	}
}

// dumpGlobals prints the global bindings in name order.
func (s *session) dumpGlobals() {
	if !s.cfg.DumpEnv {
		return
	}

	values := s.env.Snapshot()
	for _, name := range s.env.Keys() {
		fmt.Fprintf(s.stdout, "%s = %s\n", name, runtime.Stringify(values[name]))
	}
}

func (s *session) reportRuntimeError(err error) {
	var compilerErr compiler_errors.CompilerError
	if errors.As(err, &compilerErr) {
		fmt.Fprintln(s.stderr, compiler_errors.Format(compilerErr))
		return
	}
	fmt.Fprintln(s.stderr, err)
}
