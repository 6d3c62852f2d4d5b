// Package shell parses command lines for the interpreter.
//
// The accepted language is deliberately tiny: words separated by
// whitespace, `&` between clauses that should run in parallel, and a single
// trailing `> file` per clause. There is no quoting, escaping, globbing, or
// piping.
package shell

import (
	"errors"
	"strings"
)

var (
	// ErrParallelSyntax reports a `&` with nothing before it.
	ErrParallelSyntax = errors.New("missing command before '&'")
	// ErrRedirectSyntax reports a malformed `>` redirection.
	ErrRedirectSyntax = errors.New("malformed output redirection")
)

// Clause is one `&`-delimited sub-command of a line, already validated and
// tokenized. Argv[0] is the command name. An empty Argv means the clause
// held no words and should be skipped.
type Clause struct {
	// Argv holds every word of the clause. `>` acts as just another
	// delimiter, so when redirection is present the target filename is the
	// final element; launching trims it off with ExecArgv.
	Argv []string

	// RedirectPath is the file both output streams should be written to,
	// or empty when the clause has no redirection.
	RedirectPath string
}

// ExecArgv is the argument vector handed to a spawned program: Argv without
// the redirect target, so a program never sees the file its output goes to.
func (c Clause) ExecArgv() []string {
	if c.RedirectPath == "" {
		return c.Argv
	}
	return c.Argv[:len(c.Argv)-1]
}

// SplitClauses validates the parallel operator and cuts the line into
// clause texts. Any number of `&` is structurally fine except the
// single-`&` form, which requires a command before the operator; `cmd &`
// simply yields an empty trailing clause. Each returned text still needs
// ParseClause.
func SplitClauses(line string) ([]string, error) {
	if strings.Count(line, "&") == 1 {
		before := line[:strings.IndexByte(line, '&')]
		if strings.TrimSpace(before) == "" {
			return nil, ErrParallelSyntax
		}
	}
	return strings.Split(line, "&"), nil
}

// ParseClause validates redirection for one clause and tokenizes it on
// whitespace. `>` binds without surrounding spaces, so `ls>out` and
// `ls > out` parse identically. Valid shapes are exactly: no `>` at all, or
// one `>` with a command before it and a single filename after it.
func ParseClause(text string) (Clause, error) {
	switch strings.Count(text, ">") {
	case 0:
		return Clause{Argv: strings.Fields(text)}, nil

	case 1:
		cut := strings.IndexByte(text, '>')
		argv := strings.Fields(text[:cut])
		target := strings.Fields(text[cut+1:])
		if len(argv) == 0 || len(target) != 1 {
			return Clause{}, ErrRedirectSyntax
		}
		return Clause{Argv: append(argv, target[0]), RedirectPath: target[0]}, nil

	default:
		return Clause{}, ErrRedirectSyntax
	}
}

// Blank reports whether the line holds only whitespace.
func Blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
