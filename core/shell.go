package core

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/ishwari21/dash-unix-shell/core/config"
	"github.com/ishwari21/dash-unix-shell/core/shell"
	"github.com/ishwari21/dash-unix-shell/core/vos"
)

// ErrorMessage is the one diagnostic the interpreter ever shows. Existing
// test suites match it byte for byte, so it must never gain detail.
const ErrorMessage = "An error has occurred"

// Shell is one interpreter session: the search path, the prompt, and the
// virtual OS the session runs against. The zero value is not usable; use
// NewShell.
type Shell struct {
	VirtualOS vos.VOS

	// SearchPath is the ordered list of directories consulted to resolve
	// external commands. The `path` builtin replaces it wholesale; nothing
	// mutates it in place.
	SearchPath []string

	// Log receives operational events. Never wired to the session's own
	// stderr. May be nil.
	Log *log.Logger

	prompt      string
	colorPrompt bool
	exiting     bool
}

func NewShell(virtualOS vos.VOS, cfg *config.Configuration) *Shell {
	searchPath := make([]string, len(cfg.SearchPath))
	copy(searchPath, cfg.SearchPath)

	return &Shell{
		VirtualOS:   virtualOS,
		SearchPath:  searchPath,
		prompt:      cfg.Prompt,
		colorPrompt: cfg.ColorPrompt,
	}
}

// Exiting reports whether a successful `exit` builtin has ended the session.
func (s *Shell) Exiting() bool {
	return s.exiting
}

func (s *Shell) promptText() string {
	if s.colorPrompt {
		// color.Sprint is a no-op when stdout isn't a terminal.
		return color.New(color.Bold).Sprint(s.prompt)
	}
	return s.prompt
}

// RunInteractive reads lines from the session's stdin until end-of-input or
// a successful `exit`. Returns the session's exit status.
func (s *Shell) RunInteractive() int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: s.promptText(),
		Stdin:  readline.NewCancelableStdin(s.VirtualOS.Stdin()),
		Stdout: s.VirtualOS.Stdout(),
		Stderr: s.VirtualOS.Stderr(),
	})
	if err != nil {
		s.reportError(err)
		return 1
	}
	defer rl.Close()

	for {
		rl.SetPrompt(s.promptText())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			s.reportError(err)
			continue

		default:
			s.runLine(line)
			if s.exiting {
				return 0
			}
		}
	}
}

// RunScript executes every line of the named file and returns the session's
// exit status. A file that cannot be opened or read is fatal; running off
// the end cleanly is a normal termination.
func (s *Shell) RunScript(name string) int {
	fd, err := s.VirtualOS.Open(name)
	if err != nil {
		s.reportError(err)
		return 1
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		s.runLine(scanner.Text())
		if s.exiting {
			return 0
		}
	}
	if err := scanner.Err(); err != nil {
		s.reportError(err)
		return 1
	}
	return 0
}

// runLine takes one line through the whole pipeline: parallel-syntax
// validation, clause splitting, per-clause dispatch, then a single wait on
// the batch of everything the line spawned.
func (s *Shell) runLine(line string) {
	if shell.Blank(line) {
		return
	}

	clauses, err := shell.SplitClauses(line)
	if err != nil {
		s.reportError(err)
		return
	}

	var b batch
	for _, text := range clauses {
		clause, err := shell.ParseClause(text)
		if err != nil {
			// A bad clause is dropped; its siblings still run.
			s.reportError(err)
			continue
		}
		if len(clause.Argv) == 0 {
			continue
		}

		// A name matching a builtin is always a builtin, whatever its
		// arguments look like.
		if builtin, ok := AllBuiltins[clause.Argv[0]]; ok {
			builtin.Main(s, clause.Argv)
			if s.exiting {
				// exit abandons the rest of the line but must not abandon
				// processes already launched; the batch wait below covers
				// them.
				break
			}
			continue
		}

		s.execClause(clause, &b)
	}

	b.wait()
}

// reportError prints the fixed message on the session's error stream. The
// cause only ever reaches the operational log.
func (s *Shell) reportError(cause error) {
	fmt.Fprintln(s.VirtualOS.Stderr(), ErrorMessage)
	if cause != nil {
		s.logf("error: %v", cause)
	}
}

func (s *Shell) logf(format string, args ...interface{}) {
	if s.Log != nil {
		s.Log.Printf(format, args...)
	}
}
