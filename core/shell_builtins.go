package core

import "errors"

// AllBuiltins holds every command the shell runs in-process instead of
// spawning. Dispatch is by name before any path resolution happens.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

var (
	errExitArgs = errors.New("exit: takes no arguments")
	errCdArgs   = errors.New("cd: takes exactly one argument")
)

// Exit ends the session. Any argument is an error and the session keeps
// running. The caller still waits on the current batch before the process
// actually terminates.
func Exit(s *Shell, args []string) int {
	if len(args) != 1 {
		s.reportError(errExitArgs)
		return 1
	}
	s.exiting = true
	return 0
}

// Cd changes the working directory. Exactly one argument; a failed change
// leaves the directory as it was.
func Cd(s *Shell, args []string) int {
	if len(args) != 2 {
		s.reportError(errCdArgs)
		return 1
	}
	if err := s.VirtualOS.Chdir(args[1]); err != nil {
		s.reportError(err)
		return 1
	}
	return 0
}

// Path replaces the whole search path with the given directories, in order.
// No arguments leaves it empty, after which no external command resolves.
// Cannot fail.
func Path(s *Shell, args []string) int {
	searchPath := make([]string, len(args)-1)
	copy(searchPath, args[1:])
	s.SearchPath = searchPath
	return 0
}

func init() {
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["path"] = ShellBuiltinFunc(Path)
}
