package core

import (
	"io"
	"os/exec"
	"path/filepath"

	"github.com/ishwari21/dash-unix-shell/core/shell"
	"github.com/ishwari21/dash-unix-shell/core/vos"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(virtOS vos.VOS, file string) error {
	d, err := virtOS.Stat(file)
	if err != nil {
		return ErrNotFound
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return ErrNotFound
}

// LookPath searches the directories of searchPath, in order, for an
// executable file named by the command. The first hit wins. An empty search
// path makes every lookup fail.
func LookPath(virtOS vos.VOS, searchPath []string, file string) (string, error) {
	for _, dir := range searchPath {
		candidate := filepath.Join(dir, file)
		if err := findExecutable(virtOS, candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

// batch collects the process handles spawned for one line, sized to however
// many clauses actually produced a child. Built-in and skipped clauses
// contribute nothing, so the supervisor only ever waits on real processes.
type batch struct {
	procs   []vos.Process
	closers []io.Closer
}

// wait blocks until every process in the batch has terminated, in slot
// order. Each wait targets its own handle, so wall-clock time is bounded by
// the slowest child, not the ordering. Redirect targets are closed only
// after the whole batch is down since children write to them until then.
func (b *batch) wait() {
	for _, p := range b.procs {
		_ = p.Wait()
	}
	for _, c := range b.closers {
		_ = c.Close()
	}
}

// execClause resolves and launches one external-command clause, appending
// the resulting process to the batch. Every failure is reported as the
// generic error and confined to this clause; siblings already in the batch
// are unaffected.
func (s *Shell) execClause(clause shell.Clause, b *batch) {
	execPath, err := LookPath(s.VirtualOS, s.SearchPath, clause.Argv[0])
	if err != nil {
		s.reportError(err)
		return
	}

	files := vos.VIO(s.VirtualOS)
	if clause.RedirectPath != "" {
		fd, err := s.VirtualOS.Create(clause.RedirectPath)
		if err != nil {
			s.reportError(err)
			return
		}
		b.closers = append(b.closers, fd)
		files = vos.NewRedirectIO(s.VirtualOS, fd)
	}

	proc, err := s.VirtualOS.StartProcess(execPath, clause.ExecArgv(), &vos.ProcAttr{Files: files})
	if err != nil {
		s.reportError(err)
		return
	}

	s.logf("spawned %s pid=%d", execPath, proc.PID())
	b.procs = append(b.procs, proc)
}
