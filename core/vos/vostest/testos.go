// Package vostest provides a deterministic in-memory vos.VOS for tests.
package vostest

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/ishwari21/dash-unix-shell/core/vos"
)

// ProcessFunc is the body of a fake executable.
type ProcessFunc func(args []string, stdout, stderr io.Writer) int

// Printer returns a ProcessFunc that writes a fixed line to stdout.
func Printer(line string) ProcessFunc {
	return func(args []string, stdout, stderr io.Writer) int {
		_, _ = io.WriteString(stdout, line+"\n")
		return 0
	}
}

// Event records one process-lifecycle action in the order it happened.
type Event struct {
	Op   string // "start" or "wait"
	Path string
	Args []string
}

// TestOS is a vos.VOS over an afero in-memory filesystem with scripted
// processes. Process bodies run when the process is waited on, so the event
// log shows exactly when the shell spawned versus when it blocked.
type TestOS struct {
	FS     afero.Fs
	In     io.Reader
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer

	Cwd    string
	Events []Event

	procs   map[string]ProcessFunc
	lastPID int
}

func NewTestOS() *TestOS {
	return &TestOS{
		FS:     afero.NewMemMapFs(),
		In:     strings.NewReader(""),
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
		Cwd:    "/",
		procs:  make(map[string]ProcessFunc),
	}
}

var _ vos.VOS = (*TestOS)(nil)

// Install registers a fake executable at path, creating the backing file
// with the executable bit set so resolution finds it.
func (t *TestOS) Install(path string, fn ProcessFunc) {
	if err := afero.WriteFile(t.FS, path, []byte("#!fake\n"), 0755); err != nil {
		panic(err)
	}
	t.procs[path] = fn
}

func (t *TestOS) Stdin() io.ReadCloser {
	return io.NopCloser(t.In)
}

func (t *TestOS) Stdout() io.WriteCloser {
	return vos.NewVIOAdapter(nil, t.Out, nil).Stdout()
}

func (t *TestOS) Stderr() io.WriteCloser {
	return vos.NewVIOAdapter(nil, nil, t.ErrOut).Stderr()
}

func (t *TestOS) Stat(name string) (os.FileInfo, error) {
	return t.FS.Stat(name)
}

func (t *TestOS) Create(name string) (io.WriteCloser, error) {
	return t.FS.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0700)
}

func (t *TestOS) Open(name string) (io.ReadCloser, error) {
	return t.FS.Open(name)
}

func (t *TestOS) Chdir(dir string) error {
	info, err := t.FS.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: os.ErrInvalid}
	}
	t.Cwd = dir
	return nil
}

func (t *TestOS) StartProcess(path string, args []string, attr *vos.ProcAttr) (vos.Process, error) {
	fn, ok := t.procs[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	files := vos.VIO(t)
	if attr != nil && attr.Files != nil {
		files = attr.Files
	}

	t.lastPID++
	t.Events = append(t.Events, Event{Op: "start", Path: path, Args: args})
	return &fakeProcess{os: t, fn: fn, path: path, args: args, files: files, pid: t.lastPID}, nil
}

// EventOps returns just the operation names, e.g. ["start", "start", "wait",
// "wait"] for a two-clause parallel line.
func (t *TestOS) EventOps() []string {
	var ops []string
	for _, e := range t.Events {
		ops = append(ops, e.Op)
	}
	return ops
}

type fakeProcess struct {
	os    *TestOS
	fn    ProcessFunc
	path  string
	args  []string
	files vos.VIO
	pid   int
}

func (p *fakeProcess) PID() int {
	return p.pid
}

func (p *fakeProcess) Wait() error {
	p.os.Events = append(p.os.Events, Event{Op: "wait", Path: p.path, Args: p.args})
	p.fn(p.args, p.files.Stdout(), p.files.Stderr())
	return nil
}
