package vos

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// hostOS implements VOS on the real operating system. The filesystem goes
// through afero so the same code paths are exercised by the in-memory fakes
// in vostest.
type hostOS struct {
	VIO
	fs afero.Fs
}

// NewHostOS returns a VOS backed by the host: the process's standard
// streams, the real filesystem, and real child processes.
func NewHostOS() VOS {
	return &hostOS{
		VIO: NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr),
		fs:  afero.NewOsFs(),
	}
}

func (h *hostOS) Stat(name string) (os.FileInfo, error) {
	return h.fs.Stat(name)
}

func (h *hostOS) Create(name string) (io.WriteCloser, error) {
	// O_TRUNC and 0700 match the classic open(2) call for `>` targets.
	return h.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0700)
}

func (h *hostOS) Open(name string) (io.ReadCloser, error) {
	return h.fs.Open(name)
}

func (h *hostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (h *hostOS) StartProcess(path string, args []string, attr *ProcAttr) (Process, error) {
	files := VIO(h)
	if attr != nil && attr.Files != nil {
		files = attr.Files
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   args,
		Stdin:  files.Stdin(),
		Stdout: files.Stdout(),
		Stderr: files.Stderr(),
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &hostProcess{cmd: cmd}, nil
}

type hostProcess struct {
	cmd *exec.Cmd
}

func (p *hostProcess) PID() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the child terminates. os/exec only reports termination,
// never stop notifications, so a stopped child keeps the wait open. The
// child's exit status is deliberately swallowed.
func (p *hostProcess) Wait() error {
	err := p.cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}
