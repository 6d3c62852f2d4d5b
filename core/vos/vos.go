// Package vos narrows the operating system down to the surface the
// interpreter needs: session I/O, a filesystem, a working directory, and
// process creation. Implementations back it with the host OS or with
// in-memory fakes for tests.
package vos

import (
	"io"
	"os"
)

// VFS is the filesystem surface used by the interpreter: probing candidate
// executables, creating redirect targets, and reading script files.
type VFS interface {
	// Stat describes the named file.
	Stat(name string) (os.FileInfo, error)
	// Create opens the named file for writing, creating it if necessary and
	// truncating it otherwise.
	Create(name string) (io.WriteCloser, error)
	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)
	// Chdir changes the working directory.
	Chdir(dir string) error
}

// Process is a handle to a started child process.
type Process interface {
	// PID returns the process identifier.
	PID() int
	// Wait blocks until the process reaches a terminal state, either a
	// normal exit or termination by signal. A stop notification is not a
	// terminal state. The child's exit status is not reported.
	Wait() error
}

// ProcAttr holds the attributes applied to a new process.
type ProcAttr struct {
	// Files supplies the standard streams for the new process. If nil the
	// spawning OS's own streams are used.
	Files VIO
}

// VProc creates child processes.
type VProc interface {
	// StartProcess runs the program at path with the given argument vector
	// and returns without waiting for it. Args holds the command name as
	// args[0], matching the execv convention.
	StartProcess(path string, args []string, attr *ProcAttr) (Process, error)
}

// VOS is the complete virtual OS consumed by the shell session.
type VOS interface {
	VIO
	VFS
	VProc
}
