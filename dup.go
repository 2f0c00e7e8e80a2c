package ospipe

import "os"

// DupStdin duplicates the process's standard input into a new,
// independently owned reader. Closing it leaves os.Stdin open.
func DupStdin() (*PipeReader, error) {
	f, err := dupFile(os.Stdin)
	if err != nil {
		return nil, err
	}
	return &PipeReader{f: f}, nil
}

// DupStdout duplicates the process's standard output into a new,
// independently owned writer. Closing it leaves os.Stdout open.
func DupStdout() (*PipeWriter, error) {
	f, err := dupFile(os.Stdout)
	if err != nil {
		return nil, err
	}
	return &PipeWriter{f: f}, nil
}

// DupStderr duplicates the process's standard error into a new,
// independently owned writer. Closing it leaves os.Stderr open.
func DupStderr() (*PipeWriter, error) {
	f, err := dupFile(os.Stderr)
	if err != nil {
		return nil, err
	}
	return &PipeWriter{f: f}, nil
}

// dupFile wraps a fresh duplicate of f's descriptor. The duplicate refers
// to the same underlying stream but is closable on its own.
func dupFile(f *os.File) (*os.File, error) {
	fd, err := dupCloexec(f.Fd())
	if err != nil {
		return nil, os.NewSyscallError("dup", err)
	}
	eventLogger.Printf("dup %s -> fd %d", f.Name(), fd)
	return os.NewFile(uintptr(fd), f.Name()), nil
}
